// Command icsdump parses an iCalendar file or feed and prints a YAML summary
// of what it contains.
//
//	icsdump [-config dump.yaml] [-tz Europe/Berlin] [-expand 5] file.ics|https://...
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical-typed"
	"gopkg.in/yaml.v3"
)

func main() {
	log.SetPrefix("icsdump: ")
	log.SetFlags(0)

	configPath := flag.String("config", "", "YAML config file")
	tz := flag.String("tz", "", "timezone to show times in (overrides config)")
	expand := flag.Int("expand", -1, "occurrences to list per recurring event (overrides config)")
	lenient := flag.Bool("lenient", false, "skip broken components instead of failing")
	timeout := flag.Duration("timeout", 30*time.Second, "timeout for fetching a URL")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := LoadDumpConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *tz != "" {
		cfg.Timezone = *tz
	}
	if *expand >= 0 {
		cfg.Expand = *expand
	}
	if *lenient {
		cfg.Strict = false
	}
	ops, err := cfg.ParseOptions()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cal, err := load(flag.Arg(0), cfg, ops, *timeout)
	if err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(buildDump(cal, cfg)); err != nil {
		log.Fatalf("writing output: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}

func load(src string, cfg *DumpConfig, ops []any, timeout time.Duration) (*ics.Calendar, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if !cfg.Strict {
			log.Printf("lenient parsing is not available for URLs; parsing strictly")
		}
		return ics.ParseCalendarFromUrl(src, append([]any{ctx}, ops...)...)
	}
	var r io.Reader = os.Stdin
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if cfg.Strict {
		return ics.ParseCalendar(r, ops...)
	}
	return parseLenient(r, ops)
}
