package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical-typed"
	"gopkg.in/yaml.v3"
)

// DumpConfig controls how icsdump parses and prints a calendar.
type DumpConfig struct {
	// Timezone is the IANA zone floating and UTC times are shown in.
	// Empty means the process local zone.
	Timezone string `yaml:"timezone"`

	// Duplicates is one of "strict", "first" or "last".
	Duplicates string `yaml:"duplicates"`

	// UntilCount decides what a RRULE with both UNTIL and COUNT means:
	// "reject" or "last".
	UntilCount string `yaml:"until_count"`

	// Strict stops at the first broken component.  When false, components
	// that fail to assemble are logged and skipped.
	Strict bool `yaml:"strict"`

	// Expand lists this many occurrences of each recurring event.
	Expand int `yaml:"expand"`
}

func DefaultDumpConfig() *DumpConfig {
	return &DumpConfig{
		Duplicates: "strict",
		UntilCount: "reject",
		Strict:     true,
	}
}

// Normalize fills in missing values so partially written files behave.
func (c *DumpConfig) Normalize() {
	if c.Duplicates == "" {
		c.Duplicates = "strict"
	}
	if c.UntilCount == "" {
		c.UntilCount = "reject"
	}
	if c.Expand < 0 {
		c.Expand = 0
	}
}

// LoadDumpConfig reads a YAML config.  An empty path gives the defaults.
func LoadDumpConfig(path string) (*DumpConfig, error) {
	cfg := DefaultDumpConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// ParseOptions turns the config into options for the ics parse functions.
func (c *DumpConfig) ParseOptions() ([]any, error) {
	var ops []any
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
		}
		ops = append(ops, ics.WithLocation{Location: loc})
	}
	switch c.Duplicates {
	case "strict":
		ops = append(ops, ics.DuplicateModeFailStrict)
	case "first":
		ops = append(ops, ics.DuplicateModeKeepFirst)
	case "last":
		ops = append(ops, ics.DuplicateModeKeepLast)
	default:
		return nil, fmt.Errorf("duplicates %q: want strict, first or last", c.Duplicates)
	}
	switch c.UntilCount {
	case "reject":
		ops = append(ops, ics.RecurEndConflictReject)
	case "last":
		ops = append(ops, ics.RecurEndConflictLastWins)
	default:
		return nil, errors.New("until_count: want reject or last")
	}
	return ops, nil
}
