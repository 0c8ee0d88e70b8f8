package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical-typed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDumpConfig(t *testing.T) {
	cfg, err := LoadDumpConfig("../../testdata/dump.yaml")
	require.NoError(t, err)
	assert.Equal(t, &DumpConfig{
		Timezone:   "UTC",
		Duplicates: "last",
		UntilCount: "reject",
		Strict:     true,
		Expand:     3,
	}, cfg)

	ops, err := cfg.ParseOptions()
	require.NoError(t, err)
	assert.Equal(t, []any{
		ics.WithLocation{Location: time.UTC},
		ics.DuplicateModeKeepLast,
		ics.RecurEndConflictReject,
	}, ops)
}

func TestLoadDumpConfigDefaults(t *testing.T) {
	cfg, err := LoadDumpConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDumpConfig(), cfg)

	ops, err := cfg.ParseOptions()
	require.NoError(t, err)
	assert.Equal(t, []any{ics.DuplicateModeFailStrict, ics.RecurEndConflictReject}, ops)
}

func TestLoadDumpConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strict: false\nuntil_count: last\nexpand: -4\nduplicates: \"\"\n"), 0o600))
	cfg, err := LoadDumpConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "last", cfg.UntilCount)
	assert.Equal(t, "strict", cfg.Duplicates)
	assert.Equal(t, 0, cfg.Expand)
}

func TestLoadDumpConfigErrors(t *testing.T) {
	_, err := LoadDumpConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("expand: [1, 2]\n"), 0o600))
	_, err = LoadDumpConfig(path)
	assert.ErrorContains(t, err, "parsing ")
}

func TestParseOptionsErrors(t *testing.T) {
	testCases := []struct {
		name string
		cfg  DumpConfig
	}{
		{"bad timezone", DumpConfig{Timezone: "Mars/Olympus", Duplicates: "strict", UntilCount: "reject"}},
		{"bad duplicates", DumpConfig{Duplicates: "most", UntilCount: "reject"}},
		{"bad until_count", DumpConfig{Duplicates: "strict", UntilCount: "first"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.ParseOptions()
			assert.Error(t, err)
		})
	}
}
