package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestApplyConfigSetsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	format := fs.String("f", "table", "")
	ignoreCase := fs.Bool("i", false, "")
	require.NoError(t, fs.Parse(nil))
	path := writeConfig(t, "f: ndjson\ni: \"true\"\n")
	require.NoError(t, ApplyConfig(fs, path, false))
	assert.Equal(t, "ndjson", *format)
	assert.True(t, *ignoreCase)
}

func TestApplyConfigRespectsExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	format := fs.String("f", "table", "")
	require.NoError(t, fs.Parse([]string{"-f", "csv"}))
	path := writeConfig(t, "f: ndjson\n")
	require.NoError(t, ApplyConfig(fs, path, false))
	assert.Equal(t, "csv", *format)
}

func TestApplyConfigUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))
	path := writeConfig(t, "nosuch: x\n")
	assert.Error(t, ApplyConfig(fs, path, false))
}

func TestApplyConfigMissingFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	// From the environment a missing file is ignored; explicit -config
	// is an error.
	assert.NoError(t, ApplyConfig(fs, missing, true))
	assert.Error(t, ApplyConfig(fs, missing, false))
}
