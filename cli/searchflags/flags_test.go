package searchflags

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Flags {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestDefaults(t *testing.T) {
	f := parse(t)
	opts, warnings := f.Options()
	assert.Empty(t, warnings)
	assert.Empty(t, opts.Columns)
	assert.False(t, opts.IgnoreCase)
	assert.False(t, opts.Regex)
	assert.False(t, opts.FixedStrings)
}

func TestColumnsSplit(t *testing.T) {
	f := parse(t, "-c", "name, city ,zip")
	opts, _ := f.Options()
	assert.Equal(t, []string{"name", "city", "zip"}, opts.Columns)
}

func TestRepeatedPatterns(t *testing.T) {
	f := parse(t, "-e", "alice", "-e", "bob")
	assert.Equal(t, []string{"alice", "bob"}, f.Patterns())
}

func TestFixedStringsOverridesRegex(t *testing.T) {
	f := parse(t, "-F", "-E")
	opts, warnings := f.Options()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "-F overrides -E")
	resolved, err := opts.Resolve()
	require.NoError(t, err)
	assert.False(t, resolved.Regex)
}

func TestFixedStringsWholeWordConflict(t *testing.T) {
	f := parse(t, "-F", "-w")
	opts, _ := f.Options()
	_, err := opts.Resolve()
	assert.Error(t, err)
}

func TestWholeWordForcesRegex(t *testing.T) {
	f := parse(t, "-w")
	opts, _ := f.Options()
	resolved, err := opts.Resolve()
	require.NoError(t, err)
	assert.True(t, resolved.Regex)
	assert.True(t, resolved.WholeWord)
}

func TestCountFlag(t *testing.T) {
	f := parse(t, "-count", "-i", "-v")
	assert.True(t, f.Count())
	opts, _ := f.Options()
	assert.True(t, opts.IgnoreCase)
	assert.True(t, opts.Invert)
	assert.True(t, opts.Count)
}
