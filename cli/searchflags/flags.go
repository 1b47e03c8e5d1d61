package searchflags

import (
	"flag"
	"strings"

	"github.com/dfgrep/dfgrep/grep"
)

type Flags struct {
	columns      string
	ignoreCase   bool
	invert       bool
	regex        bool
	fixedStrings bool
	wholeWord    bool
	exact        bool
	count        bool
	MaxRows      int
	FilesOnly    bool
	patterns     patternList
}

type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }

func (p *patternList) Set(s string) error {
	*p = append(*p, s)
	return nil
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.columns, "c", "", "comma-separated list of columns to search")
	fs.BoolVar(&f.ignoreCase, "i", false, "case insensitive matching")
	fs.BoolVar(&f.invert, "v", false, "invert match (show non-matching rows)")
	fs.BoolVar(&f.regex, "E", false, "treat patterns as regular expressions")
	fs.BoolVar(&f.fixedStrings, "F", false, "force literal string matching (disable regex)")
	fs.BoolVar(&f.wholeWord, "w", false, "match whole words only")
	fs.BoolVar(&f.exact, "x", false, "exact match (equality or anchored regex)")
	fs.BoolVar(&f.count, "count", false, "print count of matching rows instead of the rows")
	fs.IntVar(&f.MaxRows, "n", 0, "maximum number of rows to display (0 for all)")
	fs.BoolVar(&f.FilesOnly, "l", false, "print only names of files with matches")
	fs.Var(&f.patterns, "e", "search pattern (may be repeated; frees the first argument to be a file)")
}

// Patterns returns the -e patterns, or nil when the pattern comes from
// the first positional argument.
func (f *Flags) Patterns() []string { return f.patterns }

func (f *Flags) Count() bool { return f.count }

// Options resolves the flag surface into boundary options plus any
// warnings about overridden flags.  Incompatible combinations surface
// as errors from BoundaryOptions.Resolve.
func (f *Flags) Options() (grep.BoundaryOptions, []string) {
	var warnings []string
	if f.fixedStrings && f.regex {
		warnings = append(warnings, "-F overrides -E: patterns are matched literally")
	}
	var columns []string
	if f.columns != "" {
		for _, col := range strings.Split(f.columns, ",") {
			columns = append(columns, strings.TrimSpace(col))
		}
	}
	return grep.BoundaryOptions{
		Options: grep.Options{
			Columns:    columns,
			IgnoreCase: f.ignoreCase,
			Regex:      f.regex,
			WholeWord:  f.wholeWord,
			Exact:      f.exact,
			Invert:     f.invert,
			Count:      f.count,
		},
		FixedStrings: f.fixedStrings,
	}, warnings
}
