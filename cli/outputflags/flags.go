package outputflags

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/pkg/storage"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/tabio/emitter"
	"golang.org/x/term"
)

type Flags struct {
	Format     string
	outputFile string
	color      string
	OpenAfter  bool
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.Format, "f", "table", "format for output data [table,csv,tsv,ndjson,html]")
	fs.StringVar(&f.outputFile, "o", "", "write output to file")
	fs.StringVar(&f.color, "color", "auto", "highlight matching cells in table output [auto,always,never]")
	fs.BoolVar(&f.OpenAfter, "open", false, "open HTML output in the browser")
}

func (f *Flags) Init() error {
	switch f.Format {
	case "table", "csv", "tsv", "ndjson", "html":
	default:
		return fmt.Errorf("no such output format: %q", f.Format)
	}
	switch f.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("-color must be auto, always, or never (got %q)", f.color)
	}
	if f.OpenAfter && f.Format != "html" {
		return fmt.Errorf("-open requires -f html")
	}
	if f.outputFile == "-" {
		f.outputFile = ""
	}
	return nil
}

func (f *Flags) FileName() string { return f.outputFile }

// Highlight reports whether table output should be decorated with
// cell-level match highlighting.
func (f *Flags) Highlight() bool {
	if f.Format != "table" {
		return false
	}
	switch f.color {
	case "always":
		return true
	case "never":
		return false
	}
	return f.outputFile == "" && term.IsTerminal(int(os.Stdout.Fd()))
}

func (f *Flags) NewWriter(ctx context.Context, engine storage.Engine, schema *dfgrep.Schema) (tabio.WriteCloser, error) {
	return emitter.NewWriter(ctx, engine, f.outputFile, f.Format, schema)
}
