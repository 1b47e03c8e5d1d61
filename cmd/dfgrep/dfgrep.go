package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dfgrep/dfgrep/cli"
	"github.com/dfgrep/dfgrep/cli/logflags"
	"github.com/dfgrep/dfgrep/cli/outputflags"
	"github.com/dfgrep/dfgrep/cli/searchflags"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/frame/scan"
	"github.com/dfgrep/dfgrep/grep"
	"github.com/dfgrep/dfgrep/pkg/storage"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/view/htmltab"
	"github.com/mccanne/charm"
	"github.com/pkg/browser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

var DFGrep = &charm.Spec{
	Name:  "dfgrep",
	Usage: "dfgrep [ options ] pattern file [ file ... ]",
	Short: "grep for binary dataframe files",
	Long: `
dfgrep searches the rows of binary dataframe files (Parquet, Feather,
Arrow IPC) for a pattern, the way grep searches the lines of text
files.  A row matches when the pattern occurs in any string column, or
in any of the columns named with -c.  Matching rows are written to
standard output as an aligned table by default, or as csv, tsv,
ndjson, or html with -f.

The pattern is a literal substring unless -E (regex), -x (exact),
or -w (whole word) say otherwise.  Multiple patterns may be given by
repeating -e, in which case a row matches if any pattern does.  Files
may live on the local file system or behind file://, http(s)://, or
s3:// URIs.

Scanning is lazy: rows stream through the match predicate and
unmatched rows are dropped as they are read.  With -f ndjson and no
-n limit, matching rows stream straight to the output without being
held in memory.

For text files (csv, tsv, txt), use grep or ripgrep instead.
`,
	New: New,
}

type Command struct {
	searchflags searchflags.Flags
	outputflags outputflags.Flags
	logflags    logflags.Flags
	configPath  string
	showVersion bool
	fs          *flag.FlagSet
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{fs: f}
	c.searchflags.SetFlags(f)
	c.outputflags.SetFlags(f)
	c.logflags.SetFlags(f)
	f.StringVar(&c.configPath, "config", "", "YAML file of flag defaults (default $"+cli.ConfigEnv+")")
	f.BoolVar(&c.showVersion, "version", false, "print version and exit")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if c.showVersion {
		fmt.Printf("Version: %s\n", cli.Version)
		return nil
	}
	if err := c.applyConfig(); err != nil {
		return err
	}
	if err := c.outputflags.Init(); err != nil {
		return err
	}
	patterns := c.searchflags.Patterns()
	if len(patterns) == 0 {
		if len(args) == 0 {
			return errors.New("no pattern given")
		}
		patterns, args = args[:1], args[1:]
	}
	if len(args) == 0 {
		return errors.New("no input file given")
	}
	for i, p := range patterns {
		patterns[i] = norm.NFC.String(p)
	}
	opts, warnings := c.searchflags.Options()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	resolved, err := opts.Resolve()
	if err != nil {
		return err
	}
	logger, err := c.logflags.Open()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	engine := storage.NewLocalEngine()
	switch {
	case c.searchflags.FilesOnly:
		if c.outputflags.Format != "table" {
			fmt.Fprintln(os.Stderr, "Warning: -f ignored when using -l")
		}
		return c.filesWithMatches(ctx, engine, logger, args, patterns, resolved)
	case c.searchflags.Count():
		if c.outputflags.Format != "table" {
			fmt.Fprintln(os.Stderr, "Warning: -f ignored when using -count")
		}
		return c.countMatches(ctx, engine, logger, args, patterns, resolved)
	}
	for _, path := range args {
		if err := c.searchFile(ctx, engine, logger, path, patterns, resolved); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func (c *Command) applyConfig() error {
	path, fromEnv := c.configPath, false
	if path == "" {
		path, fromEnv = os.Getenv(cli.ConfigEnv), true
		if path == "" {
			return nil
		}
	}
	return cli.ApplyConfig(c.fs, path, fromEnv)
}

// filesWithMatches probes each file for at least one match in
// parallel, then prints the names of matching files in argument order.
func (c *Command) filesWithMatches(ctx context.Context, engine storage.Engine, logger *zap.Logger, paths, patterns []string, opts grep.Options) error {
	opts.Count = false
	matched := make([]bool, len(paths))
	group, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			q, err := scan.New(engine, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			res, err := grep.Run(gctx, q, patterns, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fr := res.(grep.Rows).Frame.(*frame.Frame)
			n, err := fr.Head(1).Count(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("probed file", zap.String("path", path), zap.Bool("matched", n > 0))
			matched[i] = n > 0
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	for i, path := range paths {
		if matched[i] {
			fmt.Println(path)
		}
	}
	return nil
}

// countMatches prints the total match count across all files.
func (c *Command) countMatches(ctx context.Context, engine storage.Engine, logger *zap.Logger, paths, patterns []string, opts grep.Options) error {
	var total int64
	for _, path := range paths {
		q, err := scan.New(engine, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		res, err := grep.Run(ctx, q, patterns, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		n := int64(res.(grep.Count))
		logger.Debug("counted file", zap.String("path", path), zap.Int64("matches", n))
		total += n
	}
	fmt.Println(total)
	return nil
}

func (c *Command) searchFile(ctx context.Context, engine storage.Engine, logger *zap.Logger, path string, patterns []string, opts grep.Options) error {
	q, err := scan.New(engine, path)
	if err != nil {
		return err
	}
	logger.Debug("searching file", zap.String("path", path))
	res, err := grep.Run(ctx, q, patterns, opts)
	if err != nil {
		return err
	}
	fr := res.(grep.Rows).Frame.(*frame.Frame)

	// NDJSON with no row limit streams straight from the scan.
	if c.outputflags.Format == "ndjson" && c.searchflags.MaxRows == 0 {
		return c.stream(ctx, engine, fr)
	}
	if c.searchflags.MaxRows > 0 {
		fr = fr.Head(c.searchflags.MaxRows)
	}
	table, err := fr.Collect(ctx)
	if err != nil {
		return err
	}
	if c.outputflags.Format == "html" {
		return c.writeHTML(ctx, engine, table, patterns, opts)
	}
	if c.outputflags.Highlight() {
		masks, err := grep.MatchMasks(table, patterns, opts)
		if err != nil {
			return err
		}
		render, err := frame.LookupRenderer(table.Origin())
		if err != nil {
			return err
		}
		v, err := render(table, masks)
		if err != nil {
			return err
		}
		return v.Render(os.Stdout)
	}
	w, err := c.outputflags.NewWriter(ctx, engine, table.Schema())
	if err != nil {
		return err
	}
	err = tabio.CopyWithContext(ctx, w, table.NewReader())
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (c *Command) stream(ctx context.Context, engine storage.Engine, fr *frame.Frame) error {
	r, err := fr.Lazy().Open(ctx)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := c.outputflags.NewWriter(ctx, engine, r.Schema())
	if err != nil {
		return err
	}
	err = tabio.CopyWithContext(ctx, w, r)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (c *Command) writeHTML(ctx context.Context, engine storage.Engine, table frame.Table, patterns []string, opts grep.Options) error {
	masks, err := grep.MatchMasks(table, patterns, opts)
	if err != nil {
		return err
	}
	v, err := htmltab.Render(table, masks)
	if err != nil {
		return err
	}
	path := c.outputflags.FileName()
	if path == "" {
		return v.Render(os.Stdout)
	}
	uri, err := storage.ParseURI(path)
	if err != nil {
		return err
	}
	w, err := engine.Put(ctx, uri)
	if err != nil {
		return err
	}
	err = v.Render(w)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	if c.outputflags.OpenAfter {
		return browser.OpenFile(uri.Filepath())
	}
	return nil
}
