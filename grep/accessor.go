package grep

import "context"

// Accessor binds a frame-like value so callers can invoke the search
// as a method, the extension-style counterpart of attaching a grep
// method to a dataframe class.
type Accessor struct {
	df any
}

// On returns an accessor over df.
func On(df any) Accessor { return Accessor{df: df} }

// BoundaryOptions is the option surface exposed at the accessor and
// CLI boundary.  It adds FixedStrings, which forces literal matching
// and takes precedence over Regex; combining it with WholeWord is a
// configuration error because word boundaries require regexp syntax.
type BoundaryOptions struct {
	Options
	FixedStrings bool
}

// Resolve validates the flag combination and reduces BoundaryOptions
// to core Options.  The precedence is fixed-strings > whole-word >
// regex.
func (o BoundaryOptions) Resolve() (Options, error) {
	if o.FixedStrings && o.WholeWord {
		return Options{}, ConfigError(
			"fixed-strings and whole-word are incompatible: whole-word matching requires regex boundaries")
	}
	opts := o.Options
	if o.FixedStrings {
		opts.Regex = false
	} else if o.WholeWord {
		opts.Regex = true
	}
	return opts, nil
}

// Grep runs the search against the bound frame.
func (a Accessor) Grep(ctx context.Context, patterns []string, o BoundaryOptions) (Result, error) {
	opts, err := o.Resolve()
	if err != nil {
		return nil, err
	}
	return Run(ctx, a.df, patterns, opts)
}
