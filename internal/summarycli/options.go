// internal/summarycli/options.go
package summarycli

import (
	"errors"
	"flag"
	"fmt"

	"mhnorm/internal/cliutil"
	"mhnorm/internal/version"
)

// Options holds CLI flags for the trace re-summarizer.
type Options struct {
	TraceFile string // positional; "-" = stdin
	Burnin    int
	Output    string
	Version   bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: re-summarize a recorded mhnorm chain trace

Version: %s

Usage: %s [flags] [TRACE]
TRACE is a text/TSV or JSONL trace file; '-' or no argument reads stdin.

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Burnin, "burnin", 0, "chain prefix discarded before summarizing [0]")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
		opt.TraceFile = "-"
	case 1:
		opt.TraceFile = posArgs[0]
	default:
		return opt, errors.New("expected at most one trace file")
	}

	if opt.Burnin < 0 {
		return opt, errors.New("--burnin must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" && opt.Output != "jsonl" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
