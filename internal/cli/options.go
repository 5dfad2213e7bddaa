// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"mhnorm/internal/version"
)

// Options holds all CLI flags for the sampler command.
type Options struct {
	// Observation input: synthetic trio or an explicit file.
	SampleSize int
	TrueMean   float64
	TrueStdev  float64
	ObsFile    string

	// Prior support
	MeanLow   float64
	MeanHigh  float64
	StdevLow  float64
	StdevHigh float64

	// Sampler parameters
	ProposalScale float64
	Generations   int
	Burnin        int
	Seed          int64 // <0 = derive from wall clock

	// Output
	Output        string
	Trace         bool
	Header        bool // true unless --no-header
	ProgressEvery int
	Quiet         bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: Bayesian inference of a Normal mean/stdev via Metropolis-Hastings

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Observation input
	fs.IntVar(&opt.SampleSize, "sample-size", 10, "synthetic observation count [10]")
	fs.Float64Var(&opt.TrueMean, "true-mean", 10, "reference mean for synthetic observations [10]")
	fs.Float64Var(&opt.TrueStdev, "true-stdev", 1, "reference stdev for synthetic observations [1]")
	fs.StringVar(&opt.ObsFile, "observations", "", "observation file ('-' = stdin) instead of synthetic generation")

	// Prior support
	fs.Float64Var(&opt.MeanLow, "mean-low", 0, "uniform prior lower bound on mean [0]")
	fs.Float64Var(&opt.MeanHigh, "mean-high", 50, "uniform prior upper bound on mean [50]")
	fs.Float64Var(&opt.StdevLow, "stdev-low", 0, "uniform prior lower bound on stdev [0]")
	fs.Float64Var(&opt.StdevHigh, "stdev-high", 10, "uniform prior upper bound on stdev [10]")

	// Sampler parameters
	fs.Float64Var(&opt.ProposalScale, "proposal-scale", 1, "random-walk step sigma for both parameters [1]")
	fs.IntVar(&opt.Generations, "generations", 3000, "chain iterations after the seed draw [3000]")
	fs.IntVar(&opt.Burnin, "burnin", 1000, "chain prefix discarded before summarizing [1000]")
	fs.Int64Var(&opt.Seed, "seed", -1, "RNG seed; -1 derives one from the clock [-1]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Trace, "trace", false, "emit every chain slot, not just the posterior summary [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV trace [false]")
	fs.IntVar(&opt.ProgressEvery, "progress-every", 500, "report progress to stderr every N generations (0 = off) [500]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress and warnings on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Validation
	if opt.ObsFile != "" && (set["sample-size"] || set["true-mean"] || set["true-stdev"]) {
		return opt, errors.New("--observations conflicts with --sample-size/--true-mean/--true-stdev")
	}
	if opt.ObsFile == "" {
		if opt.SampleSize < 1 {
			return opt, errors.New("--sample-size must be ≥ 1")
		}
		if opt.TrueStdev <= 0 {
			return opt, errors.New("--true-stdev must be > 0")
		}
	}
	if opt.Generations < 1 {
		return opt, errors.New("--generations must be ≥ 1")
	}
	if opt.Burnin < 0 {
		return opt, errors.New("--burnin must be ≥ 0")
	}
	if opt.Burnin >= opt.Generations {
		return opt, fmt.Errorf("--burnin (%d) must be < --generations (%d)", opt.Burnin, opt.Generations)
	}
	if opt.ProposalScale < 0 {
		return opt, errors.New("--proposal-scale must be ≥ 0")
	}
	if opt.MeanHigh <= opt.MeanLow {
		return opt, fmt.Errorf("--mean-high (%v) must exceed --mean-low (%v)", opt.MeanHigh, opt.MeanLow)
	}
	if opt.StdevLow < 0 {
		return opt, errors.New("--stdev-low must be ≥ 0")
	}
	if opt.StdevHigh <= opt.StdevLow {
		return opt, fmt.Errorf("--stdev-high (%v) must exceed --stdev-low (%v)", opt.StdevHigh, opt.StdevLow)
	}
	if opt.ProgressEvery < 0 {
		return opt, errors.New("--progress-every must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" && opt.Output != "jsonl" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
