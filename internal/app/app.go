// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/rand"

	"mhnorm-core/chain"
	"mhnorm-core/posterior"
	"mhnorm-core/sample"
	"mhnorm/internal/cli"
	"mhnorm/internal/cmdutil"
	"mhnorm/internal/output"
	"mhnorm/internal/version"
	"mhnorm/internal/writers"
	"mhnorm/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("mhnorm")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mhnorm version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	seed := uint64(opts.Seed)
	if opts.Seed < 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var obs []float64
	if opts.ObsFile != "" {
		obs, err = sample.Load(opts.ObsFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	} else {
		obs = sample.Generate(opts.SampleSize, opts.TrueMean, opts.TrueStdev, rand.NewSource(seed))
	}

	cfg := chain.Config{
		Bounds: chain.Bounds{
			MeanLow:   opts.MeanLow,
			MeanHigh:  opts.MeanHigh,
			StdevLow:  opts.StdevLow,
			StdevHigh: opts.StdevHigh,
		},
		ProposalScale: opts.ProposalScale,
		Generations:   opts.Generations,
		Seed:          seed,
		ProgressEvery: opts.ProgressEvery,
		Progress: func(gen int, s chain.State) {
			cmdutil.Progressf(stderr, opts.Quiet, "gen %d/%d mean=%.4g stdev=%.4g log_like=%.4g",
				gen, opts.Generations, s.Mean, s.Stdev, s.LogLike)
		},
	}

	eng, err := chain.New(cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if ctxErr := parent.Err(); ctxErr != nil {
		return 130
	}
	res, err := eng.Run(obs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	est, err := posterior.Summarize(res.History, opts.Burnin)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	run := api.RunV1{
		Generations:    opts.Generations,
		SampleSize:     len(obs),
		Seed:           seed,
		AcceptanceRate: res.AcceptanceRate,
		Posterior:      output.ToAPIPosterior(est, opts.Burnin),
	}
	if opts.Trace {
		run.Samples = output.ToAPISamples(res.History)
	}

	if err := writers.WriteRun(opts.Output, outw, writers.RunPayload{Run: run, Header: opts.Header}); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes outw and folds flush failures into the exit code.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
