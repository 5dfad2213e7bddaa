// internal/summaryapp/app.go
package summaryapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"mhnorm-core/posterior"
	"mhnorm/internal/output"
	"mhnorm/internal/summarycli"
	"mhnorm/internal/traceio"
	"mhnorm/internal/version"
	"mhnorm/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := summarycli.NewFlagSet("mhnorm-summary")
	fs.SetOutput(io.Discard)

	opts, err := summarycli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mhnorm-summary version %s\n", version.Version)
		return 0
	}
	if parent.Err() != nil {
		return 130
	}

	h, err := traceio.Load(opts.TraceFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	est, err := posterior.Summarize(h, opts.Burnin)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if err := writers.WriteSummary(opts.Output, outw, output.ToAPIPosterior(est, opts.Burnin)); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
