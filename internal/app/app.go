// Package app wires loading, distance computation and output for the
// cgmlst-dists command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"cgmlst-dists/internal/alleles"
	"cgmlst-dists/internal/cli"
	"cgmlst-dists/internal/config"
	"cgmlst-dists/internal/engine"
	"cgmlst-dists/internal/logging"
	"cgmlst-dists/internal/metrics"
	"cgmlst-dists/internal/profile"
	"cgmlst-dists/internal/progress"
	"cgmlst-dists/internal/resource"
	"cgmlst-dists/internal/source"
	"cgmlst-dists/internal/version"
	"cgmlst-dists/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFatal    = 1 // unreadable or malformed input, allocation failure
	ExitUsage    = 2
	ExitWrite    = 3
	ExitCanceled = 130
)

// RunContext executes one invocation and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	env, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return ExitUsage
	}

	fs := cli.NewFlagSet(version.Name)
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fs, argv, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(stdout, fs)
			return ExitOK
		}
		_, _ = fmt.Fprintf(stderr, "ERROR: %v\n", err)
		cli.PrintUsage(stderr, fs)
		return ExitUsage
	}
	if opts.Version {
		if _, err := fmt.Fprintf(stdout, "%s %s\n", version.Name, version.Version); err != nil && !writers.IsBrokenPipe(err) {
			return ExitWrite
		}
		return ExitOK
	}

	log, err := logging.New(stderr, logging.Config{Format: opts.LogFormat, Quiet: opts.Quiet, Level: opts.LogLevel})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return ExitUsage
	}
	budget, err := memoryBudget(opts.MaxMemory)
	if err != nil {
		log.Error().Err(err).Msg("invalid --max-memory")
		return ExitUsage
	}

	r := &runner{
		log:    log,
		opts:   opts,
		s3:     source.S3Config{Endpoint: env.S3Endpoint, Region: env.S3Region, Insecure: env.S3Insecure},
		budget: budget,
	}
	code := r.run(ctx, stdout)
	if opts.MetricsFile != "" {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			log.Error().Err(err).Str("path", opts.MetricsFile).Msg("could not write metrics")
			if code == ExitOK {
				code = ExitWrite
			}
		}
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func memoryBudget(s string) (*resource.Budget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "unlimited":
		return resource.NewBudget(0), nil
	case "auto":
		return resource.NewBudget(resource.PhysicalMemory()), nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return nil, err
	}
	return resource.NewBudget(n), nil
}

type runner struct {
	log    zerolog.Logger
	opts   cli.Options
	s3     source.S3Config
	budget *resource.Budget
}

func (r *runner) run(ctx context.Context, stdout io.Writer) int {
	r.log.Info().Msgf("This is %s %s", version.Name, version.Version)

	start := time.Now()
	tbl, err := r.load(ctx)
	if err != nil {
		return r.fatal(err)
	}
	metrics.PhaseDurationSeconds.WithLabelValues("load").Set(time.Since(start).Seconds())
	if ctx.Err() != nil {
		return ExitCanceled
	}

	eng := engine.New(engine.Config{
		Threads: r.opts.Threads,
		MaxDiff: uint32(r.opts.MaxDistance),
		Budget:  r.budget,
		Log:     r.log,
	})
	start = time.Now()
	m, err := eng.Compute(ctx, tbl)
	if err != nil {
		return r.fatal(err)
	}
	defer eng.Release(m.Blocks())
	metrics.PhaseDurationSeconds.WithLabelValues("compute").Set(time.Since(start).Seconds())
	if ctx.Err() != nil {
		return ExitCanceled
	}

	r.log.Info().Str("format", r.opts.Output).Msg("Writing distance matrix to stdout...")
	sep := byte('\t')
	if r.opts.CSV {
		sep = ','
	}
	start = time.Now()
	err = writers.Write(r.opts.Output, stdout, m, tbl.IDs(), writers.Options{
		Label: version.Name,
		Sep:   sep,
		Mode:  writers.Mode(r.opts.Mode),
	})
	if writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		r.log.Error().Err(err).Msg("could not write distance matrix")
		return ExitWrite
	}
	metrics.PhaseDurationSeconds.WithLabelValues("emit").Set(time.Since(start).Seconds())

	r.log.Info().Msg("Done.")
	return ExitOK
}

func (r *runner) load(ctx context.Context) (*profile.Table, error) {
	rc, err := source.Open(ctx, r.opts.Input, r.s3)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rep := progress.New(r.log, "Loaded row", 0, progress.DefaultInterval)
	tbl, err := alleles.Load(rc, alleles.Options{
		MaxRows: r.opts.MaxRows,
		OnRow:   rep.Update,
	})
	if err != nil {
		return nil, err
	}

	metrics.SamplesLoaded.Set(float64(tbl.Len()))
	metrics.LociLoaded.Set(float64(tbl.Loci))
	r.log.Info().Msgf("Loaded %d samples x %d allele calls", tbl.Len(), tbl.Loci)
	if dups := tbl.Duplicates(); len(dups) > 0 {
		r.log.Warn().Strs("ids", dups).Msg("duplicate sample IDs")
	}
	return tbl, nil
}

// fatal reports err and maps it to an exit code. Every load and allocation
// error aborts the run; nothing has been written to stdout at this point.
func (r *runner) fatal(err error) int {
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	ev := r.log.Error()
	var ae *resource.AllocationError
	if errors.As(err, &ae) {
		ev = ev.Uint64("requested_bytes", ae.Requested)
	}
	ev.Msg(err.Error())
	return ExitFatal
}
