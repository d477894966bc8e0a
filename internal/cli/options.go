// Package cli parses the cgmlst-dists command line into Options.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"cgmlst-dists/internal/cliutil"
	"cgmlst-dists/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Input string

	// Distance
	Mode        int
	MaxDistance uint
	Threads     int

	// Output
	CSV    bool
	Output string

	// Limits
	MaxRows   int
	MaxMemory string

	// Diagnostics
	Quiet       bool
	MetricsFile string
	LogFormat   string
	LogLevel    string

	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers and parses all flags. Flag defaults come from def,
// so environment settings apply unless overridden on the command line.
func ParseArgs(fs *flag.FlagSet, argv []string, def config.Config) (Options, error) {
	opt := Options{
		Mode: def.Mode, MaxDistance: def.MaxDistance, Threads: def.Threads,
		CSV: def.CSV, Output: def.Output,
		MaxRows: def.MaxRows, MaxMemory: def.MaxMemory,
		Quiet: def.Quiet, MetricsFile: def.MetricsFile,
		LogFormat: def.LogFormat, LogLevel: def.LogLevel,
	}
	var help bool

	fs.BoolVar(&opt.Quiet, "q", opt.Quiet, "quiet mode; do not print progress information")
	fs.BoolVar(&opt.Quiet, "quiet", opt.Quiet, "alias of -q")
	fs.BoolVar(&opt.CSV, "c", opt.CSV, "use comma instead of tab in output")
	fs.BoolVar(&opt.CSV, "csv", opt.CSV, "alias of -c")
	fs.IntVar(&opt.Mode, "m", opt.Mode, "output: 1=lower-tri 2=upper-tri 3=full")
	fs.IntVar(&opt.Mode, "mode", opt.Mode, "alias of -m")
	fs.UintVar(&opt.MaxDistance, "x", opt.MaxDistance, "stop calculating beyond this distance")
	fs.UintVar(&opt.MaxDistance, "max-distance", opt.MaxDistance, "alias of -x")
	fs.IntVar(&opt.Threads, "t", opt.Threads, "number of threads to use")
	fs.IntVar(&opt.Threads, "threads", opt.Threads, "alias of -t")
	fs.StringVar(&opt.Output, "o", opt.Output, "output format: tsv | arrow")
	fs.StringVar(&opt.Output, "output", opt.Output, "alias of -o")

	fs.IntVar(&opt.MaxRows, "max-rows", opt.MaxRows, "maximum number of samples")
	fs.StringVar(&opt.MaxMemory, "max-memory", opt.MaxMemory, "memory budget for the matrix (e.g. 16GiB, auto, 0=unlimited)")
	fs.StringVar(&opt.MetricsFile, "metrics-file", opt.MetricsFile, "write run metrics in Prometheus text format to this file")
	fs.StringVar(&opt.LogFormat, "log-format", opt.LogFormat, "diagnostic format: console | json")
	fs.StringVar(&opt.LogLevel, "log-level", opt.LogLevel, "diagnostic level: debug | info | warn | error")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit")
	fs.BoolVar(&opt.Version, "version", false, "alias of -v")
	fs.BoolVar(&help, "h", false, "show this help")
	fs.BoolVar(&help, "help", false, "alias of -h")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)

	switch len(posArgs) {
	case 0:
		return opt, errors.New("an allele call table is required")
	case 1:
		opt.Input = posArgs[0]
	default:
		return opt, fmt.Errorf("expected one input table, got %d", len(posArgs))
	}

	// Validation
	if opt.Threads < 1 {
		opt.Threads = 1
	}
	if opt.Mode < 1 || opt.Mode > 3 {
		return opt, fmt.Errorf("invalid -m %d (want 1, 2 or 3)", opt.Mode)
	}
	if opt.MaxDistance > math.MaxUint32 {
		return opt, fmt.Errorf("-x %d exceeds %d", opt.MaxDistance, uint32(math.MaxUint32))
	}
	if opt.MaxRows < 1 {
		return opt, errors.New("--max-rows must be ≥ 1")
	}
	switch opt.Output {
	case "tsv", "arrow":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
