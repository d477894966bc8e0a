package cli

import (
	"flag"
	"fmt"
	"io"

	"cgmlst-dists/internal/version"
)

// URL is the project home printed in the help text.
const URL = "https://github.com/genpat-it/cgmlst-dists-64"

// PrintUsage writes the help text, showing the effective defaults of fs.
func PrintUsage(out io.Writer, fs *flag.FlagSet) {
	def := func(name string) string {
		if f := fs.Lookup(name); f != nil {
			return f.DefValue
		}
		return ""
	}
	name := version.Name
	fmt.Fprintln(out, "SYNOPSIS")
	fmt.Fprintln(out, "  Pairwise CG-MLST distance matrix from allele call tables")
	fmt.Fprintln(out, "USAGE")
	fmt.Fprintf(out, "  %s [options] chewbbaca.tab > distances.tsv\n", name)
	fmt.Fprintln(out, "OPTIONS")
	fmt.Fprintln(out, "  -h, --help               Show this help")
	fmt.Fprintln(out, "  -v, --version            Print version and exit")
	fmt.Fprintf(out, "  -q, --quiet              Quiet mode; do not print progress information [%s]\n", def("q"))
	fmt.Fprintf(out, "  -c, --csv                Use comma instead of tab in output [%s]\n", def("c"))
	fmt.Fprintf(out, "  -m, --mode N             Output: 1=lower-tri 2=upper-tri 3=full [%s]\n", def("m"))
	fmt.Fprintf(out, "  -x, --max-distance N     Stop calculating beyond this distance [%s]\n", def("x"))
	fmt.Fprintf(out, "  -t, --threads N          Number of threads to use [%s]\n", def("t"))
	fmt.Fprintf(out, "  -o, --output FORMAT      Output format: tsv | arrow [%s]\n", def("o"))
	fmt.Fprintf(out, "      --max-rows N         Maximum number of samples [%s]\n", def("max-rows"))
	fmt.Fprintf(out, "      --max-memory SIZE    Memory budget for the matrix (auto, 0=unlimited) [%s]\n", def("max-memory"))
	fmt.Fprintf(out, "      --metrics-file PATH  Write run metrics (Prometheus text format) [%s]\n", def("metrics-file"))
	fmt.Fprintf(out, "      --log-format FORMAT  Diagnostics: console | json [%s]\n", def("log-format"))
	fmt.Fprintf(out, "      --log-level LEVEL    Diagnostics level [%s]\n", def("log-level"))
	fmt.Fprintln(out, "INPUT")
	fmt.Fprintln(out, "  A path, '-' for standard input, or s3://bucket/key. gzip, zstd and")
	fmt.Fprintln(out, "  lz4 inputs are detected automatically.")
	fmt.Fprintln(out, "ENVIRONMENT")
	fmt.Fprintf(out, "  Every option can be preset as CGMLST_DISTS_<NAME> (e.g. CGMLST_DISTS_THREADS).\n")
	fmt.Fprintln(out, "URL")
	fmt.Fprintf(out, "  %s\n", URL)
}
