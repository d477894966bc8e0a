// internal/writers/tsv.go
package writers

import (
	"bufio"
	"io"
	"strconv"

	"cgmlst-dists/internal/metrics"
)

func init() { Register("tsv", WriteText) }

// WriteText writes the header row and one row per sample, in load order.
// Each row is the sample ID followed by the distances in opt.Mode's span.
func WriteText(w io.Writer, m Matrix, ids []string, opt Options) error {
	sep := opt.Sep
	if sep == 0 {
		sep = '\t'
	}
	bw := bufio.NewWriterSize(w, 1<<16)

	buf := make([]byte, 0, 256)
	buf = append(buf, opt.Label...)
	for _, id := range ids {
		buf = append(buf, sep)
		buf = append(buf, id...)
	}
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	n := m.N()
	for j := 0; j < n; j++ {
		start, end := opt.Mode.Span(j, n)
		row := m.Row(j)
		buf = append(buf[:0], ids[j]...)
		for _, d := range row[start:end] {
			buf = append(buf, sep)
			buf = strconv.AppendUint(buf, uint64(d), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	metrics.RowsEmitted.WithLabelValues("tsv").Add(float64(n))
	return nil
}
