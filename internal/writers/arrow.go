package writers

import (
	"io"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"cgmlst-dists/internal/metrics"
)

// ArrowBatchRows is the number of matrix rows per Arrow record batch.
const ArrowBatchRows = 1024

func init() { Register("arrow", WriteArrow) }

// ArrowSchema returns the stream schema: a utf8 column named after the label
// holding sample IDs, then one nullable uint32 column per sample.
func ArrowSchema(ids []string, opt Options) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(ids)+1)
	fields = append(fields, arrow.Field{Name: opt.Label, Type: arrow.BinaryTypes.String})
	for _, id := range ids {
		fields = append(fields, arrow.Field{Name: id, Type: arrow.PrimitiveTypes.Uint32, Nullable: true})
	}
	md := arrow.NewMetadata(
		[]string{"cgmlst_dists.mode", "cgmlst_dists.samples"},
		[]string{opt.Mode.String(), strconv.Itoa(len(ids))},
	)
	return arrow.NewSchema(fields, &md)
}

// WriteArrow writes the matrix as an Arrow IPC stream. Cells outside the
// row's span are null.
func WriteArrow(w io.Writer, m Matrix, ids []string, opt Options) error {
	mem := memory.NewGoAllocator()
	schema := ArrowSchema(ids, opt)

	iw := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	n := m.N()
	idb := b.Field(0).(*array.StringBuilder)
	cols := make([]*array.Uint32Builder, n)
	for i := range cols {
		cols[i] = b.Field(i + 1).(*array.Uint32Builder)
	}

	flush := func() error {
		rec := b.NewRecord()
		defer rec.Release()
		return iw.Write(rec)
	}

	for j := 0; j < n; j++ {
		start, end := opt.Mode.Span(j, n)
		row := m.Row(j)
		idb.Append(ids[j])
		for i, cb := range cols {
			if i < start || i >= end {
				cb.AppendNull()
				continue
			}
			cb.Append(row[i])
		}
		if (j+1)%ArrowBatchRows == 0 {
			if err := flush(); err != nil {
				_ = iw.Close()
				return err
			}
		}
	}
	if n%ArrowBatchRows != 0 {
		if err := flush(); err != nil {
			_ = iw.Close()
			return err
		}
	}
	if err := iw.Close(); err != nil {
		return err
	}
	metrics.RowsEmitted.WithLabelValues("arrow").Add(float64(n))
	return nil
}
