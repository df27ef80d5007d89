package arrowio

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// Builder creates Arrow records from labeled vectors and matrices.
type Builder struct {
	mem memory.Allocator
}

// NewBuilder creates a builder. A nil allocator falls back to the Go
// allocator.
func NewBuilder(mem memory.Allocator) *Builder {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &Builder{mem: mem}
}

// LabeledRecord converts labels and their vectors into a record with a
// utf8 "label" column and a fixed-size-list "vector" column. All vectors
// must share one non-zero dimension.
func (b *Builder) LabeledRecord(labels []string, vectors [][]float64) (arrow.Record, error) {
	if len(labels) != len(vectors) {
		return nil, fmt.Errorf("arrowio: %d labels for %d vectors", len(labels), len(vectors))
	}
	if len(labels) == 0 {
		return nil, nil
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("arrowio: vectors have dimension 0")
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("arrowio: vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}

	schema := arrow.NewSchema(
		[]arrow.Field{
			{Name: "label", Type: arrow.BinaryTypes.String},
			{Name: "vector", Type: arrow.FixedSizeListOf(int32(dim), arrow.PrimitiveTypes.Float64)},
		},
		nil,
	)

	labelBuilder := array.NewStringBuilder(b.mem)
	defer labelBuilder.Release()
	labelBuilder.AppendValues(labels, nil)

	vecBuilder := array.NewFixedSizeListBuilder(b.mem, int32(dim), arrow.PrimitiveTypes.Float64)
	defer vecBuilder.Release()

	valueBuilder := vecBuilder.ValueBuilder().(*array.Float64Builder)
	for _, v := range vectors {
		vecBuilder.Append(true)
		valueBuilder.AppendValues(v, nil)
	}

	cols := []arrow.Array{labelBuilder.NewArray(), vecBuilder.NewArray()}
	defer cols[0].Release()
	defer cols[1].Release()

	return array.NewRecord(schema, cols, int64(len(labels))), nil
}

// MatrixRecord converts matrix rows into a record with a single
// list<float64> "row" column. Rows may differ in length.
func (b *Builder) MatrixRecord(m [][]float64) (arrow.Record, error) {
	if len(m) == 0 {
		return nil, nil
	}

	schema := arrow.NewSchema(
		[]arrow.Field{
			{Name: "row", Type: arrow.ListOf(arrow.PrimitiveTypes.Float64)},
		},
		nil,
	)

	listBuilder := array.NewListBuilder(b.mem, arrow.PrimitiveTypes.Float64)
	defer listBuilder.Release()

	valueBuilder := listBuilder.ValueBuilder().(*array.Float64Builder)
	for _, row := range m {
		listBuilder.Append(true)
		valueBuilder.AppendValues(row, nil)
	}

	cols := []arrow.Array{listBuilder.NewArray()}
	defer cols[0].Release()

	return array.NewRecord(schema, cols, int64(len(m))), nil
}

func namedColumn(rec arrow.Record, name string) (arrow.Array, error) {
	indices := rec.Schema().FieldIndices(name)
	if len(indices) == 0 {
		return nil, fmt.Errorf("arrowio: record has no %q column", name)
	}
	return rec.Column(indices[0]), nil
}

// LabeledFromRecord extracts labels and vectors from a record produced by
// LabeledRecord. Columns are matched by name, so field order does not
// matter. Null vector rows come back nil.
func LabeledFromRecord(rec arrow.Record) ([]string, [][]float64, error) {
	if rec == nil {
		return nil, nil, nil
	}
	labelCol, err := namedColumn(rec, "label")
	if err != nil {
		return nil, nil, err
	}
	vecCol, err := namedColumn(rec, "vector")
	if err != nil {
		return nil, nil, err
	}

	labelArr, ok := labelCol.(*array.String)
	if !ok {
		return nil, nil, fmt.Errorf("arrowio: label column is %s, want utf8", labelCol.DataType())
	}
	vecArr, ok := vecCol.(*array.FixedSizeList)
	if !ok {
		return nil, nil, fmt.Errorf("arrowio: vector column is %s, want fixed_size_list", vecCol.DataType())
	}
	values, ok := vecArr.ListValues().(*array.Float64)
	if !ok {
		return nil, nil, fmt.Errorf("arrowio: vector values are %s, want float64", vecArr.ListValues().DataType())
	}
	dim := int(vecArr.DataType().(*arrow.FixedSizeListType).Len())

	n := labelArr.Len()
	labels := make([]string, n)
	vectors := make([][]float64, n)
	for i := 0; i < n; i++ {
		labels[i] = labelArr.Value(i)
		if vecArr.IsNull(i) {
			continue
		}
		row := make([]float64, dim)
		base := (i + vecArr.Offset()) * dim
		for j := 0; j < dim; j++ {
			row[j] = values.Value(base + j)
		}
		vectors[i] = row
	}
	return labels, vectors, nil
}

// MatrixFromRecord extracts matrix rows from a record produced by
// MatrixRecord. Null rows come back nil.
func MatrixFromRecord(rec arrow.Record) ([][]float64, error) {
	if rec == nil {
		return nil, nil
	}
	col, err := namedColumn(rec, "row")
	if err != nil {
		return nil, err
	}
	listArr, ok := col.(*array.List)
	if !ok {
		return nil, fmt.Errorf("arrowio: row column is %s, want list", col.DataType())
	}
	values, ok := listArr.ListValues().(*array.Float64)
	if !ok {
		return nil, fmt.Errorf("arrowio: row values are %s, want float64", listArr.ListValues().DataType())
	}

	out := make([][]float64, listArr.Len())
	for i := range out {
		if listArr.IsNull(i) {
			continue
		}
		start, end := listArr.ValueOffsets(i)
		row := make([]float64, end-start)
		for j := start; j < end; j++ {
			row[j-start] = values.Value(int(j))
		}
		out[i] = row
	}
	return out, nil
}

// WriteStream writes rec to w in the Arrow IPC stream format.
func WriteStream(w io.Writer, rec arrow.Record) error {
	if rec == nil {
		return nil
	}
	writer := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return fmt.Errorf("arrowio: write record: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("arrowio: close stream: %w", err)
	}
	return nil
}

// ReadLabeledStream reads every record of an IPC stream and concatenates
// the labeled vectors.
func ReadLabeledStream(r io.Reader) ([]string, [][]float64, error) {
	reader, err := ipc.NewReader(r, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, nil, fmt.Errorf("arrowio: open stream: %w", err)
	}
	defer reader.Release()

	var labels []string
	var vectors [][]float64
	for reader.Next() {
		l, v, err := LabeledFromRecord(reader.Record())
		if err != nil {
			return nil, nil, err
		}
		labels = append(labels, l...)
		vectors = append(vectors, v...)
	}
	if err := reader.Err(); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("arrowio: read stream: %w", err)
	}
	return labels, vectors, nil
}

// ReadMatrixStream reads every record of an IPC stream and concatenates
// the matrix rows.
func ReadMatrixStream(r io.Reader) ([][]float64, error) {
	reader, err := ipc.NewReader(r, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, fmt.Errorf("arrowio: open stream: %w", err)
	}
	defer reader.Release()

	var out [][]float64
	for reader.Next() {
		rows, err := MatrixFromRecord(reader.Record())
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	if err := reader.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("arrowio: read stream: %w", err)
	}
	return out, nil
}
