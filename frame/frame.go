// Package frame provides the intermediate two-dimensional table used between
// the SDMX series decomposition and the labeled-array conversion. Both the
// row and column index may be hierarchical: each row or column is addressed
// by a tuple of labels, one per level.
package frame

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrKeyLength is returned when a key tuple does not have one label per level.
var ErrKeyLength = errors.New("key length does not match number of levels")

// Frame is a two-dimensional table with hierarchical row and column keys.
// Values[i][j] holds the cell for row i and column j; NaN marks a missing
// cell.
type Frame struct {
	RowNames    []string
	Rows        [][]string
	ColumnNames []string
	Columns     [][]string
	Values      [][]float64

	rowPos map[string]int
	colPos map[string]int
}

// New creates an empty Frame with the given column levels and a single row
// level. Rows and columns are inserted by Set in first-seen order.
func New(columnNames []string, rowName string) *Frame {
	return &Frame{
		RowNames:    []string{rowName},
		ColumnNames: columnNames,
		rowPos:      map[string]int{},
		colPos:      map[string]int{},
	}
}

// Set stores a value for the given column key tuple and row label, inserting
// the column and row on first sight.
func (f *Frame) Set(columnKey []string, row string, v float64) error {
	if len(f.RowNames) != 1 {
		return fmt.Errorf("row %w: frame has %d row levels", ErrKeyLength, len(f.RowNames))
	}
	if len(columnKey) != len(f.ColumnNames) {
		return fmt.Errorf("column %w: got %d labels, frame has %d levels",
			ErrKeyLength, len(columnKey), len(f.ColumnNames))
	}

	j, ok := f.colPos[joinKey(columnKey)]
	if !ok {
		j = len(f.Columns)
		f.colPos[joinKey(columnKey)] = j
		f.Columns = append(f.Columns, append([]string{}, columnKey...))
		for i := range f.Values {
			f.Values[i] = append(f.Values[i], math.NaN())
		}
	}

	i, ok := f.rowPos[row]
	if !ok {
		i = len(f.Rows)
		f.rowPos[row] = i
		f.Rows = append(f.Rows, []string{row})
		cells := make([]float64, len(f.Columns))
		for j := range cells {
			cells[j] = math.NaN()
		}
		f.Values = append(f.Values, cells)
	}

	f.Values[i][j] = v
	return nil
}

// At returns the cell at row i, column j.
func (f *Frame) At(i, j int) float64 {
	return f.Values[i][j]
}

// Transpose returns a new Frame with rows and columns swapped.
func (f *Frame) Transpose() *Frame {
	t := &Frame{
		RowNames:    append([]string{}, f.ColumnNames...),
		Rows:        f.Columns,
		ColumnNames: append([]string{}, f.RowNames...),
		Columns:     f.Rows,
		Values:      make([][]float64, len(f.Columns)),
		rowPos:      map[string]int{},
		colPos:      map[string]int{},
	}
	for i, key := range t.Rows {
		t.rowPos[joinKey(key)] = i
	}
	for j, key := range t.Columns {
		t.colPos[joinKey(key)] = j
	}
	for i := range t.Values {
		cells := make([]float64, len(f.Rows))
		for j := range cells {
			cells[j] = f.Values[j][i]
		}
		t.Values[i] = cells
	}
	return t
}

func joinKey(key []string) string {
	return strings.Join(key, "\x1f")
}
