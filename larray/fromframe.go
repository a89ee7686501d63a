package larray

import (
	"fmt"
	"sort"

	"github.com/larray-project/larray-eurostat/frame"
)

// FromFrame converts a Frame into an Array. The frame's row-key levels become
// the leading axes and its column-key levels the trailing axes; each axis's
// labels are the distinct values seen on that level, in first-seen order.
// With sortLabels set, every axis's label list is sorted lexicographically
// instead, so the result does not depend on the order in which the frame was
// filled. Cells absent from the frame stay NaN.
func FromFrame(f *frame.Frame, sortLabels bool) (*Array, error) {
	names := append(append([]string{}, f.RowNames...), f.ColumnNames...)
	levels := len(names)

	labels := make([][]string, levels)
	seen := make([]map[string]int, levels)
	for l := range seen {
		seen[l] = map[string]int{}
	}
	collect := func(level int, label string) {
		if _, ok := seen[level][label]; !ok {
			seen[level][label] = len(labels[level])
			labels[level] = append(labels[level], label)
		}
	}
	for _, key := range f.Rows {
		if len(key) != len(f.RowNames) {
			return nil, fmt.Errorf("row key %v does not match row levels %v", key, f.RowNames)
		}
		for l, label := range key {
			collect(l, label)
		}
	}
	for _, key := range f.Columns {
		if len(key) != len(f.ColumnNames) {
			return nil, fmt.Errorf("column key %v does not match column levels %v", key, f.ColumnNames)
		}
		for l, label := range key {
			collect(len(f.RowNames)+l, label)
		}
	}

	if sortLabels {
		for l := range labels {
			sort.Strings(labels[l])
			for i, label := range labels[l] {
				seen[l][label] = i
			}
		}
	}

	axes := make([]Axis, levels)
	for l, name := range names {
		axes[l] = NewAxis(name, labels[l])
	}
	arr := newArray(axes)

	coords := make([]int, levels)
	for i, rowKey := range f.Rows {
		for l, label := range rowKey {
			coords[l] = seen[l][label]
		}
		for j, colKey := range f.Columns {
			for l, label := range colKey {
				coords[len(f.RowNames)+l] = seen[len(f.RowNames)+l][label]
			}
			offset := 0
			for l, c := range coords {
				offset = offset*len(labels[l]) + c
			}
			arr.data[offset] = f.Values[i][j]
		}
	}

	return arr, nil
}
