// Package larray provides a labeled multidimensional array: each dimension
// is addressed by name and by an ordered set of labels rather than by bare
// integer position.
package larray

import (
	"fmt"
	"math"
)

// Array is an N-dimensional array of float64 values with one Axis per
// dimension. Data is stored row-major; NaN marks a missing observation.
// Arrays are not mutated after construction: derived arrays share the
// underlying data.
type Array struct {
	axes []Axis
	data []float64
}

func newArray(axes []Axis) *Array {
	size := 1
	for _, axis := range axes {
		size *= len(axis.Labels)
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = math.NaN()
	}
	return &Array{axes: axes, data: data}
}

// Axes returns a copy of the array's axes, in display order.
func (a *Array) Axes() []Axis {
	out := make([]Axis, len(a.axes))
	for i, axis := range a.axes {
		out[i] = NewAxis(axis.Name, axis.Labels)
	}
	return out
}

// AxisNames returns the axis names in display order.
func (a *Array) AxisNames() []string {
	names := make([]string, len(a.axes))
	for i, axis := range a.axes {
		names[i] = axis.Name
	}
	return names
}

// Shape returns the number of labels along each axis.
func (a *Array) Shape() []int {
	shape := make([]int, len(a.axes))
	for i, axis := range a.axes {
		shape[i] = len(axis.Labels)
	}
	return shape
}

// Size returns the total number of cells.
func (a *Array) Size() int {
	return len(a.data)
}

// Data returns a copy of the underlying row-major data.
func (a *Array) Data() []float64 {
	return append([]float64{}, a.data...)
}

// Value returns the cell addressed by one label per axis.
func (a *Array) Value(labels ...string) (float64, error) {
	if len(labels) != len(a.axes) {
		return 0, fmt.Errorf("expected %d labels, got %d", len(a.axes), len(labels))
	}
	offset := 0
	for i, label := range labels {
		j, ok := a.axes[i].index(label)
		if !ok {
			return 0, fmt.Errorf("label %q not found on axis %q", label, a.axes[i].Name)
		}
		offset = offset*len(a.axes[i].Labels) + j
	}
	return a.data[offset], nil
}

// WithAxes returns a new Array with the same data and the given replacement
// axes. The replacement must match the array's shape exactly.
func (a *Array) WithAxes(axes []Axis) (*Array, error) {
	if len(axes) != len(a.axes) {
		return nil, fmt.Errorf("expected %d axes, got %d", len(a.axes), len(axes))
	}
	replaced := make([]Axis, len(axes))
	for i, axis := range axes {
		if len(axis.Labels) != len(a.axes[i].Labels) {
			return nil, fmt.Errorf("axis %q has %d labels, replacement %q has %d",
				a.axes[i].Name, len(a.axes[i].Labels), axis.Name, len(axis.Labels))
		}
		replaced[i] = NewAxis(axis.Name, axis.Labels)
	}
	return &Array{axes: replaced, data: a.data}, nil
}
