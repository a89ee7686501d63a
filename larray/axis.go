package larray

// Axis is a named, ordered set of labels along one dimension of an Array.
type Axis struct {
	Name   string
	Labels []string
}

// NewAxis creates an Axis with the given name and labels.
func NewAxis(name string, labels []string) Axis {
	return Axis{Name: name, Labels: append([]string{}, labels...)}
}

func (a Axis) index(label string) (int, bool) {
	for i, l := range a.Labels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}
