package sdmx

import "fmt"

// TimeDimension is the identifier of the time dimension in Eurostat data
// structure definitions. Observations are keyed by it rather than by a
// series-key dimension.
const TimeDimension = "TIME_PERIOD"

// Dataflow identifies a published dataset and carries its localised titles.
type Dataflow struct {
	ID    string
	Names map[string]string
}

// Name returns the dataflow title for the given locale.
func (d *Dataflow) Name(locale string) (string, error) {
	name, ok := d.Names[locale]
	if !ok {
		return "", fmt.Errorf("dataflow %q has no name for locale %q", d.ID, locale)
	}
	return name, nil
}

// Code is a single coded value with its human-readable label.
type Code struct {
	ID    string
	Label string
}

// Codelist is an ordered list of codes for one dimension.
type Codelist struct {
	ID    string
	Codes []Code
}

// Label returns the label for the given code id.
func (c Codelist) Label(id string) (string, bool) {
	for _, code := range c.Codes {
		if code.ID == id {
			return code.Label, true
		}
	}
	return "", false
}

// Has reports whether the codelist contains the given code id.
func (c Codelist) Has(id string) bool {
	_, ok := c.Label(id)
	return ok
}

// Dimension describes one dimension of a data structure definition.
type Dimension struct {
	ID         string
	Position   int
	CodelistID string
}

// DataStructure is a data structure definition: the ordered dimensions of a
// dataset plus the codelists enumerating their valid codes. Dimensions holds
// the series-key dimensions in position order; the time dimension is not
// included.
type DataStructure struct {
	ID         string
	Dimensions []Dimension
	Codelists  map[string]Codelist
}

// Codelist returns the codelist referenced by the given dimension, if any.
func (d *DataStructure) Codelist(dim Dimension) (Codelist, bool) {
	cl, ok := d.Codelists[dim.CodelistID]
	return cl, ok
}

// Observation is a single observed value for one time period. Missing is set
// when the source reports no value for the period.
type Observation struct {
	Period  string
	Value   float64
	Missing bool
}

// Series is one series of observations, identified by its dimension key.
type Series struct {
	Key map[string]string
	Obs []Observation
}

// Key restricts a data request to the given values per dimension. Two or more
// permitted values for a dimension are separated by '+', as in the SDMX REST
// key syntax. Dimensions absent from the key are unrestricted.
type Key map[string]string
