package sdmx

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
)

// Wire structures for the SDMX-ML 2.1 structure and generic data messages.
// Element names are matched on local name only, so the namespace prefixes
// used by the dissemination API (mes:, str:, com:, gen:) are irrelevant here.

type structureMessage struct {
	XMLName        xml.Name        `xml:"Structure"`
	Dataflows      []dataflowXML   `xml:"Structures>Dataflows>Dataflow"`
	DataStructures []dataStructXML `xml:"Structures>DataStructures>DataStructure"`
	Codelists      []codelistXML   `xml:"Structures>Codelists>Codelist"`
}

type nameXML struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

type dataflowXML struct {
	ID    string    `xml:"id,attr"`
	Names []nameXML `xml:"Name"`
}

type codelistXML struct {
	ID    string    `xml:"id,attr"`
	Codes []codeXML `xml:"Code"`
}

type codeXML struct {
	ID    string    `xml:"id,attr"`
	Names []nameXML `xml:"Name"`
}

type dataStructXML struct {
	ID         string         `xml:"id,attr"`
	Dimensions []dimensionXML `xml:"DataStructureComponents>DimensionList>Dimension"`
}

type dimensionXML struct {
	ID          string `xml:"id,attr"`
	Position    int    `xml:"position,attr"`
	Enumeration refXML `xml:"LocalRepresentation>Enumeration>Ref"`
}

type refXML struct {
	ID string `xml:"id,attr"`
}

type genericDataMessage struct {
	XMLName xml.Name    `xml:"GenericData"`
	Series  []seriesXML `xml:"DataSet>Series"`
}

type seriesXML struct {
	Key []keyValueXML `xml:"SeriesKey>Value"`
	Obs []obsXML      `xml:"Obs"`
}

type keyValueXML struct {
	ID    string `xml:"id,attr"`
	Value string `xml:"value,attr"`
}

type obsXML struct {
	Dimension keyValueXML  `xml:"ObsDimension"`
	Value     *obsValueXML `xml:"ObsValue"`
}

type obsValueXML struct {
	Value string `xml:"value,attr"`
}

func names(ns []nameXML) map[string]string {
	out := make(map[string]string, len(ns))
	for _, n := range ns {
		out[n.Lang] = n.Value
	}
	return out
}

func decodeDataflow(b []byte, id string) (*Dataflow, error) {
	var msg structureMessage
	if err := xml.Unmarshal(b, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode dataflow response: %w", err)
	}
	for _, df := range msg.Dataflows {
		if df.ID == id {
			return &Dataflow{ID: df.ID, Names: names(df.Names)}, nil
		}
	}
	return nil, fmt.Errorf("no dataflow %q in response", id)
}

func decodeDataStructure(b []byte, id, locale string) (*DataStructure, error) {
	var msg structureMessage
	if err := xml.Unmarshal(b, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode datastructure response: %w", err)
	}
	if len(msg.DataStructures) == 0 {
		return nil, fmt.Errorf("no data structure %q in response", id)
	}

	raw := msg.DataStructures[0]
	dsd := &DataStructure{
		ID:        raw.ID,
		Codelists: make(map[string]Codelist, len(msg.Codelists)),
	}

	for _, dim := range raw.Dimensions {
		if dim.ID == TimeDimension {
			continue
		}
		dsd.Dimensions = append(dsd.Dimensions, Dimension{
			ID:         dim.ID,
			Position:   dim.Position,
			CodelistID: dim.Enumeration.ID,
		})
	}
	sort.Slice(dsd.Dimensions, func(i, j int) bool {
		return dsd.Dimensions[i].Position < dsd.Dimensions[j].Position
	})

	for _, cl := range msg.Codelists {
		codes := make([]Code, 0, len(cl.Codes))
		for _, c := range cl.Codes {
			codes = append(codes, Code{ID: c.ID, Label: names(c.Names)[locale]})
		}
		dsd.Codelists[cl.ID] = Codelist{ID: cl.ID, Codes: codes}
	}

	return dsd, nil
}

func decodeSeries(b []byte) ([]Series, error) {
	var msg genericDataMessage
	if err := xml.Unmarshal(b, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode data response: %w", err)
	}

	series := make([]Series, 0, len(msg.Series))
	for _, s := range msg.Series {
		key := make(map[string]string, len(s.Key))
		for _, kv := range s.Key {
			key[kv.ID] = kv.Value
		}

		obs := make([]Observation, 0, len(s.Obs))
		for _, o := range s.Obs {
			out := Observation{Period: o.Dimension.Value}
			if o.Value == nil {
				out.Missing = true
			} else if v, err := strconv.ParseFloat(o.Value.Value, 64); err != nil {
				out.Missing = true
			} else {
				out.Value = v
			}
			obs = append(obs, out)
		}

		series = append(series, Series{Key: key, Obs: obs})
	}

	return series, nil
}
