// Package eurostat retrieves statistical datasets from the Eurostat SDMX
// service and reshapes them into labeled multidimensional arrays.
package eurostat

import (
	"context"
	"fmt"
	"math"

	"github.com/ONSdigital/log.go/v2/log"

	"github.com/larray-project/larray-eurostat/config"
	"github.com/larray-project/larray-eurostat/frame"
	"github.com/larray-project/larray-eurostat/larray"
	"github.com/larray-project/larray-eurostat/sdmx"
)

// Service turns Eurostat SDMX variables into labeled arrays using an injected
// SDMX client. It holds no mutable state; every call allocates its own
// transient table and array.
type Service struct {
	cfg    config.Config
	client SdmxClient
}

// New creates a new Service using the provided SDMX client
func New(cfg config.Config, client SdmxClient) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// GetVariable retrieves a variable from the SDMX service. It returns the
// variable's title in the configured locale, the codelists of its data
// structure definition, and the data as a labeled array with one axis per
// dimension plus a trailing time axis. The key restricts which dimension
// values are retrieved; a nil or empty key retrieves everything. Any failure
// aborts the whole operation and is returned to the caller.
func (s *Service) GetVariable(ctx context.Context, varID string, key sdmx.Key) (string, map[string]sdmx.Codelist, *larray.Array, error) {
	logData := log.Data{"variable": varID, "key": key}
	log.Info(ctx, "retrieving eurostat variable", logData)

	dataflow, err := s.client.GetDataflow(ctx, varID)
	if err != nil {
		return "", nil, nil, &Error{
			err:     fmt.Errorf("failed to get dataflow: %w", err),
			logData: logData,
		}
	}

	title, err := dataflow.Name(s.cfg.EurostatLocale)
	if err != nil {
		return "", nil, nil, &Error{
			err:     fmt.Errorf("failed to get dataflow title: %w", err),
			logData: logData,
		}
	}

	dsd, err := s.client.GetDataStructure(ctx, "DSD_"+varID)
	if err != nil {
		return "", nil, nil, &Error{
			err:     fmt.Errorf("failed to get data structure definition: %w", err),
			logData: logData,
		}
	}

	series, err := s.client.GetData(ctx, varID, dsd, key)
	if err != nil {
		return "", nil, nil, &Error{
			err:     fmt.Errorf("failed to get data: %w", err),
			logData: logData,
		}
	}

	arr, err := seriesToArray(dsd, series)
	if err != nil {
		return "", nil, nil, &Error{
			err:     fmt.Errorf("failed to convert series to array: %w", err),
			logData: logData,
		}
	}

	log.Info(ctx, "eurostat variable retrieved", log.Data{
		"variable": varID,
		"title":    title,
		"axes":     arr.AxisNames(),
		"size":     arr.Size(),
	})

	return title, dsd.Codelists, arr, nil
}

// Describe returns a new array with the same shape as arr where each axis's
// coded labels are replaced by "code: description" strings. Per axis, the
// codelist keyed "CL_<axis name>" is tried first, then the bare axis name;
// if neither exists the axis passes through unchanged. Codes missing from a
// matched codelist keep the raw code as their label so the axis stays aligned
// with the data. Neither arr nor the codelists are modified.
func (s *Service) Describe(arr *larray.Array, codelists map[string]sdmx.Codelist) (*larray.Array, error) {
	axes := arr.Axes()
	described := make([]larray.Axis, 0, len(axes))

	for _, axis := range axes {
		cl, ok := codelists["CL_"+axis.Name]
		if !ok {
			cl, ok = codelists[axis.Name]
		}
		if !ok {
			described = append(described, axis)
			continue
		}

		labels := make([]string, len(axis.Labels))
		for i, code := range axis.Labels {
			if desc, found := cl.Label(code); found {
				labels[i] = fmt.Sprintf("%s: %s", code, desc)
			} else {
				labels[i] = code
			}
		}
		described = append(described, larray.NewAxis(axis.Name, labels))
	}

	out, err := arr.WithAxes(described)
	if err != nil {
		return nil, fmt.Errorf("failed to replace axes: %w", err)
	}
	return out, nil
}

// Get retrieves a variable as a labeled array, discarding its title and
// codelists. With describe set, the array's coded axis labels are replaced by
// their codelist descriptions first.
func (s *Service) Get(ctx context.Context, varID string, describe bool, key sdmx.Key) (*larray.Array, error) {
	_, codelists, arr, err := s.GetVariable(ctx, varID, key)
	if err != nil {
		return nil, err
	}
	if !describe {
		return arr, nil
	}
	return s.Describe(arr, codelists)
}

// seriesToArray builds the intermediate frame from the series collection
// (columns keyed by the DSD's dimensions, rows by time period), transposes it
// and converts it into a labeled array with sorted axis labels.
func seriesToArray(dsd *sdmx.DataStructure, series []sdmx.Series) (*larray.Array, error) {
	names := make([]string, 0, len(dsd.Dimensions))
	for _, dim := range dsd.Dimensions {
		names = append(names, dim.ID)
	}

	f := frame.New(names, sdmx.TimeDimension)
	for _, s := range series {
		columnKey := make([]string, len(names))
		for i, name := range names {
			value, ok := s.Key[name]
			if !ok {
				return nil, fmt.Errorf("series key is missing dimension %q", name)
			}
			columnKey[i] = value
		}
		for _, obs := range s.Obs {
			value := obs.Value
			if obs.Missing {
				value = math.NaN()
			}
			if err := f.Set(columnKey, obs.Period, value); err != nil {
				return nil, err
			}
		}
	}

	return larray.FromFrame(f.Transpose(), true)
}
