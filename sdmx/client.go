package sdmx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/larray-project/larray-eurostat/config"
)

const service = "eurostat-sdmx-api"

// MsgHealthy is the message assigned to the health check state when the SDMX
// endpoint responds correctly.
const MsgHealthy = "eurostat sdmx api is healthy"

// Client accesses the Eurostat SDMX 2.1 dissemination API. All requests are
// synchronous and issued one at a time; failures are returned to the caller
// unchanged, with no retries.
type Client struct {
	cli       dphttp.Clienter
	baseURL   string
	agencyID  string
	locale    string
	userAgent string
}

// NewClient creates a new Client for the endpoint configured in cfg.
func NewClient(cfg config.Config) *Client {
	return NewClientWithClienter(cfg, dphttp.NewClient())
}

// NewClientWithClienter creates a new Client using the provided Clienter.
func NewClientWithClienter(cfg config.Config, cli dphttp.Clienter) *Client {
	return &Client{
		cli:       cli,
		baseURL:   cfg.EurostatSdmxURL,
		agencyID:  cfg.EurostatAgencyID,
		locale:    cfg.EurostatLocale,
		userAgent: cfg.UserAgent,
	}
}

// GetDataflow retrieves the dataflow descriptor for the given dataset id.
func (c *Client) GetDataflow(ctx context.Context, id string) (*Dataflow, error) {
	b, err := c.get(ctx, fmt.Sprintf("/dataflow/%s/%s", c.agencyID, id))
	if err != nil {
		return nil, err
	}
	return decodeDataflow(b, id)
}

// GetDataStructure retrieves a data structure definition together with its
// codelists.
func (c *Client) GetDataStructure(ctx context.Context, id string) (*DataStructure, error) {
	b, err := c.get(ctx, fmt.Sprintf("/datastructure/%s/%s?references=children", c.agencyID, id))
	if err != nil {
		return nil, err
	}
	return decodeDataStructure(b, id, c.locale)
}

// GetData retrieves the data series for the given dataset id, restricted by
// key. The key is validated against the provided data structure definition
// before the request is issued: unknown dimensions or codes are an error.
func (c *Client) GetData(ctx context.Context, id string, dsd *DataStructure, key Key) ([]Series, error) {
	keyPath, err := dataKeyPath(dsd, key)
	if err != nil {
		return nil, err
	}
	b, err := c.get(ctx, fmt.Sprintf("/data/%s/%s", id, keyPath))
	if err != nil {
		return nil, err
	}
	return decodeSeries(b)
}

// Checker performs a check against the SDMX endpoint and updates the provided
// CheckState accordingly.
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	_, err := c.get(ctx, fmt.Sprintf("/codelist/%s/CL_FREQ", c.agencyID))
	if err != nil {
		code := 0
		if e, ok := err.(*ErrInvalidSdmxResponse); ok {
			code = e.Code()
		}
		if stateErr := state.Update(healthcheck.StatusCritical, err.Error(), code); stateErr != nil {
			log.Error(ctx, "failed to update check state", stateErr, log.Data{"service": service})
		}
		return nil
	}

	if stateErr := state.Update(healthcheck.StatusOK, MsgHealthy, http.StatusOK); stateErr != nil {
		log.Error(ctx, "failed to update check state", stateErr, log.Data{"service": service})
	}
	return nil
}

// dataKeyPath builds the dotted key path of a data request from the key,
// ordering the slots by the DSD's dimension positions. Dimensions absent from
// the key are left empty (wildcard).
func dataKeyPath(dsd *DataStructure, key Key) (string, error) {
	for name := range key {
		if !hasDimension(dsd, name) {
			return "", fmt.Errorf("%q is not a dimension of data structure %q", name, dsd.ID)
		}
	}

	parts := make([]string, 0, len(dsd.Dimensions))
	for _, dim := range dsd.Dimensions {
		value := key[dim.ID]
		if value != "" {
			if cl, ok := dsd.Codelist(dim); ok {
				for _, code := range strings.Split(value, "+") {
					if !cl.Has(code) {
						return "", fmt.Errorf("%q is not a valid code for dimension %q", code, dim.ID)
					}
				}
			}
		}
		parts = append(parts, value)
	}
	return strings.Join(parts, "."), nil
}

func hasDimension(dsd *DataStructure, name string) bool {
	for _, dim := range dsd.Dimensions {
		if dim.ID == name {
			return true
		}
	}
	return false
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	uri := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.cli.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to call eurostat sdmx api: %w", err)
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrInvalidSdmxResponse{actualCode: resp.StatusCode, uri: uri}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return b, nil
}

// closeResponseBody closes the response body and logs an error if unsuccessful
func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body == nil {
		return
	}
	if err := resp.Body.Close(); err != nil {
		log.Error(ctx, "error closing http response body", err, log.Data{"service": service})
	}
}
