package eurostat

import (
	"context"

	"github.com/larray-project/larray-eurostat/sdmx"
)

//go:generate moq -out mock/sdmx-client.go -pkg mock . SdmxClient

// SdmxClient contains the required methods for the Eurostat SDMX client
type SdmxClient interface {
	GetDataflow(ctx context.Context, id string) (*sdmx.Dataflow, error)
	GetDataStructure(ctx context.Context, id string) (*sdmx.DataStructure, error)
	GetData(ctx context.Context, id string, dsd *sdmx.DataStructure, key sdmx.Key) ([]sdmx.Series, error)
}
