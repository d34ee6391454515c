package api

import (
	"context"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
)

// Extractor defines the operations of the component that turns a request descriptor into PRTG channels
type Extractor interface {
	Extract(ctx context.Context, descriptor common.RequestDescriptor) (*common.MetricResponse, error)
	IsInterfaceNil() bool
}
