package factory

import (
	"context"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
)

// Extractor defines the sensor's extraction operation
type Extractor interface {
	Extract(ctx context.Context, descriptor common.RequestDescriptor) (*common.MetricResponse, error)
	IsInterfaceNil() bool
}

// Server defines the operation of an entity able to serve requests
type Server interface {
	Start()
	Address() string
	Close() error
}
