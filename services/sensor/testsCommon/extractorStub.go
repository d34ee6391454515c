package testsCommon

import (
	"context"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
)

// ExtractorStub -
type ExtractorStub struct {
	ExtractHandler func(ctx context.Context, descriptor common.RequestDescriptor) (*common.MetricResponse, error)
}

// Extract -
func (stub *ExtractorStub) Extract(ctx context.Context, descriptor common.RequestDescriptor) (*common.MetricResponse, error) {
	if stub.ExtractHandler != nil {
		return stub.ExtractHandler(ctx, descriptor)
	}

	return &common.MetricResponse{}, nil
}

// IsInterfaceNil -
func (stub *ExtractorStub) IsInterfaceNil() bool {
	return stub == nil
}
