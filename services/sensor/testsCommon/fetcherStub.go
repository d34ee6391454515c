package testsCommon

import "context"

// FetcherStub -
type FetcherStub struct {
	GetHandler func(ctx context.Context, resourcePath string) ([]byte, error)
}

// Get -
func (stub *FetcherStub) Get(ctx context.Context, resourcePath string) ([]byte, error) {
	if stub.GetHandler != nil {
		return stub.GetHandler(ctx, resourcePath)
	}

	return []byte("{}"), nil
}

// IsInterfaceNil -
func (stub *FetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
