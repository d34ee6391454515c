package extractor

import "context"

// Fetcher defines the operations of a component able to GET a management API resource
type Fetcher interface {
	// Get returns the body of the resource found at the path relative to the /api/ root.
	// Transport failures and non-2xx statuses are errors.
	Get(ctx context.Context, resourcePath string) ([]byte, error)

	IsInterfaceNil() bool
}
