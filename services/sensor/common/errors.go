package common

import (
	"errors"
	"fmt"
)

// ErrMissingArguments signals that fewer than the required positional arguments were provided
var ErrMissingArguments = errors.New("missing required arguments")

// ErrUnsupportedResourceType signals a resource type other than overview or queues
var ErrUnsupportedResourceType = errors.New("unsupported resource type")

// UnsupportedTypeError carries the offending resource type
type UnsupportedTypeError struct {
	Type string
}

// Error returns the string representation of the error
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedResourceType.Error(), e.Type)
}

// Unwrap makes errors.Is(err, ErrUnsupportedResourceType) work
func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedResourceType
}
