package extractor

import (
	"fmt"

	"github.com/tidwall/gjson"
)

type errPathNotFound string

func (e errPathNotFound) Error() string {
	return "JSON path not found in response: " + string(e)
}

type errUnexpectedType struct {
	path     string
	jsonType gjson.Type
}

func (e *errUnexpectedType) Error() string {
	return fmt.Sprintf("unexpected JSON type at %s: %s", e.path, e.jsonType.String())
}

type errInvalidJSON string

func (e errInvalidJSON) Error() string {
	return "invalid JSON document received for " + string(e)
}
