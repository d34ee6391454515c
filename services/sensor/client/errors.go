package client

import (
	"fmt"
	"net/http"
)

type errStatusNotOK struct {
	path       string
	statusCode int
}

func (e *errStatusNotOK) Error() string {
	return fmt.Sprintf("non-2xx HTTP status code for %s: %d %s", e.path, e.statusCode, http.StatusText(e.statusCode))
}

type errEmptyParameter string

func (e errEmptyParameter) Error() string {
	return "empty parameter: " + string(e)
}
