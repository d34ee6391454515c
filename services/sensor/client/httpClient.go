package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
)

const apiPrefix = "/api/"

var log = logger.GetOrCreate("client")

// ArgsHTTPClient defines the arguments needed to create a management API client
type ArgsHTTPClient struct {
	ServerAndPort string
	User          string
	Password      string
	Timeout       time.Duration
}

type httpClient struct {
	baseURL  string
	user     string
	password string
	client   *http.Client
}

// NewHTTPClient creates a client for the broker management API. A zero timeout means no timeout.
func NewHTTPClient(args ArgsHTTPClient) (*httpClient, error) {
	if len(args.ServerAndPort) == 0 {
		return nil, errEmptyParameter("server and port")
	}

	return &httpClient{
		baseURL:  "http://" + strings.TrimSuffix(args.ServerAndPort, "/") + apiPrefix,
		user:     args.User,
		password: args.Password,
		client: &http.Client{
			Timeout: args.Timeout,
		},
	}, nil
}

// Get performs an authenticated GET on the resource path (relative to /api/) and returns the body
func (c *httpClient) Get(ctx context.Context, resourcePath string) ([]byte, error) {
	url := c.baseURL + resourcePath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", resourcePath, err)
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Accept", "application/json")

	log.Debug("requesting", "url", url)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &errStatusNotOK{
			path:       resourcePath,
			statusCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %s: %w", resourcePath, err)
	}

	log.Trace("response received", "path", resourcePath, "size", len(body))

	return body, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (c *httpClient) IsInterfaceNil() bool {
	return c == nil
}
