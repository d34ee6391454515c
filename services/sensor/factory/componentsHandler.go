package factory

import (
	"time"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/api"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/client"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/config"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/extractor"
)

type componentsHandler struct {
	fetcher   extractor.Fetcher
	extractor Extractor
	server    Server
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(cfg config.Config) (*componentsHandler, error) {
	fetcher, err := client.NewHTTPClient(client.ArgsHTTPClient{
		ServerAndPort: cfg.Broker.ServerAndPort,
		User:          cfg.Broker.User,
		Password:      cfg.Broker.Password,
		Timeout:       time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	ext, err := extractor.NewMetricExtractor(fetcher)
	if err != nil {
		return nil, err
	}

	server, err := api.NewServer(api.ArgsWebServer{
		ListenAddress: cfg.ListenAddress,
		Broker:        cfg.Broker,
		Extractor:     ext,
	})
	if err != nil {
		return nil, err
	}

	return &componentsHandler{
		fetcher:   fetcher,
		extractor: ext,
		server:    server,
	}, nil
}

// GetFetcher returns the management API client
func (ch *componentsHandler) GetFetcher() extractor.Fetcher {
	return ch.fetcher
}

// GetExtractor returns the extractor component
func (ch *componentsHandler) GetExtractor() Extractor {
	return ch.extractor
}

// GetServer returns the server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// Start starts the HTTP server. One-shot runs only use the extractor and never call Start.
func (ch *componentsHandler) Start() {
	ch.server.Start()
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	_ = ch.server.Close()
}
