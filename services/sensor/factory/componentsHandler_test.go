package factory

import (
	"fmt"
	"testing"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/config"
	"github.com/stretchr/testify/assert"
)

func createConfig() config.Config {
	return config.Config{
		Broker: config.BrokerConfig{
			ServerAndPort: "localhost:15672",
			User:          "guest",
			Password:      "guest",
		},
		RequestTimeoutInSeconds: 1,
		OutputFormat:            config.OutputJSON,
		ListenAddress:           "127.0.0.1:0",
	}
}

func TestNewComponentsHandler(t *testing.T) {
	t.Parallel()

	t.Run("empty broker address should error", func(t *testing.T) {
		cfg := createConfig()
		cfg.Broker.ServerAndPort = ""

		handler, err := NewComponentsHandler(cfg)

		assert.Nil(t, handler)
		assert.NotNil(t, err)
	})
	t.Run("should work", func(t *testing.T) {
		handler, err := NewComponentsHandler(createConfig())

		assert.NotNil(t, handler)
		assert.Nil(t, err)

		handler.Close()
	})
}

func TestComponentsHandlerMethods(t *testing.T) {
	t.Parallel()

	handler, _ := NewComponentsHandler(createConfig())

	handler.Start()

	fetcher := handler.GetFetcher()
	assert.Equal(t, "*client.httpClient", fmt.Sprintf("%T", fetcher))

	ext := handler.GetExtractor()
	assert.Equal(t, "*extractor.metricExtractor", fmt.Sprintf("%T", ext))

	serv := handler.GetServer()
	assert.Equal(t, "*api.server", fmt.Sprintf("%T", serv))
	assert.NotEqual(t, "127.0.0.1:0", serv.Address())

	handler.Close()
}
