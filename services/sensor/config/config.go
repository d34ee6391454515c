package config

import (
	"errors"
	"fmt"
)

const (
	// OutputJSON prints the PRTG JSON envelope
	OutputJSON = "json"
	// OutputTable prints a human readable table
	OutputTable = "table"
)

// BrokerConfig defines how the management API is reached
type BrokerConfig struct {
	ServerAndPort string
	User          string
	Password      string
}

// Config holds the runtime options collected from the command line. There is no configuration file.
type Config struct {
	Broker                  BrokerConfig
	RequestTimeoutInSeconds uint32
	OutputFormat            string
	ListenAddress           string
}

// Validate checks the options that can not be left to the broker to reject
func (cfg Config) Validate() error {
	if len(cfg.Broker.ServerAndPort) == 0 {
		return errors.New("empty broker server and port")
	}
	if len(cfg.Broker.User) == 0 {
		return errors.New("empty broker user")
	}

	switch cfg.OutputFormat {
	case OutputJSON, OutputTable:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", cfg.OutputFormat)
	}
}
