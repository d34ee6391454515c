package request

import (
	"fmt"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	minNumArguments = 4
	hostIndex       = 4
	nameIndex       = 5
)

var log = logger.GetOrCreate("request")

// NewRequestDescriptor builds the request descriptor out of the positional arguments:
// <server:port> <user> <password> <type> [<host>] [<name>]
// The resource type is not validated here, the extractor rejects unsupported types.
func NewRequestDescriptor(args []string) (common.RequestDescriptor, error) {
	if len(args) < minNumArguments {
		return common.RequestDescriptor{}, fmt.Errorf("%w: expected at least %d, got %d",
			common.ErrMissingArguments, minNumArguments, len(args))
	}

	descriptor := common.RequestDescriptor{
		ServerAndPort: args[0],
		User:          args[1],
		Password:      args[2],
		Type:          args[3],
	}
	if len(args) > hostIndex {
		host := args[hostIndex]
		descriptor.Host = &host
	}
	if len(args) > nameIndex {
		name := args[nameIndex]
		descriptor.Name = &name
	}

	if len(args) > nameIndex+1 {
		log.Warn("extra arguments ignored", "num", len(args)-nameIndex-1)
	}

	log.Debug("request descriptor built", "server", descriptor.ServerAndPort, "type", descriptor.Type,
		"has host", descriptor.Host != nil, "has name", descriptor.Name != nil)

	return descriptor, nil
}
