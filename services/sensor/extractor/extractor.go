package extractor

import (
	"context"
	"errors"
	"net/url"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/tidwall/gjson"
)

const (
	overviewPath = "overview"
	nodesPath    = "nodes"
	nodeField    = "node"
	nameField    = "name"
	pathSep      = "/"
)

var log = logger.GetOrCreate("extractor")

// metricExtractor fetches the management API documents and maps them into PRTG channels
type metricExtractor struct {
	fetcher Fetcher
}

// NewMetricExtractor creates a new extractor instance
func NewMetricExtractor(fetcher Fetcher) (*metricExtractor, error) {
	if check.IfNil(fetcher) {
		return nil, errors.New("nil fetcher")
	}

	return &metricExtractor{
		fetcher: fetcher,
	}, nil
}

// Extract performs the HTTP call(s) required by the descriptor's resource type and returns the ordered channels
func (e *metricExtractor) Extract(ctx context.Context, descriptor common.RequestDescriptor) (*common.MetricResponse, error) {
	resourceType, err := descriptor.ResourceType()
	if err != nil {
		return nil, err
	}

	var records []common.MetricRecord
	switch resourceType {
	case common.Overview:
		records, err = e.extractOverview(ctx)
	default:
		records, err = e.extractQueue(ctx, descriptor)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("metrics extracted", "type", resourceType, "channels", len(records))

	return &common.MetricResponse{
		Result: records,
	}, nil
}

func (e *metricExtractor) extractOverview(ctx context.Context) ([]common.MetricRecord, error) {
	overview, err := e.fetcher.Get(ctx, overviewPath)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(overview) {
		return nil, errInvalidJSON(overviewPath)
	}

	nodes, err := e.fetcher.Get(ctx, nodesPath)
	if err != nil {
		return nil, err
	}

	return MapOverview(overview, nodes)
}

func (e *metricExtractor) extractQueue(ctx context.Context, descriptor common.RequestDescriptor) ([]common.MetricRecord, error) {
	path := queuePath(descriptor)
	queue, err := e.fetcher.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	return MapQueue(queue)
}

// MapOverview maps the overview document and, when a node named as the overview's "node" field is present
// in the nodes array, that node's statistics
func MapOverview(overview []byte, nodes []byte) ([]common.MetricRecord, error) {
	if !gjson.ValidBytes(overview) {
		return nil, errInvalidJSON(overviewPath)
	}
	if !gjson.ValidBytes(nodes) {
		return nil, errInvalidJSON(nodesPath)
	}

	overviewDoc := gjson.ParseBytes(overview)
	records, err := applyMappings(overviewDoc, overviewMappings)
	if err != nil {
		return nil, err
	}

	nodeName := overviewDoc.Get(nodeField)
	node, found := findNode(gjson.ParseBytes(nodes), nodeName)
	if !found {
		log.Debug("node statistics omitted", "node", nodeName.String())
		return records, nil
	}

	nodeRecords, err := applyMappings(node, nodeMappings)
	if err != nil {
		return nil, err
	}

	return append(records, nodeRecords...), nil
}

// MapQueue maps a single queue document
func MapQueue(queue []byte) ([]common.MetricRecord, error) {
	if !gjson.ValidBytes(queue) {
		return nil, errInvalidJSON(string(common.Queues))
	}

	return applyMappings(gjson.ParseBytes(queue), queueMappings)
}

func findNode(nodes gjson.Result, nodeName gjson.Result) (gjson.Result, bool) {
	if nodeName.Type != gjson.String || !nodes.IsArray() {
		return gjson.Result{}, false
	}

	for _, node := range nodes.Array() {
		name := node.Get(nameField)
		if name.Type == gjson.String && name.Str == nodeName.Str {
			return node, true
		}
	}

	return gjson.Result{}, false
}

// queuePath appends the escaped host and name segments in order. A name without a host leaves an
// empty host segment (queues//name) which the management API rejects.
func queuePath(descriptor common.RequestDescriptor) string {
	path := string(common.Queues)
	if descriptor.Host == nil && descriptor.Name == nil {
		return path
	}

	host := ""
	if descriptor.Host != nil {
		host = url.PathEscape(*descriptor.Host)
	} else {
		log.Warn("queue name provided without a virtual host")
	}
	path += pathSep + host

	if descriptor.Name != nil {
		path += pathSep + url.PathEscape(*descriptor.Name)
	}

	return path
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *metricExtractor) IsInterfaceNil() bool {
	return e == nil
}
