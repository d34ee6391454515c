package common

import "strings"

// ResourceType selects which management API resource a request targets
type ResourceType string

const (
	// Overview is the broker-wide overview resource, enriched with the addressed node's statistics
	Overview ResourceType = "overview"
	// Queues is a single queue resource
	Queues ResourceType = "queues"
)

// RequestDescriptor holds everything parsed from the invocation arguments
type RequestDescriptor struct {
	ServerAndPort string
	User          string
	Password      string
	Type          string
	Host          *string
	Name          *string
}

// ResourceType returns the matched resource type. The match is case-insensitive.
func (rd RequestDescriptor) ResourceType() (ResourceType, error) {
	switch ResourceType(strings.ToLower(rd.Type)) {
	case Overview:
		return Overview, nil
	case Queues:
		return Queues, nil
	default:
		return "", &UnsupportedTypeError{Type: rd.Type}
	}
}

// MetricRecord is a single PRTG channel result
type MetricRecord struct {
	Channel string `json:"channel"`
	Value   string `json:"value"`
	Unit    Unit   `json:"unit"`
	Float   int    `json:"Float,omitempty"`
}

// IsFloatingPoint returns true if the value should be read as a decimal rate
func (mr MetricRecord) IsFloatingPoint() bool {
	return mr.Float == 1
}

// MetricResponse is the envelope printed for the monitoring host
type MetricResponse struct {
	Result []MetricRecord `json:"result"`
}
