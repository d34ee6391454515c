package extractor

import (
	"fmt"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
	"github.com/tidwall/gjson"
)

type valueKind int

const (
	requiredValue valueKind = iota
	rateValue
)

type fieldMapping struct {
	channel string
	path    string
	unit    common.Unit
	kind    valueKind
}

func count(channel string, path string) fieldMapping {
	return fieldMapping{channel: channel, path: path, unit: common.Count, kind: requiredValue}
}

func size(channel string, path string, unit common.Unit) fieldMapping {
	return fieldMapping{channel: channel, path: path, unit: unit, kind: requiredValue}
}

func rate(channel string, path string, unit common.Unit) fieldMapping {
	return fieldMapping{channel: channel, path: path, unit: unit, kind: rateValue}
}

// overviewMappings lists the channels read from /api/overview, in output order
var overviewMappings = []fieldMapping{
	// queue_totals
	count("Total", "queue_totals.messages"),
	count("Ready", "queue_totals.messages_ready"),
	count("Unacked", "queue_totals.messages_unacknowledged"),

	// message_stats
	rate("Publish per Second", "message_stats.publish_details.rate", common.Custom),
	rate("Deliver per Second", "message_stats.deliver_details.rate", common.Custom),
	rate("Ack per Second", "message_stats.ack_details.rate", common.Custom),
	rate("Confirm per Second", "message_stats.confirm_details.rate", common.Custom),

	// object_totals
	count("Consumers", "object_totals.consumers"),
	count("Queues", "object_totals.queues"),
	count("Exchanges", "object_totals.exchanges"),
	count("Connections", "object_totals.connections"),
	count("Channels", "object_totals.channels"),
}

// nodeMappings lists the channels read from the matching /api/nodes element, appended after the overview ones
var nodeMappings = []fieldMapping{
	size("Used Memory", "mem_used", common.BytesMemory),
	size("Disk Free", "disk_free", common.BytesDisk),
	count("Used File Descriptors", "fd_used"),
	count("Used Socket Descriptors", "sockets_used"),
	count("Used Erlang Processes", "proc_used"),
	count("Memory Alarm", "mem_alarm"),
	count("Disk Free Alarm", "disk_free_alarm"),
	rate("Used Memory per Second", "mem_used_details.rate", common.BytesMemory),
	rate("GC per Second", "gc_num_details.rate", common.Count),
	rate("GC Bytes Reclaimed per Second", "gc_bytes_reclaimed_details.rate", common.BytesMemory),
	rate("I/O Reads per Second", "io_read_count_details.rate", common.Count),
	rate("I/O Writes per Second", "io_write_count_details.rate", common.Count),
	rate("I/O Syncs per Second", "io_sync_count_details.rate", common.Count),
	rate("I/O Seeks per Second", "io_seek_count_details.rate", common.Count),
	count("Reopened File Handle", "io_reopen_count"),
	rate("Reopened File Handle per Second", "io_reopen_count_details.rate", common.Count),
	rate("Opened File Handle per Second", "io_file_handle_open_attempt_count_details.rate", common.Count),
	count("I/O Read Time (ms)", "io_read_avg_time"),
	count("I/O Write Time (ms)", "io_write_avg_time"),
	count("I/O Sync Time (ms)", "io_sync_avg_time"),
	count("I/O Seek Time (ms)", "io_seek_avg_time"),
	count("File Handle Open Time (ms)", "io_file_handle_open_attempt_avg_time"),
}

// queueMappings lists the channels read from /api/queues/{vhost}/{name}, in output order
var queueMappings = []fieldMapping{
	count("Total", "messages"),
	count("Ready", "messages_ready"),
	count("Unacked", "messages_unacknowledged"),
	rate("Messages per Second", "messages_details.rate", common.Custom),
	rate("Publish per Second", "message_stats.publish_details.rate", common.Custom),
	rate("Ack per Second", "message_stats.ack_details.rate", common.Custom),
	count("Consumers", "consumers"),
	size("Used Memory", "memory", common.BytesMemory),
}

func applyMappings(doc gjson.Result, mappings []fieldMapping) ([]common.MetricRecord, error) {
	records := make([]common.MetricRecord, 0, len(mappings))
	for _, m := range mappings {
		record := common.MetricRecord{
			Channel: m.channel,
			Unit:    m.unit,
		}

		switch m.kind {
		case rateValue:
			record.Value = readRate(doc, m.path)
			record.Float = 1
		default:
			value, err := readRequired(doc, m.path)
			if err != nil {
				return nil, fmt.Errorf("%w for channel %s", err, m.channel)
			}
			record.Value = value
		}

		records = append(records, record)
	}

	return records, nil
}
