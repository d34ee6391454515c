package testsCommon

// OverviewJSON is a trimmed /api/overview response addressed through node rabbit@host1
const OverviewJSON = `{
	"management_version": "3.12.4",
	"rabbitmq_version": "3.12.4",
	"cluster_name": "rabbit@host1",
	"node": "rabbit@host1",
	"message_stats": {
		"publish": 1200,
		"publish_details": {"rate": 12.4},
		"deliver": 1100,
		"deliver_details": {"rate": 11.0},
		"ack": 1000,
		"ack_details": {"rate": 10.25},
		"confirm": 1200,
		"confirm_details": {"rate": 0.0}
	},
	"queue_totals": {
		"messages": 150,
		"messages_details": {"rate": 0.2},
		"messages_ready": 120,
		"messages_unacknowledged": 30
	},
	"object_totals": {
		"channels": 8,
		"connections": 4,
		"consumers": 6,
		"exchanges": 14,
		"queues": 5
	}
}`

// NodesJSON is a /api/nodes response of a two node cluster
const NodesJSON = `[
	{
		"name": "rabbit@host2",
		"mem_used": 1,
		"disk_free": 1,
		"fd_used": 1,
		"sockets_used": 1,
		"proc_used": 1,
		"mem_alarm": true,
		"disk_free_alarm": true,
		"io_reopen_count": 1,
		"io_read_avg_time": 1,
		"io_write_avg_time": 1,
		"io_sync_avg_time": 1,
		"io_seek_avg_time": 1,
		"io_file_handle_open_attempt_avg_time": 1
	},
	{
		"name": "rabbit@host1",
		"running": true,
		"mem_used": 123456789,
		"mem_used_details": {"rate": 12.5},
		"disk_free": 9876543210,
		"fd_used": 42,
		"sockets_used": 3,
		"proc_used": 400,
		"mem_alarm": false,
		"disk_free_alarm": true,
		"gc_num_details": {"rate": 300.2},
		"gc_bytes_reclaimed_details": {"rate": 1024.0},
		"io_read_count_details": {"rate": 0.0},
		"io_write_count_details": {"rate": 1.2},
		"io_sync_count_details": {"rate": 0.4},
		"io_seek_count_details": {"rate": 0.1},
		"io_reopen_count": 0,
		"io_reopen_count_details": {"rate": 0.0},
		"io_file_handle_open_attempt_count_details": {"rate": 2.6},
		"io_read_avg_time": 0.05,
		"io_write_avg_time": 0.12,
		"io_sync_avg_time": 1.8,
		"io_seek_avg_time": 0.03,
		"io_file_handle_open_attempt_avg_time": 0.01
	}
]`

// QueueJSON is a /api/queues/{vhost}/{name} response
const QueueJSON = `{
	"messages": 10,
	"messages_ready": 7,
	"messages_unacknowledged": 3,
	"messages_details": {"rate": 1.5},
	"message_stats": {
		"publish_details": {"rate": 2.0},
		"ack_details": {"rate": 1.0}
	},
	"consumers": 2,
	"memory": 102400
}`
