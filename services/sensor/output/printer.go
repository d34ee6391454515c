package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/config"
	"github.com/olekukonko/tablewriter"
)

const indent = "  "

// Print writes the response in the requested format
func Print(w io.Writer, format string, response *common.MetricResponse) error {
	switch format {
	case config.OutputJSON:
		return PrintJSON(w, response)
	case config.OutputTable:
		return PrintTable(w, response)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// PrintJSON writes the PRTG envelope, indented, followed by a new line
func PrintJSON(w io.Writer, response *common.MetricResponse) error {
	envelope := common.MetricResponse{
		Result: make([]common.MetricRecord, 0),
	}
	if response != nil && response.Result != nil {
		envelope.Result = response.Result
	}

	buff, err := json.MarshalIndent(envelope, "", indent)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	_, err = fmt.Fprintln(w, string(buff))
	return err
}

// PrintTable writes the channels as a table, keeping the channel order
func PrintTable(w io.Writer, response *common.MetricResponse) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Channel", "Value", "Unit"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	if response != nil {
		for _, record := range response.Result {
			table.Append([]string{record.Channel, displayValue(record), record.Unit.String()})
		}
	}

	table.Render()
	return nil
}

func displayValue(record common.MetricRecord) string {
	if !record.Unit.IsBytes() || record.IsFloatingPoint() {
		return record.Value
	}

	bytes, err := strconv.ParseUint(record.Value, 10, 64)
	if err != nil {
		return record.Value
	}

	return fmt.Sprintf("%s (%s)", record.Value, humanize.IBytes(bytes))
}
