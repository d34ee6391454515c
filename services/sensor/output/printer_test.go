package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createResponse() *common.MetricResponse {
	return &common.MetricResponse{
		Result: []common.MetricRecord{
			{Channel: "Total", Value: "10", Unit: common.Count},
			{Channel: "Publish per Second", Value: "2.0", Unit: common.Custom, Float: 1},
			{Channel: "Used Memory", Value: "102400", Unit: common.BytesMemory},
		},
	}
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	t.Run("envelope", func(t *testing.T) {
		t.Parallel()

		buff := bytes.NewBuffer(nil)
		err := PrintJSON(buff, createResponse())
		require.Nil(t, err)

		expected := `{
  "result": [
    {
      "channel": "Total",
      "value": "10",
      "unit": "Count"
    },
    {
      "channel": "Publish per Second",
      "value": "2.0",
      "unit": "Custom",
      "Float": 1
    },
    {
      "channel": "Used Memory",
      "value": "102400",
      "unit": "BytesMemory"
    }
  ]
}
`
		assert.Equal(t, expected, buff.String())
	})
	t.Run("empty response prints an empty array", func(t *testing.T) {
		t.Parallel()

		buff := bytes.NewBuffer(nil)
		err := PrintJSON(buff, nil)
		require.Nil(t, err)
		assert.Equal(t, "{\n  \"result\": []\n}\n", buff.String())

		buff.Reset()
		err = PrintJSON(buff, &common.MetricResponse{})
		require.Nil(t, err)
		assert.Equal(t, "{\n  \"result\": []\n}\n", buff.String())
	})
	t.Run("unknown unit should error", func(t *testing.T) {
		t.Parallel()

		buff := bytes.NewBuffer(nil)
		err := PrintJSON(buff, &common.MetricResponse{
			Result: []common.MetricRecord{{Channel: "x", Value: "1", Unit: common.Unit(100)}},
		})

		assert.NotNil(t, err)
		assert.Empty(t, buff.String())
	})
}

func TestPrintTable(t *testing.T) {
	t.Parallel()

	buff := bytes.NewBuffer(nil)
	err := PrintTable(buff, createResponse())
	require.Nil(t, err)

	out := buff.String()
	assert.Contains(t, out, "102400 (100 KiB)")
	assert.Contains(t, out, "BytesMemory")
	assert.Contains(t, out, "2.0")

	totalIndex := strings.Index(out, "Total")
	publishIndex := strings.Index(out, "Publish per Second")
	memoryIndex := strings.Index(out, "Used Memory")
	assert.True(t, totalIndex > 0)
	assert.True(t, totalIndex < publishIndex)
	assert.True(t, publishIndex < memoryIndex)
}

func TestDisplayValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "9876543210 (9.2 GiB)", displayValue(common.MetricRecord{Value: "9876543210", Unit: common.BytesDisk}))
	assert.Equal(t, "12.5", displayValue(common.MetricRecord{Value: "12.5", Unit: common.BytesMemory, Float: 1}))
	assert.Equal(t, "abc", displayValue(common.MetricRecord{Value: "abc", Unit: common.BytesMemory}))
	assert.Equal(t, "42", displayValue(common.MetricRecord{Value: "42", Unit: common.Count}))
}

func TestPrint(t *testing.T) {
	t.Parallel()

	buff := bytes.NewBuffer(nil)
	assert.Nil(t, Print(buff, config.OutputJSON, createResponse()))
	assert.True(t, strings.HasPrefix(buff.String(), "{\n"))

	buff.Reset()
	assert.Nil(t, Print(buff, config.OutputTable, createResponse()))
	assert.Contains(t, buff.String(), "Used Memory")

	buff.Reset()
	err := Print(buff, "yaml", createResponse())
	assert.Contains(t, err.Error(), `"yaml"`)
	assert.Empty(t, buff.String())
}
