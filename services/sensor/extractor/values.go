package extractor

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const zeroValue = "0"

// readRequired renders a count or size field. Absence or a non-scalar value is an error.
func readRequired(doc gjson.Result, path string) (string, error) {
	result := doc.Get(path)
	if !result.Exists() {
		return "", errPathNotFound(path)
	}

	switch result.Type {
	case gjson.Number:
		return formatNumber(result), nil
	case gjson.True:
		return "1", nil
	case gjson.False:
		return "0", nil
	case gjson.String:
		return result.Str, nil
	default:
		return "", &errUnexpectedType{
			path:     path,
			jsonType: result.Type,
		}
	}
}

// readRate renders a decimal rate field, falling back to "0" when the field or one of its parents is
// missing or the value is not a JSON number
func readRate(doc gjson.Result, path string) string {
	result := doc.Get(path)
	if result.Type != gjson.Number {
		return zeroValue
	}

	return formatNumber(result)
}

// formatNumber keeps the number exactly as sent (so 2.0 stays 2.0) unless it uses an exponent
func formatNumber(result gjson.Result) string {
	raw := strings.TrimSpace(result.Raw)
	if len(raw) == 0 || strings.ContainsAny(raw, "eE") {
		return strconv.FormatFloat(result.Num, 'f', -1, 64)
	}

	return raw
}
