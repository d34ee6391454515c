package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestReadRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{name: "decimal", doc: `{"a":{"rate":1.5}}`, expected: "1.5"},
		{name: "scale is kept", doc: `{"a":{"rate":2.0}}`, expected: "2.0"},
		{name: "integer", doc: `{"a":{"rate":3}}`, expected: "3"},
		{name: "negative", doc: `{"a":{"rate":-0.25}}`, expected: "-0.25"},
		{name: "exponent", doc: `{"a":{"rate":1.5e-5}}`, expected: "0.000015"},
		{name: "upper exponent", doc: `{"a":{"rate":2E3}}`, expected: "2000"},
		{name: "missing field", doc: `{"a":{}}`, expected: "0"},
		{name: "missing parent", doc: `{}`, expected: "0"},
		{name: "parent is a scalar", doc: `{"a":5}`, expected: "0"},
		{name: "null", doc: `{"a":{"rate":null}}`, expected: "0"},
		{name: "string", doc: `{"a":{"rate":"1.5"}}`, expected: "0"},
		{name: "boolean", doc: `{"a":{"rate":true}}`, expected: "0"},
		{name: "object", doc: `{"a":{"rate":{}}}`, expected: "0"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, readRate(gjson.Parse(tc.doc), "a.rate"))
		})
	}
}

func TestReadRequired(t *testing.T) {
	t.Parallel()

	t.Run("values", func(t *testing.T) {
		t.Parallel()

		doc := gjson.Parse(`{"n":102400,"big":9876543210,"f":0.05,"t":true,"f2":false,"s":"abc","e":1e3}`)

		tests := map[string]string{
			"n":   "102400",
			"big": "9876543210",
			"f":   "0.05",
			"t":   "1",
			"f2":  "0",
			"s":   "abc",
			"e":   "1000",
		}
		for path, expected := range tests {
			value, err := readRequired(doc, path)
			assert.Nil(t, err, path)
			assert.Equal(t, expected, value, path)
		}
	})
	t.Run("missing should error", func(t *testing.T) {
		t.Parallel()

		value, err := readRequired(gjson.Parse(`{"a":{}}`), "a.b")

		assert.Empty(t, value)
		assert.Equal(t, errPathNotFound("a.b"), err)
	})
	t.Run("null should error", func(t *testing.T) {
		t.Parallel()

		value, err := readRequired(gjson.Parse(`{"a":null}`), "a")

		assert.Empty(t, value)
		assert.Equal(t, &errUnexpectedType{path: "a", jsonType: gjson.Null}, err)
		assert.Contains(t, err.Error(), "Null")
	})
	t.Run("object should error", func(t *testing.T) {
		t.Parallel()

		_, err := readRequired(gjson.Parse(`{"a":{"b":1}}`), "a")

		assert.Equal(t, &errUnexpectedType{path: "a", jsonType: gjson.JSON}, err)
	})
}
