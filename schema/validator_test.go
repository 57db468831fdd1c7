package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "interval": {"type": "integer", "minimum": 1},
    "names": {"type": "array", "items": {"type": "string"}}
  }
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator("test.json", []byte(testSchema))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		doc      interface{}
		errorMsg string
	}{
		{name: "empty document", doc: map[string]interface{}{}},
		{name: "valid", doc: map[string]interface{}{"interval": 10, "names": []interface{}{"main"}}},
		{name: "int64 from TOML", doc: map[string]interface{}{"interval": int64(3)}},
		{name: "below minimum", doc: map[string]interface{}{"interval": 0}, errorMsg: "/interval"},
		{name: "wrong type", doc: map[string]interface{}{"names": "main"}, errorMsg: "/names"},
		{name: "unknown key", doc: map[string]interface{}{"intervall": 5}, errorMsg: "intervall"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.doc)
			if tc.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
			assert.Contains(t, err.Error(), tc.errorMsg)
		})
	}
}

func TestNewValidatorRejectsBadSchema(t *testing.T) {
	_, err := NewValidator("bad.json", []byte(`{"type": 12}`))
	assert.Error(t, err)

	_, err = NewValidator("broken.json", []byte(`{`))
	assert.Error(t, err)
}
