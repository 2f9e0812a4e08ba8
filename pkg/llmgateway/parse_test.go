package llmgateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"multiline body", "```json\n{\n  \"a\": 1\n}\n```", "{\n  \"a\": 1\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFence(tt.in))
		})
	}
}

func TestParseJSONStripsFenceBeforeUnmarshal(t *testing.T) {
	var out struct {
		A int `json:"a"`
	}
	require.NoError(t, ParseJSON("```json\n{\"a\": 7}\n```", &out))
	assert.Equal(t, 7, out.A)
}

func TestParseJSONInvalidJSON(t *testing.T) {
	var out map[string]any
	err := ParseJSON("not json", &out)
	assert.Error(t, err)
}
