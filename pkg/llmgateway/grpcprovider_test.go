package llmgateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodecRoundTrip(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, "json", c.Name())

	in := wireRequest{Model: "m", System: "sys", MaxTokens: 10, Temperature: 0.1,
		Messages: []wireMessage{{Role: "user", Content: "hi"}}}
	data, err := c.Marshal(in)
	require.NoError(t, err)

	var out wireRequest
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestDialGRPCProviderIsLazy(t *testing.T) {
	// grpc.NewClient does not dial eagerly, so constructing a provider
	// against an address with nothing listening must still succeed;
	// only a subsequent Complete call would fail.
	p, err := DialGRPCProvider("127.0.0.1:0", "sidecar-model")
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "sidecar-model", p.Name())
}
