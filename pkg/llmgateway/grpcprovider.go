package llmgateway

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
)

// jsonCodecName is registered with grpc's encoding package so the
// generation sidecar can be addressed without hand-maintained
// protobuf-generated stubs (see DESIGN.md for why). It still rides the
// real grpc transport: connection pooling, deadlines, and retries are
// grpc's, only the wire encoding is JSON instead of protobuf.
const jsonCodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return jsonCodecName }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// wireMessage and wireReply mirror Request/Response (see types.go) in a
// shape suitable for JSON transport over the generation sidecar's
// Complete RPC.
type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireRequest struct {
	Model       string        `json:"model"`
	System      string        `json:"system"`
	Messages    []wireMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
}

type wireReply struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// completeMethod is the fully-qualified RPC the generation sidecar
// exposes, per spec.md §6's "LLM provider interface".
const completeMethod = "/llmgateway.Generation/Complete"

// GRPCProvider is a Provider backed by a gRPC connection to an external
// generation sidecar (mirrors the teacher's pkg/llm.Client wrapping a
// *grpc.ClientConn, minus the thinking-stream RPC this pipeline never
// needs).
type GRPCProvider struct {
	name string
	conn *grpc.ClientConn
}

// DialGRPCProvider opens an insecure gRPC connection to addr and names
// the resulting Provider model (the gateway selects between a primary
// and fallback GRPCProvider dialed against possibly-distinct sidecar
// addresses).
func DialGRPCProvider(addr, model string) (*GRPCProvider, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsonCodecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("llmgateway: dial %s: %w", addr, err)
	}
	return &GRPCProvider{name: model, conn: conn}, nil
}

// Close releases the underlying gRPC connection.
func (p *GRPCProvider) Close() error {
	return p.conn.Close()
}

// Name implements Provider.
func (p *GRPCProvider) Name() string { return p.name }

// Complete implements Provider by invoking the sidecar's Complete RPC.
// It does not retry internally; the Gateway owns retry policy.
func (p *GRPCProvider) Complete(ctx context.Context, req Request) (Response, error) {
	wireMsgs := make([]wireMessage, len(req.Messages))
	for i, m := range req.Messages {
		wireMsgs[i] = wireMessage{Role: string(m.Role), Content: m.Content}
	}

	wreq := &wireRequest{
		Model:       p.name,
		System:      req.System,
		Messages:    wireMsgs,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	var wresp wireReply

	if err := p.conn.Invoke(ctx, completeMethod, wreq, &wresp); err != nil {
		return Response{}, fmt.Errorf("llmgateway: grpc invoke %s: %w", p.name, err)
	}

	model := wresp.Model
	if model == "" {
		model = p.name
	}
	return Response{Text: wresp.Text, Model: model}, nil
}
