package agent

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/skillforge/skillforge/proto"
)

// GRPCLLMClient implements LLMClient by calling the LLM inference service
// over gRPC.
type GRPCLLMClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCLLMClient creates a new gRPC LLM client.
// grpc.NewClient dials lazily; the actual connection happens on first RPC.
func NewGRPCLLMClient(addr string) (*GRPCLLMClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCLLMClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Generate sends a conversation to the LLM and returns a channel of chunks.
func (c *GRPCLLMClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	stream, err := c.client.Generate(ctx, toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoChunk(resp)
			if chunk == nil {
				continue
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCLLMClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(input *GenerateInput) *llmv1.GenerateRequest {
	req := &llmv1.GenerateRequest{
		SessionId: input.SessionID,
	}
	for _, m := range input.Messages {
		req.Messages = append(req.Messages, &llmv1.ConversationMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	if input.Config != nil {
		req.Config = &llmv1.LLMConfig{
			Model:       input.Config.Model,
			Temperature: input.Config.Temperature,
			MaxTokens:   input.Config.MaxTokens,
		}
	}
	return req
}

func fromProtoChunk(resp *llmv1.GenerateChunk) Chunk {
	switch x := resp.Chunk.(type) {
	case *llmv1.GenerateChunk_Text:
		return &TextChunk{Content: x.Text.Content}
	case *llmv1.GenerateChunk_Thinking:
		return &ThinkingChunk{Content: x.Thinking.Content}
	case *llmv1.GenerateChunk_Usage:
		return &UsageChunk{
			InputTokens:  x.Usage.InputTokens,
			OutputTokens: x.Usage.OutputTokens,
			TotalTokens:  x.Usage.TotalTokens,
		}
	case *llmv1.GenerateChunk_Error:
		return &ErrorChunk{
			Message:   x.Error.Message,
			Code:      x.Error.Code,
			Retryable: x.Error.Retryable,
		}
	default:
		return nil
	}
}
