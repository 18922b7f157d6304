package e2e

import (
	"context"
	"fmt"
	"sync"

	"github.com/skillforge/skillforge/pkg/agent"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one must be set)
	Chunks []agent.Chunk // Pre-built chunks to return
	Text   string        // Shorthand: auto-wrapped as TextChunk + UsageChunk
	Error  error         // Return error from Generate()

	// Test control
	BlockUntilCancelled bool            // Block Generate() until ctx is cancelled
	WaitCh              <-chan struct{} // Block Generate() until closed, then return normal response
	OnBlock             chan<- struct{} // Notified when Generate() enters its blocking path
}

// ScriptedLLMClient implements agent.LLMClient by replaying a fixed script of
// responses in call order. Each generation round drives a single agent, so
// sequential consumption is enough.
type ScriptedLLMClient struct {
	mu             sync.Mutex
	entries        []LLMScriptEntry
	index          int
	capturedInputs []*agent.GenerateInput
}

// NewScriptedLLMClient creates a new ScriptedLLMClient.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// Add appends an entry to the script; entries are consumed in call order.
func (c *ScriptedLLMClient) Add(entry LLMScriptEntry) {
	c.entries = append(c.entries, entry)
}

// AddText appends a plain-text response to the script.
func (c *ScriptedLLMClient) AddText(text string) {
	c.Add(LLMScriptEntry{Text: text})
}

// Generate implements agent.LLMClient.
func (c *ScriptedLLMClient) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	c.mu.Lock()
	c.capturedInputs = append(c.capturedInputs, input)

	if c.index >= len(c.entries) {
		idx := c.index
		c.mu.Unlock()
		return nil, fmt.Errorf("ScriptedLLMClient: no more entries (call %d, script has %d)", idx+1, len(c.entries))
	}
	entry := &c.entries[c.index]
	c.index++
	c.mu.Unlock()

	// Handle BlockUntilCancelled: wait for context cancellation.
	if entry.BlockUntilCancelled {
		ch := make(chan agent.Chunk)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		return ch, nil
	}

	// Handle WaitCh: block until released, then continue with normal response.
	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
			// Released — fall through to send chunks normally
		case <-ctx.Done():
			ch := make(chan agent.Chunk)
			close(ch)
			return ch, nil
		}
	}

	// Handle error entries.
	if entry.Error != nil {
		return nil, entry.Error
	}

	// Build chunks from entry.
	chunks := entry.Chunks
	if len(chunks) == 0 && entry.Text != "" {
		chunks = []agent.Chunk{
			&agent.TextChunk{Content: entry.Text},
			&agent.UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		}
	}

	ch := make(chan agent.Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

// Close implements agent.LLMClient.
func (c *ScriptedLLMClient) Close() error { return nil }

// CallCount returns the total number of Generate() calls made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.capturedInputs)
}

// CapturedInput returns the input of the i-th Generate() call.
func (c *ScriptedLLMClient) CapturedInput(i int) *agent.GenerateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capturedInputs[i]
}
