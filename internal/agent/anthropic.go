package agent

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	apiVersion       = "2023-06-01"
	defaultMaxTokens = 4096
)

type anthropicProvider struct {
	client *http.Client
	url    string
	apiKey string
	model  string
}

// NewAnthropicProvider returns a Provider speaking the Anthropic Messages API.
func NewAnthropicProvider(url, apiKey, model string) Provider {
	return &anthropicProvider{
		client: &http.Client{},
		url:    strings.TrimRight(url, "/"),
		apiKey: apiKey,
		model:  model,
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
	Stream    bool      `json:"stream"`
}

// streamPayload is the union of the upstream SSE data objects we care about.
type streamPayload struct {
	Type  string `json:"type"`
	Index int    `json:"index"`

	ContentBlock struct {
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"content_block"`

	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`

	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *anthropicProvider) newRequest(ctx context.Context, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/v1/messages", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	return req, nil
}

// StreamReply opens a streaming Messages call and re-emits upstream events in
// production order. Tool invocations surface as tool_start when the block
// opens and tool_progress (with elapsed seconds) when it closes.
func (p *anthropicProvider) StreamReply(ctx context.Context, req *ReplyRequest, ch chan<- Event) error {
	defer close(ch)

	httpReq, err := p.newRequest(ctx, &messagesRequest{
		Model:     p.model,
		MaxTokens: defaultMaxTokens,
		System:    req.System,
		Messages:  req.Messages,
		Stream:    true,
	})
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	// Open tool blocks, keyed by content block index, for elapsed timing.
	toolStarts := map[int]struct {
		name  string
		start time.Time
	}{}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if !bytes.HasPrefix(line, []byte("data:")) {
			continue
		}
		data := bytes.TrimSpace(bytes.TrimPrefix(line, []byte("data:")))
		if len(data) == 0 {
			continue
		}

		var payload streamPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			if sendErr := send(ctx, ch, Event{Type: EventError, Err: "failed to decode stream chunk"}); sendErr != nil {
				return sendErr
			}
			continue
		}

		var ev Event
		switch payload.Type {
		case "content_block_start":
			if payload.ContentBlock.Type != "tool_use" {
				continue
			}
			toolStarts[payload.Index] = struct {
				name  string
				start time.Time
			}{payload.ContentBlock.Name, time.Now()}
			ev = Event{Type: EventToolStart, Tool: payload.ContentBlock.Name}
		case "content_block_delta":
			if payload.Delta.Type != "text_delta" {
				continue
			}
			ev = Event{Type: EventTextDelta, Text: payload.Delta.Text}
		case "content_block_stop":
			tool, ok := toolStarts[payload.Index]
			if !ok {
				continue
			}
			delete(toolStarts, payload.Index)
			ev = Event{Type: EventToolProgress, Tool: tool.name, Elapsed: time.Since(tool.start).Seconds()}
		case "message_stop":
			ev = Event{Type: EventDone}
		case "error":
			ev = Event{Type: EventError, Err: payload.Error.Message}
		default:
			continue
		}

		if err := send(ctx, ch, ev); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func send(ctx context.Context, ch chan<- Event, ev Event) error {
	select {
	case ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Analyze performs a single non-streamed completion.
func (p *anthropicProvider) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	httpReq, err := p.newRequest(ctx, &messagesRequest{
		Model:     p.model,
		MaxTokens: defaultMaxTokens,
		System:    req.System,
		Messages:  []Message{{Role: "user", Content: req.Prompt}},
		Stream:    false,
	})
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var msgResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	var sb strings.Builder
	for _, block := range msgResp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return &AnalyzeResponse{Text: sb.String()}, nil
}
