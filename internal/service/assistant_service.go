package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"sentryos/backend/internal/agent"
	app_errors "sentryos/backend/internal/errors"
	"sentryos/backend/internal/model"
	"sentryos/backend/internal/repository"
	"sentryos/backend/internal/telemetry"
)

// AssistantKind selects which demo assistant a stream belongs to.
type AssistantKind string

const (
	AssistantEmail AssistantKind = "email"
	AssistantCall  AssistantKind = "call"
)

const (
	emailSystemPrompt = "You are an email assistant inside the SentryOS demo. " +
		"Help the user draft, summarize and triage email. Be concise."
	callSystemPrompt = "You are a sales-call assistant inside the SentryOS demo. " +
		"Answer questions about recorded calls and help prepare follow-ups. Be concise."
)

// CreateMessageRequest is the body of a streaming reply request.
type CreateMessageRequest struct {
	Messages []model.ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// AssistantService relays upstream agent streams to callers and journals
// completed exchanges.
type AssistantService struct {
	provider agent.Provider
	journal  repository.Journal
	rec      telemetry.Recorder

	activeStreams atomic.Int64
}

func NewAssistantService(provider agent.Provider, journal repository.Journal, rec telemetry.Recorder) *AssistantService {
	return &AssistantService{provider: provider, journal: journal, rec: rec}
}

// ValidateMessages enforces the pre-flight contract: a non-empty turn list
// whose final turn is authored by the user. Called by the handler before the
// upstream call is opened, so malformed input never costs an upstream request.
func (s *AssistantService) ValidateMessages(req *CreateMessageRequest) error {
	if len(req.Messages) == 0 {
		return fmt.Errorf("%w: messages must not be empty", app_errors.ErrValidation)
	}
	if last := req.Messages[len(req.Messages)-1]; last.Role != "user" {
		return fmt.Errorf("%w: last message must be authored by the user", app_errors.ErrValidation)
	}
	return nil
}

// StreamMessage opens the upstream agent call and republishes its events onto
// streamChan in production order. Exactly one terminal event (done or error)
// is emitted per stream; the channel is closed afterwards. ctx is the request
// context, so a client disconnect cancels the upstream call.
func (s *AssistantService) StreamMessage(
	ctx context.Context,
	kind AssistantKind,
	req *CreateMessageRequest,
	streamChan chan<- model.StreamEvent,
) {
	defer close(streamChan)

	ctx, finish := s.rec.StartSpan(ctx, "assistant.stream", string(kind))
	defer finish()

	tags := map[string]string{"assistant": string(kind)}
	s.rec.Count("assistant.stream.requests", 1, tags)
	s.rec.Gauge("assistant.stream.active", float64(s.activeStreams.Add(1)), nil)
	defer func() {
		s.rec.Gauge("assistant.stream.active", float64(s.activeStreams.Add(-1)), nil)
	}()
	s.rec.Breadcrumb("assistant", "stream started", map[string]any{
		"assistant": string(kind),
		"turns":     len(req.Messages),
	})

	systemPrompt := emailSystemPrompt
	if kind == AssistantCall {
		systemPrompt = callSystemPrompt
	}
	agentReq := &agent.ReplyRequest{System: systemPrompt}
	for _, msg := range req.Messages {
		agentReq.Messages = append(agentReq.Messages, agent.Message{Role: msg.Role, Content: msg.Content})
	}

	started := time.Now()
	upstream := make(chan agent.Event)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.provider.StreamReply(ctx, agentReq, upstream)
	}()

	var fullReply strings.Builder
	terminalSent := false
	completed := false

	// Forward in upstream order; keep draining after a terminal event so the
	// provider goroutine can finish and close the channel.
	for ev := range upstream {
		if terminalSent {
			continue
		}
		out := toStreamEvent(ev)
		streamChan <- out
		if out.Type == model.EventTextDelta {
			fullReply.WriteString(out.Text)
		}
		if out.Terminal() {
			terminalSent = true
			completed = out.Type == model.EventDone
			if out.Type == model.EventError {
				s.rec.Count("assistant.stream.errors", 1, tags)
				s.rec.CaptureError(fmt.Errorf("%w: %s", app_errors.ErrUpstream, out.Message), tags)
			}
		}
	}

	err := <-errCh
	if !terminalSent {
		if err != nil {
			s.rec.Count("assistant.stream.errors", 1, tags)
			s.rec.CaptureError(fmt.Errorf("%w: %v", app_errors.ErrUpstream, err), tags)
			streamChan <- model.StreamEvent{Type: model.EventError, Message: "upstream agent failure"}
			return
		}
		// Upstream ended cleanly without an explicit stop event.
		streamChan <- model.StreamEvent{Type: model.EventDone}
		completed = true
	} else if err != nil {
		// Terminal already on the wire; transport error is telemetry-only.
		s.rec.CaptureError(fmt.Errorf("%w: %v", app_errors.ErrUpstream, err), tags)
	}

	s.rec.Distribution("assistant.stream.duration_seconds", time.Since(started).Seconds(), tags)

	if reply := fullReply.String(); completed && reply != "" {
		go s.journalExchange(kind, req.Messages[len(req.Messages)-1].Content, reply)
	}
}

// journalExchange records a completed exchange. Fire-and-forget: failures are
// reported to telemetry and otherwise dropped.
func (s *AssistantService) journalExchange(kind AssistantKind, prompt, reply string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exchange := &model.Exchange{
		ID:        uuid.NewString(),
		Assistant: string(kind),
		Prompt:    prompt,
		Reply:     reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.journal.RecordExchange(ctx, exchange); err != nil {
		s.rec.Log(slog.LevelWarn, "Failed to journal exchange", "assistant", kind, "error", err)
		s.rec.CaptureError(fmt.Errorf("journal exchange: %w", err), map[string]string{"assistant": string(kind)})
	}
}

// RecentExchanges lists the newest journaled exchanges, bounded by limit.
func (s *AssistantService) RecentExchanges(ctx context.Context, limit int) ([]model.Exchange, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	exchanges, err := s.journal.RecentExchanges(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list exchanges: %w", err)
	}
	return exchanges, nil
}

func toStreamEvent(ev agent.Event) model.StreamEvent {
	switch ev.Type {
	case agent.EventTextDelta:
		return model.StreamEvent{Type: model.EventTextDelta, Text: ev.Text}
	case agent.EventToolStart:
		return model.StreamEvent{Type: model.EventToolStart, Tool: ev.Tool}
	case agent.EventToolProgress:
		return model.StreamEvent{Type: model.EventToolProgress, Tool: ev.Tool, Elapsed: &ev.Elapsed}
	case agent.EventDone:
		return model.StreamEvent{Type: model.EventDone}
	case agent.EventError:
		return model.StreamEvent{Type: model.EventError, Message: ev.Err}
	default:
		return model.StreamEvent{Type: ev.Type}
	}
}
