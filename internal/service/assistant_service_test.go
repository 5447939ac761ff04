package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sentryos/backend/internal/agent"
	mock_agent "sentryos/backend/internal/agent/mocks"
	"sentryos/backend/internal/model"
	mock_repo "sentryos/backend/internal/repository/mocks"
	"sentryos/backend/internal/service"
	"sentryos/backend/internal/telemetry"
)

type assistantMocks struct {
	provider *mock_agent.MockProvider
	journal  *mock_repo.MockJournal
}

func setupAssistantService(t *testing.T) (*service.AssistantService, assistantMocks) {
	mocks := assistantMocks{
		provider: mock_agent.NewMockProvider(t),
		journal:  mock_repo.NewMockJournal(t),
	}
	svc := service.NewAssistantService(mocks.provider, mocks.journal, telemetry.Noop())
	return svc, mocks
}

// drainStream collects every event until the service closes the channel.
func drainStream(ch <-chan model.StreamEvent) []model.StreamEvent {
	var events []model.StreamEvent
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func userRequest(content string) *service.CreateMessageRequest {
	return &service.CreateMessageRequest{
		Messages: []model.ChatMessage{{Role: "user", Content: content}},
	}
}

func TestAssistantService_ValidateMessages(t *testing.T) {
	svc, _ := setupAssistantService(t)

	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, svc.ValidateMessages(userRequest("hello")))
	})

	t.Run("Failure - empty messages", func(t *testing.T) {
		err := svc.ValidateMessages(&service.CreateMessageRequest{})
		assert.Error(t, err)
		assert.ErrorContains(t, err, "messages must not be empty")
	})

	t.Run("Failure - last turn not authored by the user", func(t *testing.T) {
		err := svc.ValidateMessages(&service.CreateMessageRequest{
			Messages: []model.ChatMessage{
				{Role: "user", Content: "hi"},
				{Role: "assistant", Content: "hello!"},
			},
		})
		assert.Error(t, err)
		assert.ErrorContains(t, err, "last message must be authored by the user")
	})
}

func TestAssistantService_StreamMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - happy path relays deltas and journals the exchange", func(t *testing.T) {
		svc, mocks := setupAssistantService(t)

		mocks.provider.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- agent.Event)
				ch <- agent.Event{Type: agent.EventTextDelta, Text: "hi"}
				ch <- agent.Event{Type: agent.EventDone}
				close(ch)
			}).Return(nil).Once()

		journaled := make(chan struct{})
		mocks.journal.On("RecordExchange", mock.Anything, mock.MatchedBy(func(ex *model.Exchange) bool {
			return ex.Assistant == "email" && ex.Prompt == "hello" && ex.Reply == "hi" && ex.ID != ""
		})).Run(func(mock.Arguments) { close(journaled) }).Return(nil).Once()

		streamChan := make(chan model.StreamEvent, 10)
		svc.StreamMessage(ctx, service.AssistantEmail, userRequest("hello"), streamChan)

		events := drainStream(streamChan)
		require.Equal(t, []model.StreamEvent{
			{Type: model.EventTextDelta, Text: "hi"},
			{Type: model.EventDone},
		}, events)

		select {
		case <-journaled:
		case <-time.After(2 * time.Second):
			t.Fatal("exchange was not journaled")
		}
		mocks.provider.AssertExpectations(t)
		mocks.journal.AssertExpectations(t)
	})

	t.Run("Success - upstream order is preserved exactly", func(t *testing.T) {
		svc, mocks := setupAssistantService(t)

		mocks.provider.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- agent.Event)
				ch <- agent.Event{Type: agent.EventToolStart, Tool: "a"}
				ch <- agent.Event{Type: agent.EventTextDelta, Text: "x"}
				ch <- agent.Event{Type: agent.EventToolStart, Tool: "b"}
				ch <- agent.Event{Type: agent.EventTextDelta, Text: "y"}
				ch <- agent.Event{Type: agent.EventDone}
				close(ch)
			}).Return(nil).Once()

		journaled := make(chan struct{})
		mocks.journal.On("RecordExchange", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { close(journaled) }).Return(nil).Once()

		streamChan := make(chan model.StreamEvent, 10)
		svc.StreamMessage(ctx, service.AssistantCall, userRequest("go"), streamChan)

		events := drainStream(streamChan)
		require.Equal(t, []model.StreamEvent{
			{Type: model.EventToolStart, Tool: "a"},
			{Type: model.EventTextDelta, Text: "x"},
			{Type: model.EventToolStart, Tool: "b"},
			{Type: model.EventTextDelta, Text: "y"},
			{Type: model.EventDone},
		}, events)

		select {
		case <-journaled:
		case <-time.After(2 * time.Second):
			t.Fatal("exchange was not journaled")
		}
	})

	t.Run("Failure - provider error becomes the single terminal error event", func(t *testing.T) {
		svc, mocks := setupAssistantService(t)

		mocks.provider.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- agent.Event)
				ch <- agent.Event{Type: agent.EventTextDelta, Text: "partial"}
				close(ch)
			}).Return(errors.New("connection reset")).Once()

		streamChan := make(chan model.StreamEvent, 10)
		svc.StreamMessage(ctx, service.AssistantEmail, userRequest("hello"), streamChan)

		events := drainStream(streamChan)
		require.Equal(t, []model.StreamEvent{
			{Type: model.EventTextDelta, Text: "partial"},
			{Type: model.EventError, Message: "upstream agent failure"},
		}, events)
		// No done event, and the incomplete exchange is not journaled.
		mocks.journal.AssertNotCalled(t, "RecordExchange", mock.Anything, mock.Anything)
	})

	t.Run("Failure - upstream error event is terminal", func(t *testing.T) {
		svc, mocks := setupAssistantService(t)

		mocks.provider.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- agent.Event)
				ch <- agent.Event{Type: agent.EventError, Err: "overloaded"}
				close(ch)
			}).Return(nil).Once()

		streamChan := make(chan model.StreamEvent, 10)
		svc.StreamMessage(ctx, service.AssistantEmail, userRequest("hello"), streamChan)

		events := drainStream(streamChan)
		require.Equal(t, []model.StreamEvent{
			{Type: model.EventError, Message: "overloaded"},
		}, events)
	})

	t.Run("Success - clean close without a stop event synthesizes done", func(t *testing.T) {
		svc, mocks := setupAssistantService(t)

		mocks.provider.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- agent.Event)
				ch <- agent.Event{Type: agent.EventTextDelta, Text: "done early"}
				close(ch)
			}).Return(nil).Once()

		journaled := make(chan struct{})
		mocks.journal.On("RecordExchange", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { close(journaled) }).Return(nil).Once()

		streamChan := make(chan model.StreamEvent, 10)
		svc.StreamMessage(ctx, service.AssistantEmail, userRequest("hello"), streamChan)

		events := drainStream(streamChan)
		require.Len(t, events, 2)
		assert.Equal(t, model.EventDone, events[1].Type)

		select {
		case <-journaled:
		case <-time.After(2 * time.Second):
			t.Fatal("exchange was not journaled")
		}
	})
}

// TestAssistantService_TelemetryIdempotence verifies the facade contract:
// instrumenting the relay must not change the relayed payload. The same
// scripted upstream runs against the noop recorder and the SDK recorder, and
// the event sequences must match exactly.
func TestAssistantService_TelemetryIdempotence(t *testing.T) {
	runScripted := func(t *testing.T, rec telemetry.Recorder) []model.StreamEvent {
		provider := mock_agent.NewMockProvider(t)
		journal := mock_repo.NewMockJournal(t)

		provider.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- agent.Event)
				ch <- agent.Event{Type: agent.EventToolStart, Tool: "search"}
				ch <- agent.Event{Type: agent.EventTextDelta, Text: "answer"}
				ch <- agent.Event{Type: agent.EventToolProgress, Tool: "search", Elapsed: 0.25}
				ch <- agent.Event{Type: agent.EventDone}
				close(ch)
			}).Return(nil).Once()

		journaled := make(chan struct{})
		journal.On("RecordExchange", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { close(journaled) }).Return(nil).Once()

		svc := service.NewAssistantService(provider, journal, rec)
		streamChan := make(chan model.StreamEvent, 10)
		svc.StreamMessage(context.Background(), service.AssistantEmail, userRequest("hello"), streamChan)

		events := drainStream(streamChan)
		select {
		case <-journaled:
		case <-time.After(2 * time.Second):
			t.Fatal("exchange was not journaled")
		}
		return events
	}

	withNoop := runScripted(t, telemetry.Noop())

	sdk, err := telemetry.NewRecorder(telemetry.Options{Registry: prometheus.NewRegistry()})
	require.NoError(t, err)
	withSDK := runScripted(t, sdk)

	assert.Equal(t, withNoop, withSDK)
}

func TestAssistantService_RecentExchanges(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - default limit applied", func(t *testing.T) {
		svc, mocks := setupAssistantService(t)
		expected := []model.Exchange{{ID: "ex1"}}
		mocks.journal.On("RecentExchanges", ctx, 50).Return(expected, nil).Once()

		exchanges, err := svc.RecentExchanges(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, expected, exchanges)
	})

	t.Run("Success - oversized limit clamped", func(t *testing.T) {
		svc, mocks := setupAssistantService(t)
		mocks.journal.On("RecentExchanges", ctx, 200).Return([]model.Exchange{}, nil).Once()

		_, err := svc.RecentExchanges(ctx, 5000)
		require.NoError(t, err)
	})

	t.Run("Failure - journal error is wrapped", func(t *testing.T) {
		svc, mocks := setupAssistantService(t)
		mocks.journal.On("RecentExchanges", ctx, 50).Return(nil, errors.New("db error")).Once()

		_, err := svc.RecentExchanges(ctx, 50)
		assert.Error(t, err)
		assert.ErrorContains(t, err, "could not list exchanges")
	})
}
