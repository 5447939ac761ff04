package agent

import (
	"context"
	"errors"
)

// ErrUnconfigured is returned when no upstream API key was supplied.
var ErrUnconfigured = errors.New("agent upstream is not configured: missing API key")

type unconfiguredProvider struct{}

// Unconfigured returns a Provider used when no API key is present. Streams
// still follow the wire contract (an error frame, then the sentinel) instead
// of failing the request, and the non-streaming call reports ErrUnconfigured.
func Unconfigured() Provider {
	return unconfiguredProvider{}
}

func (unconfiguredProvider) StreamReply(ctx context.Context, _ *ReplyRequest, ch chan<- Event) error {
	defer close(ch)
	return send(ctx, ch, Event{Type: EventError, Err: ErrUnconfigured.Error()})
}

func (unconfiguredProvider) Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error) {
	return nil, ErrUnconfigured
}
