package agent

import "context"

// Event kinds produced by an upstream agent stream.
const (
	EventTextDelta    = "text_delta"
	EventToolStart    = "tool_start"
	EventToolProgress = "tool_progress"
	EventDone         = "done"
	EventError        = "error"
)

// Event is a LOCAL type for the agent package: one element of the upstream
// asynchronous sequence, before the service maps it onto the wire model.
type Event struct {
	Type    string
	Text    string
	Tool    string
	Elapsed float64
	Err     string
}

// Message is one conversation turn forwarded to the upstream agent.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ReplyRequest asks the upstream agent for a streamed assistant reply.
type ReplyRequest struct {
	System   string
	Messages []Message
}

// AnalyzeRequest asks the upstream agent for a single non-streamed completion.
type AnalyzeRequest struct {
	System string
	Prompt string
}

// AnalyzeResponse carries the full completion text.
type AnalyzeResponse struct {
	Text string
}

// Provider defines the interface for the upstream agent service.
//
// StreamReply pushes events onto ch in upstream production order and closes
// the channel when the upstream sequence ends; the returned error covers
// transport-level failures that occurred before or while iterating. The call
// honors ctx, so cancelling the request context (client disconnect) tears the
// upstream call down.
type Provider interface {
	StreamReply(ctx context.Context, req *ReplyRequest, ch chan<- Event) error
	Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error)
}
