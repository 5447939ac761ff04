package model

import "time"

// ChatMessage is a single turn of an assistant conversation as sent by the client.
type ChatMessage struct {
	ID        string    `json:"id,omitempty"`
	Role      string    `json:"role" validate:"required,oneof=user assistant"`
	Content   string    `json:"content" validate:"required"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Stream event discriminators. The set matches what the frontend event reader
// switches on, so renaming any of these is a breaking wire change.
const (
	EventTextDelta    = "text_delta"
	EventToolStart    = "tool_start"
	EventToolProgress = "tool_progress"
	EventDone         = "done"
	EventError        = "error"
)

// StreamEvent is one frame of a relayed assistant stream. Type selects which
// of the optional fields carry meaning. Elapsed is a pointer so a
// tool_progress frame keeps its elapsed field on the wire even at zero.
type StreamEvent struct {
	Type    string   `json:"type"`
	Text    string   `json:"text,omitempty"`
	Tool    string   `json:"tool,omitempty"`
	Elapsed *float64 `json:"elapsed,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Terminal reports whether the event ends its stream. A stream carries exactly
// one terminal event, followed by the [DONE] sentinel written by the API layer.
func (e StreamEvent) Terminal() bool {
	return e.Type == EventDone || e.Type == EventError
}

// Todo is a display-only action item extracted from a call analysis.
type Todo struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Priority string `json:"priority,omitempty"`
}

// Insight is a display-only observation extracted from a call analysis.
type Insight struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}

// CallAnalysis is the result of the non-streaming call analysis endpoint.
type CallAnalysis struct {
	Summary  string    `json:"summary"`
	Todos    []Todo    `json:"todos"`
	Insights []Insight `json:"insights"`
}

// Exchange is one journaled assistant exchange: the user's final prompt and
// the assembled assistant reply of a completed stream.
type Exchange struct {
	ID        string    `json:"id"`
	Assistant string    `json:"assistant"`
	Prompt    string    `json:"prompt"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}
