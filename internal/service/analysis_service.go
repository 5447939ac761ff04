package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"sentryos/backend/internal/agent"
	app_errors "sentryos/backend/internal/errors"
	"sentryos/backend/internal/model"
	"sentryos/backend/internal/telemetry"
)

const analysisSystemPrompt = "You analyze sales call transcripts. Respond with a single JSON object " +
	`of the shape {"summary": string, "todos": [{"text": string, "priority": string}], ` +
	`"insights": [{"text": string, "category": string}]} and nothing else.`

// AnalyzeCallRequest is the body of the non-streaming analysis endpoint.
type AnalyzeCallRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// AnalysisService produces a structured analysis of a call transcript via a
// single non-streamed upstream completion.
type AnalysisService struct {
	provider agent.Provider
	rec      telemetry.Recorder
}

func NewAnalysisService(provider agent.Provider, rec telemetry.Recorder) *AnalysisService {
	return &AnalysisService{provider: provider, rec: rec}
}

// AnalyzeCall asks the upstream agent for a structured analysis. Extraction is
// schema-first: a strict unmarshal of the reply, then a fenced JSON block,
// then a fallback that keeps the raw text as the summary. A reply that fails
// to parse is a documented degradation, not an error.
func (s *AnalysisService) AnalyzeCall(ctx context.Context, req *AnalyzeCallRequest) (*model.CallAnalysis, error) {
	ctx, finish := s.rec.StartSpan(ctx, "call.analyze", "analyze call transcript")
	defer finish()
	s.rec.Count("call.analyze.requests", 1, nil)

	resp, err := s.provider.Analyze(ctx, &agent.AnalyzeRequest{
		System: analysisSystemPrompt,
		Prompt: "Analyze the following call transcript:\n\n" + req.Transcript,
	})
	if err != nil {
		s.rec.Count("call.analyze.errors", 1, nil)
		s.rec.CaptureError(fmt.Errorf("analyze call: %w", err), nil)
		return nil, fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
	}

	analysis := parseAnalysis(resp.Text)
	s.rec.Breadcrumb("analysis", "call analyzed", map[string]any{
		"todos":    len(analysis.Todos),
		"insights": len(analysis.Insights),
	})
	return analysis, nil
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

func parseAnalysis(text string) *model.CallAnalysis {
	trimmed := strings.TrimSpace(text)

	var analysis model.CallAnalysis
	if err := json.Unmarshal([]byte(trimmed), &analysis); err == nil {
		return normalizeAnalysis(&analysis)
	}

	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		var fenced model.CallAnalysis
		if err := json.Unmarshal([]byte(m[1]), &fenced); err == nil {
			return normalizeAnalysis(&fenced)
		}
	}

	// Fallback on parse failure: the whole reply becomes the summary.
	return &model.CallAnalysis{Summary: trimmed, Todos: []model.Todo{}, Insights: []model.Insight{}}
}

// normalizeAnalysis guarantees non-nil slices and generated ids, so the
// response shape is stable regardless of what the upstream returned.
func normalizeAnalysis(analysis *model.CallAnalysis) *model.CallAnalysis {
	if analysis.Todos == nil {
		analysis.Todos = []model.Todo{}
	}
	if analysis.Insights == nil {
		analysis.Insights = []model.Insight{}
	}
	for i := range analysis.Todos {
		if analysis.Todos[i].ID == "" {
			analysis.Todos[i].ID = uuid.NewString()
		}
	}
	for i := range analysis.Insights {
		if analysis.Insights[i].ID == "" {
			analysis.Insights[i].ID = uuid.NewString()
		}
	}
	return analysis
}
