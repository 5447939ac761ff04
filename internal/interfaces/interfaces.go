package interfaces

import (
	"context"

	"sentryos/backend/internal/model"
	"sentryos/backend/internal/service"
)

// This file defines the contracts the API layer depends on. Handlers take
// these interfaces instead of concrete services so they can be tested against
// generated mocks.

// AssistantService is the contract for the streaming relay.
type AssistantService interface {
	ValidateMessages(req *service.CreateMessageRequest) error
	StreamMessage(ctx context.Context, kind service.AssistantKind, req *service.CreateMessageRequest, streamChan chan<- model.StreamEvent)
	RecentExchanges(ctx context.Context, limit int) ([]model.Exchange, error)
}

// AnalysisService is the contract for non-streaming call analysis.
type AnalysisService interface {
	AnalyzeCall(ctx context.Context, req *service.AnalyzeCallRequest) (*model.CallAnalysis, error)
}
