package repository

import (
	"context"

	"sentryos/backend/internal/model"
)

// Journal records completed assistant exchanges. Writes are fire-and-forget
// from the caller's perspective: a journaling failure must never affect the
// stream that produced the exchange.
type Journal interface {
	RecordExchange(ctx context.Context, exchange *model.Exchange) error
	RecentExchanges(ctx context.Context, limit int) ([]model.Exchange, error)
}

type noopJournal struct{}

// NewNoopJournal returns a Journal that keeps nothing. Used when no database
// path is configured.
func NewNoopJournal() Journal {
	return noopJournal{}
}

func (noopJournal) RecordExchange(context.Context, *model.Exchange) error {
	return nil
}

func (noopJournal) RecentExchanges(context.Context, int) ([]model.Exchange, error) {
	return []model.Exchange{}, nil
}
