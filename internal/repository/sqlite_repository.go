package repository

import (
	"context"
	"database/sql"

	"sentryos/backend/internal/model"
)

type sqliteJournal struct {
	db *sql.DB
}

func NewSQLiteJournal(db *sql.DB) Journal {
	return &sqliteJournal{db: db}
}

func (r *sqliteJournal) RecordExchange(ctx context.Context, exchange *model.Exchange) error {
	query := "INSERT INTO exchanges (id, assistant, prompt, reply, created_at) VALUES (?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query,
		exchange.ID,
		exchange.Assistant,
		exchange.Prompt,
		exchange.Reply,
		exchange.CreatedAt,
	)
	return err
}

func (r *sqliteJournal) RecentExchanges(ctx context.Context, limit int) ([]model.Exchange, error) {
	query := `
		SELECT id, assistant, prompt, reply, created_at
		FROM exchanges
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exchanges := []model.Exchange{}
	for rows.Next() {
		var ex model.Exchange
		if err := rows.Scan(&ex.ID, &ex.Assistant, &ex.Prompt, &ex.Reply, &ex.CreatedAt); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, ex)
	}
	return exchanges, rows.Err()
}
