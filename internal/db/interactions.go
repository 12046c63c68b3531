package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"helpbot/internal/models"
)

// AppendInteraction persists one completed exchange. Called exactly once
// per request after the response has been computed.
func (d *DB) AppendInteraction(ctx context.Context, in models.Interaction) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO interactions (id, session_id, user_input, bot_response, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, in.ID, in.SessionID, in.UserInput, in.BotResponse, in.Source, in.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append interaction: %w", err)
	}
	return nil
}

// GetInteraction fetches a single interaction by id.
func (d *DB) GetInteraction(ctx context.Context, id uuid.UUID) (*models.Interaction, error) {
	var in models.Interaction
	err := d.Pool.QueryRow(ctx, `
		SELECT id, session_id, user_input, bot_response, source, created_at
		FROM interactions
		WHERE id = $1
	`, id).Scan(&in.ID, &in.SessionID, &in.UserInput, &in.BotResponse, &in.Source, &in.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInteractionNotFound
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}
	return &in, nil
}

// ListInteractions returns the most recent interactions, newest first.
// When sessionID is non-empty only that session's exchanges are returned.
func (d *DB) ListInteractions(ctx context.Context, sessionID string, limit int) ([]models.Interaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var rows pgx.Rows
	var err error
	if sessionID != "" {
		rows, err = d.Pool.Query(ctx, `
			SELECT id, session_id, user_input, bot_response, source, created_at
			FROM interactions
			WHERE session_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		`, sessionID, limit)
	} else {
		rows, err = d.Pool.Query(ctx, `
			SELECT id, session_id, user_input, bot_response, source, created_at
			FROM interactions
			ORDER BY created_at DESC
			LIMIT $1
		`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	defer rows.Close()

	var interactions []models.Interaction
	for rows.Next() {
		var in models.Interaction
		if err := rows.Scan(&in.ID, &in.SessionID, &in.UserInput, &in.BotResponse, &in.Source, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		interactions = append(interactions, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interactions: %w", err)
	}

	return interactions, nil
}

// CountBySource aggregates interaction counts per response source for the
// metrics collector.
func (d *DB) CountBySource(ctx context.Context) ([]models.SourceCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT source, COUNT(*)
		FROM interactions
		GROUP BY source
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count interactions by source: %w", err)
	}
	defer rows.Close()

	var counts []models.SourceCount
	for rows.Next() {
		var c models.SourceCount
		if err := rows.Scan(&c.Source, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan source count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate source counts: %w", err)
	}

	return counts, nil
}
