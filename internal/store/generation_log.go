// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// generation_log.go records every UI generation request in the database so
// the stats endpoint can report totals, failures and average latency.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	"flexiui/internal/models"
)

// GenerationLogStore handles generation log operations.
type GenerationLogStore struct {
	db *sql.DB
}

// NewGenerationLogStore creates a new GenerationLogStore.
func NewGenerationLogStore(db *sql.DB) *GenerationLogStore {
	return &GenerationLogStore{db: db}
}

// Log records a generation. Failures are logged and otherwise ignored so a
// database hiccup never fails the request being logged.
func (s *GenerationLogStore) Log(entry *models.GenerationLog) {
	_, err := s.db.Exec(`
		INSERT INTO generation_logs
			(prompt, component_type, theme, provider, success, error_message, generation_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.Prompt, entry.ComponentType, entry.Theme, entry.Provider,
		entry.Success, entry.ErrorMessage, entry.GenerationTime)
	if err != nil {
		slog.Warn("failed to log generation",
			"component_type", entry.ComponentType,
			"success", entry.Success,
			"error", err,
		)
		return
	}
	slog.Debug("generation logged",
		"component_type", entry.ComponentType,
		"success", entry.Success,
		"generation_time", entry.GenerationTime,
	)
}

// Recent returns the most recent generation logs, newest first, limited to
// the specified count.
func (s *GenerationLogStore) Recent(limit int) ([]models.GenerationLog, error) {
	rows, err := s.db.Query(`
		SELECT id, prompt, component_type, theme, provider, success,
			error_message, generation_time, created_at
		FROM generation_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query generation logs: %w", err)
	}
	defer rows.Close()

	entries := make([]models.GenerationLog, 0)
	for rows.Next() {
		var e models.GenerationLog
		if err := rows.Scan(
			&e.ID, &e.Prompt, &e.ComponentType, &e.Theme, &e.Provider, &e.Success,
			&e.ErrorMessage, &e.GenerationTime, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan generation log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats aggregates the generation log together with the project count.
func (s *GenerationLogStore) Stats() (*models.GenerationStats, error) {
	st := &models.GenerationStats{}
	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE success),
			COALESCE(AVG(generation_time), 0),
			(SELECT COUNT(*) FROM projects)
		FROM generation_logs
	`).Scan(&st.Total, &st.Succeeded, &st.AvgGenerationTime, &st.Projects)
	if err != nil {
		return nil, fmt.Errorf("generation stats: %w", err)
	}
	st.Failed = st.Total - st.Succeeded
	return st, nil
}
