// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the persistence layer over database/sql. Lookups
// that find nothing return (nil, nil) rather than an error.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"flexiui/internal/models"
)

const projectColumns = `id, name, prompt, html_code, css_code, js_code,
	component_type, views, created_at, updated_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Prompt, &p.HTMLCode, &p.CSSCode, &p.JSCode,
		&p.ComponentType, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ProjectStore handles all project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// List returns up to limit projects, newest first.
func (s *ProjectStore) List(limit int) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT `+projectColumns+`
		FROM projects
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(`
		SELECT `+projectColumns+` FROM projects WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns the stored row.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	created, err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (name, prompt, html_code, css_code, js_code, component_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectColumns,
		p.Name, p.Prompt, p.HTMLCode, p.CSSCode, p.JSCode, p.ComponentType,
	))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// Update overwrites the editable fields of a project and bumps updated_at.
// Returns nil if no project has the given ID.
func (s *ProjectStore) Update(p *models.Project) (*models.Project, error) {
	updated, err := scanProject(s.db.QueryRow(`
		UPDATE projects SET
			name = $1, prompt = $2, html_code = $3, css_code = $4, js_code = $5,
			component_type = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+projectColumns,
		p.Name, p.Prompt, p.HTMLCode, p.CSSCode, p.JSCode, p.ComponentType, p.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return updated, nil
}

// IncrementViews adds one to the project's view counter and returns the new
// count. Returns 0 if the project does not exist.
func (s *ProjectStore) IncrementViews(id uuid.UUID) (int, error) {
	var views int
	err := s.db.QueryRow(`
		UPDATE projects SET views = views + 1 WHERE id = $1 RETURNING views
	`, id).Scan(&views)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("increment project views: %w", err)
	}
	return views, nil
}

// Delete removes a project by ID and reports whether a row was deleted.
func (s *ProjectStore) Delete(id uuid.UUID) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project rows affected: %w", err)
	}
	return rows > 0, nil
}

// Count returns the total number of projects.
func (s *ProjectStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}
