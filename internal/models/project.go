// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultComponentType is stored when a project does not name one.
const DefaultComponentType = "general"

// Field limits matching the projects table.
const (
	MaxProjectNameLength   = 200
	MaxComponentTypeLength = 50
)

// Project is a saved UI component: the prompt that produced it and the
// generated HTML, CSS and JavaScript.
type Project struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Prompt        string    `json:"prompt"`
	HTMLCode      string    `json:"html_code"`
	CSSCode       string    `json:"css_code"`
	JSCode        string    `json:"js_code"`
	ComponentType string    `json:"component_type"`
	Views         int       `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Normalize trims the name and fills in the default component type.
func (p *Project) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.ComponentType = strings.ToLower(strings.TrimSpace(p.ComponentType))
	if p.ComponentType == "" {
		p.ComponentType = DefaultComponentType
	}
}

// Validate reports the first field that would be rejected by the database.
func (p *Project) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("name is required")
	case len(p.Name) > MaxProjectNameLength:
		return errors.New("name must be at most 200 characters")
	case len(p.ComponentType) > MaxComponentTypeLength:
		return errors.New("component_type must be at most 50 characters")
	}
	return nil
}

// HasCode reports whether any of the three code fields is non-empty.
func (p *Project) HasCode() bool {
	return p.HTMLCode != "" || p.CSSCode != "" || p.JSCode != ""
}
