package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// sampleProject is inserted into an empty database in development so the
// project endpoints have something to return.
var sampleProject = struct {
	name, prompt, componentType, html, css, js string
}{
	name:          "Welcome Button",
	prompt:        "Create a gaming style button with neon glow",
	componentType: "button",
	html:          `<button class="neon-button" aria-label="Start">Start</button>`,
	css: `.neon-button {
  padding: 0.75rem 2rem;
  border: 2px solid #0ff;
  border-radius: 8px;
  background: #0a0a1a;
  color: #0ff;
  font-weight: 700;
  cursor: pointer;
  box-shadow: 0 0 12px #0ff;
  transition: box-shadow 0.2s ease, transform 0.2s ease;
}

.neon-button:hover {
  box-shadow: 0 0 24px #f0f;
  transform: translateY(-2px);
}`,
	js: "",
}

// Seed populates the database with initial development data. It only
// inserts when the projects table is empty, so calling it repeatedly is safe.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return fmt.Errorf("seed check projects: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	p := sampleProject
	_, err := db.Exec(`
		INSERT INTO projects (name, prompt, html_code, css_code, js_code, component_type)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.name, p.prompt, p.html, p.css, p.js, p.componentType)
	if err != nil {
		return fmt.Errorf("seed insert project: %w", err)
	}

	slog.Info("database seeded with sample project", "name", p.name)
	return nil
}
