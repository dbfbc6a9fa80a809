// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview renders generated HTML, CSS and JavaScript into a single
// standalone HTML document, used for live previews, downloads and published
// exports. The generated code is trusted as-is: it is placed verbatim into
// the document body, style and script elements.
package preview

import (
	"bytes"
	"fmt"
	"html/template"

	"flexiui/internal/generator"
	"flexiui/internal/models"
)

// DefaultTitle is used when a document has no title.
const DefaultTitle = "FlexiUI Component"

// documentTemplate is the page shell. Code fields are typed as trusted
// template.HTML/CSS/JS values so html/template leaves them unescaped; the
// title and metadata are escaped normally.
var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta name="generator" content="FlexiUI">
{{- if .ComponentType}}
<meta name="flexiui:component-type" content="{{.ComponentType}}">
{{- end}}
<title>{{.Title}}</title>
<style>
{{.CSS}}
</style>
</head>
<body>
{{.HTML}}
{{- if .JS}}
<script>
{{.JS}}
</script>
{{- end}}
</body>
</html>
`))

// Document holds the values available to the page shell.
type Document struct {
	Title         string
	ComponentType string
	HTML          template.HTML
	CSS           template.CSS
	JS            template.JS
}

// NewDocument wraps generated code for rendering. An empty title falls back
// to DefaultTitle.
func NewDocument(title, componentType string, code generator.GeneratedCode) Document {
	if title == "" {
		title = DefaultTitle
	}
	return Document{
		Title:         title,
		ComponentType: componentType,
		HTML:          template.HTML(code.HTML),
		CSS:           template.CSS(code.CSS),
		JS:            template.JS(code.JS),
	}
}

// Render executes the page shell for a document.
func Render(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	return buf.Bytes(), nil
}

// ProjectCode returns the generated code stored on a project.
func ProjectCode(p *models.Project) generator.GeneratedCode {
	return generator.GeneratedCode{HTML: p.HTMLCode, CSS: p.CSSCode, JS: p.JSCode}
}

// Renderer renders saved projects and keeps the results in an in-memory
// cache keyed by project ID and last update time, so an edit automatically
// produces a cache miss.
type Renderer struct {
	cache *documentCache
}

// NewRenderer creates a Renderer with an empty cache.
func NewRenderer() *Renderer {
	return &Renderer{cache: newDocumentCache()}
}

// RenderProject returns the standalone document for a saved project.
func (r *Renderer) RenderProject(p *models.Project) ([]byte, error) {
	if doc := r.cache.get(p.ID.String(), p.UpdatedAt); doc != nil {
		return doc, nil
	}

	out, err := Render(NewDocument(p.Name, p.ComponentType, ProjectCode(p)))
	if err != nil {
		return nil, err
	}
	r.cache.put(p.ID.String(), p.UpdatedAt, out)
	return out, nil
}

// Invalidate drops every cached render of a project. Called when a project
// is deleted.
func (r *Renderer) Invalidate(id string) {
	r.cache.invalidate(id)
}
