// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"sort"
	"strings"
)

// GeneralComponent is the template used when a component type is unknown.
const GeneralComponent = "general"

// componentTemplates describes what each component type should contain.
var componentTemplates = map[string]string{
	"navbar": `
Create a modern, responsive navigation bar with the following features:
- Logo/brand name on the left
- Navigation links in the center/right
- Mobile hamburger menu (responsive)
- Smooth animations
- Modern styling with proper spacing
`,
	"hero": `
Create an eye-catching hero section with:
- Large heading and subheading
- Call-to-action button(s)
- Background (gradient or image)
- Responsive layout
- Engaging visual design
`,
	"card": `
Create a modern card component with:
- Image/icon at the top
- Title and description
- Optional button/link
- Hover effects
- Clean, card-style design with shadows
`,
	"footer": `
Create a professional footer with:
- Multiple columns for links/info
- Social media icons
- Copyright text
- Responsive layout
- Proper spacing and styling
`,
	"button": `
Create a stylish button component with:
- Multiple variants (primary, secondary, outline)
- Hover and active states
- Smooth transitions
- Modern design
`,
	"form": `
Create a clean, user-friendly form with:
- Input fields with labels
- Proper validation styling
- Submit button
- Responsive layout
- Modern, accessible design
`,
	GeneralComponent: `
Create the requested UI component with:
- Clean, modern design
- Responsive layout
- Smooth animations
- Good user experience
- Professional styling
`,
}

const generationRequirements = `REQUIREMENTS:
1. Generate clean, semantic HTML5 code
2. Use modern CSS with flexbox/grid for layout
3. Make it fully responsive (mobile, tablet, desktop)
4. Add smooth transitions and hover effects
5. Include comments in the code
6. Use BEM naming convention for CSS classes
7. Ensure accessibility (proper ARIA labels, semantic tags)
8. Add JavaScript only if needed for interactivity

IMPORTANT OUTPUT FORMAT:
Return ONLY valid JSON in this exact format (no markdown, no explanations):
{
  "html": "<!-- Your HTML code here -->",
  "css": "/* Your CSS code here */",
  "js": "// Your JavaScript code here (or empty string if not needed)"
}

Generate professional, production-ready code that can be used immediately.`

const modificationInstructions = `INSTRUCTIONS:
1. Modify the code according to the user's request
2. Keep existing functionality that wasn't asked to change
3. Maintain code quality and structure
4. Update only what's necessary

IMPORTANT OUTPUT FORMAT:
Return ONLY valid JSON in this exact format (no markdown, no explanations):
{
  "html": "<!-- Updated HTML code -->",
  "css": "/* Updated CSS code */",
  "js": "// Updated JavaScript code (or empty string if not needed)"
}

Generate the complete updated code.`

const helpInstructions = `INSTRUCTIONS:
1. Provide a clear, helpful answer
2. If it's about code, include code examples
3. Be friendly and encouraging
4. Keep answers concise but complete
5. If relevant, suggest using FlexiUI features

Provide your helpful response:`

// ComponentTemplate returns the instructions for a component type. Lookup is
// case-insensitive and unknown types fall back to the general template.
func ComponentTemplate(componentType string) string {
	if tmpl, ok := componentTemplates[strings.ToLower(componentType)]; ok {
		return tmpl
	}
	return componentTemplates[GeneralComponent]
}

// ComponentTypes returns the known component types in sorted order.
func ComponentTypes() []string {
	types := make([]string, 0, len(componentTemplates))
	for name := range componentTemplates {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// BuildGenerationPrompt composes the user prompt for a new component.
func BuildGenerationPrompt(userText, componentType string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(ComponentTemplate(componentType))
	b.WriteString("\n\nUSER REQUEST: ")
	b.WriteString(userText)
	b.WriteString("\n\n")
	b.WriteString(ThemeDescription(DetectTheme(userText)))
	b.WriteString("\n\n")
	b.WriteString(generationRequirements)
	return strings.TrimSpace(b.String())
}

// BuildModificationPrompt composes the user prompt for changing existing code.
// The current code is embedded verbatim so the model can rewrite it.
func BuildModificationPrompt(current GeneratedCode, request string) string {
	var b strings.Builder
	b.WriteString("You are modifying existing code based on user request.\n\n")
	b.WriteString("CURRENT CODE:\nHTML:\n")
	b.WriteString(current.HTML)
	b.WriteString("\n\nCSS:\n")
	b.WriteString(current.CSS)
	b.WriteString("\n\nJS:\n")
	b.WriteString(current.JS)
	b.WriteString("\n\nUSER MODIFICATION REQUEST: ")
	b.WriteString(request)
	b.WriteString("\n\n")
	b.WriteString(modificationInstructions)
	return strings.TrimSpace(b.String())
}

// BuildHelpPrompt composes the prompt for a free-form question.
func BuildHelpPrompt(question string) string {
	var b strings.Builder
	b.WriteString("You are FlexiUI Assistant, helping users with UI design and development.\n\n")
	b.WriteString("USER QUESTION: ")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(helpInstructions)
	return strings.TrimSpace(b.String())
}
