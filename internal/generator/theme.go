// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"sort"
	"strings"
)

// Theme names understood by the prompt builder.
const (
	ThemeDark      = "dark"
	ThemeLight     = "light"
	ThemeColorful  = "colorful"
	ThemeGaming    = "gaming"
	ThemeCorporate = "corporate"
	ThemeMinimal   = "minimal"

	// DefaultTheme is returned when no keyword group matches.
	DefaultTheme = ThemeDark
)

// themeKeywords is checked in order; the first group with any match wins.
// "dark colorful" therefore resolves to dark.
var themeKeywords = []struct {
	theme    string
	keywords []string
}{
	{ThemeDark, []string{"dark", "black", "night", "noir"}},
	{ThemeGaming, []string{"gaming", "neon", "futuristic", "cyber"}},
	{ThemeColorful, []string{"colorful", "vibrant", "rainbow", "bright"}},
	{ThemeMinimal, []string{"minimal", "simple", "clean", "minimalist"}},
	{ThemeCorporate, []string{"corporate", "professional", "business"}},
	{ThemeLight, []string{"light", "white", "bright background"}},
}

// themeDescriptions holds the style instructions injected into generation prompts.
var themeDescriptions = map[string]string{
	ThemeDark: `
Use a DARK theme with:
- Dark background colors (#1a1a1a, #2d2d2d)
- Light text colors (#ffffff, #e0e0e0)
- Accent colors (blue, purple, or neon green)
- High contrast for readability
`,
	ThemeLight: `
Use a LIGHT theme with:
- Light background colors (#ffffff, #f5f5f5)
- Dark text colors (#333333, #1a1a1a)
- Subtle shadows and borders
- Clean, minimalist design
`,
	ThemeColorful: `
Use a COLORFUL theme with:
- Vibrant, bold colors
- Gradients and color transitions
- Eye-catching design
- Modern, energetic feel
`,
	ThemeGaming: `
Use a GAMING theme with:
- Dark background with neon accents (#39ff14, #ff006e, #00d9ff)
- Futuristic, tech-inspired design
- Angular shapes and borders
- Glowing effects and animations
`,
	ThemeCorporate: `
Use a CORPORATE/PROFESSIONAL theme with:
- Clean, minimal design
- Professional color palette (blues, grays)
- Ample whitespace
- Business-appropriate styling
`,
	ThemeMinimal: `
Use a MINIMAL theme with:
- Maximum whitespace
- Simple typography
- Monochrome or subtle colors
- Focus on content, not decoration
`,
}

// DetectTheme maps free-text user intent to a theme name by keyword matching.
func DetectTheme(userText string) string {
	lower := strings.ToLower(userText)
	for _, group := range themeKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.theme
			}
		}
	}
	return DefaultTheme
}

// ThemeDescription returns the style instructions for a theme, or "" if unknown.
func ThemeDescription(theme string) string {
	return themeDescriptions[theme]
}

// Themes returns the known theme names in sorted order.
func Themes() []string {
	names := make([]string, 0, len(themeDescriptions))
	for name := range themeDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
