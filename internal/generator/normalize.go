// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"encoding/json"
	"strings"
)

const fence = "```"

// Normalize turns a raw model reply into GeneratedCode. It never fails: the
// reply is first parsed as a JSON object and, when that does not work, the
// fenced ```html / ```css / ```js blocks are scanned out of the text instead.
func Normalize(raw string) GeneratedCode {
	if code, ok := parseJSONReply(raw); ok {
		return code
	}
	return scanFencedBlocks(raw)
}

// stripJSONFence removes a leading ```json or ``` marker and a trailing ```.
func stripJSONFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, fence+"json") {
		s = s[len(fence+"json"):]
	}
	if strings.HasPrefix(s, fence) {
		s = s[len(fence):]
	}
	if strings.HasSuffix(s, fence) {
		s = s[:len(s)-len(fence)]
	}
	return strings.TrimSpace(s)
}

// parseJSONReply reports false for anything that is not a JSON object,
// including a bare null.
func parseJSONReply(raw string) (GeneratedCode, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &obj); err != nil {
		return GeneratedCode{}, false
	}
	if obj == nil {
		return GeneratedCode{}, false
	}
	return codeFromObject(obj), true
}

type section int

const (
	sectionNone section = iota
	sectionHTML
	sectionCSS
	sectionJS
)

// fenceScanner extracts fenced code blocks line by line. A block is only
// committed when its closing fence is seen; an unclosed block is dropped.
type fenceScanner struct {
	current section
	lines   []string
	code    GeneratedCode
}

func (s *fenceScanner) feed(line string) {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, fence+"html"):
		s.open(sectionHTML)
	case strings.Contains(lower, fence+"css"):
		s.open(sectionCSS)
	case strings.Contains(lower, fence+"javascript"), strings.Contains(lower, fence+"js"):
		s.open(sectionJS)
	case strings.Contains(line, fence) && s.current != sectionNone:
		s.commit()
	case s.current != sectionNone:
		s.lines = append(s.lines, line)
	}
}

func (s *fenceScanner) open(sec section) {
	s.current = sec
	s.lines = nil
}

func (s *fenceScanner) commit() {
	body := strings.Join(s.lines, "\n")
	switch s.current {
	case sectionHTML:
		s.code.HTML = body
	case sectionCSS:
		s.code.CSS = body
	case sectionJS:
		s.code.JS = body
	}
	s.current = sectionNone
	s.lines = nil
}

func scanFencedBlocks(text string) GeneratedCode {
	var s fenceScanner
	for _, line := range strings.Split(text, "\n") {
		s.feed(line)
	}
	return s.code
}
