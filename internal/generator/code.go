// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import "encoding/json"

// GeneratedCode is the normalized result of a generation or modification
// request. HTML, CSS and JS are always present on the wire, even when empty.
type GeneratedCode struct {
	HTML string
	CSS  string
	JS   string

	// Error is set only when the completion call itself failed.
	Error string

	// Extra holds keys the model returned beyond html/css/js, plus the
	// original JSON of any of those three that was not a string. Values in
	// Extra are written back unchanged by MarshalJSON.
	Extra map[string]json.RawMessage
}

// codeFields are the keys every GeneratedCode carries.
var codeFields = [...]string{"html", "css", "js"}

func (c *GeneratedCode) field(key string) *string {
	switch key {
	case "html":
		return &c.HTML
	case "css":
		return &c.CSS
	case "js":
		return &c.JS
	}
	return nil
}

func (c *GeneratedCode) addExtra(key string, raw json.RawMessage) {
	if c.Extra == nil {
		c.Extra = make(map[string]json.RawMessage)
	}
	c.Extra[key] = raw
}

// codeFromObject builds a GeneratedCode from a decoded JSON object. Missing
// fields stay empty and values are never coerced on the wire.
func codeFromObject(obj map[string]json.RawMessage) GeneratedCode {
	var code GeneratedCode
	for key, raw := range obj {
		dst := code.field(key)
		if dst == nil {
			code.addExtra(key, raw)
			continue
		}
		if raw == nil || string(raw) == "null" {
			code.addExtra(key, json.RawMessage("null"))
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*dst = s
			continue
		}
		*dst = string(raw)
		code.addExtra(key, raw)
	}
	return code
}

// MarshalJSON writes html, css and js unconditionally, followed by any extra
// keys and the error when one is set.
func (c GeneratedCode) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+len(codeFields)+1)
	for key, raw := range c.Extra {
		out[key] = raw
	}
	for _, key := range codeFields {
		if _, passthrough := c.Extra[key]; passthrough {
			continue
		}
		out[key] = *c.field(key)
	}
	if c.Error != "" {
		out["error"] = c.Error
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the same shape MarshalJSON produces.
func (c *GeneratedCode) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*c = codeFromObject(obj)
	if raw, ok := c.Extra["error"]; ok {
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			c.Error = msg
			delete(c.Extra, "error")
			if len(c.Extra) == 0 {
				c.Extra = nil
			}
		}
	}
	return nil
}
