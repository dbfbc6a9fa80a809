// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// GenerationLog records one UI generation request and its outcome.
// GenerationTime is the wall-clock duration of the request in seconds.
type GenerationLog struct {
	ID             int64     `json:"id"`
	Prompt         string    `json:"prompt"`
	ComponentType  string    `json:"component_type"`
	Theme          string    `json:"theme"`
	Provider       string    `json:"provider"`
	Success        bool      `json:"success"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	GenerationTime float64   `json:"generation_time"`
	CreatedAt      time.Time `json:"created_at"`
}

// GenerationStats aggregates the generation log.
type GenerationStats struct {
	Total             int     `json:"total"`
	Succeeded         int     `json:"succeeded"`
	Failed            int     `json:"failed"`
	AvgGenerationTime float64 `json:"avg_generation_time"`
	Projects          int     `json:"projects"`
}

// SuccessRate returns the share of successful generations in [0, 1], or 0
// when nothing has been logged yet.
func (s GenerationStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total)
}
