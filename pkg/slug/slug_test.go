// Copyright (c) 2026 Knowledge Hunting. All rights reserved.
// Author: dev@knowledgehunting.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knowledgehunting/api/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline over representative titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_title", "Understanding Goroutines", "understanding-goroutines"},
		{"accented_chars", "Cafés & Résumés", "cafes-resumes"},
		{"punctuation", "What is REST? (A Primer!)", "what-is-rest-a-primer"},
		{"multiple_spaces", "Go   Concurrency    Patterns", "go-concurrency-patterns"},
		{"leading_trailing", "  --Edge Cases--  ", "edge-cases"},
		{"digits", "Top 10 Tips for 2026", "top-10-tips-for-2026"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
