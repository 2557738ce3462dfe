// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextNoteID(t *testing.T) {
	tests := []struct {
		name     string
		notes    []Note
		expected string
	}{
		{
			name:     "no notes",
			notes:    nil,
			expected: "N-001",
		},
		{
			name:     "sequential notes",
			notes:    []Note{{NoteID: "N-001"}, {NoteID: "N-002"}},
			expected: "N-003",
		},
		{
			name:     "gap after delete keeps max",
			notes:    []Note{{NoteID: "N-001"}, {NoteID: "N-007"}},
			expected: "N-008",
		},
		{
			name:     "unordered input",
			notes:    []Note{{NoteID: "N-010"}, {NoteID: "N-002"}},
			expected: "N-011",
		},
		{
			name:     "foreign prefixes and non numeric suffixes ignored",
			notes:    []Note{{NoteID: "X-050"}, {NoteID: "N-abc"}, {NoteID: "N-"}, {NoteID: "N-004"}},
			expected: "N-005",
		},
		{
			name:     "grows past three digits",
			notes:    []Note{{NoteID: "N-999"}},
			expected: "N-1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextNoteID(tt.notes))
		})
	}
}

func TestNotesText(t *testing.T) {
	notes := []Note{{Content: "Missing receipt"}, {Content: "Called customer"}}
	assert.Equal(t, "Missing receipt Called customer", NotesText(notes))
	assert.Equal(t, "", NotesText(nil))
}
