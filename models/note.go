// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// NoteIDPrefix is the prefix of every server-assigned note identifier.
const NoteIDPrefix = "N-"

// Note is a free-text annotation attached to a claim.
type Note struct {
	// ClaimID references the owning claim. Not enforced at storage level.
	ClaimID string `json:"claimId"`

	// NoteID is unique within the owning claim, e.g. "N-001".
	NoteID string `json:"noteId"`

	// Content is the trimmed, non-empty note text.
	Content string `json:"content"`
}

// NoteDeletion is returned after a note has been removed.
type NoteDeletion struct {
	Deleted bool   `json:"deleted"`
	ClaimID string `json:"claimId"`
	NoteID  string `json:"noteId"`
}

// NextNoteID returns the identifier for a new note given the notes that
// already belong to the same claim.
//
// It takes the highest numeric suffix among ids carrying [NoteIDPrefix] and
// adds one, zero-padding to three digits. Ids with a different prefix or a
// non-numeric suffix are ignored. There is no upper bound: "N-999" is
// followed by "N-1000".
func NextNoteID(notes []Note) string {
	maxSeq := 0
	for _, note := range notes {
		suffix, ok := strings.CutPrefix(note.NoteID, NoteIDPrefix)
		if !ok || !isDigits(suffix) {
			continue
		}

		seq, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		maxSeq = max(maxSeq, seq)
	}

	return fmt.Sprintf("%s%03d", NoteIDPrefix, maxSeq+1)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NotesText joins the contents of notes with a single space, in order.
func NotesText(notes []Note) string {
	contents := make([]string, 0, len(notes))
	for _, note := range notes {
		contents = append(contents, note.Content)
	}

	return strings.Join(contents, " ")
}
