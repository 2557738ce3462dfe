// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(14)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginTop(1)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func field(label, value string) string {
	if value == "" {
		value = mutedStyle.Render("-")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func renderClaim(claim models.Claim) string {
	lines := []string{
		titleStyle.Render("Claim " + claim.ID),
		field("Status", claim.Status),
		field("Policy", claim.PolicyNumber),
		field("Customer", claim.Customer),
		field("Updated", claim.UpdatedAt),
	}
	if claim.Summary != nil {
		lines = append(lines, renderSummaryBody(*claim.Summary))
	}

	return strings.Join(lines, "\n")
}

func renderClaimDetails(details models.ClaimDetails) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderClaim(details.Claim),
		sectionStyle.Render(fmt.Sprintf("Notes (%d)", len(details.Notes))),
		renderNoteLines(details.Notes),
	)
}

func renderNote(note models.Note) string {
	return idStyle.Render(note.NoteID) + "  " + note.Content
}

func renderNoteLines(notes []models.Note) string {
	if len(notes) == 0 {
		return mutedStyle.Render("no notes")
	}

	lines := make([]string, 0, len(notes))
	for _, note := range notes {
		lines = append(lines, renderNote(note))
	}
	return strings.Join(lines, "\n")
}

func renderDeletion(deletion models.NoteDeletion) string {
	return fmt.Sprintf("Deleted note %s from claim %s", idStyle.Render(deletion.NoteID), deletion.ClaimID)
}

func renderSummaryBody(summary models.Summary) string {
	return strings.Join([]string{
		sectionStyle.Render("Overall"),
		summary.OverallSummary,
		sectionStyle.Render("Customer"),
		summary.CustomerFacingSummary,
		sectionStyle.Render("Adjuster"),
		summary.AdjusterFocusedSummary,
		sectionStyle.Render("Next step"),
		summary.RecommendedNextStep,
	}, "\n")
}

func renderSummary(resp models.SummaryResponse) string {
	header := titleStyle.Render("Summary of "+resp.ClaimID) + "  " + sourceStyle.Render("["+resp.Source+"]")
	return header + "\n" + renderSummaryBody(resp.Summary)
}
