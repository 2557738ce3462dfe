// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) noteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Manage the notes of a claim",
	}
	cmd.AddCommand(
		a.noteListCommand(),
		a.noteGetCommand(),
		a.noteAddCommand(),
		a.noteUpdateCommand(),
		a.noteDeleteCommand(),
	)

	return cmd
}

func (a *app) noteListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list CLAIM_ID",
		Short: "List the notes of a claim",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.client()
			if err != nil {
				return err
			}

			notes, err := api.ListNotes(requestContext(cmd), args[0])
			if err != nil {
				return err
			}

			return a.print(cmd, notes, renderNoteLines(notes))
		},
	}
}

func (a *app) noteGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CLAIM_ID NOTE_ID",
		Short: "Show a single note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.client()
			if err != nil {
				return err
			}

			note, err := api.GetNote(requestContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}

			return a.print(cmd, note, renderNote(note))
		},
	}
}

func (a *app) noteAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add CLAIM_ID CONTENT...",
		Short: "Append a note to a claim",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.client()
			if err != nil {
				return err
			}

			note, err := api.AddNote(requestContext(cmd), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			return a.print(cmd, note, renderNote(note))
		},
	}
}

func (a *app) noteUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update CLAIM_ID NOTE_ID CONTENT...",
		Short: "Replace the content of a note",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.client()
			if err != nil {
				return err
			}

			note, err := api.UpdateNote(requestContext(cmd), args[0], args[1], strings.Join(args[2:], " "))
			if err != nil {
				return err
			}

			return a.print(cmd, note, renderNote(note))
		},
	}
}

func (a *app) noteDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CLAIM_ID NOTE_ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.client()
			if err != nil {
				return err
			}

			deletion, err := api.DeleteNote(requestContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}

			return a.print(cmd, deletion, renderDeletion(deletion))
		},
	}
}
