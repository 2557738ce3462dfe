// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "github.com/spf13/cobra"

func (a *app) summarizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize CLAIM_ID",
		Short: "Summarize a claim and its notes",
		Long: `Asks the server to summarize the claim from its notes. The summary is
persisted onto the claim and printed together with the producer tag
(bedrock, openai or local-fallback).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.client()
			if err != nil {
				return err
			}

			summary, err := api.Summarize(requestContext(cmd), args[0])
			if err != nil {
				return err
			}

			return a.print(cmd, summary, renderSummary(summary))
		},
	}
}
