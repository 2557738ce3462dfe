// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/spf13/cobra"
)

func (a *app) claimCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Create and inspect claims",
	}
	cmd.AddCommand(a.claimGetCommand(), a.claimCreateCommand())

	return cmd
}

func (a *app) claimGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CLAIM_ID",
		Short: "Show a claim together with its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.client()
			if err != nil {
				return err
			}

			details, err := api.GetClaim(requestContext(cmd), args[0])
			if err != nil {
				return err
			}

			return a.print(cmd, details, renderClaimDetails(details))
		},
	}
}

func (a *app) claimCreateCommand() *cobra.Command {
	var claim models.Claim

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new claim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := a.client()
			if err != nil {
				return err
			}

			created, err := api.CreateClaim(requestContext(cmd), claim)
			if err != nil {
				return err
			}

			return a.print(cmd, created, renderClaim(created))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&claim.ID, "id", "", "claim identifier")
	flags.StringVar(&claim.Status, "status", "", "status label, e.g. OPEN")
	flags.StringVar(&claim.PolicyNumber, "policy", "", "policy number")
	flags.StringVar(&claim.Customer, "customer", "", "customer name")
	flags.StringVar(&claim.UpdatedAt, "updated-at", "", "explicit updatedAt timestamp (defaults to server time)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
