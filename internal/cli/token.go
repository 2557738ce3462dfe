// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-claim-keeper/internal/utils"
	"github.com/spf13/cobra"
)

var errNoSignKey = errors.New("token signing key is not configured (APP_TOKEN_SIGN_KEY)")

type tokenOutput struct {
	Token     string `json:"token"`
	Operator  string `json:"operator"`
	ExpiresAt string `json:"expiresAt"`
}

func (a *app) tokenCommand() *cobra.Command {
	var (
		operator string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token from the shared signing key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.App.TokenSignKey == "" {
				return errNoSignKey
			}
			if duration <= 0 {
				duration = a.cfg.App.TokenDuration
			}

			token, err := utils.GenerateJWTToken(a.cfg.App.TokenIssuer, operator, duration, a.cfg.App.TokenSignKey)
			if err != nil {
				return fmt.Errorf("mint token: %w", err)
			}

			out := tokenOutput{Token: token.SignedString, Operator: token.Operator}
			if token.ExpiresAt != nil {
				out.ExpiresAt = token.ExpiresAt.UTC().Format(time.RFC3339)
			}
			if a.asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Token)
			return err
		},
	}

	cmd.Flags().StringVarP(&operator, "operator", "o", "", "operator the token is minted for")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime (defaults to APP_TOKEN_DURATION)")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}
