// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) versionCommand() *cobra.Command {
	var clientOnly bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client build information and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, field("Client", a.buildInfo.BuildVersion()))
			fmt.Fprintln(out, field("Built", a.buildInfo.BuildDate()))
			fmt.Fprintln(out, field("Commit", a.buildInfo.BuildCommit()))
			if clientOnly {
				return nil
			}

			api, err := a.client()
			if err != nil {
				return err
			}

			serverVersion, err := api.Version(requestContext(cmd))
			if err != nil {
				return fmt.Errorf("get server version: %w", err)
			}

			_, err = fmt.Fprintln(out, field("Server", serverVersion))
			return err
		},
	}

	cmd.Flags().BoolVar(&clientOnly, "client", false, "do not contact the server")

	return cmd
}
