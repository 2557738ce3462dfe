// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/adapter"
	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/spf13/cobra"
)

// APIFactory builds the API client used by commands.
type APIFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.ClaimsAPI, error)

// Options configures [NewRootCommand].
type Options struct {
	Config    *config.ClientConfig
	BuildInfo models.AppBuildInfo
	// NewAPI defaults to [adapter.NewHTTPClaimsAPI].
	NewAPI APIFactory
	Logger *logger.Logger
}

type app struct {
	cfg       config.ClientConfig
	buildInfo models.AppBuildInfo
	newAPI    APIFactory
	logger    *logger.Logger

	asJSON bool
	api    adapter.ClaimsAPI
}

// NewRootCommand assembles the claimctl command tree. Persistent flags
// override the matching fields of opts.Config.
func NewRootCommand(opts Options) *cobra.Command {
	a := &app{
		buildInfo: opts.BuildInfo,
		newAPI:    opts.NewAPI,
		logger:    opts.Logger,
	}
	if opts.Config != nil {
		a.cfg = *opts.Config
	}
	if a.newAPI == nil {
		a.newAPI = adapter.NewHTTPClaimsAPI
	}
	if a.logger == nil {
		a.logger = logger.Nop()
	}

	root := &cobra.Command{
		Use:           "claimctl",
		Short:         "Command-line client for the claims API",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Adapter.HTTPAddress, "address", "a", a.cfg.Adapter.HTTPAddress, "claims API address")
	flags.StringVarP(&a.cfg.Adapter.Token, "token", "t", a.cfg.Adapter.Token, "bearer token")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "request timeout")
	flags.BoolVar(&a.asJSON, "json", false, "print raw JSON")

	root.AddCommand(
		a.claimCommand(),
		a.noteCommand(),
		a.summarizeCommand(),
		a.tokenCommand(),
		a.versionCommand(),
	)

	return root
}

// client lazily builds the API client so that flag overrides are applied.
func (a *app) client() (adapter.ClaimsAPI, error) {
	if a.api != nil {
		return a.api, nil
	}

	api, err := a.newAPI(a.cfg.Adapter, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	a.api = api

	return api, nil
}

func requestContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// print writes v as JSON when --json is set, otherwise the styled text.
func (a *app) print(cmd *cobra.Command, v any, styled string) error {
	if a.asJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), styled)
	return err
}
