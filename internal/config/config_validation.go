// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// Supported SQL drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Supported summarizer providers.
const (
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
)

const defaultRegion = "us-east-1"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.SummarizeRate < 0 || cfg.Server.SummarizeBurst < 0 {
		return fmt.Errorf("%w: negative summarize rate limit", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return fmt.Errorf("%w: token issuer and duration are required with a sign key", ErrInvalidAppConfigs)
	}

	if cfg.Storage.Files.DataDir == "" {
		return fmt.Errorf("%w: empty data dir", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.DSN != "" && !slices.Contains([]string{DriverPostgres, DriverSQLite}, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unsupported db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.Objects.Bucket != "" && (cfg.Storage.Objects.Endpoint == "" || cfg.Storage.Objects.NotesKey == "") {
		return fmt.Errorf("%w: object store endpoint and notes key are required", ErrInvalidStorageConfigs)
	}

	s := cfg.Summarizer
	if !slices.Contains([]string{ProviderBedrock, ProviderOpenAI}, s.Provider) {
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidSummarizerConfigs, s.Provider)
	}
	if s.MaxTokens <= 0 || s.Temperature < 0 || s.Temperature > 1 {
		return fmt.Errorf("%w: max tokens must be positive and temperature within [0, 1]", ErrInvalidSummarizerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
