// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv lists the variable names used by earlier deployments of the
// claims API. They are honoured so existing task definitions keep working,
// but the prefixed names parsed by [parseEnv] take precedence.
type legacyEnv struct {
	AWSRegion      string `env:"AWS_REGION"`
	ClaimsTable    string `env:"DYNAMODB_TABLE_NAME"`
	NotesTable     string `env:"DYNAMODB_NOTES_TABLE_NAME"`
	BedrockModelID string `env:"BEDROCK_MODEL_ID"`
	NotesBucket    string `env:"NOTES_S3_BUCKET"`
	NotesKey       string `env:"NOTES_S3_KEY"`
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Dynamo: Dynamo{
				Region:      legacy.AWSRegion,
				ClaimsTable: legacy.ClaimsTable,
				NotesTable:  legacy.NotesTable,
			},
			Objects: Objects{
				Region:   legacy.AWSRegion,
				Bucket:   legacy.NotesBucket,
				NotesKey: legacy.NotesKey,
			},
		},
		Summarizer: Summarizer{
			Region:  legacy.AWSRegion,
			ModelID: legacy.BedrockModelID,
		},
	}
	if legacy.BedrockModelID != "" {
		cfg.Summarizer.Provider = ProviderBedrock
	}

	return cfg, nil
}
