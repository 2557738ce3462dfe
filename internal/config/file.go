// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] with snake_case keys for JSON and
// YAML configuration files. Secrets are accepted here as well, but are
// better supplied through the environment.
type fileConfig struct {
	App struct {
		Version       string   `json:"version" yaml:"version"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		SummarizeRate   float64  `json:"summarize_rate" yaml:"summarize_rate"`
		SummarizeBurst  int      `json:"summarize_burst" yaml:"summarize_burst"`
	} `json:"server" yaml:"server"`

	Storage struct {
		Files struct {
			DataDir string `json:"data_dir" yaml:"data_dir"`
		} `json:"files" yaml:"files"`

		DB struct {
			DSN    string `json:"dsn" yaml:"dsn"`
			Driver string `json:"driver" yaml:"driver"`
		} `json:"db" yaml:"db"`

		Dynamo struct {
			Region      string `json:"region" yaml:"region"`
			Endpoint    string `json:"endpoint" yaml:"endpoint"`
			ClaimsTable string `json:"claims_table" yaml:"claims_table"`
			NotesTable  string `json:"notes_table" yaml:"notes_table"`
		} `json:"dynamo" yaml:"dynamo"`

		Objects struct {
			Endpoint   string `json:"endpoint" yaml:"endpoint"`
			Region     string `json:"region" yaml:"region"`
			AccessKey  string `json:"access_key" yaml:"access_key"`
			SecretKey  string `json:"secret_key" yaml:"secret_key"`
			DisableSSL bool   `json:"disable_ssl" yaml:"disable_ssl"`
			Bucket     string `json:"bucket" yaml:"bucket"`
			NotesKey   string `json:"notes_key" yaml:"notes_key"`
		} `json:"objects" yaml:"objects"`
	} `json:"storage" yaml:"storage"`

	Summarizer struct {
		Provider    string   `json:"provider" yaml:"provider"`
		ModelID     string   `json:"model_id" yaml:"model_id"`
		Region      string   `json:"region" yaml:"region"`
		APIKey      string   `json:"api_key" yaml:"api_key"`
		BaseURL     string   `json:"base_url" yaml:"base_url"`
		MaxTokens   int      `json:"max_tokens" yaml:"max_tokens"`
		Temperature float64  `json:"temperature" yaml:"temperature"`
		Timeout     Duration `json:"timeout" yaml:"timeout"`
	} `json:"summarizer" yaml:"summarizer"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		Token          string   `json:"token" yaml:"token"`
	} `json:"adapter" yaml:"adapter"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       fc.App.Version,
			LogLevel:      fc.App.LogLevel,
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
			SummarizeRate:   fc.Server.SummarizeRate,
			SummarizeBurst:  fc.Server.SummarizeBurst,
		},
		Storage: Storage{
			Files: Files{DataDir: fc.Storage.Files.DataDir},
			DB: DB{
				DSN:    fc.Storage.DB.DSN,
				Driver: fc.Storage.DB.Driver,
			},
			Dynamo: Dynamo{
				Region:      fc.Storage.Dynamo.Region,
				Endpoint:    fc.Storage.Dynamo.Endpoint,
				ClaimsTable: fc.Storage.Dynamo.ClaimsTable,
				NotesTable:  fc.Storage.Dynamo.NotesTable,
			},
			Objects: Objects{
				Endpoint:   fc.Storage.Objects.Endpoint,
				Region:     fc.Storage.Objects.Region,
				AccessKey:  fc.Storage.Objects.AccessKey,
				SecretKey:  fc.Storage.Objects.SecretKey,
				DisableSSL: fc.Storage.Objects.DisableSSL,
				Bucket:     fc.Storage.Objects.Bucket,
				NotesKey:   fc.Storage.Objects.NotesKey,
			},
		},
		Summarizer: Summarizer{
			Provider:    fc.Summarizer.Provider,
			ModelID:     fc.Summarizer.ModelID,
			Region:      fc.Summarizer.Region,
			APIKey:      fc.Summarizer.APIKey,
			BaseURL:     fc.Summarizer.BaseURL,
			MaxTokens:   fc.Summarizer.MaxTokens,
			Temperature: fc.Summarizer.Temperature,
			Timeout:     time.Duration(fc.Summarizer.Timeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			Token:          fc.Adapter.Token,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds, in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if ns, err := time.ParseDuration(s); err == nil {
		*d = Duration(ns)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration: %q", s)
	}
	*d = Duration(time.Duration(n))
	return nil
}
