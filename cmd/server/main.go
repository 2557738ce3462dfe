// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	handler "github.com/MKhiriev/go-claim-keeper/internal/handler/http"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/server"
	"github.com/MKhiriev/go-claim-keeper/internal/service"
	"github.com/MKhiriev/go-claim-keeper/internal/store"
	"github.com/MKhiriev/go-claim-keeper/internal/summarizer"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-claim-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	summ, err := summarizer.NewFromConfig(ctx, cfg.Summarizer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating summarizer")
	}

	services, err := service.NewServices(storages, summ, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	srv, err := server.NewServer(handler.NewHandler(services, cfg.Server, log).Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
