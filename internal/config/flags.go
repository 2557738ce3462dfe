// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-data-dir directory with claims.json and notes.json
//	-d database DSN
//	-db-driver database driver (pgx or sqlite3)
//	-claims-table DynamoDB claims table
//	-notes-table DynamoDB notes table
//	-notes-bucket object store bucket for notes
//	-c/-config json or yaml file path with configs
//	-log-level log level
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-summarizer-provider bedrock or openai
//	-model-id hosted model identifier
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress NetAddress
	var dataDir, databaseDSN, dbDriver string
	var claimsTable, notesTable, notesBucket string
	var configPath, logLevel string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var provider, modelID string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&dataDir, "data-dir", "", "Directory with claims.json and notes.json")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&claimsTable, "claims-table", "", "DynamoDB claims table")
	fs.StringVar(&notesTable, "notes-table", "", "DynamoDB notes table")
	fs.StringVar(&notesBucket, "notes-bucket", "", "Object store bucket for notes")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&provider, "summarizer-provider", "", "Summarizer provider (bedrock, openai)")
	fs.StringVar(&modelID, "model-id", "", "Hosted model identifier")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Files: Files{DataDir: dataDir},
			DB: DB{
				DSN:    databaseDSN,
				Driver: dbDriver,
			},
			Dynamo: Dynamo{
				ClaimsTable: claimsTable,
				NotesTable:  notesTable,
			},
			Objects: Objects{Bucket: notesBucket},
		},
		Summarizer: Summarizer{
			Provider: provider,
			ModelID:  modelID,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
