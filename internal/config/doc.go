// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Legacy deployment variables (AWS_REGION, DYNAMODB_TABLE_NAME,
//     DYNAMODB_NOTES_TABLE_NAME, BEDROCK_MODEL_ID, NOTES_S3_BUCKET,
//     NOTES_S3_KEY)
//  3. Prefixed environment variables
//  4. Command-line flags (server only)
//  5. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
