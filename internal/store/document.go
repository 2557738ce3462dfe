// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

const documentIndent = "    "

// document is a whole collection of T persisted as one JSON array.
//
// Every read loads and decodes the full document; every mutation loads,
// modifies and rewrites it under an exclusive lock. The lock only covers
// writers within this process.
type document[T any] struct {
	mu   sync.RWMutex
	blob blob
}

func newDocument[T any](b blob) *document[T] {
	return &document[T]{blob: b}
}

// read returns the current records. A missing or blank document is empty.
func (d *document[T]) read(ctx context.Context) ([]T, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.load(ctx)
}

// update applies fn to the current records and persists the slice it
// returns. Nothing is written when fn fails.
func (d *document[T]) update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.load(ctx)
	if err != nil {
		return err
	}

	records, err = fn(records)
	if err != nil {
		return err
	}

	return d.save(ctx, records)
}

func (d *document[T]) load(ctx context.Context) ([]T, error) {
	data, found, err := d.blob.Load(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0)
	if !found || len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}

	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodingDocument, d.blob.Name(), err)
	}
	if records == nil {
		records = make([]T, 0)
	}

	return records, nil
}

func (d *document[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = make([]T, 0)
	}

	data, err := json.MarshalIndent(records, "", documentIndent)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodingDocument, d.blob.Name(), err)
	}

	return d.blob.Store(ctx, data)
}
