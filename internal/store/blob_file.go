// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// fileBlob is a document kept in a single local file.
//
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so readers never observe a partially written document.
type fileBlob struct {
	path string
}

func newFileBlob(path string) *fileBlob {
	return &fileBlob{path: path}
}

func (f *fileBlob) Name() string {
	return f.path
}

func (f *fileBlob) Load(_ context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	return data, true, nil
}

func (f *fileBlob) Store(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating directory %s: %w", ErrWritingDocument, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if err = os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	return nil
}
