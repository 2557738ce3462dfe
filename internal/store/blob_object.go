// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const documentContentType = "application/json"

// objectAPI is the subset of an S3-compatible client used by [objectBlob].
type objectAPI interface {
	// GetObject returns the object content. found is false for a missing key.
	GetObject(ctx context.Context, bucket, key string) (data []byte, found bool, err error)
	PutObject(ctx context.Context, bucket, key string, data []byte) error
}

// objectBlob is a document kept as a single object in a bucket.
type objectBlob struct {
	client objectAPI
	bucket string
	key    string
}

func newObjectBlob(client objectAPI, bucket, key string) *objectBlob {
	return &objectBlob{client: client, bucket: bucket, key: key}
}

func (o *objectBlob) Name() string {
	return fmt.Sprintf("s3://%s/%s", o.bucket, o.key)
}

func (o *objectBlob) Load(ctx context.Context) ([]byte, bool, error) {
	data, found, err := o.client.GetObject(ctx, o.bucket, o.key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %w", ErrObjectStoreRequest, o.Name(), err)
	}

	return data, found, nil
}

func (o *objectBlob) Store(ctx context.Context, data []byte) error {
	if err := o.client.PutObject(ctx, o.bucket, o.key, data); err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrObjectStoreRequest, o.Name(), err)
	}

	return nil
}

// minioObjects adapts a minio client to [objectAPI].
type minioObjects struct {
	client *minio.Client
}

// newMinioObjects connects to the configured S3-compatible endpoint and
// makes sure the bucket exists.
func newMinioObjects(ctx context.Context, cfg config.Objects) (*minioObjects, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: !cfg.DisableSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	objects := &minioObjects{client: client}
	if err = objects.ensureBucket(ctx, cfg.Bucket, cfg.Region); err != nil {
		return nil, err
	}

	return objects, nil
}

func (m *minioObjects) ensureBucket(ctx context.Context, bucket, region string) error {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("%w: failed to check bucket: %w", ErrObjectStoreRequest, err)
	}

	if !exists {
		err = m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region})
		if err != nil {
			return fmt.Errorf("%w: failed to create bucket: %w", ErrObjectStoreRequest, err)
		}
	}

	return nil
}

func (m *minioObjects) GetObject(ctx context.Context, bucket, key string) ([]byte, bool, error) {
	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, false, err
	}
	defer obj.Close()

	// minio defers the request until the first read
	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, err
	}

	return data, true, nil
}

func (m *minioObjects) PutObject(ctx context.Context, bucket, key string, data []byte) error {
	_, err := m.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: documentContentType,
	})

	return err
}
