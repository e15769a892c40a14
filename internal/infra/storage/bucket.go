// Package storage provides the gocloud-backed object store for lead
// attachments.
package storage

import (
	"context"
	"io"

	"draftdesk/config"
	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers resolved from the configured bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

type bucketStore struct {
	bucket *blob.Bucket
	cfg    *config.StorageConfig
}

// Params holds dependencies for the attachment bucket, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// NewAttachmentStore opens the configured bucket and ties its shutdown to
// the app lifecycle.
func NewAttachmentStore(params Params) (service.AttachmentStore, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment bucket")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &bucketStore{bucket: bucket, cfg: params.Config.Storage}, nil
}

// Put writes one blob under the given key.
func (s *bucketStore) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return ClassifyError(err)
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return ClassifyError(err)
	}

	if err := writer.Close(); err != nil {
		return ClassifyError(err)
	}

	return nil
}

// ResolveURL returns a time-limited signed URL for a stored key.
func (s *bucketStore) ResolveURL(ctx context.Context, key string) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: s.cfg.SignedURLTTL,
	})
	if err != nil {
		return "", ClassifyError(err)
	}

	return url, nil
}

// ListKeys enumerates stored keys under a prefix.
func (s *bucketStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	var keys []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ClassifyError(err)
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}
