// Package storage implements FileStorage on top of a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.FileStorage, error) {
	bucketURL := params.Config.Storage.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Storage bucket not configured, falling back to in-memory bucket")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Storage bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing storage bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketStorage(bucket), nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket) service.FileStorage {
	return &blobStorage{bucket: bucket}
}

// Put writes data under key.
func (s *blobStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

// NewWriter opens a streaming writer committed on Close.
func (s *blobStorage) NewWriter(ctx context.Context, key, contentType string) (io.WriteCloser, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	return w, nil
}

// Open returns a reader for key and its content type.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.WithStack(service.ErrFileNotFound)
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return r, r.ContentType(), nil
}

// Delete removes key; a missing key is ignored.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
