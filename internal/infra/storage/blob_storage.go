// Package storage stores uploaded media in a durable object store.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"pawmart/config"
	"pawmart/internal/domain/lifecycle"
	"pawmart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Blank imports register the bucket URL schemes the config may reference.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements service.MediaStorage on top of a Go CDK blob bucket,
// so the same code serves S3, GCS, or a local directory depending on the
// configured bucket URL.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for MediaStorage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and wires its shutdown into the app lifecycle.
func New(params Params) (service.MediaStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Media storage initialized",
		slog.String("bucketURL", params.Config.Storage.BucketURL),
	)

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload streams one asset into the bucket and returns the durable URL a
// catalog record may reference. The write must fully succeed before any URL
// is handed back.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Closing after a failed copy aborts the write; nothing durable is left behind.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write media to bucket")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit media to bucket")
	}

	durableURL := s.publicBaseURL + "/" + escapeKey(key)

	s.logger.DebugContext(ctx, "Media uploaded",
		slog.String("key", key),
		slog.String("url", durableURL),
	)

	return durableURL, nil
}

// escapeKey encodes each path segment while keeping the separators intact.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
