// Package storage keeps identity evidence in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"rentflow/config"
	"rentflow/internal/domain/service"
	"rentflow/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

// BlobStore implements ObjectStore on a gocloud.dev bucket.
type BlobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the object store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ObjectStore, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}

	store, err := Open(params.Ctx, bucketURL, publicBaseURL, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens bucketURL. Object URLs are built from publicBaseURL, or from the
// bucket URL itself when no public base is configured.
func Open(ctx context.Context, bucketURL, publicBaseURL string, logger *slog.Logger) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	if publicBaseURL == "" {
		publicBaseURL = stripQuery(bucketURL)
	}

	logger.Info("evidence bucket opened", slog.String("bucket", stripQuery(bucketURL)))

	return &BlobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload copies localPath to a fresh key under folder and returns its URL
func (s *BlobStore) Upload(ctx context.Context, localPath, folder string) (string, error) {
	checksum, size, err := util.FileChecksum(localPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to hash staged file %s", localPath)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open staged file %s", localPath)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", errors.Wrap(err, "failed to detect content type")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", errors.WithStack(err)
	}

	key := path.Join(folder, uuid.NewString()+mtype.Extension())
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: mtype.String(),
		Metadata:    map[string]string{"sha256": checksum},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to create object %s", key)
	}

	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit object %s", key)
	}

	s.logger.Debug("evidence stored",
		slog.String("key", key),
		slog.String("content_type", mtype.String()),
		slog.String("size", util.FormatBytes(size)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the bucket
func (s *BlobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func stripQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""

	return strings.TrimRight(u.String(), "/")
}
