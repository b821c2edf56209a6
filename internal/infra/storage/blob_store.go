package storage

import (
	"context"
	"log/slog"
	"os"

	"localguide/config"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/service"
	"localguide/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob" // gs:// bucket URLs
	"gocloud.dev/gcerrors"
)

// blobImageStore implements service.ImageStore on a gocloud bucket.
type blobImageStore struct {
	baseDir string
	bucket  *blob.Bucket
	logger  *slog.Logger
}

// StoreParams holds dependencies for the image store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket. Without a bucket URL the base directory
// itself is served through fileblob.
func NewImageStore(params StoreParams) (service.ImageStore, error) {
	cfg := params.Config.Images
	if cfg == nil || cfg.BaseDir == "" {
		return nil, errors.New("images base directory is required")
	}

	var bucket *blob.Bucket
	var err error
	if cfg.BucketURL != "" {
		bucket, err = blob.OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "open image bucket %s", cfg.BucketURL)
		}
		params.Logger.Info("Serving images from bucket", slog.String("bucket_url", cfg.BucketURL))
	} else {
		if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create images base directory")
		}
		bucket, err = fileblob.OpenBucket(cfg.BaseDir, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "open image directory %s", cfg.BaseDir)
		}
		params.Logger.Info("Serving images from directory", slog.String("base_dir", cfg.BaseDir))
	}

	store := NewBlobImageStore(cfg.BaseDir, bucket, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// NewBlobImageStore wraps an already opened bucket.
func NewBlobImageStore(baseDir string, bucket *blob.Bucket, logger *slog.Logger) service.ImageStore {
	return &blobImageStore{
		baseDir: baseDir,
		bucket:  bucket,
		logger:  logger,
	}
}

// Resolve validates rawPath against the base directory and returns the bucket key.
func (s *blobImageStore) Resolve(rawPath string) (string, error) {
	_, key, err := ResolvePath(s.baseDir, rawPath)
	if err != nil {
		return "", err
	}

	return key, nil
}

// Read loads the object stored under key.
func (s *blobImageStore) Read(ctx context.Context, key string) (*service.ImageFile, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrapf(err, "read image %s", key)
	}

	return &service.ImageFile{
		Key:         key,
		Data:        data,
		ContentType: ContentTypeFor(key),
	}, nil
}

// Close releases the bucket.
func (s *blobImageStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
