package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/imagedrop/service/internal/config"
	"github.com/imagedrop/service/internal/storage"
)

// defaultHistoryLimit is used when the caller does not supply a valid limit.
const defaultHistoryLimit = 5

var (
	// ErrBucketNotAllowed is returned for buckets outside the configured allow-list.
	ErrBucketNotAllowed = errors.New("bucket is not allowed")
	// ErrMissingDirectory is returned when the target directory is empty after trimming.
	ErrMissingDirectory = errors.New("directory is required")
	// ErrMissingFile is returned when no file payload is present.
	ErrMissingFile = errors.New("file is required")
)

// StoreInput describes one upload request.
type StoreInput struct {
	Bucket      string
	Directory   string
	FileName    string
	ContentType string
	Content     io.Reader
	Size        int64
}

// StoreResult is returned after a successful upload.
type StoreResult struct {
	Key    string
	URL    string
	Record *Record
}

// Service contains the business logic for uploads: key resolution,
// object storage, and metadata persistence.
type Service struct {
	store storage.Store
	repo  Repository
	cfg   *config.Config
	now   func() time.Time
}

// NewService creates a new upload Service.
func NewService(store storage.Store, repo Repository, cfg *config.Config) *Service {
	return &Service{store: store, repo: repo, cfg: cfg, now: time.Now}
}

// ResolveAndStore validates the request, resolves a collision-free storage
// key, stores the object, and persists the upload record.
//
// The existence check and the put are not atomic: two concurrent uploads of
// the same name can race to the same key. Accepted for single-operator use.
func (s *Service) ResolveAndStore(ctx context.Context, in StoreInput) (*StoreResult, error) {
	if !s.cfg.BucketAllowed(in.Bucket) {
		return nil, ErrBucketNotAllowed
	}
	directory := strings.TrimSpace(in.Directory)
	if directory == "" {
		return nil, ErrMissingDirectory
	}
	if in.Content == nil || in.FileName == "" {
		return nil, ErrMissingFile
	}

	finalKey := directory + "/" + in.FileName
	exists, err := s.store.Exists(ctx, in.Bucket, finalKey)
	if err != nil {
		return nil, fmt.Errorf("check key %q: %w", finalKey, err)
	}
	if exists {
		finalKey = directory + "/" + timestampedName(in.FileName, s.now().UnixMilli())
	}

	if err := s.store.Put(ctx, in.Bucket, finalKey, in.Content, in.Size, in.ContentType); err != nil {
		return nil, fmt.Errorf("store object: %w", err)
	}

	// If this insert fails the object stays in storage with no record.
	// No rollback or retry; the orphan is harmless.
	rec, err := s.repo.Insert(ctx, &Record{
		FileName:   in.FileName,
		FileKey:    finalKey,
		FileURL:    s.store.ObjectURL(in.Bucket, finalKey),
		FileSize:   in.Size,
		MimeType:   in.ContentType,
		Bucket:     in.Bucket,
		Directory:  directory,
		UploadedBy: s.cfg.AdminEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("persist record: %w", err)
	}

	return &StoreResult{Key: finalKey, URL: rec.FileURL, Record: rec}, nil
}

// History returns the most recent uploads, newest first. Non-positive limits
// fall back to the default of 5.
func (s *Service) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

// Directories lists the top-level directory prefixes of an allow-listed bucket.
func (s *Service) Directories(ctx context.Context, bucket string) ([]string, error) {
	if !s.cfg.BucketAllowed(bucket) {
		return nil, ErrBucketNotAllowed
	}
	return s.store.ListDirectories(ctx, bucket)
}
