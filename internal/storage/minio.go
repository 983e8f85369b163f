package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore implements Store using a MinIO client against an S3-compatible
// backend. Object URLs follow the AWS virtual-hosted template built from the
// bucket, region, and key; they are never re-queried from the store.
type MinioStore struct {
	client *minio.Client
	region string
}

// NewMinioStore creates a MinIO client for the given endpoint and credentials.
// The endpoint may be given as "host:port" or with an http/https scheme.
func NewMinioStore(endpoint, accessKey, secretKey, region string, useSSL bool) (*MinioStore, error) {
	host, secure, err := normalizeEndpoint(endpoint, useSSL)
	if err != nil {
		return nil, fmt.Errorf("storage endpoint: %w", err)
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinioStore{client: client, region: region}, nil
}

// Exists checks for an object at key via a stat call. A not-found response is
// not an error; anything else is surfaced to the caller.
func (s *MinioStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
		return false, nil
	}
	return false, fmt.Errorf("stat object %q: %w", key, err)
}

// Put streams reader to the bucket under key. size must be the exact byte
// count (pass -1 only if the size is genuinely unknown).
func (s *MinioStore) Put(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// ListDirectories lists the top-level prefixes of bucket using delimiter
// grouping (non-recursive listing) and strips the trailing "/" from each.
func (s *MinioStore) ListDirectories(ctx context.Context, bucket string) ([]string, error) {
	var dirs []string
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: false}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list bucket %q: %w", bucket, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			dirs = append(dirs, strings.TrimSuffix(obj.Key, "/"))
		}
	}
	return dirs, nil
}

// ObjectURL returns the deterministic public URL for the object.
func (s *MinioStore) ObjectURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, key)
}

// normalizeEndpoint accepts either "host:port" or "https://host:port" and
// returns the bare host plus whether TLS should be used. An explicit scheme
// wins over the useSSL flag.
func normalizeEndpoint(raw string, useSSL bool) (string, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint %q", raw)
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	return raw, useSSL, nil
}
