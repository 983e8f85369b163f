// Package upload implements image uploads: storage key resolution,
// metadata persistence, and history/directory listing.
package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is the persisted metadata row describing one completed upload.
// Records are insert-only; nothing in the system updates or deletes them.
type Record struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileKey    string    `json:"fileKey"`
	FileURL    string    `json:"fileUrl"`
	FileSize   int64     `json:"fileSize"`
	MimeType   string    `json:"mimeType"`
	Bucket     string    `json:"bucket"`
	Directory  string    `json:"directory"`
	UploadedBy string    `json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HistoryEntry is the projection of a Record returned by the history listing.
type HistoryEntry struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	FileURL   string    `json:"fileUrl"`
	FileSize  int64     `json:"fileSize"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository persists and lists upload records.
type Repository interface {
	Insert(ctx context.Context, rec *Record) (*Record, error)
	ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error)
}

// PostgresRepository implements Repository on a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a new upload record and returns it with the
// database-assigned id and creation timestamp filled in.
func (r *PostgresRepository) Insert(ctx context.Context, rec *Record) (*Record, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO uploads (file_name, file_key, file_url, file_size, mime_type, bucket, directory, uploaded_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		rec.FileName, rec.FileKey, rec.FileURL, rec.FileSize, rec.MimeType, rec.Bucket, rec.Directory, rec.UploadedBy,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert upload: %w", err)
	}
	return rec, nil
}

// ListRecent returns up to limit records, newest first.
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, file_name, file_url, file_size, mime_type, created_at
		 FROM uploads
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0, limit)
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.FileName, &e.FileURL, &e.FileSize, &e.MimeType, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	return entries, nil
}
