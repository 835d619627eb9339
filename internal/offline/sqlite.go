package offline

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// SQLiteStorage keeps buckets in the cache_buckets and cache_entries tables
// so the shell survives process restarts.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) Buckets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM cache_buckets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing buckets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLiteStorage) DeleteBucket(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM cache_entries
		WHERE bucket_id = (SELECT id FROM cache_buckets WHERE name = ?)
	`, name); err != nil {
		return fmt.Errorf("deleting entries of %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cache_buckets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting bucket %s: %w", name, err)
	}
	return tx.Commit()
}

func (s *SQLiteStorage) Put(ctx context.Context, bucket, key string, resp *Response) error {
	return s.PutAll(ctx, bucket, map[string]*Response{key: resp})
}

func (s *SQLiteStorage) PutAll(ctx context.Context, bucket string, entries map[string]*Response) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO cache_buckets (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, bucket,
	); err != nil {
		return fmt.Errorf("creating bucket %s: %w", bucket, err)
	}
	var bucketID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM cache_buckets WHERE name = ?`, bucket,
	).Scan(&bucketID); err != nil {
		return fmt.Errorf("resolving bucket %s: %w", bucket, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for key, resp := range entries {
		header, err := json.Marshal(resp.Header)
		if err != nil {
			return fmt.Errorf("encoding header of %s: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cache_entries (bucket_id, key, status, header, body, basic, digest, stored_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (bucket_id, key) DO UPDATE SET
				status = excluded.status,
				header = excluded.header,
				body = excluded.body,
				basic = excluded.basic,
				digest = excluded.digest,
				stored_at = excluded.stored_at
		`, bucketID, key, resp.Status, string(header), resp.Body, resp.Basic, resp.Digest[:], now); err != nil {
			return fmt.Errorf("storing %s in %s: %w", key, bucket, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStorage) Match(ctx context.Context, key string) (*Response, error) {
	var (
		resp     Response
		header   string
		digest   []byte
		storedAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT e.status, e.header, e.body, e.basic, e.digest, e.stored_at
		FROM cache_entries e
		JOIN cache_buckets b ON b.id = e.bucket_id
		WHERE e.key = ?
		ORDER BY b.id
		LIMIT 1
	`, key).Scan(&resp.Status, &header, &resp.Body, &resp.Basic, &digest, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", key, err)
	}

	resp.Header = make(http.Header)
	if err := json.Unmarshal([]byte(header), &resp.Header); err != nil {
		return nil, fmt.Errorf("decoding header of %s: %w", key, err)
	}
	copy(resp.Digest[:], digest)
	resp.StoredAt, _ = time.Parse(time.RFC3339Nano, storedAt)
	return &resp, nil
}
