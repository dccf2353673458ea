package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jarvis322/namescan"
)

// Compile-time interface verification.
var _ namescan.IndexCache = (*IndexCache)(nil)

// IndexCache implements namescan.IndexCache using SQLite. It holds at
// most one resolution result; Put replaces it wholesale. Freshness is
// judged by the resolver, so the cache only records when the entry was
// fetched.
type IndexCache struct {
	db *DB
}

// NewIndexCache creates a new IndexCache.
func NewIndexCache(db *DB) *IndexCache {
	return &IndexCache{db: db}
}

// Get returns the cached index. Returns ENOTFOUND if the cache is empty.
func (c *IndexCache) Get(ctx context.Context) (*namescan.CachedIndex, error) {
	var fetchedAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT fetched_at FROM index_cache WHERE id = 1
	`).Scan(&fetchedAt)

	if err == sql.ErrNoRows {
		return nil, namescan.Errorf(namescan.ENOTFOUND, "index cache empty")
	}
	if err != nil {
		return nil, err
	}

	index := &namescan.CachedIndex{}
	index.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT title, url FROM index_documents ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var doc namescan.Document
		if err := rows.Scan(&doc.Title, &doc.URL); err != nil {
			return nil, err
		}
		index.Documents = append(index.Documents, doc)
	}

	return index, rows.Err()
}

// Put replaces the cached index.
func (c *IndexCache) Put(ctx context.Context, index namescan.CachedIndex) error {
	tx, err := c.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM index_documents`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO index_cache (id, fetched_at) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET fetched_at = excluded.fetched_at
	`, index.FetchedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	for i, doc := range index.Documents {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO index_documents (position, title, url) VALUES (?, ?, ?)
		`, i, doc.Title, doc.URL); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
