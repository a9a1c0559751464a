package db

import (
	"database/sql"
	"fmt"
)

// Namespaces used by the fetch command.
const (
	NamespaceOpenGraph = "og"
	NamespaceClass     = "class"
)

// KeyValue is one stored metadata pair.
type KeyValue struct {
	Key   string
	Value string
}

// URLInfo represents basic URL information.
type URLInfo struct {
	URLID        int64
	OriginalURL  string
	CanonicalURL sql.NullString
	Domain       string
}

// SetURLMetadata sets a metadata key-value pair for a URL (upsert).
func (db *DB) SetURLMetadata(urlID int64, namespace, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO url_metadata (url_id, namespace, key, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url_id, namespace, key) DO UPDATE SET value = excluded.value
	`, urlID, namespace, key, value)
	if err != nil {
		return fmt.Errorf("failed to set URL metadata: %w", err)
	}
	return nil
}

// ReplaceURLMetadata swaps the whole namespace of a URL for pairs, keeping
// their order, in one transaction.
func (db *DB) ReplaceURLMetadata(urlID int64, namespace string, pairs []KeyValue) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM url_metadata WHERE url_id = ? AND namespace = ?", urlID, namespace); err != nil {
		return fmt.Errorf("failed to clear URL metadata: %w", err)
	}
	for i, kv := range pairs {
		_, err := tx.Exec(`
			INSERT INTO url_metadata (url_id, namespace, key, value, position)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(url_id, namespace, key) DO UPDATE SET value = excluded.value
		`, urlID, namespace, kv.Key, kv.Value, i)
		if err != nil {
			return fmt.Errorf("failed to insert URL metadata: %w", err)
		}
	}
	if _, err := tx.Exec("UPDATE urls SET updated_at = CURRENT_TIMESTAMP WHERE url_id = ?", urlID); err != nil {
		return fmt.Errorf("failed to touch URL: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit URL metadata: %w", err)
	}
	return nil
}

// GetURLMetadata returns the pairs of one namespace in stored order.
func (db *DB) GetURLMetadata(urlID int64, namespace string) ([]KeyValue, error) {
	rows, err := db.Query(`
		SELECT key, value FROM url_metadata
		WHERE url_id = ? AND namespace = ?
		ORDER BY position, metadata_id
	`, urlID, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to get URL metadata: %w", err)
	}
	defer rows.Close()

	var pairs []KeyValue
	for rows.Next() {
		var kv KeyValue
		if err := rows.Scan(&kv.Key, &kv.Value); err != nil {
			return nil, fmt.Errorf("failed to scan URL metadata: %w", err)
		}
		pairs = append(pairs, kv)
	}
	return pairs, rows.Err()
}

// QueryURLs returns URLs matching metadata criteria.
// Example: db.QueryURLs("class", "schema", "product")
func (db *DB) QueryURLs(namespace, key, value string) ([]URLInfo, error) {
	rows, err := db.Query(`
		SELECT u.url_id, u.original_url, u.canonical_url, u.domain
		FROM urls u
		JOIN url_metadata m ON u.url_id = m.url_id
		WHERE m.namespace = ? AND m.key = ? AND m.value = ?
		ORDER BY u.url_id
	`, namespace, key, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query URLs: %w", err)
	}
	defer rows.Close()

	var urls []URLInfo
	for rows.Next() {
		var info URLInfo
		if err := rows.Scan(&info.URLID, &info.OriginalURL, &info.CanonicalURL, &info.Domain); err != nil {
			return nil, fmt.Errorf("failed to scan URL: %w", err)
		}
		urls = append(urls, info)
	}
	return urls, rows.Err()
}
