package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// InsertURL parses and inserts a URL, returning the url_id.
// If the URL already exists, returns the existing url_id.
func (db *DB) InsertURL(rawURL string) (int64, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}

	var existingID int64
	err = db.QueryRow("SELECT url_id FROM urls WHERE original_url = ?", rawURL).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing URL: %w", err)
	}

	// scheme + host + path, no query/fragment
	canonicalURL := fmt.Sprintf("%s://%s%s", parsed.Scheme, parsed.Host, parsed.Path)

	result, err := db.Exec(`
		INSERT INTO urls (original_url, canonical_url, scheme, domain, path)
		VALUES (?, ?, ?, ?, ?)
	`, rawURL, canonicalURL, parsed.Scheme, parsed.Host, parsed.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to insert URL: %w", err)
	}

	urlID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get URL ID: %w", err)
	}
	return urlID, nil
}

// RecordAccess records a fetch attempt in url_accesses.
func (db *DB) RecordAccess(urlID int64, statusCode int, errorType string, success bool) error {
	_, err := db.Exec(`
		INSERT INTO url_accesses (url_id, status_code, error_type, success)
		VALUES (?, ?, ?, ?)
	`, urlID, statusCode, errorType, success)
	if err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// AccessRecord represents a URL access attempt.
type AccessRecord struct {
	AccessID   int64
	AccessedAt time.Time
	StatusCode int
	ErrorType  string
	Success    bool
}

// GetLastAccess returns the most recent access record for a URL, or nil.
func (db *DB) GetLastAccess(urlID int64) (*AccessRecord, error) {
	var record AccessRecord
	var errorType sql.NullString
	err := db.QueryRow(`
		SELECT access_id, accessed_at, status_code, error_type, success
		FROM url_accesses
		WHERE url_id = ?
		ORDER BY accessed_at DESC, access_id DESC
		LIMIT 1
	`, urlID).Scan(&record.AccessID, &record.AccessedAt, &record.StatusCode, &errorType, &record.Success)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last access: %w", err)
	}
	record.ErrorType = errorType.String
	return &record, nil
}

// GetURLID returns the url_id for a given original URL.
func (db *DB) GetURLID(originalURL string) (int64, error) {
	var urlID int64
	err := db.QueryRow("SELECT url_id FROM urls WHERE original_url = ?", originalURL).Scan(&urlID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("URL not found: %s", originalURL)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get URL ID: %w", err)
	}
	return urlID, nil
}

// GetURLByID returns the original URL for a url_id.
func (db *DB) GetURLByID(urlID int64) (string, error) {
	var originalURL string
	err := db.QueryRow("SELECT original_url FROM urls WHERE url_id = ?", urlID).Scan(&originalURL)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("URL ID not found: %d", urlID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get URL: %w", err)
	}
	return originalURL, nil
}
