package storage

import (
	"context"
	"errors"
)

var (
	ErrURLNotFound = errors.New("url not found")
	ErrURLExists   = errors.New("original url already shortened")
)

// URLStorage issues numeric link IDs and resolves them back to original
// URLs. IDs start at 1, so their base62 short codes are never empty.
type URLStorage interface {
	// SaveURL stores originalURL under a fresh ID and returns it. When the
	// original URL was stored before, the existing ID is returned together
	// with ErrURLExists.
	SaveURL(ctx context.Context, originalURL, userID string) (int64, error)

	// GetURL returns the original URL stored under id, or ErrURLNotFound.
	GetURL(ctx context.Context, id int64) (string, error)

	// UserURLs returns every id -> original URL pair saved by userID.
	UserURLs(ctx context.Context, userID string) (map[int64]string, error)

	Ping(ctx context.Context) error
	Close() error
}
