package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage stores links in a bigserial-keyed table, so ID issuing
// is the insert itself.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return &PostgresStorage{pool: pool}, nil
}

func (s *PostgresStorage) SaveURL(ctx context.Context, originalURL, userID string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO shorten_urls (original_url, user_id)
		 VALUES ($1, NULLIF($2, ''))
		 ON CONFLICT (original_url) DO NOTHING
		 RETURNING id`,
		originalURL, userID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("insert url: %w", err)
	}

	// conflict: the original URL is already shortened, hand back its ID
	err = s.pool.QueryRow(ctx,
		`SELECT id FROM shorten_urls WHERE original_url = $1`,
		originalURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("select existing url: %w", err)
	}
	return id, ErrURLExists
}

func (s *PostgresStorage) GetURL(ctx context.Context, id int64) (string, error) {
	var originalURL string
	err := s.pool.QueryRow(ctx,
		`SELECT original_url FROM shorten_urls WHERE id = $1`, id).Scan(&originalURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrURLNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select url: %w", err)
	}
	return originalURL, nil
}

func (s *PostgresStorage) UserURLs(ctx context.Context, userID string) (map[int64]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, original_url FROM shorten_urls WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user urls: %w", err)
	}
	defer rows.Close()

	urls := make(map[int64]string)
	for rows.Next() {
		var (
			id          int64
			originalURL string
		)
		if err := rows.Scan(&id, &originalURL); err != nil {
			return nil, fmt.Errorf("scan user url: %w", err)
		}
		urls[id] = originalURL
	}
	return urls, rows.Err()
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStorage) Close() error {
	s.pool.Close()
	return nil
}
