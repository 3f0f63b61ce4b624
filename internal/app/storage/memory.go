package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps links in process memory. It backs the service when
// no DSN is configured; durability comes from the JSON-lines file store
// replayed through Restore at startup.
type MemoryStorage struct {
	mu     sync.RWMutex
	nextID int64
	urls   map[int64]string
	byOrig map[string]int64
	byUser map[string][]int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		urls:   make(map[int64]string),
		byOrig: make(map[string]int64),
		byUser: make(map[string][]int64),
	}
}

func (ms *MemoryStorage) SaveURL(_ context.Context, originalURL, userID string) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if id, ok := ms.byOrig[originalURL]; ok {
		return id, ErrURLExists
	}

	ms.nextID++
	id := ms.nextID
	ms.urls[id] = originalURL
	ms.byOrig[originalURL] = id
	if userID != "" {
		ms.byUser[userID] = append(ms.byUser[userID], id)
	}
	return id, nil
}

func (ms *MemoryStorage) GetURL(_ context.Context, id int64) (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	url, ok := ms.urls[id]
	if !ok {
		return "", ErrURLNotFound
	}
	return url, nil
}

func (ms *MemoryStorage) UserURLs(_ context.Context, userID string) (map[int64]string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	urls := make(map[int64]string, len(ms.byUser[userID]))
	for _, id := range ms.byUser[userID] {
		urls[id] = ms.urls[id]
	}
	return urls, nil
}

func (ms *MemoryStorage) Ping(context.Context) error { return nil }

func (ms *MemoryStorage) Close() error { return nil }

// Restore seeds a record replayed from the file store and advances the ID
// counter past the largest restored ID.
func (ms *MemoryStorage) Restore(id int64, originalURL string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.urls[id] = originalURL
	ms.byOrig[originalURL] = id
	if id > ms.nextID {
		ms.nextID = id
	}
}
