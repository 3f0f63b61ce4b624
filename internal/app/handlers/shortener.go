package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/bekzat/shortly/config"
	"github.com/bekzat/shortly/internal/app/storage"
	"github.com/bekzat/shortly/internal/logger"
	"github.com/bekzat/shortly/internal/models"
	"github.com/bekzat/shortly/pkg/base62"
)

// URLShortener serves the HTTP surface. A short code is the base62 form of
// the storage-issued ID, so redirects decode the path back to the key
// instead of going through a secondary index.
type URLShortener struct {
	config    *config.Config
	codec     *base62.Codec
	storage   storage.URLStorage
	fileStore *Producer
}

func NewURLShortener(cfg *config.Config, codec *base62.Codec, store storage.URLStorage, fileStore *Producer) *URLShortener {
	return &URLShortener{
		config:    cfg,
		codec:     codec,
		storage:   store,
		fileStore: fileStore,
	}
}

// Router wires the service routes onto a fresh chi mux.
func (us *URLShortener) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/", us.ShortenURLHandler)
	r.Get("/{id}", us.RedirectHandler)
	r.Get("/ping", us.PingHandler)
	r.Post("/api/shorten", us.APIShortenHandler)
	r.Post("/api/shorten/batch", us.BatchShortenHandler)
	r.Get("/api/user/urls", us.UserURLsHandler)
	return r
}

// shorten stores the URL and returns the absolute short URL together with
// the status to respond with: 201, or 409 when the original was seen
// before.
func (us *URLShortener) shorten(ctx context.Context, originalURL, userID string) (string, int, error) {
	id, err := us.storage.SaveURL(ctx, originalURL, userID)
	status := http.StatusCreated
	if err != nil {
		if !errors.Is(err, storage.ErrURLExists) {
			return "", 0, err
		}
		status = http.StatusConflict
	}

	code, err := us.codec.Encode(id)
	if err != nil {
		return "", 0, err
	}
	shortURL := us.config.BaseURL + "/" + code

	if status == http.StatusCreated && us.fileStore != nil {
		rec := &URLRecord{ID: id, ShortURL: shortURL, OriginalURL: originalURL}
		if err := us.fileStore.WriteRecord(rec); err != nil {
			// the link is already served from storage, losing one file
			// record only affects the next restart
			logger.Log.Error("error saving URL record to file", zap.Error(err))
		}
	}
	return shortURL, status, nil
}

func (us *URLShortener) ShortenURLHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, "error reading request body", http.StatusInternalServerError)
		return
	}

	originalURL := strings.TrimSpace(string(body))
	if originalURL == "" {
		http.Error(w, "empty request body", http.StatusBadRequest)
		return
	}

	shortURL, status, err := us.shorten(r.Context(), originalURL, UserIDFromContext(r.Context()))
	if err != nil {
		logger.Log.Error("error saving URL", zap.Error(err))
		http.Error(w, "error saving URL", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(shortURL)); err != nil {
		logger.Log.Error("error writing response", zap.Error(err))
	}
}

func (us *URLShortener) APIShortenHandler(w http.ResponseWriter, r *http.Request) {
	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error decoding JSON", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.URL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}

	shortURL, status, err := us.shorten(r.Context(), req.URL, UserIDFromContext(r.Context()))
	if err != nil {
		logger.Log.Error("error saving URL", zap.Error(err))
		http.Error(w, "error saving URL", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.Response{Result: shortURL}); err != nil {
		logger.Log.Error("error encoding JSON response", zap.Error(err))
	}
}

func (us *URLShortener) RedirectHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "id")

	id, err := us.codec.Decode(code)
	if err != nil || id <= 0 {
		// not a short code this service could have issued
		http.Error(w, "invalid short link", http.StatusBadRequest)
		return
	}

	originalURL, err := us.storage.GetURL(r.Context(), id)
	if errors.Is(err, storage.ErrURLNotFound) {
		http.Error(w, "URL not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log.Error("error getting URL", zap.Error(err))
		http.Error(w, "error getting URL", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", originalURL)
	w.WriteHeader(http.StatusTemporaryRedirect)
}
