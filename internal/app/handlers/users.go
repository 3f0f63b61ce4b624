package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/bekzat/shortly/internal/logger"
	"github.com/bekzat/shortly/internal/models"
)

func (us *URLShortener) UserURLsHandler(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	urls, err := us.storage.UserURLs(r.Context(), userID)
	if err != nil {
		logger.Log.Error("error getting user URLs", zap.Error(err))
		http.Error(w, "error getting user URLs", http.StatusInternalServerError)
		return
	}
	if len(urls) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]models.UserURL, 0, len(urls))
	for id, originalURL := range urls {
		code, err := us.codec.Encode(id)
		if err != nil {
			logger.Log.Error("error encoding short code", zap.Int64("id", id), zap.Error(err))
			continue
		}
		resp = append(resp, models.UserURL{
			ShortURL:    us.config.BaseURL + "/" + code,
			OriginalURL: originalURL,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error encoding JSON response", zap.Error(err))
	}
}
