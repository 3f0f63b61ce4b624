package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/bekzat/shortly/internal/logger"
	"github.com/bekzat/shortly/internal/models"
)

func (us *URLShortener) BatchShortenHandler(w http.ResponseWriter, r *http.Request) {
	var req models.BatchShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error decoding JSON", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if len(req) == 0 {
		http.Error(w, "empty batch", http.StatusBadRequest)
		return
	}

	userID := UserIDFromContext(r.Context())
	resp := make(models.BatchShortenResponse, 0, len(req))
	httpStatusCode := http.StatusCreated

	for _, item := range req {
		shortURL, status, err := us.shorten(r.Context(), item.OriginalURL, userID)
		if err != nil {
			logger.Log.Error("error saving URL", zap.Error(err))
			http.Error(w, "error saving URL", http.StatusInternalServerError)
			return
		}
		if status == http.StatusConflict {
			httpStatusCode = http.StatusConflict
		}
		resp = append(resp, models.BatchShortenResult{
			CorrelationID: item.CorrelationID,
			ShortURL:      shortURL,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error encoding JSON response", zap.Error(err))
	}
}
