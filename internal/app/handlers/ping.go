package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bekzat/shortly/internal/logger"
)

// PingHandler reports storage health.
func (us *URLShortener) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := us.storage.Ping(r.Context()); err != nil {
		logger.Log.Error("storage ping failed", zap.Error(err))
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
