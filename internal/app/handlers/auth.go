package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const authCookieName = "shortly_auth"

type ctxKey int

const userIDKey ctxKey = iota

// AuthMiddleware makes sure every request carries a symmetrically signed
// cookie with a unique user ID, issuing a fresh one when the cookie is
// absent or fails verification.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userIDFromCookie(r, secret)
			if !ok {
				userID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     authCookieName,
					Value:    signUserID(userID, secret),
					Path:     "/",
					HttpOnly: true,
				})
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user ID, or "" outside the
// middleware.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

func signUserID(userID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(userID))
	return userID + "." + hex.EncodeToString(mac.Sum(nil))
}

func userIDFromCookie(r *http.Request, secret []byte) (string, bool) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return "", false
	}

	// uuid values never contain '.', the signature follows the first one
	parts := strings.SplitN(cookie.Value, ".", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !hmac.Equal([]byte(cookie.Value), []byte(signUserID(parts[0], secret))) {
		return "", false
	}
	return parts[0], true
}
