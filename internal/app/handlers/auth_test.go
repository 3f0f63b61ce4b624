package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddlewareIssuesCookie(t *testing.T) {
	secret := []byte("test-secret")

	var seenUserID string
	handler := AuthMiddleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seenUserID)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, authCookieName, cookies[0].Name)
	assert.Equal(t, signUserID(seenUserID, secret), cookies[0].Value)
}

func TestAuthMiddlewareKeepsValidCookie(t *testing.T) {
	secret := []byte("test-secret")

	var seenUserID string
	handler := AuthMiddleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: authCookieName, Value: signUserID("user-42", secret)})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, request)

	assert.Equal(t, "user-42", seenUserID)
	assert.Empty(t, w.Result().Cookies(), "a valid cookie must not be reissued")
}

func TestAuthMiddlewareRejectsTamperedCookie(t *testing.T) {
	secret := []byte("test-secret")

	var seenUserID string
	handler := AuthMiddleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
	}))

	// signed with a different secret
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: authCookieName, Value: signUserID("user-42", []byte("other-secret"))})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, request)

	assert.NotEqual(t, "user-42", seenUserID)
	assert.NotEmpty(t, w.Result().Cookies(), "a fresh identity is issued instead")
}
