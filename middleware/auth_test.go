package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgmatch/orgmatch/security"
	"github.com/orgmatch/orgmatch/utils"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := security.CreateTokenManager("test-secret-key-32-bytes-long!!", "orgmatch-test")

	var gotOrgID uint
	handler := AuthMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOrgID = utils.GetOrgID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token passes org id through", func(t *testing.T) {
		token, err := tokens.Generate(7, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/supply", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), gotOrgID)
	})

	t.Run("Missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/supply", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/supply", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/supply", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[3], "burst exhausted requests are limited")
}
