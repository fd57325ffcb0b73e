package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"artscout/internal/app/client/config"
)

func newTestHTTPClient(t *testing.T, handler http.HandlerFunc) *httpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerAddress: strings.TrimPrefix(srv.URL, "http://")}
	h, err := NewHTTPClient(cfg, slog.Default())
	require.NoError(t, err)
	return h
}

func TestHTTPClient_Login(t *testing.T) {
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "john@example.com", req.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"user":  User{ID: "u1", Fullname: "John Doe", Email: req.Email},
			"token": "signed-token",
		})
	})

	u, token, err := h.Login(context.Background(), LoginRequest{
		Email:    "john@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Fullname)
	assert.Equal(t, "signed-token", token)

	// Токен запоминается для последующих запросов.
	assert.Equal(t, "signed-token", h.token)
}

func TestHTTPClient_Login_BadCredentials(t *testing.T) {
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Username or password is incorrect."})
	})

	_, _, err := h.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username or password is incorrect.")
}

func TestHTTPClient_BearerHeader(t *testing.T) {
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"favorites": []FavoriteItem{}})
	})
	h.SetToken("signed-token")

	_, err := h.Favorites(context.Background())
	require.NoError(t, err)
}

func TestHTTPClient_Unauthorized(t *testing.T) {
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
	})

	_, err := h.Favorites(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_SearchArtists(t *testing.T) {
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/search/claude%20monet", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(map[string]any{
			"artists": []Artist{{ID: "claude-monet", Name: "Claude Monet"}},
		})
	})

	artists, err := h.SearchArtists(context.Background(), "claude monet")
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "claude-monet", artists[0].ID)
}

func TestHTTPClient_AddFavorite(t *testing.T) {
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/favorites", r.URL.Path)

		var req AddFavoriteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"favorite": FavoriteItem{ArtistID: req.ArtistID, ArtistName: req.ArtistName},
		})
	})

	f, err := h.AddFavorite(context.Background(), AddFavoriteRequest{
		ArtistID:   "pablo-picasso",
		ArtistName: "Pablo Picasso",
	})
	require.NoError(t, err)
	assert.Equal(t, "pablo-picasso", f.ArtistID)
}

func TestHTTPClient_RemoveFavorite_NotFound(t *testing.T) {
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Favorite not found for this user."})
	})

	err := h.RemoveFavorite(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Favorite not found for this user.")
}

func TestHTTPClient_HealthCheck(t *testing.T) {
	h := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Write([]byte("OK"))
	})

	assert.NoError(t, h.HealthCheck(context.Background()))
}
