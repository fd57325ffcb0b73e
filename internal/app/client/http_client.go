package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"artscout/internal/app/client/config"
)

// ErrUnauthorized — сервер отверг токен сессии.
var ErrUnauthorized = errors.New("сессия недействительна")

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "ArtScout-Client/1.0",
	}, nil
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}
	return nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Error)
			}
			if errResp.Detail != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}

func (h *httpClient) Register(ctx context.Context, req RegisterRequest) (User, string, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/auth/register", req)
	if err != nil {
		return User{}, "", err
	}

	var registerResp struct {
		Message string `json:"message"`
		User    User   `json:"user"`
		Token   string `json:"token"`
	}
	if err := h.parseResponse(resp, &registerResp); err != nil {
		return User{}, "", err
	}

	h.SetToken(registerResp.Token)
	return registerResp.User, registerResp.Token, nil
}

func (h *httpClient) Login(ctx context.Context, req LoginRequest) (User, string, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/auth/login", req)
	if err != nil {
		return User{}, "", err
	}

	var loginResp struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return User{}, "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.User, loginResp.Token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, "POST", "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) DeleteAccount(ctx context.Context) error {
	resp, err := h.doRequest(ctx, "POST", "/api/auth/delete", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Me(ctx context.Context) (User, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/me", nil)
	if err != nil {
		return User{}, err
	}

	var u User
	if err := h.parseResponse(resp, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (h *httpClient) SearchArtists(ctx context.Context, query string) ([]Artist, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/search/"+url.PathEscape(query), nil)
	if err != nil {
		return nil, err
	}

	var searchResp struct {
		Artists []Artist `json:"artists"`
	}
	if err := h.parseResponse(resp, &searchResp); err != nil {
		return nil, err
	}
	return searchResp.Artists, nil
}

func (h *httpClient) ArtistDetail(ctx context.Context, id string) (ArtistDetail, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/artist/"+url.PathEscape(id), nil)
	if err != nil {
		return ArtistDetail{}, err
	}

	var detail ArtistDetail
	if err := h.parseResponse(resp, &detail); err != nil {
		return ArtistDetail{}, err
	}
	return detail, nil
}

func (h *httpClient) Artworks(ctx context.Context, artistID string) ([]Artwork, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/artist/"+url.PathEscape(artistID)+"/artworks", nil)
	if err != nil {
		return nil, err
	}

	var artworksResp struct {
		Artworks []Artwork `json:"artworks"`
	}
	if err := h.parseResponse(resp, &artworksResp); err != nil {
		return nil, err
	}
	return artworksResp.Artworks, nil
}

func (h *httpClient) ArtworkCategories(ctx context.Context, artworkID string) ([]Category, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/artwork/"+url.PathEscape(artworkID)+"/categories", nil)
	if err != nil {
		return nil, err
	}

	var categoriesResp struct {
		Categories []Category `json:"categories"`
	}
	if err := h.parseResponse(resp, &categoriesResp); err != nil {
		return nil, err
	}
	return categoriesResp.Categories, nil
}

func (h *httpClient) SimilarArtists(ctx context.Context, artistID string) ([]Artist, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/artist/"+url.PathEscape(artistID)+"/similar", nil)
	if err != nil {
		return nil, err
	}

	var similarResp struct {
		Similar []Artist `json:"similar"`
	}
	if err := h.parseResponse(resp, &similarResp); err != nil {
		return nil, err
	}
	return similarResp.Similar, nil
}

func (h *httpClient) Favorites(ctx context.Context) ([]FavoriteItem, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/favorites", nil)
	if err != nil {
		return nil, err
	}

	var favoritesResp struct {
		Favorites []FavoriteItem `json:"favorites"`
	}
	if err := h.parseResponse(resp, &favoritesResp); err != nil {
		return nil, err
	}
	return favoritesResp.Favorites, nil
}

func (h *httpClient) AddFavorite(ctx context.Context, req AddFavoriteRequest) (FavoriteItem, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/favorites", req)
	if err != nil {
		return FavoriteItem{}, err
	}

	var addResp struct {
		Favorite FavoriteItem `json:"favorite"`
	}
	if err := h.parseResponse(resp, &addResp); err != nil {
		return FavoriteItem{}, err
	}
	return addResp.Favorite, nil
}

func (h *httpClient) RemoveFavorite(ctx context.Context, artistID string) error {
	resp, err := h.doRequest(ctx, "DELETE", "/api/favorites/"+url.PathEscape(artistID), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}
