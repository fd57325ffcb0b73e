package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"artscout/internal/app/client/config"
)

// App — клиентское приложение: HTTP-клиент, локальный кеш избранного
// и состояние сессии между запусками.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	cache      *FavoritesCache
	state      *AppState
}

// AppState хранит состояние приложения
type AppState struct {
	UserEmail    string    `json:"user_email"`
	UserFullname string    `json:"user_fullname"`
	LastSeen     time.Time `json:"last_seen"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Debug("Состояние приложения не загружено", "error", err)
		state = &AppState{}
	}

	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	// Кеш избранного необязателен: без него работаем напрямую с сервером.
	cache, err := NewFavoritesCache(cfg.CachePath)
	if err != nil {
		log.Warn("Не удалось открыть локальный кеш избранного", "error", err)
		cache = nil
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		cache:      cache,
		state:      state,
	}

	if token, err := app.loadToken(); err == nil && token != "" {
		httpCl.SetToken(token)
	}

	return app, nil
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	data, err := os.ReadFile(cfg.StatePath)
	if err != nil {
		return nil, err
	}
	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("ошибка парсинга состояния: %w", err)
	}
	return &state, nil
}

func (a *App) saveState() {
	a.state.LastSeen = time.Now()
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		a.log.Warn("Не удалось сериализовать состояние", "error", err)
		return
	}
	if err := os.WriteFile(a.config.StatePath, data, 0600); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (a *App) saveToken(token string) error {
	return os.WriteFile(a.config.TokenPath, []byte(token), 0600)
}

// CheckConnection проверяет доступность сервера.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// RememberedUser возвращает имя и email пользователя из сохранённого состояния.
func (a *App) RememberedUser() (string, string) {
	return a.state.UserFullname, a.state.UserEmail
}

// ClearSession забывает токен и состояние пользователя.
func (a *App) ClearSession() {
	a.httpClient.SetToken("")
	os.Remove(a.config.TokenPath)
	a.state.UserEmail = ""
	a.state.UserFullname = ""
	a.saveState()
}

// IsAuthenticated сообщает, есть ли сохраненная сессия.
func (a *App) IsAuthenticated() bool {
	return a.httpClient.token != ""
}

// handleAuthError молча сбрасывает сессию по 401 от сервера.
func (a *App) handleAuthError(err error) error {
	if errors.Is(err, ErrUnauthorized) {
		a.log.Debug("Сессия истекла, сбрасываем токен")
		a.ClearSession()
	}
	return err
}

func (a *App) rememberUser(u User) {
	a.state.UserEmail = u.Email
	a.state.UserFullname = u.Fullname
	a.saveState()
}

func (a *App) Register(ctx context.Context, fullname, email, password string) (User, error) {
	u, token, err := a.httpClient.Register(ctx, RegisterRequest{
		Fullname: fullname,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return User{}, err
	}
	if err := a.saveToken(token); err != nil {
		a.log.Warn("Не удалось сохранить токен", "error", err)
	}
	a.rememberUser(u)
	return u, nil
}

func (a *App) Login(ctx context.Context, email, password string) (User, error) {
	u, token, err := a.httpClient.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return User{}, err
	}
	if err := a.saveToken(token); err != nil {
		a.log.Warn("Не удалось сохранить токен", "error", err)
	}
	a.rememberUser(u)
	return u, nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.httpClient.Logout(ctx)
	a.ClearSession()
	return err
}

func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.httpClient.DeleteAccount(ctx); err != nil {
		return a.handleAuthError(err)
	}
	a.ClearSession()
	if a.cache != nil {
		if err := a.cache.Clear(); err != nil {
			a.log.Warn("Не удалось очистить кеш избранного", "error", err)
		}
	}
	return nil
}

func (a *App) Me(ctx context.Context) (User, error) {
	u, err := a.httpClient.Me(ctx)
	if err != nil {
		return User{}, a.handleAuthError(err)
	}
	return u, nil
}

func (a *App) SearchArtists(ctx context.Context, query string) ([]Artist, error) {
	return a.httpClient.SearchArtists(ctx, query)
}

func (a *App) ArtistDetail(ctx context.Context, id string) (ArtistDetail, error) {
	return a.httpClient.ArtistDetail(ctx, id)
}

func (a *App) Artworks(ctx context.Context, artistID string) ([]Artwork, error) {
	return a.httpClient.Artworks(ctx, artistID)
}

func (a *App) ArtworkCategories(ctx context.Context, artworkID string) ([]Category, error) {
	return a.httpClient.ArtworkCategories(ctx, artworkID)
}

func (a *App) SimilarArtists(ctx context.Context, artistID string) ([]Artist, error) {
	return a.httpClient.SimilarArtists(ctx, artistID)
}

// Favorites возвращает избранное с сервера, обновляя локальный кеш.
// При недоступном сервере отдает последнюю закешированную копию.
func (a *App) Favorites(ctx context.Context) ([]FavoriteItem, error) {
	favorites, err := a.httpClient.Favorites(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, a.handleAuthError(err)
		}
		if a.cache != nil {
			cached, cacheErr := a.cache.List()
			if cacheErr == nil {
				a.log.Debug("Сервер недоступен, используем кеш избранного")
				return cached, nil
			}
		}
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.Replace(favorites); err != nil {
			a.log.Warn("Не удалось обновить кеш избранного", "error", err)
		}
	}
	return favorites, nil
}

// IsFavorite проверяет по серверному списку, в избранном ли художник.
func (a *App) IsFavorite(ctx context.Context, artistID string) (bool, error) {
	favorites, err := a.Favorites(ctx)
	if err != nil {
		return false, err
	}
	for _, f := range favorites {
		if f.ArtistID == artistID {
			return true, nil
		}
	}
	return false, nil
}

func (a *App) AddFavorite(ctx context.Context, req AddFavoriteRequest) (FavoriteItem, error) {
	f, err := a.httpClient.AddFavorite(ctx, req)
	if err != nil {
		return FavoriteItem{}, a.handleAuthError(err)
	}
	return f, nil
}

func (a *App) RemoveFavorite(ctx context.Context, artistID string) error {
	if err := a.httpClient.RemoveFavorite(ctx, artistID); err != nil {
		return a.handleAuthError(err)
	}
	return nil
}

// NewFavoriteSession создает сессию оптимистичных переключений избранного
// для экрана художника.
func (a *App) NewFavoriteSession() *FavoriteSession {
	return NewFavoriteSession(a, a.log)
}

// Close освобождает ресурсы приложения.
func (a *App) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}
