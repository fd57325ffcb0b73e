// Художественный каталог для мобильного клиента:
// регистрация и аутентификация пользователей;
// проксирование каталога Artsy (поиск, карточки, работы, категории);
// избранные художники с обогащением карточки при добавлении.

//POST /api/auth/register      # Регистрация (публичный)
//POST /api/auth/login         # Логин (публичный)
//POST /api/auth/logout        # Логаут (публичный)
//POST /api/auth/delete        # Удаление аккаунта (auth)
//GET  /api/me                 # Текущий пользователь (auth)
//GET  /api/search/{query}     # Поиск художников (публичный)
//GET  /api/artist/{id}        # Карточка художника (публичный)
//GET  /api/artist/{id}/artworks   # Работы (публичный)
//GET  /api/artwork/{id}/categories # Категории (публичный)
//GET  /api/artist/{id}/similar    # Похожие (публичный)
//GET  /api/favorites          # Список избранного (auth)
//POST /api/favorites          # Добавить в избранное (auth)
//DELETE /api/favorites/{artistId} # Убрать из избранного (auth)
//GET  /health                 # Проверка живости (текст)

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	artistAPI "artscout/internal/app/server/api/http/artist"
	favoriteAPI "artscout/internal/app/server/api/http/favorite"
	"artscout/internal/app/server/api/http/middleware"
	"artscout/internal/app/server/api/http/middleware/auth"
	loggerMW "artscout/internal/app/server/api/http/middleware/logger"
	userAPI "artscout/internal/app/server/api/http/user"
	"artscout/internal/app/server/config"
	"artscout/internal/artsy"
	"artscout/internal/domain/favorite"
	"artscout/internal/domain/session"
	"artscout/internal/domain/user"
	"artscout/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	User     *userAPI.Handler
	Artist   *artistAPI.Handler
	Favorite *favoriteAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register.
func New(storage *postgres.Storage, catalog *artsy.Client, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("ArtScout API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, catalog, cfg, log)
	h.User.SetupRoutes(API)
	h.Artist.SetupRoutes(API)
	h.Favorite.SetupRoutes(API)

	// Health-чек отвечает голым текстом, мимо huma.
	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("OK"))
	})

	return mux
}

func handlers(storage *postgres.Storage, catalog *artsy.Client, cfg *config.Config, log *slog.Logger) *Handlers {
	sessionService := session.NewService(cfg.Auth.Secret, log)
	authMW := auth.New(sessionService, log)
	logMW := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), log)

	favoriteRepo := postgres.NewFavoriteRepository(storage.Pool(), log)
	favoriteService := favorite.NewService(favoriteRepo, catalog, log)

	middlewares.Add(logMW.Middleware())
	public := middlewares.GetAllAndClear()

	middlewares.Add(logMW.Middleware()).Add(authMW.Middleware())
	authed := middlewares.GetAllAndClear()

	userHandler := userAPI.NewHandler(userService, sessionService, favoriteService, log, public, authed)

	middlewares.Add(logMW.Middleware())
	artistHandler := artistAPI.NewHandler(catalog, log, middlewares.GetAllAndClear())

	middlewares.Add(logMW.Middleware()).Add(authMW.Middleware())
	favoriteHandler := favoriteAPI.NewHandler(favoriteService, log, middlewares.GetAllAndClear())

	return &Handlers{
		User:     userHandler,
		Artist:   artistHandler,
		Favorite: favoriteHandler,
	}
}
