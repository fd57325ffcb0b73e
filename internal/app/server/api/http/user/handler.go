package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"artscout/internal/app/server/api/http/middleware/auth"
	"artscout/internal/domain/favorite"
	"artscout/internal/domain/session"
	"artscout/internal/domain/user"
)

type Handler struct {
	service        user.Servicer
	session        session.Servicer
	favorites      favorite.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

func NewHandler(service user.Servicer, sess session.Servicer, favorites favorite.Servicer,
	log *slog.Logger, public, authed huma.Middlewares) *Handler {
	return &Handler{
		service:        service,
		session:        sess,
		favorites:      favorites,
		log:            log,
		middleware:     public,
		authMiddleware: authed,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.meOp(), h.me)
}

func sessionCookie(token string) http.Cookie {
	return http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	}
}

func clearedCookie() http.Cookie {
	return http.Cookie{
		Name:     auth.CookieName,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	if input.Body.Fullname == "" || input.Body.Email == "" || input.Body.Password == "" {
		return nil, huma.Error400BadRequest("All fields are required")
	}

	u, err := h.service.Register(ctx, input.Body.Fullname, input.Body.Email, input.Body.Password)
	switch {
	case errors.Is(err, user.ErrAlreadyExists):
		return nil, huma.Error400BadRequest("Email already exists")
	case errors.Is(err, user.ErrInvalidInput):
		return nil, huma.Error400BadRequest("All fields are required")
	case err != nil:
		h.log.Error("register failed", "error", err)
		return nil, huma.Error500InternalServerError("Internal Server Error")
	}

	token, err := h.session.Issue(session.Identity{UserID: u.ID, Email: u.Email}, session.RegisterTTL)
	if err != nil {
		h.log.Error("issue session token", "error", err)
		return nil, huma.Error500InternalServerError("Internal Server Error")
	}

	return &registerOutput{
		SetCookie: sessionCookie(token),
		Body: RegisterResponse{
			Message: "User registered successfully",
			User:    toUserInfo(u),
			Token:   token,
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		// Bad password and unknown user share one message.
		return nil, huma.Error400BadRequest("Username or password is incorrect.")
	}

	token, err := h.session.Issue(session.Identity{UserID: u.ID, Email: u.Email}, session.LoginTTL)
	if err != nil {
		h.log.Error("issue session token", "error", err)
		return nil, huma.Error500InternalServerError("Internal Server Error")
	}

	return &loginOutput{
		SetCookie: sessionCookie(token),
		Body: LoginResponse{
			User:  toUserInfo(u),
			Token: token,
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *logoutInput) (*logoutOutput, error) {
	return &logoutOutput{
		SetCookie: clearedCookie(),
		Body:      MessageResponse{Message: "Logout successful"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, _ *deleteInput) (*deleteOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	// Favorites go first so the account never outlives its data.
	if err := h.favorites.RemoveAll(ctx, identity.UserID); err != nil {
		h.log.Error("delete favorites", "error", err)
		return nil, huma.Error500InternalServerError("Internal Server Error")
	}
	if err := h.service.Delete(ctx, identity.UserID); err != nil {
		h.log.Error("delete account", "error", err)
		return nil, huma.Error500InternalServerError("Internal Server Error")
	}

	return &deleteOutput{
		SetCookie: clearedCookie(),
		Body:      MessageResponse{Message: "Account deleted successfully"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *meInput) (*meOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		h.log.Error("load current user", "error", err)
		return nil, huma.Error500InternalServerError("Internal Server Error")
	}

	return &meOutput{Body: toUserInfo(u)}, nil
}
