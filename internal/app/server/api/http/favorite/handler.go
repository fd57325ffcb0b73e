package favorite

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"artscout/internal/app/server/api/http/middleware/auth"
	"artscout/internal/domain/favorite"
)

type Handler struct {
	service    favorite.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service favorite.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.removeOp(), h.remove)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	favorites, err := h.service.List(ctx, identity.UserID)
	if err != nil {
		h.log.Error("list favorites", "user_id", identity.UserID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch favorites")
	}

	return &listOutput{Body: ListResponse{Favorites: favorites}}, nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*addOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	f, err := h.service.Add(ctx, identity.UserID, favorite.Candidate{
		ArtistID:    input.Body.ArtistID,
		ArtistName:  input.Body.ArtistName,
		ArtistImage: input.Body.ArtistImage,
		Nationality: input.Body.Nationality,
		Birthday:    input.Body.Birthday,
		Deathday:    input.Body.Deathday,
	})
	switch {
	case errors.Is(err, favorite.ErrInvalidInput):
		return nil, huma.Error400BadRequest("Required artist ID or Name missing")
	case errors.Is(err, favorite.ErrAlreadyExists):
		return nil, huma.Error409Conflict("Artist already in favorites")
	case err != nil:
		h.log.Error("add favorite", "user_id", identity.UserID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to add favorite due to an internal error")
	}

	return &addOutput{Body: AddResponse{Favorite: f}}, nil
}

func (h *Handler) remove(ctx context.Context, input *removeInput) (*removeOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Remove(ctx, identity.UserID, input.ArtistID)
	switch {
	case errors.Is(err, favorite.ErrNotFound):
		return nil, huma.Error404NotFound("Favorite not found for this user.")
	case err != nil:
		h.log.Error("remove favorite", "user_id", identity.UserID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to remove favorite")
	}

	return &removeOutput{Body: MessageResponse{Message: "Artist removed from favorites"}}, nil
}
