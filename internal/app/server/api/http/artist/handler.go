package artist

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"artscout/internal/artsy"
)

// Catalog — операции каталога, нужные публичным ручкам.
type Catalog interface {
	SearchArtists(ctx context.Context, query string) ([]artsy.Artist, error)
	Artist(ctx context.Context, id string) (*artsy.ArtistDetail, error)
	Artworks(ctx context.Context, artistID string) ([]artsy.Artwork, error)
	ArtworkCategories(ctx context.Context, artworkID string) ([]artsy.Category, error)
	SimilarArtists(ctx context.Context, artistID string) ([]artsy.Artist, error)
}

type Handler struct {
	catalog    Catalog
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(catalog Catalog, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		catalog:    catalog,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.detailOp(), h.detail)
	huma.Register(api, h.artworksOp(), h.artworks)
	huma.Register(api, h.categoriesOp(), h.categories)
	huma.Register(api, h.similarOp(), h.similar)
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*searchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, huma.Error400BadRequest("Search query is required")
	}

	artists, err := h.catalog.SearchArtists(ctx, query)
	if err != nil {
		h.log.Error("search artists", "query", query, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch search results")
	}

	return &searchOutput{Body: SearchResponse{Artists: artists}}, nil
}

func (h *Handler) detail(ctx context.Context, input *detailInput) (*detailOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, huma.Error400BadRequest("Artist ID is required")
	}

	detail, err := h.catalog.Artist(ctx, id)
	if err != nil {
		if errors.Is(err, artsy.ErrNotFound) {
			return nil, huma.Error404NotFound("Artist not found")
		}
		h.log.Error("fetch artist details", "artist_id", id, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch artist details")
	}

	// Display fallbacks are applied here, not in the catalog client:
	// the favorites flow needs the raw fields to detect absence.
	if detail.Name == "" {
		detail.Name = "Unknown Artist"
	}
	if detail.Nationality == "" {
		detail.Nationality = "Unknown"
	}
	if detail.Image == "" {
		detail.Image = artsy.PlaceholderArtistImage
	}

	return &detailOutput{Body: *detail}, nil
}

func (h *Handler) artworks(ctx context.Context, input *artworksInput) (*artworksOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, huma.Error400BadRequest("Artist ID is required")
	}

	artworks, err := h.catalog.Artworks(ctx, id)
	if err != nil {
		h.log.Error("fetch artworks", "artist_id", id, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch artworks")
	}

	return &artworksOutput{Body: ArtworksResponse{Artworks: artworks}}, nil
}

func (h *Handler) categories(ctx context.Context, input *categoriesInput) (*categoriesOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, huma.Error400BadRequest("Artwork ID is required")
	}

	categories, err := h.catalog.ArtworkCategories(ctx, id)
	if err != nil {
		h.log.Error("fetch categories", "artwork_id", id, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch categories")
	}

	return &categoriesOutput{Body: CategoriesResponse{Categories: categories}}, nil
}

func (h *Handler) similar(ctx context.Context, input *similarInput) (*similarOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, huma.Error400BadRequest("Artist ID is required")
	}

	similar, err := h.catalog.SimilarArtists(ctx, id)
	if err != nil {
		h.log.Error("fetch similar artists", "artist_id", id, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch similar artists")
	}

	return &similarOutput{Body: SimilarResponse{Similar: similar}}, nil
}
