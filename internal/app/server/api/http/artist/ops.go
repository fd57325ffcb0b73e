package artist

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "artist-search",
		Method:      http.MethodGet,
		Path:        "/api/search/{query}",
		Summary:     "Поиск художников",
		Tags:        []string{"artists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) detailOp() huma.Operation {
	return huma.Operation{
		OperationID: "artist-detail",
		Method:      http.MethodGet,
		Path:        "/api/artist/{id}",
		Summary:     "Карточка художника",
		Tags:        []string{"artists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) artworksOp() huma.Operation {
	return huma.Operation{
		OperationID: "artist-artworks",
		Method:      http.MethodGet,
		Path:        "/api/artist/{id}/artworks",
		Summary:     "Работы художника",
		Tags:        []string{"artists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) categoriesOp() huma.Operation {
	return huma.Operation{
		OperationID: "artwork-categories",
		Method:      http.MethodGet,
		Path:        "/api/artwork/{id}/categories",
		Summary:     "Категории работы",
		Tags:        []string{"artists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) similarOp() huma.Operation {
	return huma.Operation{
		OperationID: "artist-similar",
		Method:      http.MethodGet,
		Path:        "/api/artist/{id}/similar",
		Summary:     "Похожие художники",
		Tags:        []string{"artists"},
		Middlewares: h.middleware,
	}
}
