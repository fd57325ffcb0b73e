package artist

import "artscout/internal/artsy"

type searchInput struct {
	Query string `path:"query" doc:"Artist name to search for"`
}

type searchOutput struct {
	Body SearchResponse
}

type SearchResponse struct {
	Artists []artsy.Artist `json:"artists"`
}

type detailInput struct {
	ID string `path:"id"`
}

type detailOutput struct {
	Body artsy.ArtistDetail
}

type artworksInput struct {
	ID string `path:"id"`
}

type artworksOutput struct {
	Body ArtworksResponse
}

type ArtworksResponse struct {
	Artworks []artsy.Artwork `json:"artworks"`
}

type categoriesInput struct {
	ID string `path:"id"`
}

type categoriesOutput struct {
	Body CategoriesResponse
}

type CategoriesResponse struct {
	Categories []artsy.Category `json:"categories"`
}

type similarInput struct {
	ID string `path:"id"`
}

type similarOutput struct {
	Body SimilarResponse
}

type SimilarResponse struct {
	Similar []artsy.Artist `json:"similar"`
}
