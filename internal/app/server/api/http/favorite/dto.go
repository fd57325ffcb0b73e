package favorite

import "artscout/internal/domain/favorite"

type listInput struct{}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Favorites []favorite.Favorite `json:"favorites"`
}

type addInput struct {
	Body struct {
		ArtistID    string `json:"artistId,omitempty" required:"false"`
		ArtistName  string `json:"artistName,omitempty" required:"false"`
		ArtistImage string `json:"artistImage,omitempty" required:"false"`
		Nationality string `json:"nationality,omitempty" required:"false"`
		Birthday    string `json:"birthday,omitempty" required:"false"`
		Deathday    string `json:"deathday,omitempty" required:"false"`
	}
}

type addOutput struct {
	Body AddResponse
}

type AddResponse struct {
	Favorite favorite.Favorite `json:"favorite"`
}

type removeInput struct {
	ArtistID string `path:"artistId"`
}

type removeOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}
