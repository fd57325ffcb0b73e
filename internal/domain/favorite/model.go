package favorite

import (
	"time"

	"github.com/google/uuid"
)

// Favorite — денормализованная запись избранного художника:
// данные карточки фиксируются в момент добавления.
type Favorite struct {
	UserID      uuid.UUID `json:"-"`
	ArtistID    string    `json:"artistId"`
	ArtistName  string    `json:"artistName"`
	ArtistImage string    `json:"artistImage,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	Birthday    string    `json:"birthday,omitempty"`
	Deathday    string    `json:"deathday,omitempty"`
	AddedAt     time.Time `json:"addedAt"`
}

// Candidate — данные художника, переданные клиентом при добавлении.
type Candidate struct {
	ArtistID    string
	ArtistName  string
	ArtistImage string
	Nationality string
	Birthday    string
	Deathday    string
}
