package client

import "time"

// Клиентские модели повторяют JSON-контракт сервера.

type User struct {
	ID              string `json:"id"`
	Fullname        string `json:"fullname"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type Artist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type ArtistDetail struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Birthday    string `json:"birthday"`
	Deathday    string `json:"deathday"`
	Nationality string `json:"nationality"`
	Biography   string `json:"biography"`
	Image       string `json:"image"`
}

type Artwork struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Image string `json:"image"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type FavoriteItem struct {
	ArtistID    string    `json:"artistId"`
	ArtistName  string    `json:"artistName"`
	ArtistImage string    `json:"artistImage,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	Birthday    string    `json:"birthday,omitempty"`
	Deathday    string    `json:"deathday,omitempty"`
	AddedAt     time.Time `json:"addedAt"`
}

type AddFavoriteRequest struct {
	ArtistID    string `json:"artistId"`
	ArtistName  string `json:"artistName"`
	ArtistImage string `json:"artistImage,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Birthday    string `json:"birthday,omitempty"`
	Deathday    string `json:"deathday,omitempty"`
}

type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
