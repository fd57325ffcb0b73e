package artsy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// ErrNotFound — каталог не нашел запрошенную сущность.
var ErrNotFound = errors.New("artsy: not found")

// UpstreamError — неожиданный статус от каталога.
type UpstreamError struct {
	Op         string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("artsy: %s failed with status %d", e.Op, e.StatusCode)
}

// Плейсхолдеры для сущностей без собственного изображения.
const (
	PlaceholderArtistImage  = "/images/artsy_logo.svg"
	PlaceholderSimilarImage = "/default-artist.png"
	PlaceholderArtworkImage = "/default-artwork.png"
)

// Artist — элемент результатов поиска и списка похожих художников.
type Artist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ArtistDetail — карточка художника. Пустые поля означают отсутствие
// данных в каталоге, подстановка заглушек — дело вызывающего кода.
type ArtistDetail struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Birthday    string `json:"birthday"`
	Deathday    string `json:"deathday"`
	Nationality string `json:"nationality"`
	Biography   string `json:"biography"`
	Image       string `json:"image"`
}

// Artwork — работа художника.
type Artwork struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Image string `json:"image"`
}

// Category — категория (ген) работы.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Client — HTTP-клиент каталога Artsy. Токен авторизации берется
// из TokenSource на каждый запрос.
type Client struct {
	baseURL string
	tokens  *TokenSource
	client  *http.Client
	log     *slog.Logger
}

// NewClient создает клиента каталога.
func NewClient(baseURL string, tokens *TokenSource, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// mdLinkRe вырезает markdown-ссылки, оставляя текст: [text](url) -> text.
var mdLinkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

func stripMdLinks(s string) string {
	return mdLinkRe.ReplaceAllString(s, "$1")
}

// selfID достает идентификатор сущности из self-ссылки HAL-ответа.
func selfID(href string) string {
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}

type halLink struct {
	Href string `json:"href"`
}

type halLinks struct {
	Self      halLink `json:"self"`
	Thumbnail halLink `json:"thumbnail"`
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("X-XAPP-Token", token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

type searchEnvelope struct {
	Embedded struct {
		Results []struct {
			Title string   `json:"title"`
			Links halLinks `json:"_links"`
		} `json:"results"`
	} `json:"_embedded"`
}

// SearchArtists ищет художников по имени; каталог опрашивается
// с type=artist и размером страницы 10.
func (c *Client) SearchArtists(ctx context.Context, query string) ([]Artist, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("size", "10")
	q.Set("type", "artist")

	var env searchEnvelope
	if err := c.get(ctx, "search artists", "/search", q, &env); err != nil {
		return nil, err
	}

	artists := make([]Artist, 0, len(env.Embedded.Results))
	for _, r := range env.Embedded.Results {
		name := r.Title
		if name == "" {
			name = "Unknown Artist"
		}
		image := r.Links.Thumbnail.Href
		if image == "" {
			image = PlaceholderArtistImage
		}
		artists = append(artists, Artist{
			ID:    selfID(r.Links.Self.Href),
			Name:  name,
			Image: image,
		})
	}
	return artists, nil
}

type artistEnvelope struct {
	Name        string   `json:"name"`
	Birthday    string   `json:"birthday"`
	Deathday    string   `json:"deathday"`
	Nationality string   `json:"nationality"`
	Biography   string   `json:"biography"`
	Links       halLinks `json:"_links"`
}

// Artist возвращает карточку художника. Поля отдаются как есть,
// без заглушек: пустая строка — сигнал отсутствия данных.
func (c *Client) Artist(ctx context.Context, id string) (*ArtistDetail, error) {
	var env artistEnvelope
	if err := c.get(ctx, "fetch artist", "/artists/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}
	return &ArtistDetail{
		ID:          id,
		Name:        env.Name,
		Birthday:    env.Birthday,
		Deathday:    env.Deathday,
		Nationality: env.Nationality,
		Biography:   stripMdLinks(env.Biography),
		Image:       env.Links.Thumbnail.Href,
	}, nil
}

type artworksEnvelope struct {
	Embedded struct {
		Artworks []struct {
			ID    string   `json:"id"`
			Title string   `json:"title"`
			Date  string   `json:"date"`
			Links halLinks `json:"_links"`
		} `json:"artworks"`
	} `json:"_embedded"`
}

// Artworks возвращает работы художника.
func (c *Client) Artworks(ctx context.Context, artistID string) ([]Artwork, error) {
	q := url.Values{}
	q.Set("artist_id", artistID)
	q.Set("size", "10")

	var env artworksEnvelope
	if err := c.get(ctx, "fetch artworks", "/artworks", q, &env); err != nil {
		return nil, err
	}

	artworks := make([]Artwork, 0, len(env.Embedded.Artworks))
	for _, a := range env.Embedded.Artworks {
		title := a.Title
		if title == "" {
			title = "Untitled"
		}
		date := a.Date
		if date == "" {
			date = "Unknown"
		}
		image := a.Links.Thumbnail.Href
		if image == "" {
			image = PlaceholderArtworkImage
		}
		artworks = append(artworks, Artwork{
			ID:    a.ID,
			Title: title,
			Date:  date,
			Image: image,
		})
	}
	return artworks, nil
}

type genesEnvelope struct {
	Embedded struct {
		Genes []struct {
			Name        string   `json:"name"`
			Description string   `json:"description"`
			Links       halLinks `json:"_links"`
		} `json:"genes"`
	} `json:"_embedded"`
}

// ArtworkCategories возвращает категории (гены) работы. Markdown-ссылки
// в описаниях заменяются своим текстом.
func (c *Client) ArtworkCategories(ctx context.Context, artworkID string) ([]Category, error) {
	q := url.Values{}
	q.Set("artwork_id", artworkID)

	var env genesEnvelope
	if err := c.get(ctx, "fetch categories", "/genes", q, &env); err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(env.Embedded.Genes))
	for _, g := range env.Embedded.Genes {
		name := g.Name
		if name == "" {
			name = "Unknown"
		}
		image := g.Links.Thumbnail.Href
		if image == "" {
			image = PlaceholderArtworkImage
		}
		categories = append(categories, Category{
			ID:          selfID(g.Links.Self.Href),
			Name:        name,
			Image:       image,
			Description: stripMdLinks(g.Description),
		})
	}
	return categories, nil
}

type similarEnvelope struct {
	Embedded struct {
		Artists []struct {
			Name  string   `json:"name"`
			Links halLinks `json:"_links"`
		} `json:"artists"`
	} `json:"_embedded"`
}

// SimilarArtists возвращает художников, похожих на заданного.
func (c *Client) SimilarArtists(ctx context.Context, artistID string) ([]Artist, error) {
	q := url.Values{}
	q.Set("similar_to_artist_id", artistID)

	var env similarEnvelope
	if err := c.get(ctx, "fetch similar artists", "/artists", q, &env); err != nil {
		return nil, err
	}

	artists := make([]Artist, 0, len(env.Embedded.Artists))
	for _, a := range env.Embedded.Artists {
		name := a.Name
		if name == "" {
			name = "Unknown Artist"
		}
		image := a.Links.Thumbnail.Href
		if image == "" {
			image = PlaceholderSimilarImage
		}
		artists = append(artists, Artist{
			ID:    selfID(a.Links.Self.Href),
			Name:  name,
			Image: image,
		})
	}
	return artists, nil
}
