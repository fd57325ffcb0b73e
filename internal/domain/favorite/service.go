package favorite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"artscout/internal/artsy"
)

// ArtistLookup — доступ к каталогу для обогащения добавляемой записи.
type ArtistLookup interface {
	Artist(ctx context.Context, id string) (*artsy.ArtistDetail, error)
}

type Servicer interface {
	Add(ctx context.Context, userID uuid.UUID, c Candidate) (Favorite, error)
	List(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
	Remove(ctx context.Context, userID uuid.UUID, artistID string) error
	RemoveAll(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	repo   Repository
	lookup ArtistLookup
	log    *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, lookup ArtistLookup, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		lookup: lookup,
		now:    time.Now,
		log:    log,
	}
}

// Add добавляет художника в избранное. Если клиент не передал ни
// национальности, ни года рождения, карточка дотягивается из каталога;
// неудача обогащения не мешает добавлению.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, c Candidate) (Favorite, error) {
	if c.ArtistID == "" || c.ArtistName == "" {
		return Favorite{}, ErrInvalidInput
	}

	f := Favorite{
		UserID:      userID,
		ArtistID:    c.ArtistID,
		ArtistName:  c.ArtistName,
		ArtistImage: c.ArtistImage,
		Nationality: c.Nationality,
		Birthday:    c.Birthday,
		Deathday:    c.Deathday,
		AddedAt:     s.now().UTC(),
	}

	if c.Nationality == "" && c.Birthday == "" {
		detail, err := s.lookup.Artist(ctx, c.ArtistID)
		switch {
		case errors.Is(err, artsy.ErrNotFound):
			s.log.Debug("artist not found in catalog, saving as provided", "artist_id", c.ArtistID)
		case err != nil:
			s.log.Warn("artist enrichment failed, saving as provided",
				"artist_id", c.ArtistID, "error", err)
		default:
			// Данные клиента всегда сильнее каталога.
			f.ArtistName = firstNonEmpty(c.ArtistName, detail.Name)
			f.Nationality = firstNonEmpty(c.Nationality, detail.Nationality)
			f.Birthday = firstNonEmpty(c.Birthday, detail.Birthday)
			f.Deathday = firstNonEmpty(c.Deathday, detail.Deathday)
			f.ArtistImage = preferredImage(c.ArtistImage, detail.Image)
		}
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Favorite{}, err
	}
	return f, nil
}

// List возвращает избранное пользователя, новые записи первыми.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Favorite, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// Remove удаляет художника из избранного пользователя.
func (s *Service) Remove(ctx context.Context, userID uuid.UUID, artistID string) error {
	deleted, err := s.repo.Delete(ctx, userID, artistID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// RemoveAll вычищает избранное при удалении аккаунта.
func (s *Service) RemoveAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.DeleteAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("remove all favorites: %w", err)
	}
	return nil
}
