package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"artscout/internal/domain/favorite"
)

func NewFavoriteRepository(pool *pgxpool.Pool, log *slog.Logger) *FavoriteRepository {
	return &FavoriteRepository{
		pool: pool,
		log:  log,
	}
}

type FavoriteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *FavoriteRepository) Create(ctx context.Context, f favorite.Favorite) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO favorites (user_id, artist_id, artist_name, artist_image, nationality, birthday, deathday, added_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.UserID, f.ArtistID, f.ArtistName, f.ArtistImage, f.Nationality, f.Birthday, f.Deathday, f.AddedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return favorite.ErrAlreadyExists
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]favorite.Favorite, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, artist_id, artist_name, artist_image, nationality, birthday, deathday, added_at
		 FROM favorites WHERE user_id = $1 ORDER BY added_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]favorite.Favorite, 0)
	for rows.Next() {
		var f favorite.Favorite
		if err := rows.Scan(&f.UserID, &f.ArtistID, &f.ArtistName, &f.ArtistImage,
			&f.Nationality, &f.Birthday, &f.Deathday, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return favorites, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID uuid.UUID, artistID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND artist_id = $2`, userID, artistID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *FavoriteRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete favorites: %w", err)
	}
	return nil
}
