package favorite

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, f Favorite) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
	Delete(ctx context.Context, userID uuid.UUID, artistID string) (bool, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}
