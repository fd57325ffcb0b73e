package favorite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"artscout/internal/app/server/api/http/middleware/auth"
	"artscout/internal/domain/favorite"
	"artscout/internal/domain/session"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, userID uuid.UUID, c favorite.Candidate) (favorite.Favorite, error) {
	args := m.Called(ctx, userID, c)
	return args.Get(0).(favorite.Favorite), args.Error(1)
}

func (m *MockService) List(ctx context.Context, userID uuid.UUID) ([]favorite.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]favorite.Favorite), args.Error(1)
}

func (m *MockService) Remove(ctx context.Context, userID uuid.UUID, artistID string) error {
	args := m.Called(ctx, userID, artistID)
	return args.Error(0)
}

func (m *MockService) RemoveAll(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func authedCtx(userID uuid.UUID) context.Context {
	return auth.WithIdentity(context.Background(),
		session.Identity{UserID: userID, Email: "john@example.com"})
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	var status huma.StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, code, status.GetStatus())
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	userID := uuid.New()
	stored := []favorite.Favorite{
		{ArtistID: "b", ArtistName: "B", AddedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ArtistID: "a", ArtistName: "A", AddedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	svc.On("List", mock.Anything, userID).Return(stored, nil)

	out, err := h.list(authedCtx(userID), &listInput{})
	require.NoError(t, err)
	assert.Equal(t, stored, out.Body.Favorites)
}

func TestHandler_List_NoIdentity(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	_, err := h.list(context.Background(), &listInput{})
	requireStatus(t, err, 401)
	svc.AssertNotCalled(t, "List")
}

func TestHandler_Add(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	userID := uuid.New()
	stored := favorite.Favorite{
		UserID:     userID,
		ArtistID:   "pablo-picasso",
		ArtistName: "Pablo Picasso",
		AddedAt:    time.Now().UTC(),
	}
	svc.On("Add", mock.Anything, userID, favorite.Candidate{
		ArtistID:   "pablo-picasso",
		ArtistName: "Pablo Picasso",
	}).Return(stored, nil)

	input := &addInput{}
	input.Body.ArtistID = "pablo-picasso"
	input.Body.ArtistName = "Pablo Picasso"

	out, err := h.add(authedCtx(userID), input)
	require.NoError(t, err)
	assert.Equal(t, stored, out.Body.Favorite)
}

func TestHandler_Add_MissingFields(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	userID := uuid.New()
	svc.On("Add", mock.Anything, userID, mock.AnythingOfType("favorite.Candidate")).
		Return(favorite.Favorite{}, favorite.ErrInvalidInput)

	input := &addInput{}
	input.Body.ArtistName = "No ID"

	_, err := h.add(authedCtx(userID), input)
	requireStatus(t, err, 400)
	assert.Contains(t, err.Error(), "Required artist ID or Name missing")
}

func TestHandler_Add_Duplicate(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	userID := uuid.New()
	svc.On("Add", mock.Anything, userID, mock.AnythingOfType("favorite.Candidate")).
		Return(favorite.Favorite{}, favorite.ErrAlreadyExists)

	input := &addInput{}
	input.Body.ArtistID = "pablo-picasso"
	input.Body.ArtistName = "Pablo Picasso"

	_, err := h.add(authedCtx(userID), input)
	requireStatus(t, err, 409)
	assert.Contains(t, err.Error(), "Artist already in favorites")
}

func TestHandler_Remove(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	userID := uuid.New()
	svc.On("Remove", mock.Anything, userID, "pablo-picasso").Return(nil)

	out, err := h.remove(authedCtx(userID), &removeInput{ArtistID: "pablo-picasso"})
	require.NoError(t, err)
	assert.Equal(t, "Artist removed from favorites", out.Body.Message)
}

func TestHandler_Remove_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	userID := uuid.New()
	svc.On("Remove", mock.Anything, userID, "ghost").Return(favorite.ErrNotFound)

	_, err := h.remove(authedCtx(userID), &removeInput{ArtistID: "ghost"})
	requireStatus(t, err, 404)
	assert.Contains(t, err.Error(), "Favorite not found for this user.")
}

func TestHandler_Remove_InternalError(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	userID := uuid.New()
	svc.On("Remove", mock.Anything, userID, "pablo-picasso").Return(errors.New("database error"))

	_, err := h.remove(authedCtx(userID), &removeInput{ArtistID: "pablo-picasso"})
	requireStatus(t, err, 500)
}
