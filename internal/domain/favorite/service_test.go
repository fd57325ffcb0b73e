package favorite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"artscout/internal/artsy"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, f Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Favorite), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID uuid.UUID, artistID string) (bool, error) {
	args := m.Called(ctx, userID, artistID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) Artist(ctx context.Context, id string) (*artsy.ArtistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artsy.ArtistDetail), args.Error(1)
}

func newTestService() (*Service, *MockRepository, *MockLookup) {
	repo := new(MockRepository)
	lookup := new(MockLookup)
	return NewService(repo, lookup, slog.Default()), repo, lookup
}

func TestService_Add_WithCompleteCandidate(t *testing.T) {
	service, repo, lookup := newTestService()
	userID := uuid.New()

	c := Candidate{
		ArtistID:    "pablo-picasso",
		ArtistName:  "Pablo Picasso",
		Nationality: "Spanish",
		Birthday:    "1881",
	}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(f Favorite) bool {
		return f.UserID == userID && f.ArtistID == c.ArtistID && f.Nationality == "Spanish"
	})).Return(nil)

	f, err := service.Add(context.Background(), userID, c)
	require.NoError(t, err)
	assert.Equal(t, "Pablo Picasso", f.ArtistName)
	assert.False(t, f.AddedAt.IsZero())

	// Каталог не опрашивается, когда карточка уже заполнена.
	lookup.AssertNotCalled(t, "Artist")
	repo.AssertExpectations(t)
}

func TestService_Add_EnrichesWhenBothFieldsMissing(t *testing.T) {
	service, repo, lookup := newTestService()
	userID := uuid.New()

	lookup.On("Artist", mock.Anything, "pablo-picasso").Return(&artsy.ArtistDetail{
		ID:          "pablo-picasso",
		Name:        "Pablo Picasso",
		Nationality: "Spanish",
		Birthday:    "1881",
		Deathday:    "1973",
		Image:       "https://img.example.com/picasso.jpg",
	}, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("Favorite")).Return(nil)

	f, err := service.Add(context.Background(), userID, Candidate{
		ArtistID:   "pablo-picasso",
		ArtistName: "Pablo Picasso",
	})
	require.NoError(t, err)
	assert.Equal(t, "Spanish", f.Nationality)
	assert.Equal(t, "1881", f.Birthday)
	assert.Equal(t, "1973", f.Deathday)
	assert.Equal(t, "https://img.example.com/picasso.jpg", f.ArtistImage)
}

func TestService_Add_EnrichmentKeepsCallerFields(t *testing.T) {
	service, repo, lookup := newTestService()
	userID := uuid.New()

	lookup.On("Artist", mock.Anything, "claude-monet").Return(&artsy.ArtistDetail{
		ID:          "claude-monet",
		Name:        "Claude Monet",
		Nationality: "French",
		Birthday:    "1840",
		Deathday:    "1926-fetched",
	}, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("Favorite")).Return(nil)

	// Национальность и год рождения пустые, поэтому каталог опрашивается,
	// но присланный клиентом год смерти не должен затираться.
	f, err := service.Add(context.Background(), userID, Candidate{
		ArtistID:   "claude-monet",
		ArtistName: "Claude Monet",
		Deathday:   "1926-caller",
	})
	require.NoError(t, err)
	assert.Equal(t, "French", f.Nationality)
	assert.Equal(t, "1840", f.Birthday)
	assert.Equal(t, "1926-caller", f.Deathday)
}

func TestService_Add_SkipsEnrichmentWhenAnyFieldPresent(t *testing.T) {
	service, repo, lookup := newTestService()
	userID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("Favorite")).Return(nil)

	// Достаточно одного заполненного поля, чтобы не ходить в каталог.
	f, err := service.Add(context.Background(), userID, Candidate{
		ArtistID:   "pablo-picasso",
		ArtistName: "Pablo Picasso",
		Birthday:   "1881",
	})
	require.NoError(t, err)
	assert.Equal(t, "1881", f.Birthday)
	assert.Empty(t, f.Nationality)

	lookup.AssertNotCalled(t, "Artist")
}

func TestService_Add_LookupNotFoundIsNotFatal(t *testing.T) {
	service, repo, lookup := newTestService()
	userID := uuid.New()

	lookup.On("Artist", mock.Anything, "ghost").Return(nil, artsy.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("Favorite")).Return(nil)

	f, err := service.Add(context.Background(), userID, Candidate{
		ArtistID:   "ghost",
		ArtistName: "Ghost Artist",
	})
	require.NoError(t, err)
	assert.Empty(t, f.Nationality)
	assert.Empty(t, f.Birthday)
}

func TestService_Add_LookupFailureIsNotFatal(t *testing.T) {
	service, repo, lookup := newTestService()
	userID := uuid.New()

	lookup.On("Artist", mock.Anything, "pablo-picasso").Return(nil, errors.New("upstream down"))
	repo.On("Create", mock.Anything, mock.AnythingOfType("Favorite")).Return(nil)

	_, err := service.Add(context.Background(), userID, Candidate{
		ArtistID:   "pablo-picasso",
		ArtistName: "Pablo Picasso",
	})
	require.NoError(t, err)
}

func TestService_Add_MissingRequiredFields(t *testing.T) {
	service, repo, _ := newTestService()
	userID := uuid.New()

	_, err := service.Add(context.Background(), userID, Candidate{ArtistName: "No ID"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Add(context.Background(), userID, Candidate{ArtistID: "no-name"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "Create")
}

func TestService_Add_Duplicate(t *testing.T) {
	service, repo, _ := newTestService()
	userID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("Favorite")).Return(ErrAlreadyExists)

	_, err := service.Add(context.Background(), userID, Candidate{
		ArtistID:   "pablo-picasso",
		ArtistName: "Pablo Picasso",
		Birthday:   "1881",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_List(t *testing.T) {
	service, repo, _ := newTestService()
	userID := uuid.New()

	stored := []Favorite{
		{ArtistID: "b", AddedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ArtistID: "a", AddedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	repo.On("ListByUser", mock.Anything, userID).Return(stored, nil)

	favorites, err := service.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, stored, favorites)
}

func TestService_Remove(t *testing.T) {
	service, repo, _ := newTestService()
	userID := uuid.New()

	repo.On("Delete", mock.Anything, userID, "pablo-picasso").Return(true, nil)

	assert.NoError(t, service.Remove(context.Background(), userID, "pablo-picasso"))
	repo.AssertExpectations(t)
}

func TestService_Remove_NotFound(t *testing.T) {
	service, repo, _ := newTestService()
	userID := uuid.New()

	repo.On("Delete", mock.Anything, userID, "ghost").Return(false, nil)

	err := service.Remove(context.Background(), userID, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_RemoveAll(t *testing.T) {
	service, repo, _ := newTestService()
	userID := uuid.New()

	repo.On("DeleteAllForUser", mock.Anything, userID).Return(nil)

	assert.NoError(t, service.RemoveAll(context.Background(), userID))
	repo.AssertExpectations(t)
}
