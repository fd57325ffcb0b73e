package client

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"
)

// ToggleState — фаза переключения избранного для одного художника.
type ToggleState int

const (
	StateIdle ToggleState = iota
	StatePending
	StateCommitted
	StateRolledBack
)

// ToggleOutcome — итог одного переключения.
type ToggleOutcome struct {
	ArtistID string
	Favorite bool
	State    ToggleState
	Err      error
}

type favoritesBackend interface {
	AddFavorite(ctx context.Context, req AddFavoriteRequest) (FavoriteItem, error)
	RemoveFavorite(ctx context.Context, artistID string) error
}

type itemState struct {
	favorite bool
	state    ToggleState
}

// FavoriteSession ведет оптимистичные переключения избранного на одном
// экране: состояние в интерфейсе меняется сразу, запрос уходит в фоне,
// при ошибке состояние откатывается. Повторный тап до завершения
// предыдущего запроса просто запускает второй запрос.
type FavoriteSession struct {
	backend favoritesBackend
	log     *slog.Logger

	mu       sync.Mutex
	items    map[string]*itemState
	modified bool
	wg       sync.WaitGroup
}

func NewFavoriteSession(backend favoritesBackend, log *slog.Logger) *FavoriteSession {
	return &FavoriteSession{
		backend: backend,
		log:     log,
		items:   make(map[string]*itemState),
	}
}

// SetInitial фиксирует исходное состояние художника при открытии экрана.
func (s *FavoriteSession) SetInitial(artistID string, favorite bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[artistID] = &itemState{favorite: favorite, state: StateIdle}
}

// IsFavorite возвращает текущее (оптимистичное) состояние для интерфейса.
func (s *FavoriteSession) IsFavorite(artistID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[artistID]; ok {
		return item.favorite
	}
	return false
}

// Toggle переключает художника: интерфейс меняется немедленно, результат
// серверного вызова приходит в канал. Откат выполняется до отправки итога.
func (s *FavoriteSession) Toggle(ctx context.Context, req AddFavoriteRequest) <-chan ToggleOutcome {
	done := make(chan ToggleOutcome, 1)

	s.mu.Lock()
	item, ok := s.items[req.ArtistID]
	if !ok {
		item = &itemState{}
		s.items[req.ArtistID] = item
	}
	previous := item.favorite
	item.favorite = !previous
	item.state = StatePending
	target := item.favorite
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var err error
		if target {
			_, err = s.backend.AddFavorite(ctx, req)
		} else {
			err = s.backend.RemoveFavorite(ctx, req.ArtistID)
		}

		s.mu.Lock()
		if err != nil {
			// Откат к состоянию до этого переключения.
			item.favorite = previous
			item.state = StateRolledBack
			s.log.Debug("Переключение избранного не удалось, откат",
				"artist_id", req.ArtistID, "error", err)
		} else {
			item.state = StateCommitted
			s.modified = true
		}
		favorite := item.favorite
		state := item.state
		s.mu.Unlock()

		done <- ToggleOutcome{
			ArtistID: req.ArtistID,
			Favorite: favorite,
			State:    state,
			Err:      err,
		}
	}()

	return done
}

// Wait дожидается всех запущенных переключений.
func (s *FavoriteSession) Wait() {
	s.wg.Wait()
}

// ConsumeModified отдает признак «избранное менялось» ровно один раз:
// родительский экран читает его при возврате и сразу сбрасывает.
// Успешное переключение взводит признак навсегда в рамках сессии,
// более поздняя неудача по другому художнику его не гасит.
func (s *FavoriteSession) ConsumeModified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	modified := s.modified
	s.modified = false
	return modified
}
