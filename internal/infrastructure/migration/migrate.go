package migration

import (
	"errors"
	"fmt"

	"artscout/internal/app/server/config"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator — минимальный срез библиотечного migrate.Migrate.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// Engine — фабрика мигратора; в тестах подменяется, чтобы не трогать ФС и БД.
type Engine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	sourceURL   string
	databaseURL string
	engine      Engine
}

func NewMigration(cfg *config.Config, engine Engine) *Migration {
	return &Migration{
		sourceURL:   "file://" + cfg.DB.Migrations,
		databaseURL: cfg.DB.DatabaseURI,
		engine:      engine,
	}
}

// DefaultEngine строит настоящий мигратор поверх файлового источника.
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up применяет все недостающие миграции; отсутствие изменений не ошибка.
func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.sourceURL, mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
