package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// FavoritesCache — локальная копия избранного для офлайн-просмотра.
type FavoritesCache struct {
	db *sql.DB
}

func NewFavoritesCache(path string) (*FavoritesCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("открытие sqlite: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS favorites (
		artist_id TEXT PRIMARY KEY,
		artist_name TEXT NOT NULL,
		artist_image TEXT NOT NULL DEFAULT '',
		nationality TEXT NOT NULL DEFAULT '',
		birthday TEXT NOT NULL DEFAULT '',
		deathday TEXT NOT NULL DEFAULT '',
		added_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("создание схемы кеша: %w", err)
	}

	return &FavoritesCache{db: db}, nil
}

// Replace атомарно заменяет содержимое кеша серверным списком.
func (c *FavoritesCache) Replace(favorites []FavoriteItem) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("начало транзакции: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM favorites`); err != nil {
		return fmt.Errorf("очистка кеша: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO favorites
		(artist_id, artist_name, artist_image, nationality, birthday, deathday, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("подготовка запроса: %w", err)
	}
	defer stmt.Close()

	for _, f := range favorites {
		if _, err := stmt.Exec(f.ArtistID, f.ArtistName, f.ArtistImage,
			f.Nationality, f.Birthday, f.Deathday, f.AddedAt); err != nil {
			return fmt.Errorf("запись в кеш: %w", err)
		}
	}

	return tx.Commit()
}

// List возвращает закешированное избранное, новые записи первыми.
func (c *FavoritesCache) List() ([]FavoriteItem, error) {
	rows, err := c.db.Query(`SELECT artist_id, artist_name, artist_image,
		nationality, birthday, deathday, added_at
		FROM favorites ORDER BY added_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("чтение кеша: %w", err)
	}
	defer rows.Close()

	favorites := make([]FavoriteItem, 0)
	for rows.Next() {
		var f FavoriteItem
		var addedAt time.Time
		if err := rows.Scan(&f.ArtistID, &f.ArtistName, &f.ArtistImage,
			&f.Nationality, &f.Birthday, &f.Deathday, &addedAt); err != nil {
			return nil, fmt.Errorf("чтение строки кеша: %w", err)
		}
		f.AddedAt = addedAt
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// Clear вычищает кеш (используется при удалении аккаунта).
func (c *FavoritesCache) Clear() error {
	_, err := c.db.Exec(`DELETE FROM favorites`)
	return err
}

func (c *FavoritesCache) Close() error {
	return c.db.Close()
}
