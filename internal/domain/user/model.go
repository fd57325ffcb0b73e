package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID
	Fullname        string
	Email           string
	PasswordHash    string
	ProfileImageURL string
	CreatedAt       time.Time
}
