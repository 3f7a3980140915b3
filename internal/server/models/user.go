// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Age          int
	Hobbies      string
	PasswordHash string
	CreatedAt    time.Time
}
