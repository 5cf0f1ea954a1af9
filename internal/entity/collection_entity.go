package entity

import (
	"time"

	"github.com/google/uuid"
)

type Collection struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
