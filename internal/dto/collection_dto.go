package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCollectionRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type UpdateCollectionRequest struct {
	Id          uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required"`
	Description *string   `json:"description"`
}

type CollectionDTO struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SessionSummaryDTO struct {
	Id          uuid.UUID `json:"id"`
	SessionType string    `json:"sessionType"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CollectionListItemDTO struct {
	CollectionDTO
	SessionCount   int                 `json:"sessionCount"`
	RecentSessions []SessionSummaryDTO `json:"recentSessions"`
}

type CollectionDetailDTO struct {
	CollectionDTO
	Sessions []SessionDTO `json:"sessions"`
}
