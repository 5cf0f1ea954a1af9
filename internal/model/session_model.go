package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Session struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID      `gorm:"type:uuid;not null;index"`
	CollectionId      *uuid.UUID     `gorm:"type:uuid;index"`
	InputText         string         `gorm:"type:text;not null"`
	SessionType       string         `gorm:"type:varchar(20);not null"`
	OutputSummary     *string        `gorm:"type:text"`
	OutputExplanation datatypes.JSON `gorm:"type:jsonb"`
	OutputExercises   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime;index"`
}

func (Session) TableName() string {
	return "sessions"
}
