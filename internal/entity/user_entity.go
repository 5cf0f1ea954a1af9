package entity

import (
	"time"

	"github.com/google/uuid"
)

type LanguagePref string

const (
	LanguagePrefEnglish LanguagePref = "english"
	LanguagePrefArabic  LanguagePref = "arabic"
)

func (l LanguagePref) Valid() bool {
	return l == LanguagePrefEnglish || l == LanguagePrefArabic
}

type User struct {
	Id           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	LanguagePref LanguagePref
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
