package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCollectionID filters sessions by their collection.
type ByCollectionID struct {
	CollectionID uuid.UUID
}

func (s ByCollectionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("collection_id = ?", s.CollectionID)
}

// ByCollectionIDs filters sessions belonging to any of the given collections.
type ByCollectionIDs struct {
	CollectionIDs []uuid.UUID
}

func (s ByCollectionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("collection_id IN ?", s.CollectionIDs)
}
