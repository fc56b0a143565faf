// Package models defines the persisted record types shared by the engines
// and the CRUD services.
package models

import (
	"time"

	"nitronflow/internal/uuid"

	"gorm.io/gorm"
)

// Base holds the columns every table carries: a UUIDv7 primary key,
// timestamps, and gorm's soft-delete marker.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate fills in the primary key when the caller has not already
// assigned one. The engines mint their own IDs from their clock; records
// created through the CRUD services get theirs here.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
