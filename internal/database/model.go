package database

import "time"

// Model is the base embedded by every table model. It contributes an
// auto-incrementing integer primary key and automatically maintained
// created_at / updated_at timestamps.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// GetID returns the record's primary key.
func (m *Model) GetID() uint { return m.ID }

// SetID overrides the record's primary key. Used by the association upsert
// to redirect a save onto an existing row.
func (m *Model) SetID(id uint) { m.ID = id }
