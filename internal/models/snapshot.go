package models

import (
	"time"

	"gorm.io/datatypes"
)

// SnapshotSchemaVersion tags persisted snapshots so a document written by a
// different release is refused instead of silently misread.
const SnapshotSchemaVersion = 1

// SnapshotKey is the single storage key the whole application state lives under.
const SnapshotKey = "tknlift-app-state"

// StateSnapshot is the persisted form of the domain state: one row, one JSON
// document, rewritten wholesale after every applied command.
type StateSnapshot struct {
	SnapshotID    uint64         `gorm:"primaryKey;autoIncrement"`
	SnapshotKey   string         `gorm:"uniqueIndex;size:64;not null"`
	SchemaVersion uint64         `gorm:"not null;default:1"`
	Document      datatypes.JSON `gorm:"type:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the table name for StateSnapshot
func (StateSnapshot) TableName() string {
	return "state_snapshots"
}
