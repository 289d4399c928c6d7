// snapshot_service.go
//
// Durable persistence of the business state as a single JSON document in a
// one-row table, upserted on every applied command.

package services

import (
	"encoding/json"
	"fmt"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotService reads and writes the state snapshot row.
type SnapshotService struct {
	db *gorm.DB
}

// NewSnapshotService builds a service over an already migrated database.
func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// SaveSnapshot upserts the state document under the fixed snapshot key.
func (s *SnapshotService) SaveSnapshot(state store.State) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	row := models.StateSnapshot{
		SnapshotKey:   models.SnapshotKey,
		SchemaVersion: models.SnapshotSchemaVersion,
		Document:      datatypes.JSON(doc),
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"schema_version", "document", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the persisted state. A missing row yields a fresh
// default state; a schema version other than the one this build writes is an
// error so an operator decides about migration instead of the data being
// silently reinterpreted.
func (s *SnapshotService) LoadSnapshot() (store.State, error) {
	var row models.StateSnapshot
	err := s.db.Where("snapshot_key = ?", models.SnapshotKey).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return store.NewState(), nil
		}
		return store.State{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if row.SchemaVersion != models.SnapshotSchemaVersion {
		return store.State{}, fmt.Errorf("snapshot schema version %d is not supported (expected %d)",
			row.SchemaVersion, models.SnapshotSchemaVersion)
	}

	state := store.NewState()
	if err := json.Unmarshal(row.Document, &state); err != nil {
		return store.State{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return state.Persistable(), nil
}
