package services

import (
	"testing"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StateSnapshot{}))
	return db
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc := NewSnapshotService(testDB(t))

	state := store.NewState()
	state.Buildings = append(state.Buildings, models.Building{
		ID:             "b1",
		Name:           "Gül Apartmanı",
		ElevatorCount:  2,
		MaintenanceFee: decimal.NewFromInt(500),
		Debt:           decimal.NewFromInt(1250),
	})
	state.Parts = append(state.Parts, models.Part{ID: "p1", Name: "Halat", Quantity: 10})

	require.NoError(t, svc.SaveSnapshot(state))

	loaded, err := svc.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, loaded.Buildings, 1)
	assert.Equal(t, "Gül Apartmanı", loaded.Buildings[0].Name)
	assert.True(t, loaded.Buildings[0].Debt.Equal(decimal.NewFromInt(1250)))
	require.Len(t, loaded.Parts, 1)
	assert.Equal(t, "Halat", loaded.Parts[0].Name)
}

func TestSnapshotSaveOverwritesPreviousRow(t *testing.T) {
	db := testDB(t)
	svc := NewSnapshotService(db)

	first := store.NewState()
	first.Buildings = append(first.Buildings, models.Building{ID: "b1", Name: "Eski"})
	require.NoError(t, svc.SaveSnapshot(first))

	second := store.NewState()
	second.Buildings = append(second.Buildings, models.Building{ID: "b1", Name: "Yeni"})
	require.NoError(t, svc.SaveSnapshot(second))

	var count int64
	require.NoError(t, db.Model(&models.StateSnapshot{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, err := svc.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, loaded.Buildings, 1)
	assert.Equal(t, "Yeni", loaded.Buildings[0].Name)
}

func TestLoadSnapshotMissingRowYieldsFreshState(t *testing.T) {
	svc := NewSnapshotService(testDB(t))

	loaded, err := svc.LoadSnapshot()
	require.NoError(t, err)
	assert.Empty(t, loaded.Buildings)
	require.Len(t, loaded.Users, 3)
	assert.Equal(t, "Admin User", loaded.Users[0].Name)
}

func TestLoadSnapshotRejectsUnknownSchemaVersion(t *testing.T) {
	db := testDB(t)
	svc := NewSnapshotService(db)

	require.NoError(t, svc.SaveSnapshot(store.NewState()))
	require.NoError(t, db.Model(&models.StateSnapshot{}).
		Where("snapshot_key = ?", models.SnapshotKey).
		Update("schema_version", models.SnapshotSchemaVersion+1).Error)

	_, err := svc.LoadSnapshot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version")
}
