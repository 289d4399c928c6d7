package database_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/TKNasansor/TKNLIFT/internal/config"
	"github.com/TKNasansor/TKNLIFT/internal/database"
	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/services"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestSnapshotAgainstMariaDB runs the save/load cycle against a real MariaDB
// started with testcontainers. Skipped in -short runs and wherever Docker is
// not available.
func TestSnapshotAgainstMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container-backed test in short mode")
	}

	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mariadb:11.4"
	}

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "root",
				"MYSQL_DATABASE":      "tknlift",
				"MYSQL_USER":          "tknlift",
				"MYSQL_PASSWORD":      "tknlift",
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Could not start MariaDB container: %v", err)
	}
	defer func() {
		if err := dbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB: %v", err)
		}
	}()

	host, err := dbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to resolve container host: %v", err)
	}
	mappedPort, err := dbContainer.MappedPort(ctx, tcpPort)
	if err != nil {
		t.Fatalf("Failed to resolve mapped port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            host,
		DBPort:            mappedPort.Port(),
		DBDatabase:        "tknlift",
		DBUser:            "tknlift",
		DBPassword:        "tknlift",
		DBConnectionLimit: 4,
	}

	// The listening port opens before the server accepts credentials, so
	// retry the initial connection for a while.
	gormDB, err := database.Connect(cfg)
	for i := 0; i < 30 && err != nil; i++ {
		time.Sleep(1 * time.Second)
		gormDB, err = database.Connect(cfg)
	}
	if err != nil {
		t.Fatalf("MariaDB not ready after 30 seconds: %v", err)
	}
	defer database.Close(gormDB)

	svc := services.NewSnapshotService(gormDB)

	state := store.NewState()
	state.Buildings = append(state.Buildings, models.Building{
		ID:   "b1",
		Name: "Gül Apartmanı",
	})
	if err := svc.SaveSnapshot(state); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	loaded, err := svc.LoadSnapshot()
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}
	if len(loaded.Buildings) != 1 || loaded.Buildings[0].Name != "Gül Apartmanı" {
		t.Fatalf("Snapshot round trip lost data: %+v", loaded.Buildings)
	}

	// Overwrite and confirm the single-row invariant holds in MariaDB too.
	state.Buildings[0].Name = "Menekşe Apartmanı"
	if err := svc.SaveSnapshot(state); err != nil {
		t.Fatalf("Failed to overwrite snapshot: %v", err)
	}
	var count int64
	if err := gormDB.Model(&models.StateSnapshot{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count snapshot rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected exactly 1 snapshot row, got %d", count)
	}
}
