package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/retodia/retodia-backend/internal/fractal"
	"github.com/retodia/retodia-backend/internal/repos"
	"github.com/retodia/retodia-backend/internal/types"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.User{}, &types.FractalSession{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDBSessionStore_LoadMissing(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	store := NewDBSessionStore(log, repos.NewFractalSessionRepo(db, log), nil)

	_, err := store.Load(context.Background(), uuid.New())
	if !errors.Is(err, fractal.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDBSessionStore_SaveLoadRoundTrip(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	store := NewDBSessionStore(log, repos.NewFractalSessionRepo(db, log), nil)
	userID := uuid.New()

	state := fractal.NewSessionState()
	state.Fractal.Dimension1.NombreSimbolico = "Ánima"
	state.Fractal.Dimension1.Valores = []string{"honestidad"}
	state.Phase = 2

	if err := store.Save(context.Background(), userID, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Phase != 2 || got.Complete {
		t.Fatalf("unexpected state: phase=%d complete=%v", got.Phase, got.Complete)
	}
	if got.Fractal.Dimension1.NombreSimbolico != "Ánima" {
		t.Fatalf("fractal data lost: %+v", got.Fractal.Dimension1)
	}
	if len(got.Fractal.Dimension1.Valores) != 1 || got.Fractal.Dimension1.Valores[0] != "honestidad" {
		t.Fatalf("valores lost: %+v", got.Fractal.Dimension1.Valores)
	}
}

func TestDBSessionStore_SaveOverwrites(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	store := NewDBSessionStore(log, repos.NewFractalSessionRepo(db, log), nil)
	userID := uuid.New()

	first := fractal.NewSessionState()
	if err := store.Save(context.Background(), userID, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := fractal.NewSessionState()
	second.Phase = 4
	second.Complete = true
	second.Fractal.Dimension2.Cualidades = []string{"paciencia"}
	if err := store.Save(context.Background(), userID, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Phase != 4 || !got.Complete {
		t.Fatalf("upsert did not overwrite: phase=%d complete=%v", got.Phase, got.Complete)
	}
	if len(got.Fractal.Dimension2.Cualidades) != 1 {
		t.Fatalf("cualidades lost: %+v", got.Fractal.Dimension2)
	}

	var count int64
	if err := db.Model(&types.FractalSession{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row for user, got %d", count)
	}
}
