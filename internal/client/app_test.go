package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbag/flightbag/internal/config"
	"github.com/flightbag/flightbag/internal/logger"
	"github.com/flightbag/flightbag/models"
)

func newTestConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Remote: config.Remote{
			BaseURL:        "http://localhost:54321",
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "flightbag.db")}},
		Sync:    config.Sync{ProbeInterval: 30 * time.Second},
	}
}

func TestNewApp_WiresServices(t *testing.T) {
	app, err := NewApp(context.Background(), newTestConfig(t), logger.Nop())
	require.NoError(t, err)

	services := app.Services()
	require.NotNil(t, services)
	assert.NotNil(t, services.RecordService)
	assert.NotNil(t, services.SyncService)
	assert.NotNil(t, services.SyncJob)
}

// The store behind a fresh App is migrated and immediately usable.
func TestNewApp_LocalStoreReady(t *testing.T) {
	app, err := NewApp(context.Background(), newTestConfig(t), logger.Nop())
	require.NoError(t, err)

	entry := &models.LogbookEntry{UserID: "user-1", Date: "2026-03-01", AircraftType: "B738"}
	require.NoError(t, app.Services().RecordService.Create(context.Background(), entry))

	got, err := app.Services().RecordService.Get(context.Background(), models.KindLogbookEntry, entry.ID)
	require.NoError(t, err)
	assert.True(t, got.Envelope().NeedsSync, "a fresh local record starts dirty")
}
