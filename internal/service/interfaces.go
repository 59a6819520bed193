// Package service implements the sync engine: pushing locally dirty records
// to the remote collaborator, pulling recent remote state back, and deciding
// when a sync pass runs.
package service

import (
	"context"

	"github.com/flightbag/flightbag/models"
)

// Connectivity reports the device's network state. Implemented by
// netmon.Monitor; redeclared here so the sync layer can be tested with a
// stub.
type Connectivity interface {
	// Online reports the last observed connectivity state.
	Online() bool
	// Events delivers the new state after each offline/online transition.
	Events() <-chan bool
}

// SyncService runs one full bidirectional sync pass.
type SyncService interface {
	// SyncAll pushes every dirty record of every entity kind, then pulls the
	// recent remote window. It is a no-op while offline, never panics
	// through, and never corrupts local state: a failed record simply stays
	// dirty for the next pass.
	SyncAll(ctx context.Context, userID string) error
}

// RecordService is the write/read surface the UI layer uses. Every mutation
// lands in the local store marked dirty; nothing here touches the network.
type RecordService interface {
	// Create assigns a fresh id and timestamps, then saves the record dirty.
	Create(ctx context.Context, record models.Entity) error

	// Save stamps the record's updated time and saves it dirty.
	Save(ctx context.Context, record models.Entity) error

	// UpdateFields merges the named fields into the stored record, bumps its
	// updated time and marks it dirty, all in one durable write.
	UpdateFields(ctx context.Context, kind models.Kind, id string, fields map[string]any) (models.Entity, error)

	// Get returns one locally stored record.
	Get(ctx context.Context, kind models.Kind, id string) (models.Entity, error)

	// ListBy returns locally stored records matching an indexed field.
	ListBy(ctx context.Context, kind models.Kind, field string, value any) ([]models.Entity, error)

	// Delete removes the record locally.
	Delete(ctx context.Context, kind models.Kind, id string) error
}

// SyncJob owns the lifetime of connectivity-triggered syncing.
type SyncJob interface {
	// Start runs an initial sync pass when a session exists and the device
	// is already online, then triggers one pass per offline-to-online
	// transition. Start does not block.
	Start(ctx context.Context)
	// Stop cancels the job and waits for it to exit.
	Stop()
}
