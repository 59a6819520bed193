package store

import (
	"context"

	"github.com/flightbag/flightbag/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/entity_store_mock.go -package=mock

// EntityStore is the durable on-device store of domain records plus the sync
// bookkeeping attached to each of them. All operations are durable before
// they return and never touch the network.
type EntityStore interface {
	// Put inserts or fully replaces the record at its id, envelope included.
	Put(ctx context.Context, record models.Entity) error

	// Get returns the record or ErrNotFound.
	Get(ctx context.Context, kind models.Kind, id string) (models.Entity, error)

	// Update merges the named fields into the existing record's payload and
	// stores the merged record dirty. Payload and dirty flag land in the
	// same write, so an interrupted update can never leave the edit stored
	// as clean. Returns ErrNotFound if the record does not exist.
	Update(ctx context.Context, kind models.Kind, id string, fields map[string]any) (models.Entity, error)

	// Delete removes the record, returning ErrNotFound when absent.
	Delete(ctx context.Context, kind models.Kind, id string) error

	// QueryByIndex returns all records whose indexed field equals value.
	QueryByIndex(ctx context.Context, kind models.Kind, field string, value any) ([]models.Entity, error)

	// SaveWithSync marks the record dirty (needs_sync=true, synced_at
	// cleared) and stores it. Every UI-originated create or update goes
	// through here.
	SaveWithSync(ctx context.Context, record models.Entity) error

	// MarkSynced clears the dirty flag and stamps synced_at. Called only
	// after a confirmed remote acknowledgment of record. The flag is
	// cleared only while the stored payload still matches record, so an
	// edit saved between the acknowledgment and this call stays dirty.
	MarkSynced(ctx context.Context, record models.Entity) error

	// ListDirty returns all records of the kind with needs_sync set.
	ListDirty(ctx context.Context, kind models.Kind) ([]models.Entity, error)
}
