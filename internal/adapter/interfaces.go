// Package adapter provides the transport layer talking to the remote
// persistent backend.
//
// The backend is consumed per entity table through [RemoteClient]: an
// upsert-by-id write and a recent-window select ordered by updated_at
// descending. Transport errors are mapped to the sentinel values in errors.go
// so callers can use errors.Is without knowing the protocol.
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// SelectQuery bounds one remote select. Results are always ordered by
// updated_at descending; Limit caps the page size and UserID, when set,
// restricts rows to the owning user.
type SelectQuery struct {
	UserID string
	Limit  int
}

// RemoteClient is the remote collaborator consumed by the sync engine.
type RemoteClient interface {
	// Upsert inserts or replaces one record in the named remote table,
	// keyed on its id.
	Upsert(ctx context.Context, table string, record any) error

	// Select fetches the most recently updated rows of the named remote
	// table as raw JSON objects, bounded by q.
	Select(ctx context.Context, table string, q SelectQuery) ([]json.RawMessage, error)
}
