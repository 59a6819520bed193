package service

import (
	"github.com/flightbag/flightbag/internal/adapter"
	"github.com/flightbag/flightbag/internal/identity"
	"github.com/flightbag/flightbag/internal/logger"
	"github.com/flightbag/flightbag/internal/store"
)

// ClientServices bundles the client service layer.
type ClientServices struct {
	RecordService RecordService
	SyncService   SyncService
	SyncJob       SyncJob
}

// NewClientServices wires the service layer from its injected collaborators.
func NewClientServices(entityStore store.EntityStore, remote adapter.RemoteClient, provider identity.Provider, net Connectivity, log *logger.Logger) *ClientServices {
	syncSvc := NewSyncService(entityStore, remote, net, log)

	return &ClientServices{
		RecordService: NewRecordService(entityStore, log),
		SyncService:   syncSvc,
		SyncJob:       NewSyncJob(syncSvc, provider, net, log),
	}
}
