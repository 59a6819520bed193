package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flightbag/flightbag/internal/adapter"
	"github.com/flightbag/flightbag/internal/logger"
	"github.com/flightbag/flightbag/internal/store"
	"github.com/flightbag/flightbag/models"
)

type syncService struct {
	store  store.EntityStore
	remote adapter.RemoteClient
	net    Connectivity
	logger *logger.Logger
	now    func() time.Time
}

// NewSyncService wires the sync engine to its collaborators. All dependencies
// are injected; the service holds no global state.
func NewSyncService(entityStore store.EntityStore, remote adapter.RemoteClient, net Connectivity, log *logger.Logger) SyncService {
	return &syncService{
		store:  entityStore,
		remote: remote,
		net:    net,
		logger: log,
		now:    time.Now,
	}
}

// SyncAll implements [SyncService]. The pass is push-then-pull: every entity
// kind's dirty records are pushed first, concurrently across kinds, and only
// after all pushes settle does the pull phase run. That ordering guarantees a
// freshly pushed local edit is never overwritten by a stale pull within the
// same pass.
//
// Running SyncAll twice in a row, or losing connectivity mid-pass, leaves the
// store valid: each record independently ends up either synced or still
// dirty.
func (s *syncService) SyncAll(ctx context.Context, userID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Any("panic", r).Msg("sync pass aborted")
			err = fmt.Errorf("sync pass aborted: %v", r)
		}
	}()

	if !s.net.Online() {
		s.logger.Debug().Msg("offline - skipping sync")
		return nil
	}

	s.logger.Info().Str("user_id", userID).Msg("starting sync pass")

	var wg sync.WaitGroup
	for _, kind := range models.Kinds() {
		wg.Add(1)
		go func(kind models.Kind) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error().
						Str("kind", string(kind)).
						Any("panic", r).
						Msg("push phase aborted for kind")
				}
			}()
			s.pushKind(ctx, kind)
		}(kind)
	}
	wg.Wait()

	s.pullAll(ctx, userID)

	s.logger.Info().Str("user_id", userID).Msg("sync pass completed")
	return nil
}
