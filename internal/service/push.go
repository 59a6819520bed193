package service

import (
	"context"

	"github.com/flightbag/flightbag/models"
)

// pushKind drains the dirty set of one entity kind to the remote
// collaborator. Each record is an independent upsert: a failed record is
// logged and left dirty for the next pass, and never blocks its siblings.
// The record's dirty flag is cleared only after the remote acknowledged the
// upsert.
func (s *syncService) pushKind(ctx context.Context, kind models.Kind) {
	dirty, err := s.store.ListDirty(ctx, kind)
	if err != nil {
		s.logger.Err(err).Str("kind", string(kind)).Msg("failed to list dirty records")
		return
	}
	if len(dirty) == 0 {
		return
	}

	pushed := 0
	for _, record := range dirty {
		if err := s.remote.Upsert(ctx, string(kind), record.Remote()); err != nil {
			s.logger.Warn().Err(err).
				Str("kind", string(kind)).
				Str("id", record.EntityID()).
				Msg("failed to push record, leaving dirty")
			continue
		}

		if err := s.store.MarkSynced(ctx, record); err != nil {
			// The remote has the record; the local flag stays dirty and the
			// next pass repeats the (idempotent) upsert.
			s.logger.Err(err).
				Str("kind", string(kind)).
				Str("id", record.EntityID()).
				Msg("pushed record but failed to mark it synced")
			continue
		}
		pushed++
	}

	s.logger.Debug().
		Str("kind", string(kind)).
		Int("dirty", len(dirty)).
		Int("pushed", pushed).
		Msg("push phase finished for kind")
}
