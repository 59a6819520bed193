package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/flightbag/flightbag/internal/adapter"
	"github.com/flightbag/flightbag/internal/store"
	"github.com/flightbag/flightbag/models"
)

// pullSpec declares one entity kind refreshed during the pull phase. Pull is
// a bounded recent-window refresh, not historical replication: only the limit
// most recently updated remote rows are fetched, user-scoped where the data
// is per-user.
type pullSpec struct {
	kind       models.Kind
	userScoped bool
	limit      int
}

// Only user-scoped and shared reference kinds are pulled; purely local child
// records (duty legs, logbook entries, approaches, reviews) reach the device
// through their parents' flows and their own pushes.
var pullSpecs = []pullSpec{
	{kind: models.KindDutyDay, userScoped: true, limit: 100},
	{kind: models.KindStudyTopic, userScoped: false, limit: 100},
	{kind: models.KindStudyQuestion, userScoped: false, limit: 500},
	{kind: models.KindDocument, userScoped: true, limit: 100},
	{kind: models.KindPlace, userScoped: false, limit: 200},
}

func (s *syncService) pullAll(ctx context.Context, userID string) {
	for _, spec := range pullSpecs {
		if spec.userScoped && userID == "" {
			continue
		}
		if err := s.pullKind(ctx, spec, userID); err != nil {
			// Local data is unaffected; the kind is retried next pass.
			s.logger.Warn().Err(err).
				Str("kind", string(spec.kind)).
				Msg("pull phase skipped for kind")
		}
	}
}

// pullKind merges one kind's recent remote window into the local store. A
// record that is locally dirty is never overwritten: the local edit stays
// authoritative until it has been pushed.
func (s *syncService) pullKind(ctx context.Context, spec pullSpec, userID string) error {
	q := adapter.SelectQuery{Limit: spec.limit}
	if spec.userScoped {
		q.UserID = userID
	}

	rows, err := s.remote.Select(ctx, string(spec.kind), q)
	if err != nil {
		return err
	}

	merged := 0
	for _, raw := range rows {
		record, ok := models.New(spec.kind)
		if !ok {
			return errors.New("unknown entity kind " + string(spec.kind))
		}
		if err := json.Unmarshal(raw, record); err != nil {
			s.logger.Warn().Err(err).
				Str("kind", string(spec.kind)).
				Msg("skipping undecodable remote row")
			continue
		}
		if record.EntityID() == "" {
			s.logger.Warn().
				Str("kind", string(spec.kind)).
				Msg("skipping remote row without id")
			continue
		}

		local, err := s.store.Get(ctx, spec.kind, record.EntityID())
		switch {
		case err == nil && local.Envelope().NeedsSync:
			// Unsynced local edit wins until pushed.
			continue
		case err != nil && !errors.Is(err, store.ErrNotFound):
			s.logger.Err(err).
				Str("kind", string(spec.kind)).
				Str("id", record.EntityID()).
				Msg("failed to read local record during pull")
			continue
		}

		env := record.Envelope()
		env.NeedsSync = false
		now := s.now().UTC()
		env.SyncedAt = &now

		if err := s.store.Put(ctx, record); err != nil {
			s.logger.Err(err).
				Str("kind", string(spec.kind)).
				Str("id", record.EntityID()).
				Msg("failed to store pulled record")
			continue
		}
		merged++
	}

	s.logger.Debug().
		Str("kind", string(spec.kind)).
		Int("fetched", len(rows)).
		Int("merged", merged).
		Msg("pull phase finished for kind")

	return nil
}
