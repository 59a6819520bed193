package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbag/flightbag/internal/logger"
	"github.com/flightbag/flightbag/models"
)

// newTestRepository opens a fresh in-memory database with the full schema
// applied. A single pooled connection keeps the in-memory database alive
// across checkouts.
func newTestRepository(t *testing.T) *entityRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	repo := NewEntityRepository(db, logger.Nop()).(*entityRepository)
	repo.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo
}

func TestRepository_PutGetRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	syncedAt := time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC)
	day := &models.DutyDay{
		ID:              "day-1",
		UserID:          "user-1",
		AirlineID:       "airline-1",
		DateLocal:       "2026-03-01",
		BaseAirportCode: "AMS",
		CheckinTimeUTC:  time.Date(2026, 3, 1, 4, 30, 0, 0, time.UTC),
		CheckoutTimeUTC: time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC),
		Timezone:        "Europe/Amsterdam",
		Status:          "confirmed",
	}
	day.NeedsSync = true
	day.SyncedAt = &syncedAt

	require.NoError(t, repo.Put(ctx, day))

	got, err := repo.Get(ctx, models.KindDutyDay, "day-1")
	require.NoError(t, err)

	stored, ok := got.(*models.DutyDay)
	require.True(t, ok)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "AMS", stored.BaseAirportCode)
	assert.True(t, stored.CheckinTimeUTC.Equal(day.CheckinTimeUTC))
	assert.True(t, stored.NeedsSync)
	require.NotNil(t, stored.SyncedAt)
	assert.True(t, stored.SyncedAt.Equal(syncedAt))
}

func TestRepository_PutReplacesExistingRecord(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	place := &models.Place{ID: "place-1", Name: "Crew Gym", Category: "gym"}
	require.NoError(t, repo.Put(ctx, place))

	place.Name = "Crew Gym (renovated)"
	require.NoError(t, repo.Put(ctx, place))

	got, err := repo.Get(ctx, models.KindPlace, "place-1")
	require.NoError(t, err)
	assert.Equal(t, "Crew Gym (renovated)", got.(*models.Place).Name)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), models.KindDutyDay, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_SaveWithSyncMarksDirty(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	syncedAt := time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC)
	doc := &models.Document{ID: "doc-1", UserID: "user-1", Type: "passport"}
	doc.SyncedAt = &syncedAt

	require.NoError(t, repo.SaveWithSync(ctx, doc))

	got, err := repo.Get(ctx, models.KindDocument, "doc-1")
	require.NoError(t, err)
	assert.True(t, got.Envelope().NeedsSync)
	assert.Nil(t, got.Envelope().SyncedAt, "a dirty save clears the last synced time")
}

func TestRepository_MarkSyncedClearsDirtyFlag(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	doc := &models.Document{ID: "doc-1", UserID: "user-1", Type: "passport"}
	require.NoError(t, repo.SaveWithSync(ctx, doc))

	require.NoError(t, repo.MarkSynced(ctx, doc))

	got, err := repo.Get(ctx, models.KindDocument, "doc-1")
	require.NoError(t, err)
	assert.False(t, got.Envelope().NeedsSync)
	require.NotNil(t, got.Envelope().SyncedAt)
	assert.True(t, got.Envelope().SyncedAt.Equal(repo.now()))
}

func TestRepository_MarkSyncedMissing(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.MarkSynced(context.Background(), &models.Document{ID: "missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// A save that lands between the remote acknowledgment and the flag clear is
// newer than what was pushed; its dirty flag must survive MarkSynced.
func TestRepository_MarkSyncedSkipsConcurrentEdit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	doc := &models.Document{ID: "doc-1", UserID: "user-1", Type: "passport"}
	require.NoError(t, repo.SaveWithSync(ctx, doc))

	// Snapshot as the push phase saw it.
	pushed, err := repo.Get(ctx, models.KindDocument, "doc-1")
	require.NoError(t, err)

	edited := &models.Document{ID: "doc-1", UserID: "user-1", Type: "visa"}
	require.NoError(t, repo.SaveWithSync(ctx, edited))

	require.NoError(t, repo.MarkSynced(ctx, pushed))

	got, err := repo.Get(ctx, models.KindDocument, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "visa", got.(*models.Document).Type)
	assert.True(t, got.Envelope().NeedsSync, "the newer edit keeps its dirty flag")
	assert.Nil(t, got.Envelope().SyncedAt)
}

func TestRepository_ListDirty(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	dirty := &models.StudyTopic{ID: "topic-1", Name: "Adverse weather", Category: "weather"}
	require.NoError(t, repo.SaveWithSync(ctx, dirty))

	clean := &models.StudyTopic{ID: "topic-2", Name: "Fuel planning", Category: "performance"}
	require.NoError(t, repo.Put(ctx, clean))

	got, err := repo.ListDirty(ctx, models.KindStudyTopic)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "topic-1", got[0].EntityID())
}

// Update merges the given fields into the stored payload without touching
// the sync envelope or dropping unmentioned fields.
func TestRepository_UpdateMergesFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	syncedAt := time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC)
	day := &models.DutyDay{
		ID:        "day-1",
		UserID:    "user-1",
		DateLocal: "2026-03-01",
		Status:    "planned",
		Timezone:  "Europe/Amsterdam",
	}
	day.SyncedAt = &syncedAt
	require.NoError(t, repo.Put(ctx, day))

	updated, err := repo.Update(ctx, models.KindDutyDay, "day-1", map[string]any{"status": "confirmed"})
	require.NoError(t, err)

	merged := updated.(*models.DutyDay)
	assert.Equal(t, "confirmed", merged.Status)
	assert.Equal(t, "Europe/Amsterdam", merged.Timezone, "unrelated fields survive the merge")

	// The merged record lands dirty in the same write as the payload, so a
	// crash right after Update can never leave the edit stored as clean.
	got, err := repo.Get(ctx, models.KindDutyDay, "day-1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.(*models.DutyDay).Status)
	assert.True(t, got.Envelope().NeedsSync)
	assert.Nil(t, got.Envelope().SyncedAt)
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Update(context.Background(), models.KindDutyDay, "missing", map[string]any{"status": "confirmed"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_QueryByIndex(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, leg := range []*models.DutyLeg{
		{ID: "leg-1", DutyDayID: "day-1", FlightNumber: "KL1001"},
		{ID: "leg-2", DutyDayID: "day-1", FlightNumber: "KL1002"},
		{ID: "leg-3", DutyDayID: "day-2", FlightNumber: "KL2001"},
	} {
		require.NoError(t, repo.Put(ctx, leg))
	}

	got, err := repo.QueryByIndex(ctx, models.KindDutyLeg, "duty_day_id", "day-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.QueryByIndex(ctx, models.KindDutyLeg, "duty_day_id", "day-3")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_QueryByUnknownIndex(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.QueryByIndex(context.Background(), models.KindDutyLeg, "flight_number", "KL1001")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownIndex)
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	review := &models.PlaceReview{ID: "rev-1", PlaceID: "place-1", UserID: "user-1", Rating: 5}
	require.NoError(t, repo.Put(ctx, review))

	require.NoError(t, repo.Delete(ctx, models.KindPlaceReview, "rev-1"))

	_, err := repo.Get(ctx, models.KindPlaceReview, "rev-1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, models.KindPlaceReview, "rev-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_UnknownKind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, models.Kind("bogus"), "id-1")
	require.Error(t, err)

	_, err = repo.ListDirty(ctx, models.Kind("bogus"))
	require.Error(t, err)
}

// Every declared table spec must agree with the index keys its entity
// reports, otherwise Put and the schema drift apart.
func TestTableSpecs_AlignedWithEntityIndexes(t *testing.T) {
	for _, kind := range models.Kinds() {
		spec, ok := tableSpecs[kind]
		require.True(t, ok, "kind %s has no table spec", kind)

		record, ok := models.New(kind)
		require.True(t, ok)

		index := record.Index()
		require.Len(t, index, len(spec.indexed), "kind %s index column count mismatch", kind)
		for _, col := range spec.indexed {
			assert.Contains(t, index, col, "kind %s misses index column %s", kind, col)
		}
	}
}

// ── sqlmock error paths ─────────────────────────────────────────────────────

func newMockRepository(t *testing.T) (*entityRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewEntityRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()).(*entityRepository)
	repo.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo, mock
}

func TestRepository_PutExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("REPLACE INTO duty_days").
		WillReturnError(assert.AnError)

	err := repo.Put(context.Background(), &models.DutyDay{ID: "day-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListDirtyQueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT payload, needs_sync, synced_at FROM documents").
		WillReturnError(assert.AnError)

	_, err := repo.ListDirty(context.Background(), models.KindDocument)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM places").
		WillReturnError(assert.AnError)

	err := repo.Delete(context.Background(), models.KindPlace, "place-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
