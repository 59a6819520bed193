package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		record, ok := New(kind)
		require.True(t, ok, "kind %s has no factory entry", kind)
		require.NotNil(t, record)
		assert.Equal(t, kind, record.Kind())
		assert.Empty(t, record.EntityID())
	}
}

func TestNew_UnknownKind(t *testing.T) {
	record, ok := New(Kind("bogus"))
	assert.False(t, ok)
	assert.Nil(t, record)
}

func TestKinds_ReturnsCopy(t *testing.T) {
	first := Kinds()
	first[0] = Kind("mutated")

	second := Kinds()
	assert.Equal(t, KindDutyDay, second[0])
	assert.Len(t, second, 11)
}

// The envelope must never appear inside a record payload: neither when the
// record itself is encoded nor in its remote projection.
func TestSyncEnvelope_ExcludedFromJSON(t *testing.T) {
	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, kind := range Kinds() {
		record, ok := New(kind)
		require.True(t, ok)
		record.SetEntityID("rec-1")
		env := record.Envelope()
		env.NeedsSync = true
		env.SyncedAt = &syncedAt

		for name, subject := range map[string]any{
			"payload": record,
			"remote":  record.Remote(),
		} {
			raw, err := json.Marshal(subject)
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, json.Unmarshal(raw, &doc))
			assert.NotContains(t, doc, "needs_sync", "%s of %s leaks needs_sync", name, kind)
			assert.NotContains(t, doc, "synced_at", "%s of %s leaks synced_at", name, kind)
			assert.Equal(t, "rec-1", doc["id"], "%s of %s lost the id", name, kind)
		}
	}
}

// Locally derived fields stay local: a logbook entry's assembled approaches
// and a place's computed rating/review set must not travel in the remote
// projection, while surviving in the local payload.
func TestRemote_StripsDerivedFields(t *testing.T) {
	entry := &LogbookEntry{
		ID:     "lbe-1",
		UserID: "user-1",
		ApproachDetails: []ApproachDetail{
			{ID: "app-1", LogbookEntryID: "lbe-1", ApproachType: "ILS"},
		},
	}

	local, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.Contains(t, string(local), "approach_details")

	remote, err := json.Marshal(entry.Remote())
	require.NoError(t, err)
	assert.NotContains(t, string(remote), "approach_details")

	place := &Place{
		ID:            "place-1",
		Name:          "Crew Gym",
		AverageRating: 4.5,
		Reviews:       []PlaceReview{{ID: "rev-1", PlaceID: "place-1", Rating: 5}},
	}

	local, err = json.Marshal(place)
	require.NoError(t, err)
	assert.Contains(t, string(local), "average_rating")
	assert.Contains(t, string(local), "reviews")

	remote, err = json.Marshal(place.Remote())
	require.NoError(t, err)
	assert.NotContains(t, string(remote), "average_rating")
	assert.NotContains(t, string(remote), "reviews")
}

func TestTouch_BackfillsCreatedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	day := &DutyDay{}
	day.Touch(now)
	assert.Equal(t, now, day.CreatedAt)
	assert.Equal(t, now, day.UpdatedAt)

	day.Touch(later)
	assert.Equal(t, now, day.CreatedAt, "CreatedAt must not move on later touches")
	assert.Equal(t, later, day.UpdatedAt)
}

// Write-once records carry no updated_at; Touch only seeds their creation
// time.
func TestTouch_WriteOnceRecords(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	review := &PlaceReview{}
	review.Touch(now)
	review.Touch(later)
	assert.Equal(t, now, review.CreatedAt)

	session := &StudySession{}
	session.Touch(now)
	session.Touch(later)
	assert.Equal(t, now, session.CreatedAt)
}

func TestSetEntityID_RoundTrips(t *testing.T) {
	for _, kind := range Kinds() {
		record, ok := New(kind)
		require.True(t, ok)

		record.SetEntityID("id-" + string(kind))
		assert.Equal(t, "id-"+string(kind), record.EntityID())
	}
}

func TestIndex_ValuesComeFromFields(t *testing.T) {
	day := &DutyDay{UserID: "user-1", DateLocal: "2026-03-01", AirlineID: "airline-1"}
	assert.Equal(t, map[string]any{
		"user_id":    "user-1",
		"date_local": "2026-03-01",
		"airline_id": "airline-1",
	}, day.Index())

	leg := &DutyLeg{DutyDayID: "day-1"}
	assert.Equal(t, map[string]any{"duty_day_id": "day-1"}, leg.Index())

	doc := &Document{UserID: "user-1", Type: "passport", ExpiryDate: "2030-06-01"}
	assert.Equal(t, map[string]any{
		"user_id":     "user-1",
		"type":        "passport",
		"expiry_date": "2030-06-01",
	}, doc.Index())
}

// Remote rows decode straight into the local record types; unknown remote
// columns are ignored and the envelope starts clean.
func TestEntity_DecodesRemoteRow(t *testing.T) {
	raw := []byte(`{
		"id": "day-1",
		"user_id": "user-1",
		"airline_id": "airline-1",
		"date_local": "2026-03-01",
		"base_airport_code": "AMS",
		"timezone": "Europe/Amsterdam",
		"status": "confirmed",
		"server_only_column": 42
	}`)

	record, ok := New(KindDutyDay)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal(raw, record))

	day, ok := record.(*DutyDay)
	require.True(t, ok)
	assert.Equal(t, "day-1", day.ID)
	assert.Equal(t, "AMS", day.BaseAirportCode)
	assert.False(t, day.NeedsSync)
	assert.Nil(t, day.SyncedAt)
}
