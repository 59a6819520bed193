// Package models defines the domain entities cached on the pilot's device and
// the sync metadata attached to every locally stored record.
//
// Each entity kind maps to one local table and one remote table of the same
// name. Records carry a [SyncEnvelope] that is stored outside the record
// payload and never leaves the device: the remote representation of an entity
// is produced by its Remote method, which returns a dedicated projection type
// without the envelope or any locally derived fields.
package models

import "time"

// Kind identifies one logical entity table. Its string value is both the
// local table name and the remote table name.
type Kind string

const (
	KindDutyDay        Kind = "duty_days"
	KindDutyLeg        Kind = "duty_legs"
	KindLogbookEntry   Kind = "logbook_entries"
	KindApproachDetail Kind = "approach_details"
	KindStudyTopic     Kind = "study_topics"
	KindStudyQuestion  Kind = "study_questions"
	KindStudySession   Kind = "study_sessions"
	KindManual         Kind = "manuals"
	KindPlace          Kind = "places"
	KindPlaceReview    Kind = "place_reviews"
	KindDocument       Kind = "documents"
)

// SyncEnvelope carries the per-record sync state. NeedsSync reports that the
// local copy has edits not yet confirmed persisted remotely; SyncedAt is the
// time of the last successful push or pull affecting the record, nil until
// the first sync.
//
// The fields are excluded from JSON so the envelope can never travel inside a
// record payload; the local store persists it in dedicated columns.
type SyncEnvelope struct {
	NeedsSync bool       `json:"-"`
	SyncedAt  *time.Time `json:"-"`
}

// Envelope returns the record's sync envelope for in-place mutation.
func (e *SyncEnvelope) Envelope() *SyncEnvelope { return e }

// Entity is the contract every syncable record satisfies.
type Entity interface {
	// Kind reports the entity kind the record belongs to.
	Kind() Kind
	// EntityID returns the client-generated primary id. The id is assigned
	// once at creation and is the upsert conflict key on the remote side.
	EntityID() string
	// SetEntityID assigns the primary id. Called exactly once, at creation.
	SetEntityID(id string)
	// Touch stamps UpdatedAt with now and backfills CreatedAt when unset.
	Touch(now time.Time)
	// Envelope exposes the record's sync metadata.
	Envelope() *SyncEnvelope
	// Index returns the record's secondary index values keyed by column name.
	Index() map[string]any
	// Remote returns the statically typed projection sent to the remote
	// collaborator: all domain fields, no envelope, no locally derived data.
	Remote() any
}

// kinds lists every entity kind in a stable order. Push iterates this list;
// the order carries no semantic weight since kinds sync independently.
var kinds = []Kind{
	KindDutyDay,
	KindDutyLeg,
	KindLogbookEntry,
	KindApproachDetail,
	KindStudyTopic,
	KindStudyQuestion,
	KindStudySession,
	KindManual,
	KindPlace,
	KindPlaceReview,
	KindDocument,
}

// Kinds returns every entity kind in registry order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// New returns a fresh zero record of the given kind, or false for an unknown
// kind. Pull uses it to decode remote rows without knowing concrete types.
func New(kind Kind) (Entity, bool) {
	switch kind {
	case KindDutyDay:
		return &DutyDay{}, true
	case KindDutyLeg:
		return &DutyLeg{}, true
	case KindLogbookEntry:
		return &LogbookEntry{}, true
	case KindApproachDetail:
		return &ApproachDetail{}, true
	case KindStudyTopic:
		return &StudyTopic{}, true
	case KindStudyQuestion:
		return &StudyQuestion{}, true
	case KindStudySession:
		return &StudySession{}, true
	case KindManual:
		return &Manual{}, true
	case KindPlace:
		return &Place{}, true
	case KindPlaceReview:
		return &PlaceReview{}, true
	case KindDocument:
		return &Document{}, true
	default:
		return nil, false
	}
}
