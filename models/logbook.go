package models

import "time"

// LogbookEntry is one flight recorded in the pilot's personal logbook.
//
// ApproachDetails is a locally assembled view of the entry's approaches: the
// nested records sync through their own entity kind and the slice is never
// sent to the remote collaborator.
type LogbookEntry struct {
	SyncEnvelope

	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	DutyDayID        string    `json:"duty_day_id,omitempty"`
	Date             string    `json:"date"`
	AircraftType     string    `json:"aircraft_type"`
	Registration     string    `json:"registration"`
	FromAirport      string    `json:"from_airport"`
	ToAirport        string    `json:"to_airport"`
	BlockTimeMinutes int       `json:"block_time_minutes"`
	Role             string    `json:"role"`
	IFRMinutes       int       `json:"ifr_minutes"`
	NightMinutes     int       `json:"night_minutes"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	ApproachDetails []ApproachDetail `json:"approach_details,omitempty"`
}

func (e *LogbookEntry) Kind() Kind            { return KindLogbookEntry }
func (e *LogbookEntry) EntityID() string      { return e.ID }
func (e *LogbookEntry) SetEntityID(id string) { e.ID = id }

func (e *LogbookEntry) Touch(now time.Time) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}

func (e *LogbookEntry) Index() map[string]any {
	return map[string]any{
		"user_id":     e.UserID,
		"date":        e.Date,
		"duty_day_id": e.DutyDayID,
	}
}

type remoteLogbookEntry struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	DutyDayID        string    `json:"duty_day_id,omitempty"`
	Date             string    `json:"date"`
	AircraftType     string    `json:"aircraft_type"`
	Registration     string    `json:"registration"`
	FromAirport      string    `json:"from_airport"`
	ToAirport        string    `json:"to_airport"`
	BlockTimeMinutes int       `json:"block_time_minutes"`
	Role             string    `json:"role"`
	IFRMinutes       int       `json:"ifr_minutes"`
	NightMinutes     int       `json:"night_minutes"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (e *LogbookEntry) Remote() any {
	return remoteLogbookEntry{
		ID:               e.ID,
		UserID:           e.UserID,
		DutyDayID:        e.DutyDayID,
		Date:             e.Date,
		AircraftType:     e.AircraftType,
		Registration:     e.Registration,
		FromAirport:      e.FromAirport,
		ToAirport:        e.ToAirport,
		BlockTimeMinutes: e.BlockTimeMinutes,
		Role:             e.Role,
		IFRMinutes:       e.IFRMinutes,
		NightMinutes:     e.NightMinutes,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ApproachDetail records one approach flown on a logbook entry.
type ApproachDetail struct {
	SyncEnvelope

	ID               string    `json:"id"`
	LogbookEntryID   string    `json:"logbook_entry_id"`
	ApproachType     string    `json:"approach_type"`
	OtherDescription string    `json:"other_description,omitempty"`
	Conditions       string    `json:"conditions"`
	TimeOfDay        string    `json:"time_of_day"`
	Outcome          string    `json:"outcome"`
	Stabilized       bool      `json:"stabilized"`
	CFITNotes        string    `json:"cfit_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (a *ApproachDetail) Kind() Kind            { return KindApproachDetail }
func (a *ApproachDetail) EntityID() string      { return a.ID }
func (a *ApproachDetail) SetEntityID(id string) { a.ID = id }

func (a *ApproachDetail) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}

func (a *ApproachDetail) Index() map[string]any {
	return map[string]any{"logbook_entry_id": a.LogbookEntryID}
}

type remoteApproachDetail struct {
	ID               string    `json:"id"`
	LogbookEntryID   string    `json:"logbook_entry_id"`
	ApproachType     string    `json:"approach_type"`
	OtherDescription string    `json:"other_description,omitempty"`
	Conditions       string    `json:"conditions"`
	TimeOfDay        string    `json:"time_of_day"`
	Outcome          string    `json:"outcome"`
	Stabilized       bool      `json:"stabilized"`
	CFITNotes        string    `json:"cfit_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (a *ApproachDetail) Remote() any {
	return remoteApproachDetail{
		ID:               a.ID,
		LogbookEntryID:   a.LogbookEntryID,
		ApproachType:     a.ApproachType,
		OtherDescription: a.OtherDescription,
		Conditions:       a.Conditions,
		TimeOfDay:        a.TimeOfDay,
		Outcome:          a.Outcome,
		Stabilized:       a.Stabilized,
		CFITNotes:        a.CFITNotes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
