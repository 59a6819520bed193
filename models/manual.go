package models

import "time"

// Manual is a reference manual the pilot keeps available, optionally cached
// for offline reading.
type Manual struct {
	SyncEnvelope

	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	AircraftType     string    `json:"aircraft_type"`
	Airline          string    `json:"airline"`
	StoragePath      string    `json:"storage_path"`
	AvailableOffline bool      `json:"available_offline"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (m *Manual) Kind() Kind            { return KindManual }
func (m *Manual) EntityID() string      { return m.ID }
func (m *Manual) SetEntityID(id string) { m.ID = id }

func (m *Manual) Touch(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

func (m *Manual) Index() map[string]any {
	return map[string]any{
		"user_id":       m.UserID,
		"category":      m.Category,
		"aircraft_type": m.AircraftType,
	}
}

type remoteManual struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	AircraftType     string    `json:"aircraft_type"`
	Airline          string    `json:"airline"`
	StoragePath      string    `json:"storage_path"`
	AvailableOffline bool      `json:"available_offline"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (m *Manual) Remote() any {
	return remoteManual{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		Category:         m.Category,
		AircraftType:     m.AircraftType,
		Airline:          m.Airline,
		StoragePath:      m.StoragePath,
		AvailableOffline: m.AvailableOffline,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
