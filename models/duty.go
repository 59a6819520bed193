package models

import "time"

// DutyDay is one rostered duty day with its check-in/check-out window.
type DutyDay struct {
	SyncEnvelope

	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	AirlineID       string    `json:"airline_id"`
	DateLocal       string    `json:"date_local"`
	BaseAirportCode string    `json:"base_airport_code"`
	CheckinTimeUTC  time.Time `json:"checkin_time_utc"`
	CheckoutTimeUTC time.Time `json:"checkout_time_utc"`
	Timezone        string    `json:"timezone"`
	Status          string    `json:"status"`
	SourceID        string    `json:"source_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (d *DutyDay) Kind() Kind            { return KindDutyDay }
func (d *DutyDay) EntityID() string      { return d.ID }
func (d *DutyDay) SetEntityID(id string) { d.ID = id }

func (d *DutyDay) Touch(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}

func (d *DutyDay) Index() map[string]any {
	return map[string]any{
		"user_id":    d.UserID,
		"date_local": d.DateLocal,
		"airline_id": d.AirlineID,
	}
}

// remoteDutyDay is the wire projection of [DutyDay].
type remoteDutyDay struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	AirlineID       string    `json:"airline_id"`
	DateLocal       string    `json:"date_local"`
	BaseAirportCode string    `json:"base_airport_code"`
	CheckinTimeUTC  time.Time `json:"checkin_time_utc"`
	CheckoutTimeUTC time.Time `json:"checkout_time_utc"`
	Timezone        string    `json:"timezone"`
	Status          string    `json:"status"`
	SourceID        string    `json:"source_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (d *DutyDay) Remote() any {
	return remoteDutyDay{
		ID:              d.ID,
		UserID:          d.UserID,
		AirlineID:       d.AirlineID,
		DateLocal:       d.DateLocal,
		BaseAirportCode: d.BaseAirportCode,
		CheckinTimeUTC:  d.CheckinTimeUTC,
		CheckoutTimeUTC: d.CheckoutTimeUTC,
		Timezone:        d.Timezone,
		Status:          d.Status,
		SourceID:        d.SourceID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// DutyLeg is one flight leg within a duty day.
type DutyLeg struct {
	SyncEnvelope

	ID               string     `json:"id"`
	DutyDayID        string     `json:"duty_day_id"`
	FlightNumber     string     `json:"flight_number"`
	DepartureAirport string     `json:"departure_airport"`
	ArrivalAirport   string     `json:"arrival_airport"`
	STDUTC           time.Time  `json:"std_utc"`
	STAUTC           time.Time  `json:"sta_utc"`
	BlockOffUTC      *time.Time `json:"block_off_utc,omitempty"`
	BlockOnUTC       *time.Time `json:"block_on_utc,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (l *DutyLeg) Kind() Kind            { return KindDutyLeg }
func (l *DutyLeg) EntityID() string      { return l.ID }
func (l *DutyLeg) SetEntityID(id string) { l.ID = id }

func (l *DutyLeg) Touch(now time.Time) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
}

func (l *DutyLeg) Index() map[string]any {
	return map[string]any{"duty_day_id": l.DutyDayID}
}

type remoteDutyLeg struct {
	ID               string     `json:"id"`
	DutyDayID        string     `json:"duty_day_id"`
	FlightNumber     string     `json:"flight_number"`
	DepartureAirport string     `json:"departure_airport"`
	ArrivalAirport   string     `json:"arrival_airport"`
	STDUTC           time.Time  `json:"std_utc"`
	STAUTC           time.Time  `json:"sta_utc"`
	BlockOffUTC      *time.Time `json:"block_off_utc,omitempty"`
	BlockOnUTC       *time.Time `json:"block_on_utc,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (l *DutyLeg) Remote() any {
	return remoteDutyLeg{
		ID:               l.ID,
		DutyDayID:        l.DutyDayID,
		FlightNumber:     l.FlightNumber,
		DepartureAirport: l.DepartureAirport,
		ArrivalAirport:   l.ArrivalAirport,
		STDUTC:           l.STDUTC,
		STAUTC:           l.STAUTC,
		BlockOffUTC:      l.BlockOffUTC,
		BlockOnUTC:       l.BlockOnUTC,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
