package models

import "time"

// Place is a layover recommendation (restaurant, gym, pharmacy, ...).
//
// AverageRating and Reviews are computed locally from place reviews; reviews
// sync through their own entity kind and neither field is sent remotely.
type Place struct {
	SyncEnvelope

	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone,omitempty"`
	Website       string    `json:"website,omitempty"`
	PriceRange    string    `json:"price_range"`
	RecommendedBy string    `json:"recommended_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	AverageRating float64       `json:"average_rating,omitempty"`
	Reviews       []PlaceReview `json:"reviews,omitempty"`
}

func (p *Place) Kind() Kind            { return KindPlace }
func (p *Place) EntityID() string      { return p.ID }
func (p *Place) SetEntityID(id string) { p.ID = id }

func (p *Place) Touch(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

func (p *Place) Index() map[string]any {
	return map[string]any{
		"user_id":  p.UserID,
		"category": p.Category,
	}
}

type remotePlace struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone,omitempty"`
	Website       string    `json:"website,omitempty"`
	PriceRange    string    `json:"price_range"`
	RecommendedBy string    `json:"recommended_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Place) Remote() any {
	return remotePlace{
		ID:            p.ID,
		UserID:        p.UserID,
		Name:          p.Name,
		Category:      p.Category,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		Address:       p.Address,
		Phone:         p.Phone,
		Website:       p.Website,
		PriceRange:    p.PriceRange,
		RecommendedBy: p.RecommendedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// PlaceReview is one pilot's rating of a place. Reviews are write-once, so
// the record has no updated_at timestamp.
type PlaceReview struct {
	SyncEnvelope

	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *PlaceReview) Kind() Kind            { return KindPlaceReview }
func (r *PlaceReview) EntityID() string      { return r.ID }
func (r *PlaceReview) SetEntityID(id string) { r.ID = id }

func (r *PlaceReview) Touch(now time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
}

func (r *PlaceReview) Index() map[string]any {
	return map[string]any{
		"place_id": r.PlaceID,
		"user_id":  r.UserID,
	}
}

type remotePlaceReview struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *PlaceReview) Remote() any {
	return remotePlaceReview{
		ID:        r.ID,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}
