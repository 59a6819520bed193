package models

import "time"

// Document is a crew document with an expiry date (license, medical,
// passport, visa, training record, airline id).
type Document struct {
	SyncEnvelope

	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	Issuer         string    `json:"issuer"`
	Number         string    `json:"number"`
	Country        string    `json:"country"`
	IssueDate      string    `json:"issue_date"`
	ExpiryDate     string    `json:"expiry_date"`
	AttachmentPath string    `json:"attachment_path,omitempty"`
	Notify90       bool      `json:"notify_90"`
	Notify60       bool      `json:"notify_60"`
	Notify30       bool      `json:"notify_30"`
	Notify7        bool      `json:"notify_7"`
	NotifyDay      bool      `json:"notify_day"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (d *Document) Kind() Kind            { return KindDocument }
func (d *Document) EntityID() string      { return d.ID }
func (d *Document) SetEntityID(id string) { d.ID = id }

func (d *Document) Touch(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}

func (d *Document) Index() map[string]any {
	return map[string]any{
		"user_id":     d.UserID,
		"type":        d.Type,
		"expiry_date": d.ExpiryDate,
	}
}

type remoteDocument struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	Issuer         string    `json:"issuer"`
	Number         string    `json:"number"`
	Country        string    `json:"country"`
	IssueDate      string    `json:"issue_date"`
	ExpiryDate     string    `json:"expiry_date"`
	AttachmentPath string    `json:"attachment_path,omitempty"`
	Notify90       bool      `json:"notify_90"`
	Notify60       bool      `json:"notify_60"`
	Notify30       bool      `json:"notify_30"`
	Notify7        bool      `json:"notify_7"`
	NotifyDay      bool      `json:"notify_day"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (d *Document) Remote() any {
	return remoteDocument{
		ID:             d.ID,
		UserID:         d.UserID,
		Type:           d.Type,
		Name:           d.Name,
		Issuer:         d.Issuer,
		Number:         d.Number,
		Country:        d.Country,
		IssueDate:      d.IssueDate,
		ExpiryDate:     d.ExpiryDate,
		AttachmentPath: d.AttachmentPath,
		Notify90:       d.Notify90,
		Notify60:       d.Notify60,
		Notify30:       d.Notify30,
		Notify7:        d.Notify7,
		NotifyDay:      d.NotifyDay,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
