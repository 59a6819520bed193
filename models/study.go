package models

import "time"

// StudyTopic is a study subject; shared topics have no owning user.
type StudyTopic struct {
	SyncEnvelope

	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	AircraftType string    `json:"aircraft_type,omitempty"`
	Regulation   string    `json:"regulation,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (t *StudyTopic) Kind() Kind            { return KindStudyTopic }
func (t *StudyTopic) EntityID() string      { return t.ID }
func (t *StudyTopic) SetEntityID(id string) { t.ID = id }

func (t *StudyTopic) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

func (t *StudyTopic) Index() map[string]any {
	return map[string]any{
		"user_id":  t.UserID,
		"category": t.Category,
	}
}

type remoteStudyTopic struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	AircraftType string    `json:"aircraft_type,omitempty"`
	Regulation   string    `json:"regulation,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (t *StudyTopic) Remote() any {
	return remoteStudyTopic{
		ID:           t.ID,
		UserID:       t.UserID,
		Name:         t.Name,
		Category:     t.Category,
		AircraftType: t.AircraftType,
		Regulation:   t.Regulation,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// StudyQuestion is one multiple-choice question belonging to a topic.
type StudyQuestion struct {
	SyncEnvelope

	ID              string    `json:"id"`
	TopicID         string    `json:"topic_id"`
	Text            string    `json:"text"`
	Options         []string  `json:"options"`
	CorrectIndex    int       `json:"correct_index"`
	ExplanationBase string    `json:"explanation_base"`
	Difficulty      string    `json:"difficulty"`
	SourceType      string    `json:"source_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (q *StudyQuestion) Kind() Kind            { return KindStudyQuestion }
func (q *StudyQuestion) EntityID() string      { return q.ID }
func (q *StudyQuestion) SetEntityID(id string) { q.ID = id }

func (q *StudyQuestion) Touch(now time.Time) {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now
}

func (q *StudyQuestion) Index() map[string]any {
	return map[string]any{"topic_id": q.TopicID}
}

type remoteStudyQuestion struct {
	ID              string    `json:"id"`
	TopicID         string    `json:"topic_id"`
	Text            string    `json:"text"`
	Options         []string  `json:"options"`
	CorrectIndex    int       `json:"correct_index"`
	ExplanationBase string    `json:"explanation_base"`
	Difficulty      string    `json:"difficulty"`
	SourceType      string    `json:"source_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (q *StudyQuestion) Remote() any {
	return remoteStudyQuestion{
		ID:              q.ID,
		TopicID:         q.TopicID,
		Text:            q.Text,
		Options:         q.Options,
		CorrectIndex:    q.CorrectIndex,
		ExplanationBase: q.ExplanationBase,
		Difficulty:      q.Difficulty,
		SourceType:      q.SourceType,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

// StudySession records one study run. Sessions are append-mostly: the record
// carries created_at/completed_at instead of an updated_at timestamp.
type StudySession struct {
	SyncEnvelope

	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	TopicID        string     `json:"topic_id,omitempty"`
	Mode           string     `json:"mode"`
	TotalQuestions int        `json:"total_questions"`
	Completed      bool       `json:"completed"`
	Score          int        `json:"score"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func (s *StudySession) Kind() Kind            { return KindStudySession }
func (s *StudySession) EntityID() string      { return s.ID }
func (s *StudySession) SetEntityID(id string) { s.ID = id }

func (s *StudySession) Touch(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
}

func (s *StudySession) Index() map[string]any {
	return map[string]any{
		"user_id":  s.UserID,
		"topic_id": s.TopicID,
	}
}

type remoteStudySession struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	TopicID        string     `json:"topic_id,omitempty"`
	Mode           string     `json:"mode"`
	TotalQuestions int        `json:"total_questions"`
	Completed      bool       `json:"completed"`
	Score          int        `json:"score"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func (s *StudySession) Remote() any {
	return remoteStudySession{
		ID:             s.ID,
		UserID:         s.UserID,
		TopicID:        s.TopicID,
		Mode:           s.Mode,
		TotalQuestions: s.TotalQuestions,
		Completed:      s.Completed,
		Score:          s.Score,
		CreatedAt:      s.CreatedAt,
		CompletedAt:    s.CompletedAt,
	}
}
