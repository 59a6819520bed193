package store

import "github.com/flightbag/flightbag/models"

// tableSpec describes one local table: the secondary index columns it
// declares in addition to the id primary key and the sync envelope columns.
// The column order here fixes the column order of every built statement, so
// it must stay aligned with each entity's Index keys.
type tableSpec struct {
	indexed []string
}

var tableSpecs = map[models.Kind]tableSpec{
	models.KindDutyDay:        {indexed: []string{"user_id", "date_local", "airline_id"}},
	models.KindDutyLeg:        {indexed: []string{"duty_day_id"}},
	models.KindLogbookEntry:   {indexed: []string{"user_id", "date", "duty_day_id"}},
	models.KindApproachDetail: {indexed: []string{"logbook_entry_id"}},
	models.KindStudyTopic:     {indexed: []string{"user_id", "category"}},
	models.KindStudyQuestion:  {indexed: []string{"topic_id"}},
	models.KindStudySession:   {indexed: []string{"user_id", "topic_id"}},
	models.KindManual:         {indexed: []string{"user_id", "category", "aircraft_type"}},
	models.KindPlace:          {indexed: []string{"user_id", "category"}},
	models.KindPlaceReview:    {indexed: []string{"place_id", "user_id"}},
	models.KindDocument:       {indexed: []string{"user_id", "type", "expiry_date"}},
}

func (t tableSpec) hasIndex(field string) bool {
	for _, col := range t.indexed {
		if col == field {
			return true
		}
	}
	return false
}
