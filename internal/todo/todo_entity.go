package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskEntry is one line of a daily plan. ETA is free text; for tasks in
// progress it is read as a completion percentage.
type TaskEntry struct {
	Item   string `json:"item"`
	ETA    string `json:"eta"`
	Status string `json:"status"`
}

// UnmarshalJSON accepts eta as a string or a bare number. A number keeps its
// literal text, so 40 is stored as "40".
func (t *TaskEntry) UnmarshalJSON(data []byte) error {
	type plain TaskEntry
	var raw struct {
		plain
		ETA json.RawMessage `json:"eta"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = TaskEntry(raw.plain)
	t.ETA = ""

	eta := bytes.TrimSpace(raw.ETA)
	switch {
	case len(eta) == 0, bytes.Equal(eta, []byte("null")):
	case eta[0] == '"':
		return json.Unmarshal(eta, &t.ETA)
	default:
		var n json.Number
		if err := json.Unmarshal(eta, &n); err != nil {
			return fmt.Errorf("eta must be a string or a number: %w", err)
		}
		t.ETA = n.String()
	}
	return nil
}

type DailyPlan struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Date       string      `gorm:"type:varchar(30);not null;uniqueIndex" json:"date"`
	WorkStatus string      `gorm:"type:varchar(50);not null" json:"workStatus"`
	Tasks      []TaskEntry `gorm:"type:jsonb;serializer:json" json:"tasks"`
}

func (DailyPlan) TableName() string {
	return "daily_plans"
}
