package model

import "time"

// TimestampLayout is how CreatedAt is rendered to API clients and exports
const TimestampLayout = "2006-01-02 15:04:05"

// Transcript is a stored transcription result. Records are immutable once
// inserted into a store.
type Transcript struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// Timestamp returns CreatedAt in local time using TimestampLayout
func (t *Transcript) Timestamp() string {
	return t.CreatedAt.Local().Format(TimestampLayout)
}
