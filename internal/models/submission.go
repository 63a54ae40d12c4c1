package models

import "time"

// TimestampLayout is the ISO-8601 layout used for Submission timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Submission is a single fan signup pinned on the globe. It is never mutated after creation.
type Submission struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Zip       string  `json:"zip"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Timestamp string  `json:"timestamp"`
}

// Place returns the resolved location of the submission.
func (s Submission) Place() GeoPlace {
	return GeoPlace{City: s.City, State: s.State, Lat: s.Lat, Lon: s.Lon}
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// LeaderboardEntry counts the submissions pinned in one place.
type LeaderboardEntry struct {
	Place string `json:"place"`
	Count int    `json:"count"`
}

// Marker is a submission projected for display on the globe, with a small deterministic offset so pins in the same city do not overlap.
type Marker struct {
	ID    string  `json:"id"`
	Place string  `json:"place"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// Campaign reports how close the leading city is to the signup goal.
type Campaign struct {
	Goal            int     `json:"goal"`
	TopPlace        string  `json:"top_place,omitempty"`
	TopCount        int     `json:"top_count"`
	Progress        float64 `json:"progress"`
	PresaleUnlocked bool    `json:"presale_unlocked"`
}
