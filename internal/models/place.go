package models

import "fmt"

// GeoPlace is the result of resolving a postal code: the place name, its state abbreviation and the coordinates of its centroid.
type GeoPlace struct {
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// Label renders the place the way the leaderboard groups it.
func (p GeoPlace) Label() string {
	return PlaceLabel(p.City, p.State)
}

// PlaceLabel formats a city and state as "<city>, <state>".
func PlaceLabel(city, state string) string {
	return fmt.Sprintf("%s, %s", city, state)
}
