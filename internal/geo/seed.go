package geo

import "fan-globe/internal/models"

// SeedEntry is one row of the built-in postal code table.
type SeedEntry struct {
	Zip   string
	Place models.GeoPlace
}

// seedTable lists the demo ZIP codes that resolve without a network call,
// in demo order: numeric ZIPs ascending, then 02108.
var seedTable = []SeedEntry{
	{Zip: "10001", Place: models.GeoPlace{City: "New York", State: "NY", Lat: 40.7506, Lon: -73.9972}},
	{Zip: "30301", Place: models.GeoPlace{City: "Atlanta", State: "GA", Lat: 33.749, Lon: -84.388}},
	{Zip: "48201", Place: models.GeoPlace{City: "Detroit", State: "MI", Lat: 42.346, Lon: -83.061}},
	{Zip: "60601", Place: models.GeoPlace{City: "Chicago", State: "IL", Lat: 41.8853, Lon: -87.6216}},
	{Zip: "73301", Place: models.GeoPlace{City: "Austin", State: "TX", Lat: 30.2672, Lon: -97.7431}},
	{Zip: "80202", Place: models.GeoPlace{City: "Denver", State: "CO", Lat: 39.7508, Lon: -104.9966}},
	{Zip: "90001", Place: models.GeoPlace{City: "Los Angeles", State: "CA", Lat: 34.0522, Lon: -118.2437}},
	{Zip: "94102", Place: models.GeoPlace{City: "San Francisco", State: "CA", Lat: 37.7793, Lon: -122.4193}},
	{Zip: "98101", Place: models.GeoPlace{City: "Seattle", State: "WA", Lat: 47.6101, Lon: -122.3344}},
	{Zip: "02108", Place: models.GeoPlace{City: "Boston", State: "MA", Lat: 42.357, Lon: -71.065}},
}

var seedIndex = func() map[string]models.GeoPlace {
	m := make(map[string]models.GeoPlace, len(seedTable))
	for _, e := range seedTable {
		m[e.Zip] = e.Place
	}
	return m
}()

// Seed returns a copy of the built-in table in demo order.
func Seed() []SeedEntry {
	out := make([]SeedEntry, len(seedTable))
	copy(out, seedTable)
	return out
}

// LookupSeed returns the built-in place for zip, if any.
func LookupSeed(zip string) (models.GeoPlace, bool) {
	p, ok := seedIndex[zip]
	return p, ok
}
