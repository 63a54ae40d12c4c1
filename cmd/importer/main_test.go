package main

import (
	"strings"
	"testing"
	"time"

	"fan-globe/internal/models"
	"fan-globe/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_RoundTripsExport(t *testing.T) {
	rows := []models.Submission{
		{ID: "b", Name: `A"B`, Email: "ab@example.com", Zip: "10001", City: "New York", State: "NY", Lat: 40.7506, Lon: -73.9972, Timestamp: "2025-06-01T12:00:01.000Z"},
		{ID: "a", Name: "Cy, Jr.", Email: "cy@example.com", Zip: "02108", City: "Boston", State: "MA", Lat: 42.357, Lon: -71.065, Timestamp: "2025-06-01T12:00:00.000Z"},
	}

	got, err := readCSV(strings.NewReader(string(service.ExportCSV(rows))), time.Now())
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReadCSV_FillsMissingFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	input := "name,email,zip,city,state,lat,lon\nBo,bo@example.com,73301,Austin,TX,30.2672,-97.7431\n"

	got, err := readCSV(strings.NewReader(input), now)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, "2025-06-01T08:00:00.000Z", got[0].Timestamp)
	assert.Equal(t, "Austin", got[0].City)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty file", input: ""},
		{name: "bad latitude", input: "id,lat,lon\nx,north,1\n"},
		{name: "unterminated quote", input: "id,name\n\"x,\"y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readCSV(strings.NewReader(tt.input), time.Now())
			assert.Error(t, err)
		})
	}
}

func TestSkipExisting(t *testing.T) {
	stored := []models.Submission{{ID: "a"}}
	records := []models.Submission{{ID: "a"}, {ID: "b"}, {ID: "b"}, {ID: "c"}}

	got := skipExisting(stored, records)
	assert.Equal(t, []models.Submission{{ID: "b"}, {ID: "c"}}, got)
}
