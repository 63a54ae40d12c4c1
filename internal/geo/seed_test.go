package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_DemoOrder(t *testing.T) {
	seed := Seed()

	zips := make([]string, len(seed))
	for i, e := range seed {
		zips[i] = e.Zip
	}
	assert.Equal(t, []string{"10001", "30301", "48201", "60601", "73301", "80202", "90001", "94102", "98101", "02108"}, zips)
}

func TestSeed_ReturnsCopy(t *testing.T) {
	seed := Seed()
	seed[0].Zip = "00000"

	assert.Equal(t, "10001", Seed()[0].Zip)
}

func TestLookupSeed(t *testing.T) {
	tests := []struct {
		zip       string
		wantCity  string
		wantFound bool
	}{
		{zip: "10001", wantCity: "New York", wantFound: true},
		{zip: "02108", wantCity: "Boston", wantFound: true},
		{zip: "2108", wantFound: false},
		{zip: "12345", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.zip, func(t *testing.T) {
			place, ok := LookupSeed(tt.zip)
			require.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantCity, place.City)
		})
	}
}
