package service

import (
	"cmp"
	"slices"

	"fan-globe/internal/models"
)

// Campaign thresholds.
const (
	CityGoal         = 100
	PresaleThreshold = 0.01 // fraction of CityGoal the leading city needs to unlock the presale
)

// BuildLeaderboard counts submissions per "<city>, <state>", ordered by count
// descending and then by place ascending.
func BuildLeaderboard(rows []models.Submission) []models.LeaderboardEntry {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[models.PlaceLabel(r.City, r.State)]++
	}

	board := make([]models.LeaderboardEntry, 0, len(counts))
	for place, n := range counts {
		board = append(board, models.LeaderboardEntry{Place: place, Count: n})
	}
	slices.SortFunc(board, func(a, b models.LeaderboardEntry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Place, b.Place)
	})
	return board
}

// BuildCampaign reports the leading city's progress toward CityGoal.
func BuildCampaign(board []models.LeaderboardEntry) models.Campaign {
	c := models.Campaign{Goal: CityGoal}
	if len(board) == 0 {
		return c
	}

	top := board[0]
	c.TopPlace = top.Place
	c.TopCount = top.Count
	c.Progress = min(1, float64(top.Count)/float64(CityGoal))
	c.PresaleUnlocked = float64(top.Count) >= float64(CityGoal)*PresaleThreshold
	return c
}

// BuildMarkers projects submissions for the globe, fanning out pins that
// share a city with a small deterministic offset.
func BuildMarkers(rows []models.Submission) []models.Marker {
	markers := make([]models.Marker, len(rows))
	for i, r := range rows {
		d := jitter(i)
		markers[i] = models.Marker{
			ID:    r.ID,
			Place: models.PlaceLabel(r.City, r.State),
			Lat:   r.Lat + d,
			Lon:   r.Lon + d,
		}
	}
	return markers
}

func jitter(i int) float64 {
	sign := -0.2
	if i%2 == 1 {
		sign = 0.2
	}
	return sign * float64(i%5+1)
}
