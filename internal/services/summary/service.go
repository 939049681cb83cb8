// Package summary computes the population-wide aggregate over the full
// analytics collection. It is always fed the entire collection, never the
// filtered or paginated subset the query pipeline produces.
package summary

import (
	"math"
	"sort"

	"github.com/pulsedash/pulsedash-go/internal/model"
)

// Compute aggregates every entry into one Summary.
//
// The playtime and score averages are weighted means with each entry's
// totalPlayers as the weight; a zero weight sum yields 0. The registration
// histogram tallies one count per entry by the date portion of createdAt.
// It is derived here and independent of the registrationsByDay sequences
// supplied on the entries themselves.
func Compute(entries []model.Entry) model.Summary {
	if len(entries) == 0 {
		return model.EmptySummary()
	}

	s := model.EmptySummary()
	var sumPlaytime, sumScore float64
	days := make(map[string]int)

	for _, e := range entries {
		s.TotalPlayers += e.TotalPlayers
		s.ActivePlayers += e.ActivePlayers
		sumPlaytime += e.AvgPlaytimeMinutes * e.TotalPlayers
		sumScore += e.AvgScore * e.TotalPlayers
		s.ByStatus.Add(e.ByStatus)

		if day := e.CreatedDay(); day != "" {
			days[day]++
		}
	}

	if s.TotalPlayers > 0 {
		s.AvgPlaytimeMinutes = round2(sumPlaytime / s.TotalPlayers)
		s.AvgScore = round2(sumScore / s.TotalPlayers)
	}

	for date, count := range days {
		s.RegistrationsByDay = append(s.RegistrationsByDay, model.RegistrationDay{
			Date:  date,
			Count: count,
		})
	}
	sort.Slice(s.RegistrationsByDay, func(i, j int) bool {
		return s.RegistrationsByDay[i].Date < s.RegistrationsByDay[j].Date
	})

	return s
}

// round2 rounds half-up to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
