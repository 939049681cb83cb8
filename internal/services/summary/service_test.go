package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/services/summary"
)

func TestCompute_EmptyCollection(t *testing.T) {
	s := summary.Compute([]model.Entry{})

	assert.Equal(t, model.Summary{RegistrationsByDay: []model.RegistrationDay{}}, s)
	assert.NotNil(t, s.RegistrationsByDay)
}

func TestCompute_WeightedAverages(t *testing.T) {
	entries := []model.Entry{
		{TotalPlayers: 10, ActivePlayers: 4, AvgPlaytimeMinutes: 100, AvgScore: 1000},
		{TotalPlayers: 30, ActivePlayers: 9, AvgPlaytimeMinutes: 200, AvgScore: 2000},
	}

	s := summary.Compute(entries)

	// (100*10 + 200*30) / 40 = 175, (1000*10 + 2000*30) / 40 = 1750
	assert.Equal(t, float64(40), s.TotalPlayers)
	assert.Equal(t, float64(13), s.ActivePlayers)
	assert.Equal(t, float64(175), s.AvgPlaytimeMinutes)
	assert.Equal(t, float64(1750), s.AvgScore)
}

func TestCompute_AveragesRoundedToTwoDecimals(t *testing.T) {
	entries := []model.Entry{
		{TotalPlayers: 3, AvgPlaytimeMinutes: 10, AvgScore: 1},
		{TotalPlayers: 4, AvgPlaytimeMinutes: 20, AvgScore: 2},
	}

	s := summary.Compute(entries)

	// (10*3 + 20*4) / 7 = 15.714285... and (1*3 + 2*4) / 7 = 1.571428...
	assert.Equal(t, 15.71, s.AvgPlaytimeMinutes)
	assert.Equal(t, 1.57, s.AvgScore)
}

func TestCompute_ZeroWeightAveragesAreZero(t *testing.T) {
	entries := []model.Entry{
		{TotalPlayers: 0, ActivePlayers: 0, AvgPlaytimeMinutes: 50, AvgScore: 500},
		{TotalPlayers: 0, ActivePlayers: 0, AvgPlaytimeMinutes: 60, AvgScore: 600},
	}

	s := summary.Compute(entries)

	assert.Equal(t, float64(0), s.AvgPlaytimeMinutes)
	assert.Equal(t, float64(0), s.AvgScore)
}

func TestCompute_ByStatusAccumulates(t *testing.T) {
	entries := []model.Entry{
		{TotalPlayers: 1, ByStatus: model.ByStatus{Active: 3, Inactive: 1}},
		{TotalPlayers: 1, ByStatus: model.ByStatus{Active: 2, Banned: 4}},
	}

	s := summary.Compute(entries)

	assert.Equal(t, model.ByStatus{Active: 5, Inactive: 1, Banned: 4}, s.ByStatus)
}

func TestCompute_RegistrationHistogram(t *testing.T) {
	entries := []model.Entry{
		{TotalPlayers: 1, CreatedAt: "2025-03-02T10:00:00.000Z"},
		{TotalPlayers: 1, CreatedAt: "2025-03-01T09:00:00.000Z"},
		{TotalPlayers: 1, CreatedAt: "2025-03-01T23:59:59.000Z"},
		{TotalPlayers: 1, CreatedAt: ""},
	}

	s := summary.Compute(entries)

	require.Len(t, s.RegistrationsByDay, 2)
	assert.Equal(t, model.RegistrationDay{Date: "2025-03-01", Count: 2}, s.RegistrationsByDay[0])
	assert.Equal(t, model.RegistrationDay{Date: "2025-03-02", Count: 1}, s.RegistrationsByDay[1])
}

func TestCompute_HistogramIgnoresSuppliedRegistrations(t *testing.T) {
	entries := []model.Entry{
		{
			TotalPlayers: 1,
			CreatedAt:    "2025-03-01T10:00:00.000Z",
			RegistrationsByDay: []model.RegistrationDay{
				{Date: "2020-01-01", Count: 999},
			},
		},
	}

	s := summary.Compute(entries)

	require.Len(t, s.RegistrationsByDay, 1)
	assert.Equal(t, model.RegistrationDay{Date: "2025-03-01", Count: 1}, s.RegistrationsByDay[0])
}
