package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsedash/pulsedash-go/internal/api/request"
	"github.com/pulsedash/pulsedash-go/internal/model"
)

func f(v float64) *float64 { return &v }

func TestValidateCreateEntry_Valid(t *testing.T) {
	req := &request.CreateEntryRequest{
		TotalPlayers:  f(100),
		ActivePlayers: f(40),
	}

	assert.Nil(t, request.ValidateCreateEntry(req))
}

func TestValidateCreateEntry_ZeroIsValid(t *testing.T) {
	req := &request.CreateEntryRequest{
		TotalPlayers:  f(0),
		ActivePlayers: f(0),
	}

	assert.Nil(t, request.ValidateCreateEntry(req))
}

func TestValidateCreateEntry_CollectsAllViolations(t *testing.T) {
	req := &request.CreateEntryRequest{
		ActivePlayers:      f(-1),
		AvgPlaytimeMinutes: f(-2),
		AvgScore:           f(-3),
		ByStatus:           &request.ByStatusPayload{Active: -1},
	}

	verr := request.ValidateCreateEntry(req)
	require.NotNil(t, verr)
	assert.Equal(t, []string{
		"totalPlayers is required",
		"activePlayers must be a non-negative number",
		"avgPlaytimeMinutes must be a non-negative number",
		"avgScore must be a non-negative number",
		"byStatus counts must be non-negative",
	}, verr.Details)
}

func TestValidateCreateEntry_MissingRequiredFields(t *testing.T) {
	verr := request.ValidateCreateEntry(&request.CreateEntryRequest{})
	require.NotNil(t, verr)
	assert.Equal(t, []string{
		"totalPlayers is required",
		"activePlayers is required",
	}, verr.Details)
}

func TestToInput(t *testing.T) {
	t.Run("optional numerics default to zero", func(t *testing.T) {
		req := &request.CreateEntryRequest{
			TotalPlayers:  f(100),
			ActivePlayers: f(40),
		}

		input := req.ToInput()
		assert.Equal(t, float64(100), input.TotalPlayers)
		assert.Equal(t, float64(0), input.AvgPlaytimeMinutes)
		assert.Equal(t, float64(0), input.AvgScore)
		assert.Nil(t, input.ByStatus)
	})

	t.Run("byStatus carried over when supplied", func(t *testing.T) {
		req := &request.CreateEntryRequest{
			TotalPlayers:  f(1),
			ActivePlayers: f(1),
			ByStatus:      &request.ByStatusPayload{Active: 2, Inactive: 3, Banned: 4},
		}

		input := req.ToInput()
		require.NotNil(t, input.ByStatus)
		assert.Equal(t, model.ByStatus{Active: 2, Inactive: 3, Banned: 4}, *input.ByStatus)
	})
}
