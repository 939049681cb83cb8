package request

import "github.com/pulsedash/pulsedash-go/internal/model"

// ByStatusPayload is the optional status breakdown on a create request
type ByStatusPayload struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Banned   int `json:"banned"`
}

// CreateEntryRequest is the request body for creating an analytics entry.
// Required numeric fields are pointers so that "absent" and "zero" can be
// told apart during validation.
type CreateEntryRequest struct {
	TotalPlayers       *float64                `json:"totalPlayers"`
	ActivePlayers      *float64                `json:"activePlayers"`
	AvgPlaytimeMinutes *float64                `json:"avgPlaytimeMinutes"`
	AvgScore           *float64                `json:"avgScore"`
	ByStatus           *ByStatusPayload        `json:"byStatus"`
	RegistrationsByDay []model.RegistrationDay `json:"registrationsByDay"`
}
