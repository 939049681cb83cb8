package request

import "github.com/pulsedash/pulsedash-go/internal/model"

// ValidateCreateEntry checks required-field and non-negativity constraints
// on a create request. All violations are collected so the caller sees every
// problem in one response.
func ValidateCreateEntry(req *CreateEntryRequest) *model.ValidationError {
	var details []string

	switch {
	case req.TotalPlayers == nil:
		details = append(details, "totalPlayers is required")
	case *req.TotalPlayers < 0:
		details = append(details, "totalPlayers must be a non-negative number")
	}

	switch {
	case req.ActivePlayers == nil:
		details = append(details, "activePlayers is required")
	case *req.ActivePlayers < 0:
		details = append(details, "activePlayers must be a non-negative number")
	}

	if req.AvgPlaytimeMinutes != nil && *req.AvgPlaytimeMinutes < 0 {
		details = append(details, "avgPlaytimeMinutes must be a non-negative number")
	}
	if req.AvgScore != nil && *req.AvgScore < 0 {
		details = append(details, "avgScore must be a non-negative number")
	}
	if req.ByStatus != nil &&
		(req.ByStatus.Active < 0 || req.ByStatus.Inactive < 0 || req.ByStatus.Banned < 0) {
		details = append(details, "byStatus counts must be non-negative")
	}

	if len(details) > 0 {
		return &model.ValidationError{Details: details}
	}
	return nil
}

// ToInput converts a validated create request into the controller's input.
// Optional numeric fields default to 0; the byStatus default rule is applied
// later, at creation time.
func (r *CreateEntryRequest) ToInput() model.CreateEntryInput {
	input := model.CreateEntryInput{
		TotalPlayers:       deref(r.TotalPlayers),
		ActivePlayers:      deref(r.ActivePlayers),
		AvgPlaytimeMinutes: deref(r.AvgPlaytimeMinutes),
		AvgScore:           deref(r.AvgScore),
		RegistrationsByDay: r.RegistrationsByDay,
	}
	if r.ByStatus != nil {
		input.ByStatus = &model.ByStatus{
			Active:   r.ByStatus.Active,
			Inactive: r.ByStatus.Inactive,
			Banned:   r.ByStatus.Banned,
		}
	}
	return input
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
