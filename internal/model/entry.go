package model

// Status values recognised in byStatus breakdowns and status filters
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBanned   = "banned"
)

// IsStatusValue reports whether s is a recognised status value
func IsStatusValue(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusBanned
}

// ByStatus is a breakdown of player counts by account status
type ByStatus struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Banned   int `json:"banned"`
}

// IsZero reports whether every count in the breakdown is zero
func (b ByStatus) IsZero() bool {
	return b.Active == 0 && b.Inactive == 0 && b.Banned == 0
}

// Count returns the count for a status value
func (b ByStatus) Count(status string) int {
	switch status {
	case StatusActive:
		return b.Active
	case StatusInactive:
		return b.Inactive
	case StatusBanned:
		return b.Banned
	default:
		return 0
	}
}

// Add accumulates another breakdown into this one
func (b *ByStatus) Add(other ByStatus) {
	b.Active += other.Active
	b.Inactive += other.Inactive
	b.Banned += other.Banned
}

// DefaultByStatus is the breakdown assigned when a caller supplies none
// (or supplies one where all counts are zero)
func DefaultByStatus() ByStatus {
	return ByStatus{Active: 1, Inactive: 0, Banned: 0}
}

// RegistrationDay is one point in a per-day registration histogram
type RegistrationDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Entry is one immutable analytics snapshot.
// Timestamps are ISO-8601 strings; UpdatedAt equals CreatedAt at creation
// and no mutation operation exists, so they stay equal.
type Entry struct {
	ID                 string            `json:"id"`
	CreatedAt          string            `json:"createdAt"`
	UpdatedAt          string            `json:"updatedAt"`
	TotalPlayers       float64           `json:"totalPlayers"`
	ActivePlayers      float64           `json:"activePlayers"`
	AvgPlaytimeMinutes float64           `json:"avgPlaytimeMinutes"`
	AvgScore           float64           `json:"avgScore"`
	ByStatus           ByStatus          `json:"byStatus"`
	RegistrationsByDay []RegistrationDay `json:"registrationsByDay"`
}

// CreatedDay returns the date portion (YYYY-MM-DD) of the creation
// timestamp, or "" if the entry has no creation timestamp
func (e *Entry) CreatedDay() string {
	if len(e.CreatedAt) < 10 {
		return ""
	}
	return e.CreatedAt[:10]
}

// Summary is the population-wide aggregate over the full collection.
// It is derived, never persisted, and independent of any query.
type Summary struct {
	TotalPlayers       float64           `json:"totalPlayers"`
	ActivePlayers      float64           `json:"activePlayers"`
	AvgPlaytimeMinutes float64           `json:"avgPlaytimeMinutes"`
	AvgScore           float64           `json:"avgScore"`
	ByStatus           ByStatus          `json:"byStatus"`
	RegistrationsByDay []RegistrationDay `json:"registrationsByDay"`
}

// EmptySummary returns the all-zero summary used for an empty collection
func EmptySummary() Summary {
	return Summary{
		RegistrationsByDay: []RegistrationDay{},
	}
}

// CreateEntryInput is a validated, normalized write payload.
// ByStatus is nil when the caller supplied no breakdown.
type CreateEntryInput struct {
	TotalPlayers       float64
	ActivePlayers      float64
	AvgPlaytimeMinutes float64
	AvgScore           float64
	ByStatus           *ByStatus
	RegistrationsByDay []RegistrationDay
}
