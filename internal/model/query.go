package model

// ListQuery carries raw, untrusted query parameters for one list request.
// All fields are strings as received from the transport layer; the query
// pipeline's normalization step is the single place that interprets them.
type ListQuery struct {
	Search    string
	Status    string
	DateFrom  string
	DateTo    string
	SortBy    string
	SortOrder string
	Page      string
	Limit     string
}

// ListResult is the combined read response: one page of entries plus
// pagination metadata and the population-wide summary
type ListResult struct {
	Items      []Entry `json:"items"`
	TotalCount int     `json:"totalCount"`
	TotalPages int     `json:"totalPages"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	Summary    Summary `json:"summary"`
}
