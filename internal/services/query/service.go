// Package query implements the read-path pipeline: normalize the raw query
// parameters, then filter, sort, and paginate a snapshot of the collection.
// Every function here is pure; the pipeline never mutates its input and
// never fails; malformed parameters degrade to defaults.
package query

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pulsedash/pulsedash-go/internal/model"
)

// Pagination and sort defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
	SortOrderAsc    = "asc"
	SortOrderDesc   = "desc"
)

// Params are fully normalized query parameters. Zero or malformed raw values
// have already been replaced by defaults; downstream stages trust every field.
type Params struct {
	Search    string
	Status    string
	DateFrom  string
	DateTo    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Result is one page of entries plus pagination metadata
type Result struct {
	Items      []model.Entry
	TotalCount int
	TotalPages int
	Page       int
	Limit      int
}

// Normalize is the single point where untrusted query parameters are
// interpreted. The read path deliberately tolerates bad input: anything
// malformed falls back to a default rather than failing the request.
func Normalize(raw model.ListQuery) Params {
	p := Params{
		Search:    strings.ToLower(strings.TrimSpace(raw.Search)),
		DateFrom:  raw.DateFrom,
		DateTo:    raw.DateTo,
		SortBy:    SortByUpdatedAt,
		SortOrder: SortOrderDesc,
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}

	if status := strings.ToLower(raw.Status); model.IsStatusValue(status) {
		p.Status = status
	}

	if raw.SortBy == SortByCreatedAt || raw.SortBy == SortByUpdatedAt {
		p.SortBy = raw.SortBy
	}
	if order := strings.ToLower(raw.SortOrder); order == SortOrderAsc || order == SortOrderDesc {
		p.SortOrder = order
	}

	if page, err := strconv.Atoi(raw.Page); err == nil && page > 1 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(raw.Limit); err == nil && limit != 0 {
		p.Limit = min(max(limit, 1), MaxLimit)
	}

	return p
}

// Filter applies the conjunctive predicates: free-text search, status
// presence, and createdAt date-range bounds
func Filter(entries []model.Entry, p Params) []model.Entry {
	result := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if p.Search != "" && !matchesSearch(&e, p.Search) {
			continue
		}
		if p.Status != "" && e.ByStatus.Count(p.Status) <= 0 {
			continue
		}
		if p.DateFrom != "" && !(e.CreatedDay() != "" && e.CreatedDay() >= p.DateFrom) {
			continue
		}
		if p.DateTo != "" && !(e.CreatedDay() != "" && e.CreatedDay() <= p.DateTo) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// matchesSearch reports whether the lower-cased concatenation of the entry's
// id and player counts contains the (already lower-cased) search text
func matchesSearch(e *model.Entry, search string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		e.ID,
		formatNumber(e.TotalPlayers),
		formatNumber(e.ActivePlayers),
	}, " "))
	return strings.Contains(haystack, search)
}

// formatNumber renders a float the way the dashboard displays it: shortest
// representation, no exponent for typical magnitudes
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Sort returns a sorted copy of the entries.
//
// Comparison keys are the raw timestamp strings: updatedAt falls back to
// createdAt when absent, createdAt has no fallback. The comparison is
// locale-aware and numeric-substring-aware so that numeric runs inside
// non-ISO identifiers order by value; on ISO-8601 timestamps it degenerates
// to chronological order. The sort is stable so that pagination slices are
// reproducible across equal keys.
func Sort(entries []model.Entry, p Params) []model.Entry {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)

	dir := 1
	if p.SortOrder == SortOrderDesc {
		dir = -1
	}

	key := func(e *model.Entry) string {
		if p.SortBy == SortByCreatedAt {
			return e.CreatedAt
		}
		if e.UpdatedAt != "" {
			return e.UpdatedAt
		}
		return e.CreatedAt
	}

	coll := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dir*coll.CompareString(key(&sorted[i]), key(&sorted[j])) < 0
	})

	return sorted
}

// Paginate slices one page out of the filtered, sorted sequence.
// Out-of-range pages yield an empty page, never an error.
func Paginate(entries []model.Entry, p Params) Result {
	totalCount := len(entries)
	totalPages := max(1, int(math.Ceil(float64(totalCount)/float64(p.Limit))))

	start := (p.Page - 1) * p.Limit
	if start > totalCount {
		start = totalCount
	}
	end := min(start+p.Limit, totalCount)

	return Result{
		Items:      entries[start:end],
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       p.Page,
		Limit:      p.Limit,
	}
}

// Run composes the full pipeline: normalize, filter, sort, paginate
func Run(entries []model.Entry, raw model.ListQuery) Result {
	p := Normalize(raw)
	return Paginate(Sort(Filter(entries, p), p), p)
}
