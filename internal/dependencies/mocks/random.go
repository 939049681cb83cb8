package mocks

import (
	"github.com/pulsedash/pulsedash-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// SuffixResults is a queue of results to return from Suffix
	SuffixResults []string
	suffixIndex   int

	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Suffix returns the next queued result, or empty string if none remaining
func (r *MockRandom) Suffix(length int) string {
	if r.suffixIndex >= len(r.SuffixResults) {
		return ""
	}
	result := r.SuffixResults[r.suffixIndex]
	r.suffixIndex++
	return result
}

// QueueSuffix adds values to the Suffix result queue
func (r *MockRandom) QueueSuffix(values ...string) {
	r.SuffixResults = append(r.SuffixResults, values...)
}
