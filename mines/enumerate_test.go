package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerateCountsLegalAssignments(t *testing.T) {
	// x0 + x1 = 1: two unknowns, exactly one is a mine in either of the
	// two legal assignments, so each column's count should be 1.
	m := Matrix{{1, 1, 1}}
	timer := NewTimer(1000)

	legalCount, counts, ok := enumerate(m, timer)
	assert.True(t, ok)
	assert.EqualValues(t, 2, legalCount)
	assert.Equal(t, []int64{1, 1}, counts)
}

func TestEnumerateNeverCountsForcedSafeColumn(t *testing.T) {
	// x0 + x1 + x2 = 1, x0 + x1 = 1 (forces x2 = 0 in every legal case).
	// Reduced first, as enumerate expects a matrix already in RREF.
	m := gaussianEliminate(Matrix{
		{1, 1, 1, 1},
		{1, 1, 0, 1},
	})
	timer := NewTimer(1000)

	legalCount, counts, ok := enumerate(m, timer)
	assert.True(t, ok)
	assert.Positive(t, legalCount)
	assert.EqualValues(t, 0, counts[2])
}

func TestEnumerateEmptyMatrixIsVacuouslyLegal(t *testing.T) {
	timer := NewTimer(1000)
	legalCount, counts, ok := enumerate(nil, timer)
	assert.True(t, ok)
	assert.EqualValues(t, 0, legalCount)
	assert.Nil(t, counts)
}

func TestEnumerateReturnsNotOkWhenTimerExpires(t *testing.T) {
	m := Matrix{{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}}
	timer := NewTimer(1)
	timer.Terminate()

	_, _, ok := enumerate(m, timer)
	assert.False(t, ok)
}
