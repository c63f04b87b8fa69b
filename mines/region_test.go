package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConstraintCell(t *testing.T) {
	b := NewBoard(2, 2)
	b.SetMine(2, 2, true)
	b.Refresh()
	b.Open(1, 1)

	s := b.GetSituation()
	assert.True(t, isConstraintCell(&s, 1, 1))
	assert.False(t, isConstraintCell(&s, 2, 2), "unopened cells are never constraint cells")
}

func TestDecomposeSplitsDisjointRegions(t *testing.T) {
	// Mines at 4 and 8 stop the flood from either end short, leaving
	// two frontiers separated by a gap of untouched unknown cells that
	// never got a chance to become constraint cells themselves.
	b := NewBoard(1, 11)
	b.SetMine(1, 4, true)
	b.SetMine(1, 8, true)
	b.Refresh()
	b.Open(1, 1)
	b.Open(1, 11)

	s := b.GetSituation()
	r := rand.New(rand.NewPCG(1, 2))
	regions := decompose(&s, r)

	assert.Len(t, regions, 2)
	for _, region := range regions {
		assert.NotEmpty(t, region.Positions)
		assert.NotEmpty(t, region.Matrix)
	}
}

func TestDecomposeSingleFrontierIsOneRegion(t *testing.T) {
	b := NewBoard(1, 3)
	b.SetMine(1, 3, true)
	b.Refresh()
	b.Open(1, 1)

	s := b.GetSituation()
	r := rand.New(rand.NewPCG(1, 2))
	regions := decompose(&s, r)

	assert.Len(t, regions, 1)
	assert.Len(t, regions[0].Positions, 1)
	assert.Equal(t, Pos{1, 3}, regions[0].Positions[0], "opening col 1 floods col 2, leaving col 3 as the sole unknown")
}

func TestBuildRegionAccountsForFlaggedNeighbors(t *testing.T) {
	b := NewBoard(1, 3)
	b.SetMine(1, 1, true)
	b.SetMine(1, 3, true)
	b.Refresh()
	b.SetState(1, 1, Flagged)
	b.cellRef(1, 2).State = Opened

	s := b.GetSituation()
	region := buildRegion(&s, []Pos{{1, 2}}, []Pos{{1, 3}})

	// count at (1,2) is 2 mines, one of which (1,1) is already flagged,
	// so the equation's rhs should drop to 1.
	assert.EqualValues(t, 1, region.Matrix[0][len(region.Matrix[0])-1])
}
