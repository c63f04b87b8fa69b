package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoardRejectsOutOfRangeSize(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0, 5) })
	assert.Panics(t, func() { NewBoard(5, 0) })
	assert.Panics(t, func() { NewBoard(maxRows+1, 5) })
	assert.Panics(t, func() { NewBoard(5, maxCols+1) })
}

func TestCountMinesFixedNeighborOrder(t *testing.T) {
	b := NewBoard(3, 3)
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			if r != 2 || c != 2 {
				b.SetMine(r, c, true)
			}
		}
	}
	assert.EqualValues(t, 8, b.CountMines(2, 2))
	assert.EqualValues(t, 2, b.CountMines(1, 1))
}

func TestOpenRejectsMineOrKnownCell(t *testing.T) {
	b := NewBoard(2, 2)
	b.SetMine(1, 1, true)
	b.Refresh()
	assert.Panics(t, func() { b.Open(1, 1) })

	b.Open(2, 2)
	assert.Panics(t, func() { b.Open(2, 2) })
}

func TestOpenFloodsThroughZeroCounts(t *testing.T) {
	b := NewBoard(5, 1)
	b.SetMine(5, 1, true)
	b.Refresh()

	b.Open(1, 1)
	for r := 1; r <= 3; r++ {
		assert.Equal(t, Opened, b.Cell(r, 1).State)
	}
	assert.Equal(t, Unknown, b.Cell(5, 1).State)
}

func TestSolved(t *testing.T) {
	b := NewBoard(2, 1)
	b.Refresh()
	assert.False(t, b.Solved())
	b.Open(1, 1)
	assert.True(t, b.Solved())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(2, 2)
	b.Refresh()
	clone := b.Clone()
	clone.SetMine(1, 1, true)
	assert.False(t, b.Cell(1, 1).IsMine)
	assert.True(t, clone.Cell(1, 1).IsMine)
}
