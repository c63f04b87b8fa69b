package mines

// SituationCell is the observable projection of a [Cell]: the solver
// never inspects IsMine of an unopened cell.
type SituationCell struct {
	State State
	Count int8
}

// Situation is the per-cell (state, count) view a board exposes to
// the solver (spec §3). It is created per deduction step and
// discarded; regions live only within one invocation of the one-step
// deducer operating on a Situation.
type Situation struct {
	Rows, Cols int
	Cells      []SituationCell
}

func (s *Situation) index(r, c int) int {
	return (r-1)*s.Cols + (c - 1)
}

func (s *Situation) at(r, c int) SituationCell {
	return s.Cells[s.index(r, c)]
}

func (s *Situation) set(r, c int, cell SituationCell) {
	s.Cells[s.index(r, c)] = cell
}

// GetSituation projects the board into its observable (state, count)
// view.
func (b *Board) GetSituation() Situation {
	s := Situation{Rows: b.rows, Cols: b.cols, Cells: make([]SituationCell, len(b.cells))}
	for i, cell := range b.cells {
		s.Cells[i] = SituationCell{State: cell.State, Count: cell.Count}
	}
	return s
}

// SetSituation writes s back into the board. It may only upgrade an
// Unknown cell to Flagged or Opened (Opened invokes [Board.Open],
// thus flood-propagates); it never downgrades a cell's state.
// Panics with [AssertionError] if the shapes disagree.
func (b *Board) SetSituation(s Situation) {
	if s.Rows != b.rows || s.Cols != b.cols {
		panic(AssertionError{"situation shape mismatch"})
	}
	for r := 1; r <= b.rows; r++ {
		for c := 1; c <= b.cols; c++ {
			cell := b.cellRef(r, c)
			if cell.State != Unknown {
				continue
			}
			switch s.at(r, c).State {
			case Flagged:
				cell.State = Flagged
			case Opened:
				b.Open(r, c)
			}
		}
	}
}
