package mines

import (
	"math/rand/v2"
)

// Pos is a 1-based board coordinate.
type Pos struct {
	Row, Col int
}

// Region is a maximal connected component of the bipartite frontier
// graph (spec §4.E): the unknown positions it constrains, in a
// randomised order, and the linear system relating them.
type Region struct {
	Positions []Pos
	Matrix    Matrix
}

// isConstraintCell reports whether (r, c) is an opened cell with at
// least one unknown neighbour — the boundary cells that contribute
// one equation each.
func isConstraintCell(s *Situation, r, c int) bool {
	if s.at(r, c).State != Opened {
		return false
	}
	for _, off := range neighborOffsets {
		nr, nc := r+off[0], c+off[1]
		if nr >= 1 && nr <= s.Rows && nc >= 1 && nc <= s.Cols && s.at(nr, nc).State == Unknown {
			return true
		}
	}
	return false
}

// decompose partitions the unknown frontier into independent regions.
//
// The outer loop is a plain double scan over the board for the next
// unvisited constraint cell, same as ms_solve.h's Divide(): the board
// is capped at 50x100 cells (spec §3), so there is no rescanning to
// avoid and no benefit to tracking the frontier in an ordered
// structure — a `visited` array is all the bookkeeping this needs.
func decompose(s *Situation, r *rand.Rand) []Region {
	visited := make([]bool, s.Rows*s.Cols)
	var regions []Region

	for row := 1; row <= s.Rows; row++ {
		for col := 1; col <= s.Cols; col++ {
			idx := s.index(row, col)
			if visited[idx] || !isConstraintCell(s, row, col) {
				continue
			}
			visited[idx] = true

			known := []Pos{{row, col}}
			var unknown []Pos
			queue := []Pos{{row, col}}

			for len(queue) > 0 {
				pos := queue[0]
				queue = queue[1:]

				if s.at(pos.Row, pos.Col).State == Opened {
					for _, off := range neighborOffsets {
						nr, nc := pos.Row+off[0], pos.Col+off[1]
						if nr < 1 || nr > s.Rows || nc < 1 || nc > s.Cols {
							continue
						}
						ni := s.index(nr, nc)
						if visited[ni] || s.at(nr, nc).State != Unknown {
							continue
						}
						visited[ni] = true
						np := Pos{nr, nc}
						unknown = append(unknown, np)
						queue = append(queue, np)
					}
				} else {
					for _, off := range neighborOffsets {
						nr, nc := pos.Row+off[0], pos.Col+off[1]
						if nr < 1 || nr > s.Rows || nc < 1 || nc > s.Cols {
							continue
						}
						ni := s.index(nr, nc)
						if visited[ni] || !isConstraintCell(s, nr, nc) {
							continue
						}
						visited[ni] = true
						np := Pos{nr, nc}
						known = append(known, np)
						queue = append(queue, np)
					}
				}
			}

			shuffle(unknown, r)
			regions = append(regions, buildRegion(s, known, unknown))
		}
	}

	Log.Debug("decomposed frontier into regions", "regions", len(regions))
	return regions
}

// buildRegion assembles the constraint matrix for one region (spec
// §4.E step 4): one row per constraint cell, one column per unknown
// position, rhs is the constraint cell's mine count less its already
// flagged neighbours.
func buildRegion(s *Situation, known, unknown []Pos) Region {
	varIndex := make(map[Pos]int, len(unknown))
	for i, p := range unknown {
		varIndex[p] = i
	}

	m := make(Matrix, len(known))
	for i, p := range known {
		row := make([]float64, len(unknown)+1)
		rhs := float64(s.at(p.Row, p.Col).Count)
		for _, off := range neighborOffsets {
			nr, nc := p.Row+off[0], p.Col+off[1]
			if nr < 1 || nr > s.Rows || nc < 1 || nc > s.Cols {
				continue
			}
			switch s.at(nr, nc).State {
			case Flagged:
				rhs--
			case Unknown:
				if idx, ok := varIndex[Pos{nr, nc}]; ok {
					row[idx] = 1
				}
			}
		}
		row[len(unknown)] = rhs
		m[i] = row
	}

	return Region{Positions: unknown, Matrix: m}
}
