package mines

import "math/rand/v2"

// SolveOneStep composes region decomposition, Gaussian elimination
// and brute-force enumeration to flag or open every currently forced
// cell of situation (spec §4.G). It mutates situation in place and
// reports whether any cell's state changed.
//
// Counts inside situation are never recomputed here — they derive
// from the true board and are refreshed by [Solvable] on the next
// round trip through [Board.SetSituation]/[Board.GetSituation].
func SolveOneStep(situation *Situation, timer *Timer, r *rand.Rand) bool {
	regions := decompose(situation, r)
	shuffle(regions, r)

	progress := false
	for _, region := range regions {
		if timer.TimeIsUp() {
			break
		}

		reduced := gaussianEliminate(region.Matrix.clone())
		if forced := extractForced(reduced); len(forced) > 0 {
			applyForced(situation, region.Positions, forced)
			progress = true
			continue
		}

		legalCount, counts, ok := enumerate(reduced, timer)
		if !ok || legalCount == 0 {
			continue
		}
		for i, c := range counts {
			p := region.Positions[i]
			switch {
			case c == 0:
				situation.set(p.Row, p.Col, SituationCell{State: Opened, Count: situation.at(p.Row, p.Col).Count})
				progress = true
			case c == legalCount:
				situation.set(p.Row, p.Col, SituationCell{State: Flagged, Count: situation.at(p.Row, p.Col).Count})
				progress = true
			}
		}
	}
	Log.Debug("one-step deduction finished", "regions", len(regions), "progress", progress)
	return progress
}

func applyForced(situation *Situation, positions []Pos, forced []ForcedVar) {
	for _, f := range forced {
		p := positions[f.Index]
		state := Opened
		if f.Mine {
			state = Flagged
		}
		situation.set(p.Row, p.Col, SituationCell{State: state, Count: situation.at(p.Row, p.Col).Count})
	}
}
