package mines

import "math/rand/v2"

// Solvable runs the fixed-point loop of spec §4.H: while the timer
// hasn't expired, if the board is solved return true; otherwise
// snapshot its situation, run one deduction step, and write the
// result back (which flood-opens any newly forced-safe cell). Returns
// false as soon as a step makes no progress, or the timer expires.
//
// board is a working copy internally; the caller's board is never
// mutated.
func Solvable(board *Board, timer *Timer, r *rand.Rand) bool {
	work := board.Clone()
	for !timer.TimeIsUp() {
		if work.Solved() {
			return true
		}
		situation := work.GetSituation()
		if !SolveOneStep(&situation, timer, r) {
			Log.Debug("solve step made no progress, giving up")
			return false
		}
		work.SetSituation(situation)
	}
	Log.Debug("solve aborted by timer")
	return false
}

// SolvableWithBudget is the convenience overload of [Solvable] that
// owns its own timer.
func SolvableWithBudget(board *Board, budgetMs int, r *rand.Rand) bool {
	return Solvable(board, NewTimer(budgetMs), r)
}
