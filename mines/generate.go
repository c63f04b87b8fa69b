package mines

import (
	"errors"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// Restriction is a per-cell placement constraint, generator input
// only (spec §3).
type Restriction int8

const (
	Unrestricted Restriction = iota
	IsMine
	NotMine
)

// GenerateType selects between unconditionally random placement and
// timed solvable-board synthesis (spec §4.I).
type GenerateType int8

const (
	TypeNormal GenerateType = iota
	TypeSolvable
)

const (
	minBudget  = 1
	maxBudget  = 60_000
	minThreads = 1
	maxThreads = 64
)

// Generate produces a mine placement honouring restriction, of the
// requested type. restriction and initial must each have exactly
// rows*cols entries in row-major order. mineCount of zero selects the
// default of spec §4.I: min(floor(0.15*rows*cols),
// floor(unrestrictedSlots/4)).
//
// initial is only applied in Solvable mode, which builds its candidate
// boards from it before checking solvability (spec §4.I): Normal mode
// mines the board and returns it without pre-setting any grid state,
// matching ms_generate.h's GenerateNormal, which doesn't even take a
// gridstate parameter.
//
// Precondition violations (out-of-range sizes/budget/threads,
// mismatched map lengths, a negative mine count) panic with
// [AssertionError] internally and surface here as a returned error,
// matching the recover pattern in the teacher's NewGame. A mine count
// that the unrestricted slots cannot hold is not a panic: it is
// returned as an ordinary error.
func Generate(
	rows, cols int,
	restriction []Restriction,
	initial []State,
	typ GenerateType,
	budgetMs, threads, mineCount int,
) (board *Board, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var ae AssertionError
			if e, ok := rec.(error); ok && errors.As(e, &ae) {
				board, err = nil, ae
				return
			}
			panic(rec)
		}
	}()

	if rows < 1 || rows > maxRows || cols < 1 || cols > maxCols {
		panic(AssertionError{"board size out of range"})
	}
	if len(restriction) != rows*cols || len(initial) != rows*cols {
		panic(AssertionError{"restriction/initial map size mismatch"})
	}
	if budgetMs < minBudget || budgetMs > maxBudget {
		panic(AssertionError{"budget out of range"})
	}
	if threads < minThreads || threads > maxThreads {
		panic(AssertionError{"thread count out of range"})
	}
	if mineCount < 0 {
		panic(AssertionError{"mine count cannot be negative"})
	}

	unrestricted := 0
	for _, res := range restriction {
		if res == Unrestricted {
			unrestricted++
		}
	}
	if mineCount == 0 {
		mineCount = min(int(0.15*float64(rows*cols)), unrestricted/4)
	}

	base := NewBoard(rows, cols)
	for i, res := range restriction {
		if res == IsMine {
			r, c := i/cols+1, i%cols+1
			base.SetMine(r, c, true)
		}
	}

	switch typ {
	case TypeNormal:
		b, ok := generateNormal(base, restriction, mineCount)
		if !ok {
			return nil, errors.New("mine count incompatible with restrictions")
		}
		return b, nil
	default:
		b, ok := generateSolvable(base, restriction, initial, mineCount, budgetMs, threads)
		if !ok {
			return nil, errors.New("no solvable board found within budget")
		}
		return b, nil
	}
}

// applyInitialState seeds board's grid-state map after mines have
// been placed and counts refreshed (spec §4.I): Opened entries flood
// through [Board.Open] exactly as a player's first click would,
// Flagged entries are set directly.
func applyInitialState(board *Board, initial []State) {
	cols := board.Cols()
	for i, s := range initial {
		r, c := i/cols+1, i%cols+1
		switch s {
		case Opened:
			board.Open(r, c)
		case Flagged:
			board.SetState(r, c, Flagged)
		}
	}
}

// GenerateAt is the convenience overload of [Generate]: a starting
// position (zero meaning "choose uniformly at random") translates to
// restriction[start] = NotMine and initial[start] = Opened, all other
// cells Unrestricted and Unknown. initial only takes effect in
// Solvable mode (see [Generate]); in Normal mode the start position is
// merely guaranteed not to be mined.
func GenerateAt(
	rows, cols, startRow, startCol int,
	typ GenerateType,
	budgetMs, threads, mineCount int,
) (*Board, error) {
	if rows < 1 || rows > maxRows || cols < 1 || cols > maxCols {
		return nil, AssertionError{"board size out of range"}
	}
	if startRow == 0 {
		startRow = uniformInt(globalRand.derive(), 1, rows+1)
	}
	if startCol == 0 {
		startCol = uniformInt(globalRand.derive(), 1, cols+1)
	}
	if startRow < 1 || startRow > rows || startCol < 1 || startCol > cols {
		return nil, AssertionError{"start position out of range"}
	}

	restriction := make([]Restriction, rows*cols)
	initial := make([]State, rows*cols)
	startIdx := (startRow-1)*cols + (startCol - 1)
	restriction[startIdx] = NotMine
	initial[startIdx] = Opened

	return Generate(rows, cols, restriction, initial, typ, budgetMs, threads, mineCount)
}

// generateNormal collects the Unrestricted slots, shuffles them, and
// mines a prefix of the required length (spec §4.I "Normal mode").
//
// mineCount is the total number of mines the finished board should
// carry, including any already placed via a restriction of IsMine;
// those are subtracted before the feasibility check and placement
// loop below, matching ms_generate.h's GenerateNormal.
func generateNormal(base *Board, restriction []Restriction, mineCount int) (*Board, bool) {
	cols := base.Cols()
	var slots []Pos
	preplaced := 0
	for i, res := range restriction {
		switch res {
		case Unrestricted:
			slots = append(slots, Pos{i/cols + 1, i%cols + 1})
		case IsMine:
			preplaced++
		}
	}
	mineCount -= preplaced
	if mineCount < 0 || mineCount > len(slots) {
		return nil, false
	}

	board := base.Clone()
	shuffle(slots, globalRand.derive())
	for _, p := range slots[:mineCount] {
		board.SetMine(p.Row, p.Col, true)
	}
	board.Refresh()
	return board, true
}

// generateSolvable launches threads parallel workers, each sampling
// mine permutations over the unrestricted slots until one produces a
// solvable board or the shared timer expires (spec §4.I "Solvable
// mode", spec §5's concurrency model). The first published success
// wins; siblings are cancelled cooperatively through the timer.
func generateSolvable(base *Board, restriction []Restriction, initial []State, mineCount, budgetMs, threads int) (*Board, bool) {
	cols := base.Cols()
	var slots []Pos
	preplaced := 0
	for i, res := range restriction {
		switch res {
		case Unrestricted:
			slots = append(slots, Pos{i/cols + 1, i%cols + 1})
		case IsMine:
			preplaced++
		}
	}
	mineCount -= preplaced
	if mineCount < 0 || mineCount > len(slots) {
		return nil, false
	}

	timer := NewTimer(budgetMs)
	success := make(chan *Board, 1)

	g := new(errgroup.Group)
	for w := 0; w < threads; w++ {
		workerRand := globalRand.derive()
		g.Go(func() error {
			runGeneratorWorker(base, slots, initial, mineCount, timer, workerRand, success)
			return nil
		})
	}
	g.Wait()

	select {
	case board := <-success:
		return board, true
	default:
		return nil, false
	}
}

// runGeneratorWorker samples mine permutations over candidate until
// the resulting board, with its grid-state map seeded by
// [applyInitialState], is solvable or the shared timer expires.
//
// Runs as one of several goroutines under an errgroup; a stray
// [AssertionError] here must not take the whole group down, so it is
// recovered and treated as this worker simply finding nothing.
func runGeneratorWorker(base *Board, slots []Pos, initial []State, mineCount int, timer *Timer, r *rand.Rand, success chan<- *Board) {
	defer func() {
		if rec := recover(); rec != nil {
			Log.Error("generator worker recovered from panic", "panic", rec)
		}
	}()

	candidate := make([]Pos, len(slots))
	copy(candidate, slots)

	for !timer.TimeIsUp() {
		shuffle(candidate, r)

		board := base.Clone()
		for _, p := range candidate[:mineCount] {
			board.SetMine(p.Row, p.Col, true)
		}
		board.Refresh()
		applyInitialState(board, initial)

		if Solvable(board, timer, r) {
			timer.Terminate()
			select {
			case success <- board:
			default:
			}
			Log.Debug("generator worker found a solvable board")
			return
		}
	}
}
