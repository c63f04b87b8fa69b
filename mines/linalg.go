package mines

// A Matrix is m rows by n+1 columns: n boolean-valued variables over
// {0,1} plus a right-hand-side column, reduced over reals with
// tolerance-based comparisons (spec §4.D).
type Matrix [][]float64

// ForcedVar is a variable index whose value every solution of a
// constraint system agrees on.
type ForcedVar struct {
	Index int  // column index into the region's variable list
	Mine  bool // true = mine (rhs ~= 1), false = safe (rhs ~= 0)
}

// clone returns a deep copy so the caller can reduce without
// disturbing the original equations (the enumerator, run only when
// reduction alone doesn't finish the job, still wants the
// already-reduced rows, not the raw region matrix).
func (m Matrix) clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// gaussianEliminate reduces m to reduced row-echelon form in place,
// using partial pivoting for numerical stability, and truncates it to
// its non-zero rows. Columns whose pivot is effectively zero are
// skipped (free variables) rather than eliminated.
func gaussianEliminate(m Matrix) Matrix {
	if len(m) == 0 {
		return m
	}
	n := len(m[0]) - 1 // variable columns, excluding rhs
	k := 0
	for col := 0; col < n && k < len(m); col++ {
		pivot := k
		for row := k + 1; row < len(m); row++ {
			if greater(abs(m[row][col]), abs(m[pivot][col])) {
				pivot = row
			}
		}
		if isZero(m[pivot][col]) {
			continue // free variable
		}
		m[k], m[pivot] = m[pivot], m[k]

		for row := range m {
			if row == k || isZero(m[row][col]) {
				continue
			}
			factor := m[row][col] / m[k][col]
			for c := col; c <= n; c++ {
				m[row][c] -= factor * m[k][c]
			}
		}
		scale := m[k][col]
		for c := col; c <= n; c++ {
			m[k][c] /= scale
		}
		k++
	}
	return m[:k]
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// extractForced walks the reduced rows of m, returning every variable
// whose row has exactly one non-zero variable column: rhs ~= 0 forces
// it safe, rhs ~= 1 forces it a mine. A row with a single non-zero
// column and an rhs outside {0,1} means the caller constructed a
// contradictory constraint system; this is an assertion failure,
// never expected to arise from internally generated boards (spec §7).
func extractForced(m Matrix) []ForcedVar {
	if len(m) == 0 {
		return nil
	}
	n := len(m[0]) - 1
	var forced []ForcedVar
	for _, row := range m {
		col := -1
		for c := 0; c < n; c++ {
			if !isZero(row[c]) {
				if col != -1 {
					col = -1
					break
				}
				col = c
			}
		}
		if col == -1 {
			continue
		}
		rhs := row[n]
		switch {
		case isZero(rhs):
			forced = append(forced, ForcedVar{Index: col, Mine: false})
		case equal(rhs, 1):
			forced = append(forced, ForcedVar{Index: col, Mine: true})
		default:
			panic(AssertionError{"ill-posed constraint: rhs not in {0,1}"})
		}
	}
	return forced
}
