package mines

// enumerate brute-forces every assignment of the region's free
// variables (those columns that received no pivot during Gaussian
// reduction) against an already-reduced matrix, used only when
// reduction alone forced nothing (spec §4.F).
//
// Per spec §9's open question, pivot ("unfree") columns are recovered
// directly from the reduced matrix — one per row, the row's leading
// non-zero variable column — rather than assumed to occupy any fixed
// range of the variable index space.
//
// Returns ok=false if the timer expired mid-enumeration, meaning "no
// information"; the caller must not look at legalCount/counts in
// that case.
func enumerate(m Matrix, timer *Timer) (legalCount int64, counts []int64, ok bool) {
	if len(m) == 0 {
		return 0, nil, true
	}
	n := len(m[0]) - 1 // total variable count

	pivotCol := make([]int, len(m))
	isPivot := make([]bool, n)
	for i, row := range m {
		for c := 0; c < n; c++ {
			if !isZero(row[c]) {
				pivotCol[i] = c
				isPivot[c] = true
				break
			}
		}
	}
	var freeCols []int
	for c := 0; c < n; c++ {
		if !isPivot[c] {
			freeCols = append(freeCols, c)
		}
	}

	counts = make([]int64, n)
	f := len(freeCols)

	for assignment := int64(1)<<f - 1; assignment >= 0; assignment-- {
		if timer.TimeIsUp() {
			Log.Debug("enumeration aborted by timer", "freeVars", f)
			return 0, nil, false
		}

		legal := true
		pivotValues := make([]float64, len(m))
		for i, row := range m {
			v := row[n]
			for idx, col := range freeCols {
				if assignment>>idx&1 != 0 {
					v -= row[col]
				}
			}
			if !isZero(v) && !equal(v, 1) {
				legal = false
				break
			}
			pivotValues[i] = v
		}
		if !legal {
			continue
		}

		legalCount++
		for idx, col := range freeCols {
			if assignment>>idx&1 != 0 {
				counts[col]++
			}
		}
		for i, v := range pivotValues {
			if equal(v, 1) {
				counts[pivotCol[i]]++
			}
		}
	}

	Log.Debug("enumeration complete", "freeVars", f, "legalAssignments", legalCount)
	return legalCount, counts, true
}
