package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits v to [lo, hi]. If hi < lo, lo wins.
func IntClamp(v, lo, hi int) int {
	return IntMax(lo, IntMin(v, hi))
}

// FloorDiv divides rounding toward negative infinity, so -1/16 is -1.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
