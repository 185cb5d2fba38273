package game

// FloorDiv divides rounding toward negative infinity, so world pixels left
// of or above the origin land in tile -1 rather than tile 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
