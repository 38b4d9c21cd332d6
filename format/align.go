package format

// Align rounds pos up to the next multiple of n, where n is a small power
// of two (1, 2, 4, or 8). Used by both Writer (to pad the builder before
// appending a body) and Reader (to recompute where an aligned body must
// start) so the two sides agree byte-for-byte (spec.md §4.1, §4.3).
func Align(pos int, n int) int {
	if n <= 1 {
		return pos
	}

	return (pos + n - 1) &^ (n - 1)
}
