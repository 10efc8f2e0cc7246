package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// wrapIndex steps i by delta through n items, treating -1 as "before the first".
func wrapIndex(i, delta, n int) int {
	if n == 0 {
		return -1
	}
	if i < 0 {
		if delta > 0 {
			return 0
		}
		return n - 1
	}
	return ((i+delta)%n + n) % n
}
