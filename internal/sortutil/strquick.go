package sortutil

// StringKeys sorts keys lexicographically in place using a three-way
// (ternary) string quicksort, partitioning by increasing byte depth, and
// reorders perm alongside it. A key that is a strict prefix of another
// sorts first (shorter-prefix-wins tie-break).
func StringKeys(keys [][]byte, perm []int) {
	strQuickSort3(keys, perm, 0, len(keys)-1, 0)
}

func strQuickSort3(keys [][]byte, perm []int, lo, hi, depth int) {
	for hi-lo >= insertionThreshold {
		lt, gt := lo, hi
		pivot := byteAt(keys[lo], depth)
		i := lo + 1

		for i <= gt {
			c := byteAt(keys[i], depth)
			switch {
			case c < pivot:
				swapStr(keys, perm, lt, i)
				lt++
				i++
			case c > pivot:
				swapStr(keys, perm, i, gt)
				gt--
			default:
				i++
			}
		}

		strQuickSort3(keys, perm, lo, lt-1, depth)
		if pivot >= 0 {
			strQuickSort3(keys, perm, lt, gt, depth+1)
		}
		lo = gt + 1
	}

	insertionSortStrings(keys, perm, lo, hi, depth)
}

// byteAt returns the byte of k at depth, or -1 past its end so that a
// shorter string (a prefix of a longer one) compares less.
func byteAt(k []byte, depth int) int {
	if depth >= len(k) {
		return -1
	}
	return int(k[depth])
}

func swapStr(keys [][]byte, perm []int, a, b int) {
	keys[a], keys[b] = keys[b], keys[a]
	perm[a], perm[b] = perm[b], perm[a]
}

func insertionSortStrings(keys [][]byte, perm []int, lo, hi, depth int) {
	for i := lo + 1; i <= hi; i++ {
		k, p := keys[i], perm[i]
		j := i - 1
		for j >= lo && lessFrom(k, keys[j], depth) {
			keys[j+1] = keys[j]
			perm[j+1] = perm[j]
			j--
		}
		keys[j+1] = k
		perm[j+1] = p
	}
}

// lessFrom reports whether a < b, comparing only from byte index depth
// onward (bytes before depth are already known equal within the current
// partition).
func lessFrom(a, b []byte, depth int) bool {
	for i := depth; ; i++ {
		ca, cb := byteAt(a, i), byteAt(b, i)
		if ca != cb {
			return ca < cb
		}
		if ca == -1 {
			return false
		}
	}
}
