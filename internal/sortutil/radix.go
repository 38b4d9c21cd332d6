// Package sortutil implements the two sort routines the writer uses to put
// a map's key table into order when FlagSortedKeys is requested: an LSD
// radix sort over uint32 keys (int-keyed maps) and a three-way string
// quicksort over byte-string keys (string-keyed maps), each with a small-n
// insertion-sort fallback (spec.md §4.4).
package sortutil

import "github.com/dato-io/dato/internal/pool"

// insertionThreshold is the element count at or below which insertion sort
// beats the fixed overhead of a radix pass or a quicksort partition.
const insertionThreshold = 16

// Uint32Keys sorts data in place by radix, and reorders perm (a parallel
// permutation, typically entry indices) with it so callers can recover
// which original element ended up where.
func Uint32Keys(data []uint32, perm []int) {
	n := len(data)
	if n < 2 {
		return
	}

	if n <= insertionThreshold {
		insertionSortUint32(data, perm)
		return
	}

	scratch, release := pool.GetUint32Slice(n)
	defer release()
	permScratch := make([]int, n)

	var count [256]int
	for pass := 0; pass < 4; pass++ {
		shift := uint(pass * 8)

		for i := range count {
			count[i] = 0
		}
		for _, v := range data {
			count[(v>>shift)&0xFF]++
		}

		sum := 0
		for i := range count {
			c := count[i]
			count[i] = sum
			sum += c
		}

		for i, v := range data {
			b := (v >> shift) & 0xFF
			dst := count[b]
			count[b]++
			scratch[dst] = v
			permScratch[dst] = perm[i]
		}

		copy(data, scratch)
		copy(perm, permScratch)
	}
}

func insertionSortUint32(data []uint32, perm []int) {
	for i := 1; i < len(data); i++ {
		v, p := data[i], perm[i]
		j := i - 1
		for j >= 0 && data[j] > v {
			data[j+1] = data[j]
			perm[j+1] = perm[j]
			j--
		}
		data[j+1] = v
		perm[j+1] = p
	}
}
