package mining

import "math"

// eachCombination visits every k-combination of items in lexicographic
// order of the input slice. The visited slice is reused between calls;
// visitors that retain it must copy.
func eachCombination[T any](items []T, k int, visit func([]T)) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]T, k)
	for {
		for i, j := range idx {
			buf[i] = items[j]
		}
		visit(buf)

		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// binomial returns C(n, k), saturating at math.MaxInt64 instead of
// overflowing.
func binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		m := int64(n - k + i)
		if result > math.MaxInt64/m {
			return math.MaxInt64
		}
		result = result * m / int64(i)
	}
	return result
}

// totalCombinations returns the sum of C(n, k) for k in [1, n], saturating
// at math.MaxInt64. This is the denominator for progress reporting.
func totalCombinations(n int) int64 {
	total := int64(0)
	for k := 1; k <= n; k++ {
		c := binomial(n, k)
		if c == math.MaxInt64 || total > math.MaxInt64-c {
			return math.MaxInt64
		}
		total += c
	}
	return total
}
