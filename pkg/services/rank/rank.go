package rank

import "sort"

// SortByDesc returns a copy of records stably sorted by key, descending.
// Records with equal keys keep their original relative order.
func SortByDesc[T any](records []T, key func(T) float64) []T {
	sorted := make([]T, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})
	return sorted
}

// TopN returns the first n records; fewer than n records means all of them.
func TopN[T any](records []T, n int) []T {
	if n > len(records) {
		n = len(records)
	}
	if n < 0 {
		n = 0
	}
	top := make([]T, n)
	copy(top, records[:n])
	return top
}

// SumBy totals key across the entire sequence.
func SumBy[T any](records []T, key func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += key(r)
	}
	return total
}

// Shares returns each record's key as a percentage of the sequence total,
// aligned by index. A zero total yields all zeros; otherwise the shares sum
// to 100 within floating-point tolerance.
func Shares[T any](records []T, key func(T) float64) []float64 {
	shares := make([]float64, len(records))
	total := SumBy(records, key)
	if total == 0 {
		return shares
	}
	for i, r := range records {
		shares[i] = key(r) / total * 100
	}
	return shares
}
