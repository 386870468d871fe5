package importer

// chunk splits items into contiguous, non-overlapping groups of at most size
// elements, preserving order. The final group may be shorter. Concatenating
// the result reproduces items exactly.
func chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 || size <= 0 {
		return nil
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end])
	}
	return batches
}
