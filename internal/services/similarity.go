package services

import "sort"

// TopKLogs is how many historical logs the similarity search keeps before
// region filtering and aggregation.
const TopKLogs = 50

// TopKTripIDs scores every snapshot vector against query by dot product (both
// unit-norm, so this is cosine similarity) and returns the trip IDs of the k
// best matches in descending score order. Ties keep storage order: the
// first-inserted row wins. Duplicate trip IDs in the snapshot come back
// verbatim; rows are not deduplicated here.
func TopKTripIDs(query []float32, snap *Snapshot, k int) []string {
	n := len(snap.Vectors)
	if n == 0 || k <= 0 {
		return []string{}
	}

	scores := make([]float64, n)
	for i, vec := range snap.Vectors {
		scores[i] = dotProduct(query, vec)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > n {
		k = n
	}
	ids := make([]string, k)
	for i, idx := range order[:k] {
		ids[i] = snap.TripIDs[idx]
	}
	return ids
}

func dotProduct(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
