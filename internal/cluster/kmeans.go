package cluster

// MaxIterations is the iteration cap for palette-seeded k-means.
const MaxIterations = 10

// ConvergenceEpsilon is the per-centroid movement threshold (Euclidean RGB
// distance) below which clustering is considered converged early.
const ConvergenceEpsilon = 1.0

// Cluster assigns each sample to one of len(seed) centroids via palette-
// seeded k-means: centroids start at the seed colors (the canonical
// palette) and are refined toward the actual capture's colors over up to
// MaxIterations rounds, stopping early once every centroid moves less than
// ConvergenceEpsilon between iterations.
//
// Centroids are never reordered or relabeled — the seeding is what fixes
// the symbol<->centroid correspondence: a centroid's index in
// the returned label slice always corresponds to the same index in seed,
// even if that centroid ends up closer to a different seed color than it
// started.
func Cluster(samples []RGB, seed []RGB) []int {
	if len(samples) == 0 {
		return nil
	}

	k := len(seed)
	centroids := make([]RGB, k)
	copy(centroids, seed)

	labels := make([]int, len(samples))

	for iter := 0; iter < MaxIterations; iter++ {
		assign(samples, centroids, labels)

		next := recompute(samples, labels, centroids, k)
		if converged(centroids, next) {
			centroids = next
			break
		}
		centroids = next
	}

	// Final assignment against the last centroid set.
	assign(samples, centroids, labels)
	return labels
}

// assign labels each sample with the index of its nearest centroid.
func assign(samples []RGB, centroids []RGB, labels []int) {
	for i, s := range samples {
		best := 0
		bestDist := sqDist(s, centroids[0])
		for c := 1; c < len(centroids); c++ {
			d := sqDist(s, centroids[c])
			if d < bestDist {
				bestDist = d
				best = c
			}
		}
		labels[i] = best
	}
}

// recompute returns each centroid as the mean of its assigned samples.
// A centroid with no assigned samples keeps its previous position.
func recompute(samples []RGB, labels []int, prev []RGB, k int) []RGB {
	sums := make([]RGB, k)
	counts := make([]int, k)
	for i, s := range samples {
		c := labels[i]
		sums[c][0] += s[0]
		sums[c][1] += s[1]
		sums[c][2] += s[2]
		counts[c]++
	}

	next := make([]RGB, k)
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			next[c] = prev[c]
			continue
		}
		n := float64(counts[c])
		next[c] = RGB{sums[c][0] / n, sums[c][1] / n, sums[c][2] / n}
	}
	return next
}

// converged reports whether every centroid moved less than
// ConvergenceEpsilon between two iterations.
func converged(prev, next []RGB) bool {
	for i := range prev {
		if dist(prev[i], next[i]) >= ConvergenceEpsilon {
			return false
		}
	}
	return true
}
