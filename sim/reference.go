package sim

// ReferenceString is the ordered sequence of page identifiers a run replays.
// Page identifiers are non-negative. Once generated it is shared read-only by
// every policy in a run; nothing may write to it after generation.
type ReferenceString []int

// Len returns the number of references.
func (r ReferenceString) Len() int {
	return len(r)
}

// Distinct returns the number of distinct page identifiers in r.
func (r ReferenceString) Distinct() int {
	seen := make(map[int]struct{})
	for _, page := range r {
		seen[page] = struct{}{}
	}
	return len(seen)
}

// Changes counts positions i > 0 where r[i] differs from r[i-1].
// With a single frame every policy faults exactly Changes()+1 times on a
// non-empty string.
func (r ReferenceString) Changes() int {
	n := 0
	for i := 1; i < len(r); i++ {
		if r[i] != r[i-1] {
			n++
		}
	}
	return n
}
