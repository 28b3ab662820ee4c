package gridaxis

// OrderSet is a registry holding the visual ordering of physical indices as a
// permutation of [0, count). An empty internal sequence means identity order.
// Instances are owned by a Translator; every mutation invalidates the
// translator's composed mapping.
type OrderSet struct {
	tr  *Translator
	seq []int // nil/empty = identity
}

func newOrderSet(tr *Translator) *OrderSet {
	return &OrderSet{tr: tr}
}

// SetOrder replaces the current ordering. The permutation is validated in
// full before any state change: its length must equal the physical count and
// every value in [0, count) must appear exactly once. On failure the registry
// is unchanged and an *InvalidPermutationError is returned.
func (o *OrderSet) SetOrder(perm []int) error {
	count := o.tr.TotalCount()
	if len(perm) != count {
		return &InvalidPermutationError{Reason: "length", Value: len(perm), Count: count}
	}
	seen := make([]bool, count)
	for _, v := range perm {
		if v < 0 || v >= count {
			return &InvalidPermutationError{Reason: "range", Value: v, Count: count}
		}
		if seen[v] {
			return &InvalidPermutationError{Reason: "duplicate", Value: v, Count: count}
		}
		seen[v] = true
	}
	o.seq = append([]int(nil), perm...)
	o.tr.invalidate()
	return nil
}

// Identity resets to natural order.
func (o *OrderSet) Identity() {
	if o.seq == nil {
		return
	}
	o.seq = nil
	o.tr.invalidate()
}

// IsIdentity reports whether the registry holds natural order.
func (o *OrderSet) IsIdentity() bool { return o.seq == nil }

// PhysicalAt returns the physical index at the given order position.
// Positions outside [0, count) return -1.
func (o *OrderSet) PhysicalAt(pos int) int {
	if pos < 0 || pos >= o.tr.TotalCount() {
		return -1
	}
	if o.seq == nil || pos >= len(o.seq) {
		return pos
	}
	return o.seq[pos]
}

// PositionOf returns the order position of a physical index, the inverse of
// PhysicalAt. Unknown indices return -1.
func (o *OrderSet) PositionOf(physical int) int {
	if physical < 0 || physical >= o.tr.TotalCount() {
		return -1
	}
	if o.seq == nil {
		return physical
	}
	for pos, v := range o.seq {
		if v == physical {
			return pos
		}
	}
	return -1
}

// Snapshot returns the current permutation, materializing identity order.
func (o *OrderSet) Snapshot() []int {
	count := o.tr.TotalCount()
	out := make([]int, count)
	if o.seq == nil {
		for i := range out {
			out[i] = i
		}
		return out
	}
	copy(out, o.seq)
	return out
}

// resetIfStale drops a permutation whose length no longer matches the
// physical count. Used by Translator.Refresh after a source swap.
func (o *OrderSet) resetIfStale(count int) {
	if o.seq != nil && len(o.seq) != count {
		o.seq = nil
	}
}
