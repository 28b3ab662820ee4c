package gridaxis

import "fmt"

// Translator composes the skip and order registries of one axis into a single
// bidirectional physical↔visual mapping. It is the only component other
// subsystems may query for index translation; the composed mapping is cached
// and rebuilt lazily after registry mutations, so callers never observe a
// stale view.
type Translator struct {
	count func() int

	skips map[SkipKind]*SkipSet
	order *OrderSet

	// composed mapping caches; valid only when dirty is false
	physicalOf []int // visual → physical
	visualOf   []int // physical → visual, -1 when skipped
	dirty      bool
	depth      int // Mutate nesting
}

// NewTranslator creates a Translator over a physical axis whose size is
// supplied by count. The count is queried live on every rebuild and
// validation; it is never cached across calls, so a data source swap only
// requires Refresh, not a new Translator.
func NewTranslator(count func() int) *Translator {
	t := &Translator{
		count: count,
		skips: make(map[SkipKind]*SkipSet),
		dirty: true,
	}
	t.order = newOrderSet(t)
	return t
}

// TotalCount returns the current physical count of the axis.
func (t *Translator) TotalCount() int { return t.count() }

// Skip returns the skip registry for the given kind, creating it on first
// use. Each transformation kind owns exactly one set.
func (t *Translator) Skip(kind SkipKind) *SkipSet {
	s, ok := t.skips[kind]
	if !ok {
		s = newSkipSet(kind, t)
		t.skips[kind] = s
	}
	return s
}

// Order returns the order registry of this axis.
func (t *Translator) Order() *OrderSet { return t.order }

// Mutate runs fn as a single transaction: however many registry writes fn
// performs, the composed mapping is rebuilt at most once afterwards. Nested
// calls are allowed; the rebuild happens when the outermost call returns.
// The error from fn is returned unchanged.
func (t *Translator) Mutate(fn func() error) error {
	t.depth++
	err := fn()
	t.depth--
	if t.depth == 0 && t.dirty {
		t.rebuild()
	}
	return err
}

// ToVisual translates a physical index to its visual position. The second
// return is false when the index is currently skipped or out of range.
func (t *Translator) ToVisual(physical int) (int, bool) {
	t.ensure()
	if physical < 0 || physical >= len(t.visualOf) {
		return 0, false
	}
	v := t.visualOf[physical]
	if v < 0 {
		return 0, false
	}
	return v, true
}

// ToPhysical translates a visual index to its physical index. Visual indices
// at or beyond VisibleCount yield an *OutOfRangeError.
func (t *Translator) ToPhysical(visual int) (int, error) {
	t.ensure()
	if visual < 0 || visual >= len(t.physicalOf) {
		return 0, &OutOfRangeError{Visual: visual, Visible: len(t.physicalOf)}
	}
	return t.physicalOf[visual], nil
}

// VisibleCount returns the number of physical indices not present in any
// skip set.
func (t *Translator) VisibleCount() int {
	t.ensure()
	return len(t.physicalOf)
}

// IsSkipped reports whether the physical index is excluded by any skip set.
func (t *Translator) IsSkipped(physical int) bool {
	for _, s := range t.skips {
		if s.Contains(physical) {
			return true
		}
	}
	return false
}

// Visible returns the visible physical indices in visual order. The returned
// slice is a copy.
func (t *Translator) Visible() []int {
	t.ensure()
	return append([]int(nil), t.physicalOf...)
}

// Refresh forces full registry re-validation against the current physical
// count: skip entries beyond the count are dropped, a stale-length order
// resets to identity, and the composed mapping is rebuilt. Call it after
// replacing the data source.
func (t *Translator) Refresh() {
	count := t.count()
	for _, s := range t.skips {
		s.dropOutOfRange(count)
	}
	t.order.resetIfStale(count)
	t.dirty = true
	t.rebuild()
}

// invalidate marks the composed mapping stale. Registry mutations call this;
// the rebuild happens lazily on the next query, or once at the end of the
// enclosing Mutate.
func (t *Translator) invalidate() {
	t.dirty = true
}

func (t *Translator) ensure() {
	if t.dirty && t.depth == 0 {
		t.rebuild()
	}
}

// rebuild recomputes the composed mapping: the order permutation applied to
// the full physical range, filtered by the union of all skip sets. Position
// in the filtered sequence is the visual index.
func (t *Translator) rebuild() {
	count := t.count()
	t.order.resetIfStale(count)

	skipped := 0
	for _, s := range t.skips {
		skipped += s.Len()
	}

	t.visualOf = make([]int, count)
	t.physicalOf = make([]int, 0, max(count-skipped, 0))
	for i := range t.visualOf {
		t.visualOf[i] = -1
	}

	for pos := 0; pos < count; pos++ {
		p := pos
		if t.order.seq != nil {
			p = t.order.seq[pos]
		}
		if t.IsSkipped(p) {
			continue
		}
		t.visualOf[p] = len(t.physicalOf)
		t.physicalOf = append(t.physicalOf, p)
	}
	t.dirty = false
}

// MustToPhysical is ToPhysical for callers that have already bounds-checked
// against VisibleCount; it panics on a range error.
func (t *Translator) MustToPhysical(visual int) int {
	p, err := t.ToPhysical(visual)
	if err != nil {
		panic(fmt.Sprintf("gridaxis: %v", err))
	}
	return p
}
