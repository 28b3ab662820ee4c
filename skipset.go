package gridaxis

// SkipKind identifies which transformation owns a skip registry. Each kind
// gets its own set; the translator filters on the union of all kinds.
type SkipKind int

const (
	SkipTrim SkipKind = iota
	SkipHide
)

// String returns "trim" or "hide".
func (k SkipKind) String() string {
	if k == SkipTrim {
		return "trim"
	}
	return "hide"
}

// SkipSet is a registry of physical indices excluded from the visual space.
// Instances are owned by a Translator (see Translator.Skip); every mutation
// invalidates the translator's composed mapping.
type SkipSet struct {
	kind    SkipKind
	tr      *Translator
	indices map[int]struct{}
}

func newSkipSet(kind SkipKind, tr *Translator) *SkipSet {
	return &SkipSet{kind: kind, tr: tr, indices: make(map[int]struct{})}
}

// Kind returns the transformation kind owning this set.
func (s *SkipSet) Kind() SkipKind { return s.kind }

// Add unions indices into the set. The whole batch is validated first:
// if any index is negative or not below the current physical count, the set
// is left unchanged and an *InvalidIndexError naming the offenders is
// returned. Duplicate inputs are collapsed.
func (s *SkipSet) Add(indices []int) error {
	batch := sortedCopy(indices)
	if err := s.validate(batch); err != nil {
		return err
	}
	for _, v := range batch {
		s.indices[v] = struct{}{}
	}
	s.tr.invalidate()
	return nil
}

// Remove takes indices out of the set. Indices not present are ignored.
func (s *SkipSet) Remove(indices []int) {
	for _, v := range indices {
		delete(s.indices, v)
	}
	s.tr.invalidate()
}

// Replace swaps the whole set for the given indices, with the same
// batch validation as Add.
func (s *SkipSet) Replace(indices []int) error {
	batch := sortedCopy(indices)
	if err := s.validate(batch); err != nil {
		return err
	}
	s.indices = make(map[int]struct{}, len(batch))
	for _, v := range batch {
		s.indices[v] = struct{}{}
	}
	s.tr.invalidate()
	return nil
}

// Contains reports whether the physical index is in the set.
func (s *SkipSet) Contains(index int) bool {
	_, ok := s.indices[index]
	return ok
}

// Len returns the number of skipped indices.
func (s *SkipSet) Len() int { return len(s.indices) }

// Snapshot returns the current contents sorted ascending. The order is
// stable for callers but carries no structural meaning.
func (s *SkipSet) Snapshot() []int {
	out := make([]int, 0, len(s.indices))
	for v := range s.indices {
		out = append(out, v)
	}
	return sortedCopy(out)
}

// Clear empties the set, restoring its indices to the visual space.
func (s *SkipSet) Clear() {
	if len(s.indices) == 0 {
		return
	}
	s.indices = make(map[int]struct{})
	s.tr.invalidate()
}

func (s *SkipSet) validate(batch []int) error {
	count := s.tr.TotalCount()
	var bad []int
	for _, v := range batch {
		if v < 0 || v >= count {
			bad = append(bad, v)
		}
	}
	if len(bad) > 0 {
		return &InvalidIndexError{Indices: bad, Count: count}
	}
	return nil
}

// dropOutOfRange removes entries at or beyond count. Used by
// Translator.Refresh after a source swap.
func (s *SkipSet) dropOutOfRange(count int) {
	for v := range s.indices {
		if v >= count {
			delete(s.indices, v)
		}
	}
}
