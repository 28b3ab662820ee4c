package gridaxis

import (
	"fmt"
	"sort"
	"strconv"
)

// SortRowsName is the settings key of the row-sorting plugin.
const SortRowsName = "sortRows"

// SortKey is one column criterion of a multi-column sort.
type SortKey struct {
	Column     int
	Descending bool
}

// SortRowsPlugin reorders the visual row sequence by writing the order
// registry. Rows are never moved in the data source; only the permutation
// changes. Sorting is stable: rows comparing equal keep their current
// relative order.
type SortRowsPlugin struct {
	host    PluginHost
	enabled bool
	keys    []SortKey // last applied criteria, empty when unsorted
}

// NewSortRowsPlugin creates the plugin bound to a host. Use WithSortableRows
// or WithRowOrder to declare it in the grid configuration.
func NewSortRowsPlugin(host PluginHost) *SortRowsPlugin {
	return &SortRowsPlugin{host: host}
}

// Name returns "sortRows".
func (p *SortRowsPlugin) Name() string { return SortRowsName }

// IsApplicable reports whether the host configuration declares row sorting.
func (p *SortRowsPlugin) IsApplicable() bool {
	s, ok := p.host.Setting(SortRowsName)
	return ok && s.Enabled
}

// Enable loads the configured initial permutation into the order registry,
// if one is declared.
func (p *SortRowsPlugin) Enable() error {
	if p.enabled {
		return nil
	}
	p.enabled = true

	s, ok := p.host.Setting(SortRowsName)
	if !ok || len(s.Indices) == 0 {
		return nil
	}
	tr := p.host.Translator(AxisRows)
	err := tr.Mutate(func() error {
		return tr.Order().SetOrder(s.Indices)
	})
	if err != nil {
		p.enabled = false
		return fmt.Errorf("enable %s: %w", SortRowsName, err)
	}
	return nil
}

// Disable resets the order registry to identity.
func (p *SortRowsPlugin) Disable() {
	if !p.enabled {
		return
	}
	p.enabled = false
	p.keys = nil
	tr := p.host.Translator(AxisRows)
	tr.Mutate(func() error {
		tr.Order().Identity()
		return nil
	})
}

// Reconfigure resets the plugin from the declared configuration.
func (p *SortRowsPlugin) Reconfigure() error {
	p.Disable()
	if !p.IsApplicable() {
		return nil
	}
	return p.Enable()
}

// Enabled reports the lifecycle state.
func (p *SortRowsPlugin) Enabled() bool { return p.enabled }

// Sort computes a new row permutation from the keys and commits it through
// the order registry, firing beforeSortRows/afterSortRows with the current
// and proposed permutations. Keys naming columns outside the source are
// reported to hooks as an invalid request and nothing is committed. The data
// source must implement ValueSource.
// It reports whether the permutation changed.
func (p *SortRowsPlugin) Sort(keys []SortKey) (bool, error) {
	if !p.enabled {
		return false, nil
	}
	src, ok := p.host.Source().(ValueSource)
	if !ok {
		return false, fmt.Errorf("sort rows: source does not provide cell values")
	}

	tr := p.host.Translator(AxisRows)
	current := tr.Order().Snapshot()
	valid := p.validKeys(keys, src)

	proposed := append([]int(nil), current...)
	if valid {
		sort.SliceStable(proposed, func(i, j int) bool {
			return lessByKeys(src, proposed[i], proposed[j], keys)
		})
	}

	changed := p.commit(current, proposed, valid)
	if changed && valid {
		p.keys = append([]SortKey(nil), keys...)
	}
	return changed, nil
}

// SortBy is the variadic convenience form of Sort.
func (p *SortRowsPlugin) SortBy(keys ...SortKey) (bool, error) { return p.Sort(keys) }

// ClearSort restores identity order through the same before/after events.
func (p *SortRowsPlugin) ClearSort() bool {
	if !p.enabled {
		return false
	}
	tr := p.host.Translator(AxisRows)
	current := tr.Order().Snapshot()
	proposed := make([]int, len(current))
	for i := range proposed {
		proposed[i] = i
	}
	changed := p.commit(current, proposed, true)
	if changed {
		p.keys = nil
	}
	return changed
}

// Keys returns the last applied sort criteria, or nil when unsorted.
func (p *SortRowsPlugin) Keys() []SortKey {
	return append([]SortKey(nil), p.keys...)
}

// commit fires the before/after pair around an order registry write.
func (p *SortRowsPlugin) commit(current, proposed []int, valid bool) bool {
	bus := p.host.Bus()
	change := &StructuralChange{Current: current, Proposed: proposed, Valid: valid}
	if !bus.Fire(BeforeSortRows, change) {
		bus.Fire(AfterSortRows, &StructuralChange{Current: current, Proposed: proposed, Valid: valid})
		return false
	}

	changed := false
	if valid {
		tr := p.host.Translator(AxisRows)
		err := tr.Mutate(func() error {
			if isIdentityPerm(proposed) {
				tr.Order().Identity()
				return nil
			}
			return tr.Order().SetOrder(proposed)
		})
		changed = err == nil && !equalInts(current, proposed)
	}

	bus.Fire(AfterSortRows, &StructuralChange{Current: current, Proposed: proposed, Valid: valid, Changed: changed})
	return changed
}

func isIdentityPerm(perm []int) bool {
	for i, v := range perm {
		if v != i {
			return false
		}
	}
	return true
}

func (p *SortRowsPlugin) validKeys(keys []SortKey, src Source) bool {
	cols := src.ColumnCount()
	for _, k := range keys {
		if k.Column < 0 || k.Column >= cols {
			return false
		}
	}
	return true
}

// lessByKeys compares two physical rows under the multi-column criteria.
func lessByKeys(src ValueSource, a, b int, keys []SortKey) bool {
	for _, k := range keys {
		cmp := compareValues(src.CellValue(a, k.Column), src.CellValue(b, k.Column))
		if cmp == 0 {
			continue
		}
		if k.Descending {
			return cmp > 0
		}
		return cmp < 0
	}
	return false
}

// compareValues orders cell values: nil sorts last, numbers compare
// numerically (numeric strings included), everything else compares as its
// string form.
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}

	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}

	sa, sb := fmt.Sprintf("%v", a), fmt.Sprintf("%v", b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}
