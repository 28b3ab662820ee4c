package gridaxis

import "fmt"

// skipEvents names the before/after pairs a skip-based plugin fires around
// its two transform directions.
type skipEvents struct {
	beforeAdd    Event
	afterAdd     Event
	beforeRemove Event
	afterRemove  Event
}

// skipCore is the shared machinery of every skip-based structural plugin
// (trim rows, hide rows, hide columns). A concrete plugin supplies its name,
// axis, skip kind, and event pair; the lifecycle, batch validation, hook
// firing, and commit semantics are identical across them.
type skipCore struct {
	host    PluginHost
	name    string
	axis    Axis
	kind    SkipKind
	events  skipEvents
	enabled bool
}

func (c *skipCore) translator() *Translator {
	return c.host.Translator(c.axis)
}

func (c *skipCore) skip() *SkipSet {
	return c.translator().Skip(c.kind)
}

// isApplicable activates the plugin when its setting is declared.
func (c *skipCore) isApplicable() bool {
	s, ok := c.host.Setting(c.name)
	return ok && s.Enabled
}

// enable loads the declared initial index list into the owned registry. An
// invalid initial list is a configuration programming error and propagates.
func (c *skipCore) enable() error {
	if c.enabled {
		return nil
	}
	c.enabled = true

	s, ok := c.host.Setting(c.name)
	if !ok || len(s.Indices) == 0 {
		return nil
	}
	tr := c.translator()
	err := tr.Mutate(func() error {
		return c.skip().Replace(s.Indices)
	})
	if err != nil {
		c.enabled = false
		return fmt.Errorf("enable %s: %w", c.name, err)
	}
	return nil
}

// disable clears the owned registry, restoring its indices to visual space.
func (c *skipCore) disable() {
	if !c.enabled {
		return
	}
	c.enabled = false
	tr := c.translator()
	tr.Mutate(func() error {
		c.skip().Clear()
		return nil
	})
}

// reconfigure is a full reset from the declared configuration.
func (c *skipCore) reconfigure() error {
	c.disable()
	if !c.isApplicable() {
		return nil
	}
	return c.enable()
}

// apply is the transform entry point shared by both directions. It dedupes
// the input, validates the whole batch, fires the cancelable before event,
// commits through the translator's Mutate, and unconditionally fires the
// after event. Validation failures are reported through the Valid flag, never
// as errors; an empty input is a legal no-op that still fires hooks.
// It reports whether registry contents changed.
func (c *skipCore) apply(indices []int, add bool) bool {
	if !c.enabled {
		return false
	}

	batch := sortedCopy(indices)
	current := c.skip().Snapshot()
	valid := c.validBatch(batch)

	var proposed []int
	if add {
		proposed = unionSorted(current, batch)
	} else {
		proposed = differenceSorted(current, batch)
	}

	before, after := c.events.beforeAdd, c.events.afterAdd
	if !add {
		before, after = c.events.beforeRemove, c.events.afterRemove
	}

	bus := c.host.Bus()
	change := &StructuralChange{Current: current, Proposed: proposed, Valid: valid}
	if !bus.Fire(before, change) {
		// Vetoed: registry untouched, after still reports the attempt.
		bus.Fire(after, &StructuralChange{Current: current, Proposed: proposed, Valid: valid})
		return false
	}

	changed := false
	if valid {
		err := c.translator().Mutate(func() error {
			return c.skip().Replace(proposed)
		})
		changed = err == nil && !equalInts(current, proposed)
	}

	bus.Fire(after, &StructuralChange{Current: current, Proposed: proposed, Valid: valid, Changed: changed})
	return changed
}

// validBatch checks every value is a physical index of the axis. One invalid
// entry invalidates the entire batch.
func (c *skipCore) validBatch(batch []int) bool {
	count := c.translator().TotalCount()
	for _, v := range batch {
		if v < 0 || v >= count {
			return false
		}
	}
	return true
}

func (c *skipCore) isTransformed(physical int) bool {
	return c.enabled && c.skip().Contains(physical)
}

// removeAll reverses the transform for the full current registry snapshot.
func (c *skipCore) removeAll() bool {
	if !c.enabled {
		return false
	}
	return c.apply(c.skip().Snapshot(), false)
}

// unionSorted merges two sorted deduplicated slices.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// differenceSorted removes b's values from sorted deduplicated a.
func differenceSorted(a, b []int) []int {
	out := make([]int, 0, len(a))
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j < len(b) && b[j] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
