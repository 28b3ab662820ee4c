package gridaxis

import "fmt"

// Grid is the host widget core: it owns one translator per axis, the hook
// bus, and the structural plugin instances. Rendering, selection, and editing
// collaborators resolve every index through the grid's query API; nothing
// outside this package may index the source by raw positions.
type Grid struct {
	source  Source
	rows    *Translator
	columns *Translator
	bus     *HookBus
	opts    *Options

	plugins []Plugin
	byName  map[string]Plugin
}

// New creates a Grid over the data source. Plugins are instantiated from the
// configured factory list in order; applicable ones are enabled immediately,
// loading their declared initial sets. An invalid initial configuration
// fails construction.
func New(source Source, opts ...Option) (*Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	g := &Grid{
		source: source,
		bus:    NewHookBus(),
		opts:   o,
		byName: make(map[string]Plugin),
	}
	g.bus.SetPanicHandler(o.onPanic)

	// Counts close over g.source so a SetSource swap is visible to the
	// translators without re-wiring.
	g.rows = NewTranslator(func() int { return g.source.RowCount() })
	g.columns = NewTranslator(func() int { return g.source.ColumnCount() })

	for _, factory := range o.factories {
		p := factory(g)
		g.plugins = append(g.plugins, p)
		g.byName[p.Name()] = p
	}
	for _, p := range g.plugins {
		if !p.IsApplicable() {
			continue
		}
		if err := p.Enable(); err != nil {
			return nil, fmt.Errorf("gridaxis: %w", err)
		}
	}
	return g, nil
}

// Translator returns the index translator for the given axis.
func (g *Grid) Translator(axis Axis) *Translator {
	if axis == AxisColumns {
		return g.columns
	}
	return g.rows
}

// Rows returns the row translator.
func (g *Grid) Rows() *Translator { return g.rows }

// Columns returns the column translator.
func (g *Grid) Columns() *Translator { return g.columns }

// Bus returns the hook bus.
func (g *Grid) Bus() *HookBus { return g.bus }

// Source returns the current data source.
func (g *Grid) Source() Source { return g.source }

// Setting returns the declared configuration for the named plugin.
func (g *Grid) Setting(name string) (PluginSetting, bool) {
	s, ok := g.opts.settings[name]
	return s, ok
}

// Plugin returns the named plugin instance, or nil.
func (g *Grid) Plugin(name string) Plugin { return g.byName[name] }

// TrimRows returns the row-trimming plugin, or nil when the factory list
// does not include it.
func (g *Grid) TrimRows() *TrimRowsPlugin {
	p, _ := g.byName[TrimRowsName].(*TrimRowsPlugin)
	return p
}

// HiddenRows returns the row-hiding plugin, or nil.
func (g *Grid) HiddenRows() *HiddenRowsPlugin {
	p, _ := g.byName[HiddenRowsName].(*HiddenRowsPlugin)
	return p
}

// HiddenColumns returns the column-hiding plugin, or nil.
func (g *Grid) HiddenColumns() *HiddenColumnsPlugin {
	p, _ := g.byName[HiddenColumnsName].(*HiddenColumnsPlugin)
	return p
}

// SortRows returns the row-sorting plugin, or nil.
func (g *Grid) SortRows() *SortRowsPlugin {
	p, _ := g.byName[SortRowsName].(*SortRowsPlugin)
	return p
}

// RowToVisual translates a physical row to its visual position; false when
// the row is skipped.
func (g *Grid) RowToVisual(physical int) (int, bool) { return g.rows.ToVisual(physical) }

// RowToPhysical translates a visual row to its physical index.
func (g *Grid) RowToPhysical(visual int) (int, error) { return g.rows.ToPhysical(visual) }

// VisibleRowCount returns the number of rows in the visual space.
func (g *Grid) VisibleRowCount() int { return g.rows.VisibleCount() }

// ColToVisual translates a physical column to its visual position; false
// when the column is skipped.
func (g *Grid) ColToVisual(physical int) (int, bool) { return g.columns.ToVisual(physical) }

// ColToPhysical translates a visual column to its physical index.
func (g *Grid) ColToPhysical(visual int) (int, error) { return g.columns.ToPhysical(visual) }

// VisibleColCount returns the number of columns in the visual space.
func (g *Grid) VisibleColCount() int { return g.columns.VisibleCount() }

// VisibleRows returns the visible physical rows in visual order.
func (g *Grid) VisibleRows() []int { return g.rows.Visible() }

// VisibleColumns returns the visible physical columns in visual order.
func (g *Grid) VisibleColumns() []int { return g.columns.Visible() }

// Reconfigure applies new options and replays every plugin's configuration:
// each plugin fully resets (disable then enable-if-applicable) rather than
// diffing its previous state.
func (g *Grid) Reconfigure(opts ...Option) error {
	for _, opt := range opts {
		opt(g.opts)
	}
	g.bus.SetPanicHandler(g.opts.onPanic)
	for _, p := range g.plugins {
		if err := p.Reconfigure(); err != nil {
			return fmt.Errorf("gridaxis: reconfigure %s: %w", p.Name(), err)
		}
	}
	return nil
}

// SetSource replaces the data source. Both translators re-validate their
// registries against the new counts: out-of-range skip entries are dropped
// and a stale row order resets to identity.
func (g *Grid) SetSource(source Source) {
	g.source = source
	g.rows.Refresh()
	g.columns.Refresh()
}
