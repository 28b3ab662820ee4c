package gridaxis

import "fmt"

// Settings keys of the hiding plugins.
const (
	HiddenRowsName    = "hiddenRows"
	HiddenColumnsName = "hiddenColumns"
)

// HiddenRowsPlugin excludes physical rows from the visual space. It shares
// trimming's mechanics but owns a separate skip registry, so hidden and
// trimmed rows toggle independently.
type HiddenRowsPlugin struct {
	core skipCore
}

// NewHiddenRowsPlugin creates the plugin bound to a host. Use WithHiddenRows
// to declare it in the grid configuration.
func NewHiddenRowsPlugin(host PluginHost) *HiddenRowsPlugin {
	return &HiddenRowsPlugin{core: skipCore{
		host: host,
		name: HiddenRowsName,
		axis: AxisRows,
		kind: SkipHide,
		events: skipEvents{
			beforeAdd:    BeforeHideRows,
			afterAdd:     AfterHideRows,
			beforeRemove: BeforeUnhideRows,
			afterRemove:  AfterUnhideRows,
		},
	}}
}

// Name returns "hiddenRows".
func (p *HiddenRowsPlugin) Name() string { return HiddenRowsName }

// IsApplicable reports whether the host configuration declares hidden rows.
func (p *HiddenRowsPlugin) IsApplicable() bool { return p.core.isApplicable() }

// Enable loads the configured initial row list into the hide registry.
func (p *HiddenRowsPlugin) Enable() error { return p.core.enable() }

// Disable restores all hidden rows to the visual space.
func (p *HiddenRowsPlugin) Disable() { p.core.disable() }

// Reconfigure resets the plugin from the declared configuration.
func (p *HiddenRowsPlugin) Reconfigure() error { return p.core.reconfigure() }

// Enabled reports the lifecycle state.
func (p *HiddenRowsPlugin) Enabled() bool { return p.core.enabled }

// Hide adds rows to the hidden set, firing beforeHideRows/afterHideRows.
func (p *HiddenRowsPlugin) Hide(rows []int) bool { return p.core.apply(rows, true) }

// Unhide removes rows from the hidden set, firing
// beforeUnhideRows/afterUnhideRows.
func (p *HiddenRowsPlugin) Unhide(rows []int) bool { return p.core.apply(rows, false) }

// HideRows is the variadic convenience form of Hide.
func (p *HiddenRowsPlugin) HideRows(rows ...int) bool { return p.Hide(rows) }

// UnhideRows is the variadic convenience form of Unhide.
func (p *HiddenRowsPlugin) UnhideRows(rows ...int) bool { return p.Unhide(rows) }

// IsHidden reports whether the physical row is currently hidden.
func (p *HiddenRowsPlugin) IsHidden(row int) bool { return p.core.isTransformed(row) }

// HiddenRows returns the hidden set sorted ascending.
func (p *HiddenRowsPlugin) HiddenRows() []int { return p.core.skip().Snapshot() }

// UnhideAll unhides every currently hidden row.
func (p *HiddenRowsPlugin) UnhideAll() bool { return p.core.removeAll() }

// HideWhere hides every physical row whose record matches the expr
// condition, e.g. `Age > 40 && Dept == "sales"`. The data source must
// implement RecordSource. The matched rows go through the ordinary Hide path,
// hooks included.
func (p *HiddenRowsPlugin) HideWhere(condition string) (bool, error) {
	src, ok := p.core.host.Source().(RecordSource)
	if !ok {
		return false, fmt.Errorf("hide where %q: source does not provide records", condition)
	}
	rows, err := MatchingRows(src, condition)
	if err != nil {
		return false, fmt.Errorf("hide where %q: %w", condition, err)
	}
	return p.Hide(rows), nil
}

// HiddenColumnsPlugin excludes physical columns from the visual space. Same
// mechanics as row hiding, on the column translator.
type HiddenColumnsPlugin struct {
	core skipCore
}

// NewHiddenColumnsPlugin creates the plugin bound to a host. Use
// WithHiddenColumns to declare it in the grid configuration.
func NewHiddenColumnsPlugin(host PluginHost) *HiddenColumnsPlugin {
	return &HiddenColumnsPlugin{core: skipCore{
		host: host,
		name: HiddenColumnsName,
		axis: AxisColumns,
		kind: SkipHide,
		events: skipEvents{
			beforeAdd:    BeforeHideColumns,
			afterAdd:     AfterHideColumns,
			beforeRemove: BeforeUnhideColumns,
			afterRemove:  AfterUnhideColumns,
		},
	}}
}

// Name returns "hiddenColumns".
func (p *HiddenColumnsPlugin) Name() string { return HiddenColumnsName }

// IsApplicable reports whether the host configuration declares hidden columns.
func (p *HiddenColumnsPlugin) IsApplicable() bool { return p.core.isApplicable() }

// Enable loads the configured initial column list into the hide registry.
func (p *HiddenColumnsPlugin) Enable() error { return p.core.enable() }

// Disable restores all hidden columns to the visual space.
func (p *HiddenColumnsPlugin) Disable() { p.core.disable() }

// Reconfigure resets the plugin from the declared configuration.
func (p *HiddenColumnsPlugin) Reconfigure() error { return p.core.reconfigure() }

// Enabled reports the lifecycle state.
func (p *HiddenColumnsPlugin) Enabled() bool { return p.core.enabled }

// Hide adds columns to the hidden set, firing
// beforeHideColumns/afterHideColumns.
func (p *HiddenColumnsPlugin) Hide(cols []int) bool { return p.core.apply(cols, true) }

// Unhide removes columns from the hidden set, firing
// beforeUnhideColumns/afterUnhideColumns.
func (p *HiddenColumnsPlugin) Unhide(cols []int) bool { return p.core.apply(cols, false) }

// HideColumns is the variadic convenience form of Hide.
func (p *HiddenColumnsPlugin) HideColumns(cols ...int) bool { return p.Hide(cols) }

// UnhideColumns is the variadic convenience form of Unhide.
func (p *HiddenColumnsPlugin) UnhideColumns(cols ...int) bool { return p.Unhide(cols) }

// IsHidden reports whether the physical column is currently hidden.
func (p *HiddenColumnsPlugin) IsHidden(col int) bool { return p.core.isTransformed(col) }

// HiddenColumns returns the hidden set sorted ascending.
func (p *HiddenColumnsPlugin) HiddenColumns() []int { return p.core.skip().Snapshot() }

// UnhideAll unhides every currently hidden column.
func (p *HiddenColumnsPlugin) UnhideAll() bool { return p.core.removeAll() }
