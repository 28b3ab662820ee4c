package gridaxis

// TrimRowsName is the settings key of the row-trimming plugin.
const TrimRowsName = "trimRows"

// TrimRowsPlugin excludes physical rows from the visual space without
// touching the data source. Trimmed rows are invisible to every index query
// until untrimmed or the plugin is disabled.
type TrimRowsPlugin struct {
	core skipCore
}

// NewTrimRowsPlugin creates the plugin bound to a host. Use WithTrimmedRows
// to declare it in the grid configuration.
func NewTrimRowsPlugin(host PluginHost) *TrimRowsPlugin {
	return &TrimRowsPlugin{core: skipCore{
		host: host,
		name: TrimRowsName,
		axis: AxisRows,
		kind: SkipTrim,
		events: skipEvents{
			beforeAdd:    BeforeTrimRows,
			afterAdd:     AfterTrimRows,
			beforeRemove: BeforeUntrimRows,
			afterRemove:  AfterUntrimRows,
		},
	}}
}

// Name returns "trimRows".
func (p *TrimRowsPlugin) Name() string { return TrimRowsName }

// IsApplicable reports whether the host configuration declares trimmed rows.
func (p *TrimRowsPlugin) IsApplicable() bool { return p.core.isApplicable() }

// Enable loads the configured initial row list into the trim registry.
func (p *TrimRowsPlugin) Enable() error { return p.core.enable() }

// Disable restores all trimmed rows to the visual space.
func (p *TrimRowsPlugin) Disable() { p.core.disable() }

// Reconfigure resets the plugin from the declared configuration.
func (p *TrimRowsPlugin) Reconfigure() error { return p.core.reconfigure() }

// Enabled reports the lifecycle state.
func (p *TrimRowsPlugin) Enabled() bool { return p.core.enabled }

// Trim adds rows to the trimmed set, firing beforeTrimRows/afterTrimRows.
// It reports whether the trimmed set changed.
func (p *TrimRowsPlugin) Trim(rows []int) bool { return p.core.apply(rows, true) }

// Untrim removes rows from the trimmed set, firing
// beforeUntrimRows/afterUntrimRows. Rows not trimmed are ignored.
func (p *TrimRowsPlugin) Untrim(rows []int) bool { return p.core.apply(rows, false) }

// TrimRows is the variadic convenience form of Trim.
func (p *TrimRowsPlugin) TrimRows(rows ...int) bool { return p.Trim(rows) }

// UntrimRows is the variadic convenience form of Untrim.
func (p *TrimRowsPlugin) UntrimRows(rows ...int) bool { return p.Untrim(rows) }

// IsTrimmed reports whether the physical row is currently trimmed.
func (p *TrimRowsPlugin) IsTrimmed(row int) bool { return p.core.isTransformed(row) }

// TrimmedRows returns the trimmed set sorted ascending.
func (p *TrimRowsPlugin) TrimmedRows() []int { return p.core.skip().Snapshot() }

// UntrimAll untrims every currently trimmed row.
func (p *TrimRowsPlugin) UntrimAll() bool { return p.core.removeAll() }
