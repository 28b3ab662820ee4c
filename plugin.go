package gridaxis

// Axis identifies which translator a plugin operates on.
type Axis int

const (
	AxisRows Axis = iota
	AxisColumns
)

// String returns "rows" or "columns".
func (a Axis) String() string {
	if a == AxisRows {
		return "rows"
	}
	return "columns"
}

// PluginSetting is the host-configuration value for one plugin: absent means
// disabled; present with indices means "enable and load these as the initial
// transformed set" (a permutation, for order-based plugins).
type PluginSetting struct {
	Enabled bool
	Indices []int
}

// PluginHost is the narrow capability surface a structural plugin receives at
// construction. Plugins never hold a full grid reference; everything they may
// touch is reachable from here.
type PluginHost interface {
	// Translator returns the index translator for the given axis.
	Translator(axis Axis) *Translator
	// Bus returns the grid's hook bus.
	Bus() *HookBus
	// Setting returns the host-configuration value for the named plugin.
	Setting(name string) (PluginSetting, bool)
	// Source returns the current data source.
	Source() Source
}

// Plugin is a structural transformation unit with an enable/disable
// lifecycle. Plugins alter which indices are visible and in what order by
// writing to their owned registry through the translator's Mutate; they never
// touch source data.
type Plugin interface {
	Name() string
	// IsApplicable reads host configuration to decide whether the plugin
	// should activate. Queried before every Enable.
	IsApplicable() bool
	Enable() error
	Disable()
	// Reconfigure replays the declared configuration: a full
	// disable-then-enable reset, never an incremental diff.
	Reconfigure() error
	Enabled() bool
}

// PluginFactory constructs a plugin bound to a host. The grid instantiates
// plugins from an explicit ordered factory list; there is no global registry.
type PluginFactory func(host PluginHost) Plugin

// DefaultPlugins returns the factory list New uses when WithPlugins is not
// given: row trimming, row hiding, column hiding, row sorting.
func DefaultPlugins() []PluginFactory {
	return []PluginFactory{
		func(h PluginHost) Plugin { return NewTrimRowsPlugin(h) },
		func(h PluginHost) Plugin { return NewHiddenRowsPlugin(h) },
		func(h PluginHost) Plugin { return NewHiddenColumnsPlugin(h) },
		func(h PluginHost) Plugin { return NewSortRowsPlugin(h) },
	}
}
