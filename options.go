package gridaxis

// Options holds configuration for the Grid.
type Options struct {
	settings  map[string]PluginSetting
	factories []PluginFactory
	onPanic   PanicHandler
}

func defaultOptions() *Options {
	return &Options{
		settings:  make(map[string]PluginSetting),
		factories: DefaultPlugins(),
	}
}

// Option configures the Grid.
type Option func(*Options)

// WithTrimmedRows enables the row-trimming plugin, with the given rows as the
// initial trimmed set.
func WithTrimmedRows(rows ...int) Option {
	return func(o *Options) {
		o.settings[TrimRowsName] = PluginSetting{Enabled: true, Indices: rows}
	}
}

// WithHiddenRows enables the row-hiding plugin, with the given rows as the
// initial hidden set.
func WithHiddenRows(rows ...int) Option {
	return func(o *Options) {
		o.settings[HiddenRowsName] = PluginSetting{Enabled: true, Indices: rows}
	}
}

// WithHiddenColumns enables the column-hiding plugin, with the given columns
// as the initial hidden set.
func WithHiddenColumns(cols ...int) Option {
	return func(o *Options) {
		o.settings[HiddenColumnsName] = PluginSetting{Enabled: true, Indices: cols}
	}
}

// WithSortableRows enables the row-sorting plugin with identity order.
func WithSortableRows() Option {
	return func(o *Options) {
		o.settings[SortRowsName] = PluginSetting{Enabled: true}
	}
}

// WithRowOrder enables the row-sorting plugin with an initial permutation of
// the full physical row range.
func WithRowOrder(perm []int) Option {
	return func(o *Options) {
		o.settings[SortRowsName] = PluginSetting{Enabled: true, Indices: perm}
	}
}

// WithPluginSetting declares a setting for a custom plugin by name.
func WithPluginSetting(name string, setting PluginSetting) Option {
	return func(o *Options) {
		o.settings[name] = setting
	}
}

// WithoutPlugin removes a declared plugin setting, disabling the plugin on
// the next Reconfigure.
func WithoutPlugin(name string) Option {
	return func(o *Options) {
		delete(o.settings, name)
	}
}

// WithPlugins replaces the default plugin factory list. Plugins are
// instantiated and enabled in the given order.
func WithPlugins(factories ...PluginFactory) Option {
	return func(o *Options) {
		o.factories = factories
	}
}

// WithPanicHandler installs a callback for panics recovered from after-event
// listeners.
func WithPanicHandler(fn PanicHandler) Option {
	return func(o *Options) {
		o.onPanic = fn
	}
}
