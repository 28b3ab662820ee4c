package gridaxis

// Event identifies a structural notification fired by a plugin around a
// registry mutation. Every operation has a before/after pair: before events
// are cancelable, after events are not.
type Event int

const (
	BeforeTrimRows Event = iota
	AfterTrimRows
	BeforeUntrimRows
	AfterUntrimRows
	BeforeHideRows
	AfterHideRows
	BeforeUnhideRows
	AfterUnhideRows
	BeforeHideColumns
	AfterHideColumns
	BeforeUnhideColumns
	AfterUnhideColumns
	BeforeSortRows
	AfterSortRows
)

var eventNames = map[Event]string{
	BeforeTrimRows:      "beforeTrimRows",
	AfterTrimRows:       "afterTrimRows",
	BeforeUntrimRows:    "beforeUntrimRows",
	AfterUntrimRows:     "afterUntrimRows",
	BeforeHideRows:      "beforeHideRows",
	AfterHideRows:       "afterHideRows",
	BeforeUnhideRows:    "beforeUnhideRows",
	AfterUnhideRows:     "afterUnhideRows",
	BeforeHideColumns:   "beforeHideColumns",
	AfterHideColumns:    "afterHideColumns",
	BeforeUnhideColumns: "beforeUnhideColumns",
	AfterUnhideColumns:  "afterUnhideColumns",
	BeforeSortRows:      "beforeSortRows",
	AfterSortRows:       "afterSortRows",
}

// String returns the stable event name, e.g. "beforeTrimRows".
func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknownEvent"
}

// Cancelable reports whether a listener may veto the operation by
// returning false. Only before events are cancelable.
func (e Event) Cancelable() bool {
	switch e {
	case BeforeTrimRows, BeforeUntrimRows, BeforeHideRows, BeforeUnhideRows,
		BeforeHideColumns, BeforeUnhideColumns, BeforeSortRows:
		return true
	}
	return false
}

// StructuralChange is the payload carried by every structural event.
// Current and Proposed hold the registry contents (or permutation, for sort
// events) before and after the operation under consideration.
type StructuralChange struct {
	Current  []int
	Proposed []int
	Valid    bool // whole-batch validation outcome for the requested indices
	Changed  bool // set on after events: the commit altered registry contents
}

// Listener is notified when its event fires. For cancelable events a false
// return vetoes the operation; for after events the return value is ignored.
type Listener func(change *StructuralChange) bool

// PanicHandler receives panics recovered from after-event listeners.
type PanicHandler func(e Event, recovered any)

type listenerEntry struct {
	token int
	fn    Listener
}

// HookBus is an ordered, instance-scoped listener registry. Listeners for an
// event run in registration order; registering the same function twice yields
// two invocations. All invocation is synchronous on the caller's goroutine.
type HookBus struct {
	chains    map[Event][]listenerEntry
	nextToken int
	onPanic   PanicHandler
}

// NewHookBus creates an empty bus.
func NewHookBus() *HookBus {
	return &HookBus{chains: make(map[Event][]listenerEntry)}
}

// SetPanicHandler installs a callback for panics recovered from after-event
// listeners. A nil handler silently discards them.
func (b *HookBus) SetPanicHandler(fn PanicHandler) {
	b.onPanic = fn
}

// Register appends a listener to the event's chain and returns a token for
// later removal via Unregister.
func (b *HookBus) Register(e Event, fn Listener) int {
	return b.RegisterAt(e, len(b.chains[e]), fn)
}

// RegisterAt inserts a listener at the given chain position. Positions are
// clamped to the chain bounds.
func (b *HookBus) RegisterAt(e Event, pos int, fn Listener) int {
	b.nextToken++
	entry := listenerEntry{token: b.nextToken, fn: fn}

	chain := b.chains[e]
	if pos < 0 {
		pos = 0
	}
	if pos > len(chain) {
		pos = len(chain)
	}
	chain = append(chain, listenerEntry{})
	copy(chain[pos+1:], chain[pos:])
	chain[pos] = entry
	b.chains[e] = chain
	return entry.token
}

// Unregister removes the listener identified by token. It reports whether a
// listener was found.
func (b *HookBus) Unregister(token int) bool {
	for e, chain := range b.chains {
		for i, entry := range chain {
			if entry.token == token {
				b.chains[e] = append(chain[:i:i], chain[i+1:]...)
				return true
			}
		}
	}
	return false
}

// UnregisterEvent removes every listener for the named event.
func (b *HookBus) UnregisterEvent(e Event) {
	delete(b.chains, e)
}

// UnregisterAll removes every listener for every event.
func (b *HookBus) UnregisterAll() {
	b.chains = make(map[Event][]listenerEntry)
}

// ListenerCount returns the number of listeners registered for the event.
func (b *HookBus) ListenerCount(e Event) int {
	return len(b.chains[e])
}

// Fire invokes the event's listeners in order. For cancelable events it stops
// at the first listener returning false and reports false ("vetoed"). For
// after events every listener runs; a panicking listener is recovered,
// reported to the panic handler, and does not stop later listeners.
func (b *HookBus) Fire(e Event, change *StructuralChange) bool {
	chain := b.chains[e]
	if e.Cancelable() {
		for _, entry := range chain {
			if !entry.fn(change) {
				return false
			}
		}
		return true
	}
	for _, entry := range chain {
		b.fireIsolated(e, entry.fn, change)
	}
	return true
}

// fireIsolated runs one after-event listener, containing any panic.
func (b *HookBus) fireIsolated(e Event, fn Listener, change *StructuralChange) {
	defer func() {
		if r := recover(); r != nil && b.onPanic != nil {
			b.onPanic(e, r)
		}
	}()
	fn(change)
}
