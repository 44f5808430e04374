// Package selection owns the authoritative selection state of a dropdown
// widget: the committed selection the host sees, and the provisional working
// copy that exists only while a modal dialog is open.
//
// Every operation is total over well-formed and malformed input alike. Ids
// that do not appear in the choice registry are accepted and preserved so
// host-supplied state survives a registry mismatch; they simply have no
// visible effect in the UI.
package selection

import "github.com/dropsel/dropsel/internal/choice"

// idSet is a string set that remembers insertion order. Order only matters
// for ids absent from the registry: known ids are always reported in
// registry order, unknown ids in the order they arrived.
type idSet struct {
	members map[string]bool
	order   []string
}

func newIDSet(ids []string) *idSet {
	s := &idSet{members: make(map[string]bool, len(ids))}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *idSet) add(id string) {
	if s.members[id] {
		return
	}
	s.members[id] = true
	s.order = append(s.order, id)
}

func (s *idSet) remove(id string) {
	if !s.members[id] {
		return
	}
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *idSet) has(id string) bool {
	return s.members[id]
}

func (s *idSet) clone() *idSet {
	return newIDSet(s.order)
}

// Machine is the selection state machine for one widget instance. It is the
// only place selection state is mutated; presentation and sync collaborators
// read from it but never write.
type Machine struct {
	mode     Mode
	registry *choice.Registry

	// Single mode: nil means absent. May hold the empty string, which is a
	// real value distinct from absent.
	committedSingle *string

	// Multi mode committed set.
	committedMulti *idSet

	// Working copy while a modal dialog is open; nil otherwise.
	provisional *idSet
}

// NewMachine creates a machine with an empty committed selection.
func NewMachine(mode Mode, registry *choice.Registry) *Machine {
	return &Machine{
		mode:           mode,
		registry:       registry,
		committedMulti: newIDSet(nil),
	}
}

// Mode returns the fixed selection mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// SetRegistry swaps in a replacement choice list. Committed and provisional
// ids are kept as-is: ids missing from the new registry simply become
// unknown passthrough ids in the reported order.
func (m *Machine) SetRegistry(registry *choice.Registry) {
	m.registry = registry
}

// Initialize sets the committed selection from the initial controlled prop.
// Values whose mode disagrees with the machine's mode are normalized to the
// machine's empty selection.
func (m *Machine) Initialize(v Value) {
	if m.mode == Single {
		m.committedSingle = copyStringPtr(v.single())
		return
	}
	m.committedMulti = newIDSet(v.multi())
}

// ApplyControlledUpdate unconditionally overwrites the committed selection
// with a host-supplied value. Any in-flight provisional selection is
// discarded: the host's push wins over uncommitted dialog edits.
func (m *Machine) ApplyControlledUpdate(v Value) {
	m.Initialize(v)
	m.provisional = nil
}

// Committed returns the committed selection in its normalized external
// shape. Multi selections come back in registry order with unknown ids
// appended verbatim in arrival order.
func (m *Machine) Committed() Value {
	if m.mode == Single {
		return SingleValue(copyStringPtr(m.committedSingle))
	}
	return MultiValue(m.ordered(m.committedMulti))
}

// SelectSingle sets the committed selection to exactly id and discards any
// provisional state (a single-select dialog commits and closes in one step).
// No-op in Multi mode.
func (m *Machine) SelectSingle(id string) {
	if m.mode != Single {
		return
	}
	m.committedSingle = &id
	m.provisional = nil
}

// ToggleCommitted flips membership of id directly in the committed set: the
// inline multi-select path, where every edit commits immediately. Disabled
// choices can only be toggled off, never on.
func (m *Machine) ToggleCommitted(id string) {
	if m.mode != Multi {
		return
	}
	m.toggle(m.committedMulti, id)
}

// BeginProvisional snapshots the committed selection into a working copy.
// Only meaningful while a dialog is open; calling it again replaces any
// previous snapshot.
func (m *Machine) BeginProvisional() {
	if m.mode == Single {
		var ids []string
		if m.committedSingle != nil {
			ids = []string{*m.committedSingle}
		}
		m.provisional = newIDSet(ids)
		return
	}
	m.provisional = m.committedMulti.clone()
}

// HasProvisional reports whether a dialog working copy is in flight.
func (m *Machine) HasProvisional() bool {
	return m.provisional != nil
}

// ToggleProvisional flips membership of id in the provisional set. No-op
// when no provisional selection exists or when id names a disabled choice
// that is not already selected.
func (m *Machine) ToggleProvisional(id string) {
	if m.provisional == nil {
		return
	}
	m.toggle(m.provisional, id)
}

// Provisional returns the provisional ids in registry order, or nil when no
// dialog interaction is in flight.
func (m *Machine) Provisional() []string {
	if m.provisional == nil {
		return nil
	}
	return m.ordered(m.provisional)
}

// CommitProvisional promotes the working copy to the committed selection and
// drops it. No-op when nothing is in flight.
func (m *Machine) CommitProvisional() {
	if m.provisional == nil {
		return
	}
	if m.mode == Single {
		ids := m.ordered(m.provisional)
		if len(ids) == 0 {
			m.committedSingle = nil
		} else {
			m.committedSingle = &ids[0]
		}
	} else {
		m.committedMulti = m.provisional
	}
	m.provisional = nil
}

// DiscardProvisional drops the working copy without touching the committed
// selection.
func (m *Machine) DiscardProvisional() {
	m.provisional = nil
}

// SelectAllVisible adds every enabled choice in the visible subset to the
// active selection: the provisional set while a dialog is open, the
// committed set otherwise. Ids outside the visible subset are untouched;
// disabled choices are excluded from bulk operations entirely. No-op in
// Single mode.
func (m *Machine) SelectAllVisible(visible []choice.Choice) {
	if m.mode != Multi {
		return
	}
	target := m.activeSet()
	for _, c := range visible {
		if c.Enabled {
			target.add(c.ID)
		}
	}
}

// DeselectAllVisible removes every enabled visible choice id from the active
// selection. Disabled-but-selected choices survive untouched, mirroring
// SelectAllVisible's exclusion. No-op in Single mode.
func (m *Machine) DeselectAllVisible(visible []choice.Choice) {
	if m.mode != Multi {
		return
	}
	target := m.activeSet()
	for _, c := range visible {
		if c.Enabled {
			target.remove(c.ID)
		}
	}
}

// IsSelected reports membership of id in the active selection: the
// provisional set while one exists, the committed selection otherwise.
func (m *Machine) IsSelected(id string) bool {
	if m.mode == Single {
		if m.provisional != nil {
			return m.provisional.has(id)
		}
		return m.committedSingle != nil && *m.committedSingle == id
	}
	return m.activeSet().has(id)
}

func (m *Machine) activeSet() *idSet {
	if m.provisional != nil {
		return m.provisional
	}
	return m.committedMulti
}

// toggle flips membership, honoring the disabled policy: a disabled choice
// that is not currently selected cannot be toggled on. Unknown ids are
// accepted unconditionally to preserve host-supplied state.
func (m *Machine) toggle(s *idSet, id string) {
	if s.has(id) {
		s.remove(id)
		return
	}
	if c, ok := m.registry.ByID(id); ok && !c.Enabled {
		return
	}
	s.add(id)
}

// ordered resolves a set into the reporting order: registry order for known
// ids, then unknown ids verbatim in arrival order. A registry containing
// duplicate ids contributes each selected id once (first match wins).
func (m *Machine) ordered(s *idSet) []string {
	out := make([]string, 0, len(s.order))
	emitted := make(map[string]bool, len(s.order))
	for _, c := range m.registry.Choices() {
		if s.has(c.ID) && !emitted[c.ID] {
			out = append(out, c.ID)
			emitted[c.ID] = true
		}
	}
	for _, id := range s.order {
		if !emitted[id] {
			out = append(out, id)
		}
	}
	return out
}

// single extracts the pointer for Single-mode use regardless of the value's
// declared mode, tolerating a mode mismatch from the host.
func (v Value) single() *string {
	if v.Mode != Single {
		return nil
	}
	return v.Single
}

func (v Value) multi() []string {
	if v.Mode != Multi {
		return nil
	}
	return v.Multi
}

func copyStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}
