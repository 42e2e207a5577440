// Package vizstate owns the cross-view interaction state: the persistent
// selection set, the brush filter set, the transient hover highlight and the
// scatter zoom transform. It is the single point of mutation for all of them;
// view renderers never touch the sets directly, they register an observer and
// restyle from StyleFor after every change. All calls happen on the UI event
// loop, so there is no locking.
package vizstate

import (
	"sort"

	"github.com/slothcoder21/ecs163-25s/src/scale"
)

// DimmedOpacity is the shared dimming factor applied to marks outside an
// active brush, identical across scatter and parallel views.
const DimmedOpacity = 0.15

// Change describes which part of the state an observer notification is about.
type Change int

const (
	ChangeSelection Change = iota
	ChangeFilter
	ChangeHighlight
	ChangeZoom
)

// MarkStyle is the derived visual state for one mark. It is a pure function
// of the manager state: deriving it twice for the same state yields the same
// style, which keeps restyling idempotent.
type MarkStyle struct {
	// Opacity is the alpha multiplier from the brush filter: 1 when no brush
	// is active or the mark passes the brush, DimmedOpacity otherwise.
	Opacity float64
	// Selected marks carry the persistent emphasis stroke.
	Selected bool
	// Hovered marks carry the transient emphasis stroke; cleared on pointer
	// leave unless the mark is selected, in which case only the transient part
	// goes away.
	Hovered bool
}

// Manager mediates selection/filter/highlight/zoom between the views.
type Manager struct {
	selection   map[string]struct{}
	filter      map[string]struct{}
	brushActive bool
	hovered     string
	zoom        scale.Transform
	observers   []func(Change)
}

// New returns an empty manager with an identity zoom.
func New() *Manager {
	return &Manager{
		selection: map[string]struct{}{},
		filter:    map[string]struct{}{},
		zoom:      scale.Identity(),
	}
}

// Register adds an observer invoked after every state mutation. Views use it
// to re-render; notifications are synchronous and in registration order.
func (m *Manager) Register(fn func(Change)) {
	m.observers = append(m.observers, fn)
}

func (m *Manager) notify(c Change) {
	for _, fn := range m.observers {
		fn(c)
	}
}

// ToggleSelection flips membership of id in the selection set and reports the
// resulting membership. Calling it twice restores the original state.
func (m *Manager) ToggleSelection(id string) bool {
	if _, ok := m.selection[id]; ok {
		delete(m.selection, id)
	} else {
		m.selection[id] = struct{}{}
	}
	_, now := m.selection[id]
	m.notify(ChangeSelection)
	return now
}

// Selected reports persistent selection membership.
func (m *Manager) Selected(id string) bool {
	_, ok := m.selection[id]
	return ok
}

// SelectionCount returns the size of the selection set.
func (m *Manager) SelectionCount() int { return len(m.selection) }

// SelectionIDs returns the selected ids in sorted order.
func (m *Manager) SelectionIDs() []string {
	out := make([]string, 0, len(m.selection))
	for id := range m.selection {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SetFilter replaces the filter set and the brush-active flag. An active
// brush over zero marks is a real state (everything dims) and is distinct
// from no brush at all (everything at full opacity).
func (m *Manager) SetFilter(ids []string, active bool) {
	m.filter = make(map[string]struct{}, len(ids))
	if active {
		for _, id := range ids {
			m.filter[id] = struct{}{}
		}
	}
	m.brushActive = active
	m.notify(ChangeFilter)
}

// FilterActive reports whether a brush region is currently active.
func (m *Manager) FilterActive() bool { return m.brushActive }

// FilterContains reports filter set membership.
func (m *Manager) FilterContains(id string) bool {
	_, ok := m.filter[id]
	return ok
}

// FilterCount returns the size of the filter set.
func (m *Manager) FilterCount() int { return len(m.filter) }

// Passes reports whether a mark renders at full opacity under the current
// brush state.
func (m *Manager) Passes(id string) bool {
	if !m.brushActive {
		return true
	}
	_, ok := m.filter[id]
	return ok
}

// Highlight records the transient hover emphasis for id, forwarded to every
// view's matching mark. A later highlight supersedes an earlier one.
func (m *Manager) Highlight(id string) {
	if m.hovered == id {
		return
	}
	m.hovered = id
	m.notify(ChangeHighlight)
}

// Unhighlight clears the hover emphasis for id. Only the transient part is
// dropped: a selected mark keeps its selection style because StyleFor derives
// Selected independently of Hovered.
func (m *Manager) Unhighlight(id string) {
	if m.hovered != id {
		return
	}
	m.hovered = ""
	m.notify(ChangeHighlight)
}

// Hovered returns the currently highlighted id, or "".
func (m *Manager) Hovered() string { return m.hovered }

// ClearSelection empties the selection set and drops any active brush,
// returning every mark to default styling.
func (m *Manager) ClearSelection() {
	m.selection = map[string]struct{}{}
	m.filter = map[string]struct{}{}
	m.brushActive = false
	m.notify(ChangeSelection)
}

// SetZoom installs a new scatter zoom transform.
func (m *Manager) SetZoom(t scale.Transform) {
	m.zoom = t
	m.notify(ChangeZoom)
}

// Zoom returns the current scatter zoom transform.
func (m *Manager) Zoom() scale.Transform { return m.zoom }

// ResetZoom restores the identity transform without touching selection or
// filter state.
func (m *Manager) ResetZoom() {
	m.zoom = scale.Identity()
	m.notify(ChangeZoom)
}

// StyleFor derives the visual state for one mark from the current sets.
func (m *Manager) StyleFor(id string) MarkStyle {
	st := MarkStyle{Opacity: 1}
	if !m.Passes(id) {
		st.Opacity = DimmedOpacity
	}
	st.Selected = m.Selected(id)
	st.Hovered = m.hovered == id
	return st
}
