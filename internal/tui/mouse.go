package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/drag"
	"github.com/nmoreau/blockplan/internal/tui/commands"
)

// handleMouse dispatches pointer events to the interaction core. The
// shift key is the overlap modifier; it is read from every event so the
// session can track it live.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	overlap := msg.Shift

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp {
			m.layout.Scroll(-1)
			return nil
		}
		if msg.Button == tea.MouseButtonWheelDown {
			m.layout.Scroll(1)
			return nil
		}
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.onPress(msg.X, msg.Y, overlap)

	case tea.MouseActionMotion:
		m.onMotion(msg.X, msg.Y, overlap)

	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.onRelease()
	}

	return m.drainPending()
}

// onPress starts a gesture from whatever sits under the pointer. A press
// arriving while a resize is in flight is dropped: the resize machine
// runs outside the shared session, so the session alone cannot refuse it.
func (m *Model) onPress(cx, cy int, overlap bool) {
	if m.resize.Active() {
		return
	}
	at := m.layout.PointAt(cx, cy)

	if m.layout.InSidebar(cx) {
		if idx, ok := m.templateAt(cy); ok {
			tmpl := defaultTemplates[idx]
			item := drag.ItemFromTemplate(tmpl.Type, tmpl.Title, m.theme.TypeColor(string(tmpl.Type)))
			if m.bridge.Begin(item, at, overlap) {
				m.grabbedTmpl = idx
				m.snapshotBefore()
			}
		}
		return
	}

	b, edge, ok := m.hitTest(cx, cy)
	if !ok {
		m.selected = 0
		return
	}

	switch edge {
	case hitTop:
		if m.resize.Begin(b, drag.EdgeTop, at) {
			m.snapshotBefore()
		}
	case hitBottom:
		if m.resize.Begin(b, drag.EdgeBottom, at) {
			m.snapshotBefore()
		}
	default:
		if m.reposition.Begin(b, at, overlap) {
			m.snapshotBefore()
		}
	}
}

// onMotion feeds pointer movement into whichever gesture is active.
func (m *Model) onMotion(cx, cy int, overlap bool) {
	at := m.layout.PointAt(cx, cy)

	if m.resize.Active() {
		m.resize.PointerMove(at)
		return
	}

	if !m.session.PointerMove(at, overlap) {
		return
	}
	item, ok := m.session.Item()
	if !ok {
		return
	}
	opts := drag.ResolveOptions{
		HeaderHeightPx: m.layout.HeaderHeightPx(),
		PinnedDay:      m.reposition.PinnedDay(),
	}
	if pos, ok := drag.Resolve(item, at, m.geometry.Geometry(), m.session.OverlapMode(), opts, m.blocks); ok {
		m.session.SetPreview(pos)
	}
}

// onRelease ends the active gesture.
func (m *Model) onRelease() {
	if m.resize.Active() {
		m.resize.PointerUp()
		return
	}

	item, inGesture := m.session.Item()
	if !inGesture {
		return
	}

	if item.Kind == drag.ItemTemplate {
		m.grabbedTmpl = -1
		if !m.bridge.Drop(block.WeekDates(m.weekStart)) {
			m.preGesture = nil
		}
		return
	}

	pos, hasPos := m.session.Preview()
	if m.reposition.Drop() {
		return
	}
	m.preGesture = nil

	// A drop onto another block assigns the dragged block to it when the
	// target is a goal; anything else, including a plain click, selects.
	if hasPos && pos.Target == drag.TargetBlock {
		if target, ok := m.blockByID(pos.BlockID); ok && target.Type == block.TypeGoal && item.Type != block.TypeGoal {
			m.pending = append(m.pending, commands.AssignToGoal(m.repo, item.BlockID, target.ID))
			return
		}
	}
	m.selected = item.BlockID
}

type hitEdge int

const (
	hitBody hitEdge = iota
	hitTop
	hitBottom
)

// hitTest finds the block under a grid cell and classifies which part of
// it was hit. The first and last rendered rows act as resize handles for
// blocks tall enough to keep a draggable body between them.
func (m *Model) hitTest(cx, cy int) (block.Block, hitEdge, bool) {
	min, ok := m.layout.MinuteAt(cy)
	if !ok {
		return block.Block{}, hitBody, false
	}

	geom := m.geometry.Geometry()
	if !geom.Measured() {
		return block.Block{}, hitBody, false
	}
	day := geom.DayIndexFromX(float64(cx - m.layout.SidebarWidth()))

	for _, b := range m.blocks {
		if b.Day != day || min < b.StartMinutes || min >= b.EndMinutes() {
			continue
		}
		rows := b.DurationMinutes / m.layout.RowMinutes()
		firstRow := min < b.StartMinutes+m.layout.RowMinutes()
		lastRow := min >= b.EndMinutes()-m.layout.RowMinutes()
		switch {
		case rows >= 3 && firstRow:
			return b, hitTop, true
		case rows >= 2 && lastRow:
			return b, hitBottom, true
		default:
			return b, hitBody, true
		}
	}
	return block.Block{}, hitBody, false
}

// templateAt maps a sidebar row to a palette entry.
func (m *Model) templateAt(cy int) (int, bool) {
	// Sidebar rows: title, divider, then one template per row.
	idx := cy - 2
	if idx < 0 || idx >= len(defaultTemplates) {
		return 0, false
	}
	return idx, true
}
