// Package tui provides the terminal user interface for blockplan.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/config"
	"github.com/nmoreau/blockplan/internal/dateutil"
	"github.com/nmoreau/blockplan/internal/drag"
	"github.com/nmoreau/blockplan/internal/grid"
	"github.com/nmoreau/blockplan/internal/tui/commands"
	"github.com/nmoreau/blockplan/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
)

// template is a sidebar palette entry that can be dragged onto the grid.
type template struct {
	Type  block.Type
	Title string
}

// defaultTemplates seeds the sidebar palette.
var defaultTemplates = []template{
	{block.TypeGoal, "Deep work"},
	{block.TypeTask, "Task"},
	{block.TypeEssential, "Routine"},
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   block.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Interaction core. One session shared by the grid and the sidebar;
	// resize runs outside the session since it never changes the target.
	layout     *Layout
	geometry   *grid.Provider
	session    *drag.Session
	resize     *drag.Resize
	reposition *drag.Reposition
	bridge     *drag.Bridge

	// State
	weekStart time.Time
	blocks    []block.Block
	mode      Mode
	selected  int64 // selected block ID, 0 when none
	loading   bool
	undo      UndoStack

	// Gesture bookkeeping. preGesture holds the snapshot taken at press
	// so undo captures the layout before the first live resize update.
	preGesture  []block.Block
	grabbedTmpl int // sidebar index of the template being dragged, -1 otherwise

	// Commands queued by interaction callbacks, drained per Update.
	pending []tea.Cmd

	// Components
	prompt textinput.Model

	// Messages
	statusMsg string
	statusErr bool

	// Error state
	err error
}

// New creates a new TUI model.
func New(repo block.Repository, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "Write report @tue 10:00 90m goal"
	ti.CharLimit = 128

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	layout := NewLayout()

	weekday, werr := dateutil.ParseWeekday(cfg.Schedule.WeekStart)
	if werr != nil {
		weekday = time.Monday
	}

	m := &Model{
		repo:        repo,
		config:      cfg,
		theme:       t,
		styles:      NewStyles(t),
		layout:      layout,
		geometry:    grid.NewProvider(layout, grid.WeekColumns, gutterCells),
		session:     drag.NewSession(),
		weekStart:   dateutil.WeekStart(time.Now(), weekday),
		mode:        ModeNormal,
		grabbedTmpl: -1,
		prompt:      ti,
		loading:     true,
	}

	cb := drag.Callbacks{
		OnResize:       m.onResize,
		OnResizeEnd:    m.onResizeEnd,
		OnDragEnd:      m.onDragEnd,
		OnExternalDrop: m.onExternalDrop,
	}
	m.resize = drag.NewResize(cb)
	m.reposition = drag.NewReposition(m.session, cb)
	m.bridge = drag.NewBridge(m.session, cb)

	// Open the viewport on the configured day start.
	layout.ScrollToMinute(block.TimeToMinutes(cfg.Schedule.DayStart))

	return m
}

// Init initializes the model.
// The model is used by pointer throughout: the interaction callbacks
// close over it, so bubbletea must not work on copies.
func (m *Model) Init() tea.Cmd {
	return commands.LoadWeek(m.repo, m.weekStart)
}

// blockByID finds a block in the loaded week.
func (m *Model) blockByID(id int64) (block.Block, bool) {
	for _, b := range m.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return block.Block{}, false
}

// applyTimes updates a block's placement in the in-memory week.
func (m *Model) applyTimes(id int64, day, start, duration int) {
	for i := range m.blocks {
		if m.blocks[i].ID == id {
			m.blocks[i].Day = day
			m.blocks[i].StartMinutes = start
			m.blocks[i].DurationMinutes = duration
			return
		}
	}
}

// snapshotBefore captures the week layout once per gesture.
func (m *Model) snapshotBefore() {
	if m.preGesture == nil {
		m.preGesture = append([]block.Block(nil), m.blocks...)
	}
}

// commitSnapshot pushes the pre-gesture layout onto the undo stack.
func (m *Model) commitSnapshot() {
	if m.preGesture != nil {
		m.undo.Push(m.preGesture)
		m.preGesture = nil
	}
}

// onResize streams live resize feedback into the in-memory week.
func (m *Model) onResize(id int64, start, duration int) {
	b, ok := m.blockByID(id)
	if !ok {
		return
	}
	m.applyTimes(id, b.Day, start, duration)
}

// onResizeEnd persists the final geometry of the resized block.
func (m *Model) onResizeEnd(id int64) {
	b, ok := m.blockByID(id)
	if !ok {
		return
	}
	changed := false
	for _, p := range m.preGesture {
		if p.ID == id {
			changed = p.StartMinutes != b.StartMinutes || p.DurationMinutes != b.DurationMinutes
		}
	}
	if !changed {
		m.preGesture = nil
		return
	}
	m.commitSnapshot()
	m.pending = append(m.pending, commands.SaveBlockTimes(m.repo, id, b.Day, b.StartMinutes, b.DurationMinutes))
}

// onDragEnd commits a reposition drop.
func (m *Model) onDragEnd(id int64, day, start int) {
	b, ok := m.blockByID(id)
	if !ok {
		return
	}
	m.commitSnapshot()
	m.applyTimes(id, day, start, b.DurationMinutes)
	m.pending = append(m.pending, commands.SaveBlockTimes(m.repo, id, day, start, b.DurationMinutes))
}

// onExternalDrop turns a dropped sidebar template into a stored block.
func (m *Model) onExternalDrop(item drag.Item, pos drag.DropPosition, weekDates []time.Time) {
	if pos.Target != drag.TargetTimeGrid {
		m.setStatus("drop on the grid to schedule", false)
		m.preGesture = nil
		return
	}

	b, err := block.New(item.Title, item.Type, pos.Day, pos.StartMinutes, pos.Duration(item))
	if err != nil {
		m.setStatus(err.Error(), true)
		m.preGesture = nil
		return
	}
	b.WeekStart = dateutil.TruncateToDay(weekDates[pos.Day]).AddDate(0, 0, -pos.Day)
	b.Color = item.Color

	m.commitSnapshot()
	m.pending = append(m.pending, commands.CreateBlock(m.repo, b))
}

// setStatus shows a transient message on the footer.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// drainPending hands queued callback commands to bubbletea.
func (m *Model) drainPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// Run starts the TUI.
func Run(repo block.Repository, cfg *config.Config) error {
	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
