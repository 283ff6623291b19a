package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/dateutil"
	"github.com/nmoreau/blockplan/internal/tui/commands"
)

const statusDuration = 3 * time.Second

// Update handles all incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case commands.WeekLoadedMsg:
		m.weekStart = msg.WeekStart
		m.blocks = msg.Blocks
		m.loading = false
		return m, nil

	case commands.BlockCreatedMsg:
		m.blocks = append(m.blocks, msg.Block)
		m.setStatus("scheduled "+msg.Block.Title, false)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.TimesSavedMsg:
		return m, nil

	case commands.SnapshotRestoredMsg:
		m.setStatus("undone", false)
		return m, tea.Batch(
			commands.LoadWeek(m.repo, m.weekStart),
			commands.ClearStatusAfter(statusDuration),
		)

	case commands.BlockDeletedMsg:
		for i, b := range m.blocks {
			if b.ID == msg.ID {
				m.blocks = append(m.blocks[:i], m.blocks[i+1:]...)
				break
			}
		}
		if m.selected == msg.ID {
			m.selected = 0
		}
		m.setStatus("deleted", false)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.GoalAssignedMsg:
		for i := range m.blocks {
			if m.blocks[i].ID == msg.ID {
				goalID := msg.GoalID
				m.blocks[i].GoalID = &goalID
			}
		}
		m.setStatus("assigned to goal", false)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.CopiedMsg:
		m.setStatus("week copied to clipboard", false)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.ErrMsg:
		m.setStatus(msg.Err.Error(), true)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input by mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModePrompt {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.cancelGesture()
		m.selected = 0
		return m, nil

	case "]", "right":
		return m.shiftWeek(7)

	case "[", "left":
		return m.shiftWeek(-7)

	case "t":
		return m.shiftWeek(0)

	case "n":
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, nil

	case "d":
		if m.selected != 0 {
			id := m.selected
			m.undo.Clear()
			return m, commands.DeleteBlock(m.repo, id)
		}
		return m, nil

	case "u":
		if snap, ok := m.undo.Pop(); ok {
			for _, u := range snap {
				m.applyTimes(u.ID, u.Day, u.StartMinutes, u.DurationMinutes)
			}
			return m, commands.RestoreSnapshot(m.repo, m.weekStart, snap)
		}
		m.setStatus("nothing to undo", false)
		return m, commands.ClearStatusAfter(statusDuration)

	case "c":
		return m, commands.CopyToClipboard(m.renderPlainWeek())

	case "s":
		m.layout.ToggleSidebar()
		return m, nil

	case "+", "=":
		m.zoomIn()
		return m, nil

	case "-":
		m.zoomOut()
		return m, nil

	case "j", "down":
		m.layout.Scroll(1)
		return m, nil

	case "k", "up":
		m.layout.Scroll(-1)
		return m, nil
	}

	return m, nil
}

// handlePromptKey drives the quick-add prompt.
func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil

	case "enter":
		m.mode = ModeNormal
		m.prompt.Blur()
		b, err := parseQuickAdd(m.prompt.Value())
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, commands.ClearStatusAfter(statusDuration)
		}
		b.Day = m.anchorDay(b.Day)
		b.WeekStart = m.weekStart
		b.Color = m.theme.TypeColor(string(b.Type))
		return m, commands.CreateBlock(m.repo, b)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// anchorDay converts a Monday-relative day index from the prompt to the
// column it occupies under the configured week anchor.
func (m *Model) anchorDay(monIdx int) int {
	weekday := time.Weekday((monIdx + 1) % 7)
	return (int(weekday) - int(m.weekStart.Weekday()) + 7) % 7
}

// shiftWeek navigates by whole weeks; zero returns to the current week.
func (m *Model) shiftWeek(days int) (tea.Model, tea.Cmd) {
	m.cancelGesture()
	if days == 0 {
		weekday, err := dateutil.ParseWeekday(m.config.Schedule.WeekStart)
		if err == nil {
			m.weekStart = dateutil.WeekStart(time.Now(), weekday)
		}
	} else {
		m.weekStart = m.weekStart.AddDate(0, 0, days)
	}
	m.selected = 0
	m.undo.Clear()
	m.loading = true
	return m, commands.LoadWeek(m.repo, m.weekStart)
}

// cancelGesture aborts any in-flight interaction with no commit.
func (m *Model) cancelGesture() {
	m.session.Cancel()
	m.resize.Cancel()
	m.grabbedTmpl = -1
	if m.preGesture != nil {
		// Resize streams live updates into the week; restore them.
		for _, p := range m.preGesture {
			m.applyTimes(p.ID, p.Day, p.StartMinutes, p.DurationMinutes)
		}
		m.preGesture = nil
	}
}

func (m *Model) zoomIn() {
	switch m.layout.RowMinutes() {
	case 60:
		m.layout.Zoom(30)
	case 30:
		m.layout.Zoom(15)
	}
}

func (m *Model) zoomOut() {
	switch m.layout.RowMinutes() {
	case 15:
		m.layout.Zoom(30)
	case 30:
		m.layout.Zoom(60)
	}
}

// renderPlainWeek produces the clipboard export: one line per block,
// grouped by day.
func (m *Model) renderPlainWeek() string {
	var out []byte
	out = append(out, dateutil.WeekLabel(m.weekStart)...)
	out = append(out, '\n')
	for day := 0; day < block.DaysPerWeek; day++ {
		dayBlocks := block.OnDay(m.blocks, day)
		if len(dayBlocks) == 0 {
			continue
		}
		date := m.weekStart.AddDate(0, 0, day)
		out = append(out, '\n')
		out = append(out, date.Format("Monday Jan 2")...)
		out = append(out, '\n')
		for _, b := range dayBlocks {
			out = append(out, "  "...)
			out = append(out, b.TimeRange()...)
			out = append(out, ' ')
			out = append(out, b.Title...)
			out = append(out, '\n')
		}
	}
	return string(out)
}
