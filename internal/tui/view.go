package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/dateutil"
	"github.com/nmoreau/blockplan/internal/drag"
)

// ghostCell is the renderable projection of whatever drag is in flight,
// whether a template from the palette or a block being repositioned.
type ghostCell struct {
	day      int
	start    int
	duration int
	typ      block.Type
	title    string
}

// View renders the whole screen.
func (m *Model) View() string {
	if m.layout.width == 0 || m.layout.height == 0 {
		return ""
	}
	if m.loading {
		return m.styles.HelpStyle.Render("loading week...")
	}

	cols := m.dayColumnWidth()
	if cols < 1 {
		return m.styles.ErrorStyle.Render("terminal too narrow")
	}

	ghost, hiddenID, hasGhost := m.activeGhost()
	targetDay := m.headerTargetDay()

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(m.renderDayHeaders(cols, targetDay))
	b.WriteByte('\n')

	rows := m.layout.GridRows()
	for r := 0; r < rows; r++ {
		min, ok := m.layout.MinuteAt(headerLines + r)
		if !ok {
			break
		}
		b.WriteString(m.renderSidebarRow(headerLines + r))
		b.WriteString(m.renderGutter(min))
		for day := 0; day < block.DaysPerWeek; day++ {
			b.WriteString(m.renderCell(day, min, cols, ghost, hiddenID, hasGhost))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// dayColumnWidth returns one day column's width in cells.
func (m *Model) dayColumnWidth() int {
	return (m.layout.GridWidthPx() - gutterCells) / block.DaysPerWeek
}

// activeGhost projects the in-flight drag onto the grid. For block drags
// the original is hidden and redrawn at the preview position.
func (m *Model) activeGhost() (ghostCell, int64, bool) {
	if g, ok := m.bridge.Ghost(); ok {
		item, _ := m.session.Item()
		return ghostCell{
			day:      g.Day,
			start:    g.StartMinutes,
			duration: g.DurationMinutes,
			typ:      item.Type,
			title:    g.Title,
		}, 0, true
	}

	item, ok := m.session.Item()
	if !ok || item.Kind != drag.ItemBlock || m.session.Phase() != drag.PhaseDragging {
		return ghostCell{}, 0, false
	}
	pos, ok := m.session.Preview()
	if !ok || pos.Target != drag.TargetTimeGrid {
		return ghostCell{}, 0, false
	}
	return ghostCell{
		day:      pos.Day,
		start:    pos.StartMinutes,
		duration: item.DurationMinutes,
		typ:      item.Type,
		title:    item.Title,
	}, item.BlockID, true
}

// headerTargetDay returns the day whose header the drag currently hovers,
// or -1.
func (m *Model) headerTargetDay() int {
	if _, ok := m.session.Item(); !ok {
		return -1
	}
	pos, ok := m.session.Preview()
	if !ok || pos.Target != drag.TargetDayHeader {
		return -1
	}
	return pos.Day
}

// renderTitle draws the top row: sidebar caption, week label and the
// overlap-mode hint while it is active.
func (m *Model) renderTitle() string {
	var b strings.Builder
	b.WriteString(m.renderSidebarRow(0))

	label := dateutil.WeekLabel(m.weekStart)
	b.WriteString(m.styles.TitleStyle.Render(label))

	if _, ok := m.session.Item(); ok && m.session.OverlapMode() {
		b.WriteString("  ")
		b.WriteString(m.styles.OverlapModeHintStyle.Render("overlap"))
	}
	return b.String()
}

// renderDayHeaders draws the day-name row.
func (m *Model) renderDayHeaders(cols, targetDay int) string {
	var b strings.Builder
	b.WriteString(m.renderSidebarRow(1))
	b.WriteString(strings.Repeat(" ", gutterCells))

	today := dateutil.TruncateToDay(time.Now())
	for day := 0; day < block.DaysPerWeek; day++ {
		date := m.weekStart.AddDate(0, 0, day)
		label := date.Format("Mon 2")
		style := m.styles.DayHeaderStyle
		if date.Equal(today) {
			style = m.styles.DayHeaderTodayStyle
		}
		if day == targetDay {
			style = m.styles.OverlapModeHintStyle
		}
		b.WriteString(style.Width(cols).Render(ansi.Truncate(label, cols, "")))
	}
	return b.String()
}

// renderGutter draws the hour label column for one grid row.
func (m *Model) renderGutter(min int) string {
	if min%60 != 0 {
		return strings.Repeat(" ", gutterCells)
	}
	label := fmt.Sprintf("%02d:00", min/60)
	return m.styles.TimeColumnStyle.Render(padRight(label, gutterCells))
}

// renderCell draws one day column at one grid row.
func (m *Model) renderCell(day, min, cols int, ghost ghostCell, hiddenID int64, hasGhost bool) string {
	rowMin := m.layout.RowMinutes()

	if hasGhost && ghost.day == day && min >= ghost.start && min < ghost.start+ghost.duration {
		return m.styles.GhostStyle(ghost.typ).Width(cols).
			Render(m.cellText(ghost.title, timeRangeOf(ghost.start, ghost.duration), ghost.start, min, rowMin, cols))
	}

	for _, blk := range m.blocks {
		if blk.Day != day || blk.ID == hiddenID {
			continue
		}
		if min < blk.StartMinutes || min >= blk.EndMinutes() {
			continue
		}
		style := m.styles.BlockStyle(blk.Type)
		if blk.ID == m.selected {
			style = m.styles.SelectedStyle
		}
		return style.Width(cols).
			Render(m.cellText(blk.Title, blk.TimeRange(), blk.StartMinutes, min, rowMin, cols))
	}

	return m.styles.EmptyCellStyle.Width(cols).Render("")
}

// cellText picks what a block row shows: title on the first rendered row,
// the time range on the second, nothing below.
func (m *Model) cellText(title, timeRange string, start, min, rowMin, cols int) string {
	first := start
	if vis := m.layout.FirstVisibleMinute(); first < vis {
		first = vis
	}
	switch min {
	case first:
		return ansi.Truncate(" "+title, cols, "…")
	case first + rowMin:
		return ansi.Truncate(" "+timeRange, cols, "…")
	default:
		return ""
	}
}

func timeRangeOf(start, duration int) string {
	return block.MinutesToTime(start) + "-" + block.MinutesToTime(start+duration)
}

// renderSidebarRow draws the palette column for one screen row. Rows:
// title, divider, one template per row, then blanks.
func (m *Model) renderSidebarRow(row int) string {
	if !m.layout.SidebarVisible() {
		return ""
	}
	switch {
	case row == 0:
		return m.styles.SidebarTitleStyle.Width(sidebarCells).Render(" Palette")
	case row == 1:
		return m.styles.SidebarDividerStyle.Width(sidebarCells).Render(strings.Repeat("-", sidebarCells-1))
	case row-2 < len(defaultTemplates):
		idx := row - 2
		t := defaultTemplates[idx]
		label := fmt.Sprintf(" %s (%dm)", t.Title, block.DefaultDuration(t.Type))
		style := m.styles.SidebarItemStyle
		if idx == m.grabbedTmpl {
			style = m.styles.SidebarGrabbedStyle
		}
		return style.Width(sidebarCells).Render(ansi.Truncate(label, sidebarCells, "…"))
	default:
		return m.styles.SidebarStyle.Width(sidebarCells).Render("")
	}
}

// renderFooter draws the prompt or status line plus the help line.
func (m *Model) renderFooter() string {
	var first string
	if m.mode == ModePrompt {
		first = m.styles.PromptFocusedStyle.Render("new: ") + m.prompt.View()
	} else if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusErr {
			style = m.styles.ErrorStyle
		}
		first = style.Render(m.statusMsg)
	}

	help := "n new  d delete  u undo  c copy  [ ] week  + - zoom  s palette  shift+drag overlap  q quit"
	return first + "\n" + m.styles.HelpStyle.Render(ansi.Truncate(help, m.layout.width, ""))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
