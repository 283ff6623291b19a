// Package tui provides the terminal user interface for blockplan.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Title and headers
	TitleStyle          lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Block cell styles, one per type
	GoalStyle      lipgloss.Style
	TaskStyle      lipgloss.Style
	EssentialStyle lipgloss.Style

	// Ghost preview styles (external drag and reposition preview)
	GoalGhostStyle      lipgloss.Style
	TaskGhostStyle      lipgloss.Style
	EssentialGhostStyle lipgloss.Style

	// Selected block
	SelectedStyle lipgloss.Style

	// Empty cell
	EmptyCellStyle lipgloss.Style

	// Sidebar palette
	SidebarStyle         lipgloss.Style
	SidebarTitleStyle    lipgloss.Style
	SidebarItemStyle     lipgloss.Style
	SidebarGrabbedStyle  lipgloss.Style
	SidebarDividerStyle  lipgloss.Style
	OverlapModeHintStyle lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message and help text
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{palette: p}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Align(lipgloss.Center)

	s.DayHeaderTodayStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true).
		Align(lipgloss.Center)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.GoalStyle = lipgloss.NewStyle().
		Background(p.GoalBg).
		Foreground(p.Fg)
	s.TaskStyle = lipgloss.NewStyle().
		Background(p.TaskBg).
		Foreground(p.Fg)
	s.EssentialStyle = lipgloss.NewStyle().
		Background(p.EssentialBg).
		Foreground(p.Fg)

	s.GoalGhostStyle = lipgloss.NewStyle().
		Background(p.GoalGhostBg).
		Foreground(p.FgMuted).
		Italic(true)
	s.TaskGhostStyle = lipgloss.NewStyle().
		Background(p.TaskGhostBg).
		Foreground(p.FgMuted).
		Italic(true)
	s.EssentialGhostStyle = lipgloss.NewStyle().
		Background(p.EssentialGhostBg).
		Foreground(p.FgMuted).
		Italic(true)

	s.SelectedStyle = lipgloss.NewStyle().
		Background(p.BgSelection).
		Foreground(p.Fg).
		Bold(true)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.SidebarStyle = lipgloss.NewStyle().
		Foreground(p.Fg)
	s.SidebarTitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	s.SidebarItemStyle = lipgloss.NewStyle().
		Foreground(p.Fg)
	s.SidebarGrabbedStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	s.SidebarDividerStyle = lipgloss.NewStyle().
		Foreground(p.BgHighlight)
	s.OverlapModeHintStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	s.PromptStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)
	s.PromptFocusedStyle = lipgloss.NewStyle().
		Foreground(p.Fg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Accent)
	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	return s
}

// BlockStyle returns the fill style for a block type.
func (s *Styles) BlockStyle(typ block.Type) lipgloss.Style {
	switch typ {
	case block.TypeGoal:
		return s.GoalStyle
	case block.TypeEssential:
		return s.EssentialStyle
	default:
		return s.TaskStyle
	}
}

// GhostStyle returns the preview style for a block type.
func (s *Styles) GhostStyle(typ block.Type) lipgloss.Style {
	switch typ {
	case block.TypeGoal:
		return s.GoalGhostStyle
	case block.TypeEssential:
		return s.EssentialGhostStyle
	default:
		return s.TaskGhostStyle
	}
}
