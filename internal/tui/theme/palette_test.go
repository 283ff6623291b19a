package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTestTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Goal:        "#112233",
		Task:        "#445566",
		Essential:   "#665544",
		Warning:     "#888888",
	}
}

func TestNewPalette_BlockShades(t *testing.T) {
	base := darkTestTheme()
	palette := NewPalette(base)

	if palette.GoalBg != lipgloss.Color(darkenColor(base.Goal)) {
		t.Fatalf("GoalBg = %q, want %q", palette.GoalBg, darkenColor(base.Goal))
	}
	if palette.TaskBg != lipgloss.Color(darkenColor(base.Task)) {
		t.Fatalf("TaskBg = %q, want %q", palette.TaskBg, darkenColor(base.Task))
	}
	if palette.GoalGhostBg != lipgloss.Color(muteColor(base.Goal)) {
		t.Fatalf("GoalGhostBg = %q, want %q", palette.GoalGhostBg, muteColor(base.Goal))
	}
	if palette.EssentialGhostBg != lipgloss.Color(muteColor(base.Essential)) {
		t.Fatalf("EssentialGhostBg = %q, want %q", palette.EssentialGhostBg, muteColor(base.Essential))
	}
}

func TestNewPalette_LightThemeBlendsTowardBg(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#777777",
		Accent:      "#8839ef",
		Goal:        "#1e66f5",
		Task:        "#40a02b",
		Essential:   "#fe640b",
		Warning:     "#df8e1d",
	}

	palette := NewPalette(base)
	if palette.GoalBg != lipgloss.Color(blendColors(base.Goal, base.Bg, 0.75)) {
		t.Fatalf("GoalBg = %q, want light blend", palette.GoalBg)
	}
	if palette.TaskGhostBg != lipgloss.Color(blendColors(base.Task, base.Bg, 0.88)) {
		t.Fatalf("TaskGhostBg = %q, want light ghost blend", palette.TaskGhostBg)
	}
}

func TestPalette_TypeLookups(t *testing.T) {
	palette := NewPalette(darkTestTheme())

	tests := []struct {
		typ       string
		wantBg    lipgloss.Color
		wantGhost lipgloss.Color
	}{
		{"goal", palette.GoalBg, palette.GoalGhostBg},
		{"task", palette.TaskBg, palette.TaskGhostBg},
		{"essential", palette.EssentialBg, palette.EssentialGhostBg},
		{"unknown", palette.TaskBg, palette.TaskGhostBg},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			if got := palette.BlockBg(tt.typ); got != tt.wantBg {
				t.Errorf("BlockBg(%q) = %q, want %q", tt.typ, got, tt.wantBg)
			}
			if got := palette.GhostBg(tt.typ); got != tt.wantGhost {
				t.Errorf("GhostBg(%q) = %q, want %q", tt.typ, got, tt.wantGhost)
			}
		})
	}
}

func TestNewPalette_NilThemeFallsBack(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg == "" || palette.Fg == "" {
		t.Error("nil theme must yield the default palette")
	}
}

func TestChooseTextColor(t *testing.T) {
	// Dark background favors the light text; light background the dark.
	if got := chooseTextColor("#101010", "#f5f5f5", "#101010"); got != "#f5f5f5" {
		t.Errorf("dark bg text = %q, want light", got)
	}
	if got := chooseTextColor("#f9e2af", "#1e1e2e", "#f5f5f5"); got != "#1e1e2e" {
		t.Errorf("light bg text = %q, want dark", got)
	}
}
