package render

import (
	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/parameter"
)

// Panel is one titled block of overlay text
type Panel struct {
	Title string
	Label string
	Lines []string
}

// Panels returns the input and game event panels, oldest entry first
func Panels(snap engine.Snapshot) []Panel {
	return []Panel{
		{Title: parameter.PanelInputTitle, Label: parameter.PanelInputLabel, Lines: snap.RecentInput},
		{Title: parameter.PanelGameTitle, Label: parameter.PanelGameLabel, Lines: snap.RecentGame},
	}
}

// Text flattens the panel into display rows, each truncated to width runes
func (p Panel) Text(width int) []string {
	rows := make([]string, 0, len(p.Lines)+2)
	rows = append(rows, Truncate(p.Title, width), Truncate(p.Label, width))
	for _, l := range p.Lines {
		rows = append(rows, Truncate("  "+l, width))
	}
	return rows
}

// Truncate cuts s to at most width runes, marking the cut with '~'
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "~"
}
