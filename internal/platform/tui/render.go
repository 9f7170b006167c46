package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// upperHalf draws the top pixel in the foreground color and the bottom
// pixel in the background color, so each terminal cell shows two rows.
const upperHalf = "▀"

// statusRows is the number of terminal rows used below the frame.
const statusRows = 1

// FrameSize returns the frame dimensions for a terminal of cols x rows
// cells: one pixel per column and two per row, minus the status line.
func FrameSize(cols, rows int) (w, h int) {
	rows -= statusRows
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return cols, rows * 2
}

// cellColors is the pair of pixels shown by one terminal cell.
type cellColors struct {
	top, bottom core.RGB
}

func (c cellColors) style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.top.Hex())).
		Background(lipgloss.Color(c.bottom.Hex()))
}

// RenderFrame converts a frame to half-block terminal output.
// Groups adjacent cells with the same color pair to minimize ANSI escape
// sequences. An odd last row is paired with black.
func RenderFrame(f *core.Frame) string {
	w, h := f.Width(), f.Height()
	rows := (h + 1) / 2

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(w*rows*8 + rows)

	styles := make(map[cellColors]lipgloss.Style)
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		y := row * 2
		x := 0
		for x < w {
			start := cellColors{top: f.Get(x, y), bottom: f.Get(x, y+1)}

			n := 0
			for x < w && (cellColors{top: f.Get(x, y), bottom: f.Get(x, y+1)}) == start {
				n++
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = start.style()
				styles[start] = style
			}
			sb.WriteString(style.Render(strings.Repeat(upperHalf, n)))
		}
	}
	return sb.String()
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214"))
)

// renderStatus draws the one-line status bar, padded to width.
func renderStatus(text string, paused bool, width int) string {
	prefix := ""
	if paused {
		prefix = pausedStyle.Render(" PAUSED ")
		width -= lipgloss.Width(prefix)
	}
	width = max(width, 1)
	return prefix + statusStyle.Width(width).MaxWidth(width).Render(text)
}
