package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/core"
)

// styleCache memoizes lipgloss styles per attribute pair. The palette
// is at most 256 codes per ground so the cache stays small.
var styleCache = map[[2]color.Color]lipgloss.Style{}

// styleFor builds (or reuses) a lipgloss style for a foreground and
// background pair. Default colors leave the ground unset so the
// terminal's own scheme shows through.
func styleFor(fg, bg color.Color) lipgloss.Style {
	key := [2]color.Color{fg, bg}
	if st, ok := styleCache[key]; ok {
		return st
	}

	st := lipgloss.NewStyle()
	if !fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(fg.Code())))
	}
	if !bg.IsDefault() {
		st = st.Background(lipgloss.Color(strconv.Itoa(bg.Code())))
	}
	if fg.IsReversed() {
		st = st.Reverse(true)
	}

	styleCache[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same attributes to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same attributes
		x := 0
		for x < s.Width() {
			cell := s.Cell(x, y)
			startFg, startBg := cell.Fg, cell.Bg

			var run strings.Builder
			for x < s.Width() {
				cell = s.Cell(x, y)
				if cell.Fg != startFg || cell.Bg != startBg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startFg, startBg).Render(run.String()))
		}
	}
	return sb.String()
}
