package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// stickerColors holds the display palette for each cube color.
var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("#FFFFFF"),
	cube.Yellow: lipgloss.Color("#FFFF00"),
	cube.Green:  lipgloss.Color("#00FF00"),
	cube.Blue:   lipgloss.Color("#0000FF"),
	cube.Orange: lipgloss.Color("#FFA500"),
	cube.Red:    lipgloss.Color("#FF0000"),
}

// netRenderer draws the unfolded cube, colored when w is a terminal.
type netRenderer struct {
	styles map[cube.Color]lipgloss.Style
	plain  bool
}

func newNetRenderer(w io.Writer, plain bool) *netRenderer {
	r := lipgloss.NewRenderer(w)
	styles := make(map[cube.Color]lipgloss.Style, len(stickerColors))
	for c, bg := range stickerColors {
		fg := lipgloss.Color("#000000")
		if c == cube.Blue {
			fg = lipgloss.Color("#FFFFFF")
		}
		styles[c] = r.NewStyle().Background(bg).Foreground(fg).Bold(true)
	}
	return &netRenderer{styles: styles, plain: plain}
}

func (n *netRenderer) sticker(s cube.Sticker) string {
	c, ok := s.Color()
	if n.plain || !ok {
		return s.String()
	}
	return n.styles[c].Render(c.String())
}

// Render lays the net out exactly like cube.State.String.
func (n *netRenderer) Render(s cube.State) string {
	if n.plain {
		return s.String()
	}

	var b strings.Builder
	rows := func(faces []cube.Direction, indent string) {
		for row := 0; row < 3; row++ {
			b.WriteString(indent)
			for _, d := range faces {
				grid := s.FaceGrid(d)
				for col := 0; col < 3; col++ {
					b.WriteString(n.sticker(grid[row*3+col]))
					b.WriteString(" ")
				}
			}
			b.WriteString("\n")
		}
	}

	rows([]cube.Direction{cube.Up}, "      ")
	rows([]cube.Direction{cube.Left, cube.Front, cube.Right, cube.Back}, "")
	rows([]cube.Direction{cube.Down}, "      ")
	return b.String()
}
