package cube

import "strings"

// gridCoord maps a row/column of a face, as seen looking straight at that
// face with the cube upright, to the cubie showing that sticker. U is seen
// with the back edge on top and D with the front edge on top.
func gridCoord(d Direction, row, col int) Coord {
	r, c := row-1, col-1
	switch d {
	case Up:
		return Coord{X: c, Y: 1, Z: r}
	case Down:
		return Coord{X: c, Y: -1, Z: -r}
	case Front:
		return Coord{X: c, Y: -r, Z: 1}
	case Back:
		return Coord{X: -c, Y: -r, Z: -1}
	case Left:
		return Coord{X: -1, Y: -r, Z: c}
	case Right:
		return Coord{X: 1, Y: -r, Z: -c}
	}
	return Coord{}
}

// FaceGrid returns the nine stickers of one face indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
func (s State) FaceGrid(d Direction) [9]Sticker {
	var grid [9]Sticker
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			grid[row*3+col] = s.At(gridCoord(d, row, col))[d]
		}
	}
	return grid
}

// String returns the cube unfolded as a cross: U on top, L F R B across
// the middle, D below.
func (s State) String() string {
	var b strings.Builder

	writeRows := func(faces []Direction, indent string) {
		grids := make([][9]Sticker, len(faces))
		for i, d := range faces {
			grids[i] = s.FaceGrid(d)
		}
		for row := 0; row < 3; row++ {
			b.WriteString(indent)
			for _, g := range grids {
				for col := 0; col < 3; col++ {
					b.WriteString(g[row*3+col].String())
					b.WriteString(" ")
				}
			}
			b.WriteString("\n")
		}
	}

	writeRows([]Direction{Up}, "      ")
	writeRows([]Direction{Left, Front, Right, Back}, "")
	writeRows([]Direction{Down}, "      ")

	return b.String()
}
