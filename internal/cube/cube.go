// Package cube provides a 3x3x3 cube model built from 27 cubies, each
// carrying its own six facelets, together with the rotation engine that
// turns one face layer at a time.
//
// Cubies are addressed by integer coordinates in {-1,0,1}³:
//
//	x: -1 left,  0 middle, 1 right
//	y: -1 down,  0 middle, 1 up
//	z: -1 back,  0 middle, 1 front
//
// State is a plain value. Assigning or passing it copies every cubie, so
// no operation in this package can alter a state held by the caller.
package cube

import (
	"errors"
	"fmt"
)

// ErrInvariant is returned by Validate when a state is not a legal cube.
var ErrInvariant = errors.New("cube: invariant violated")

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// ColorCount is the number of distinct sticker colors.
const ColorCount = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Direction is one of the six outward directions of a cubie.
type Direction int

const (
	Up Direction = iota
	Down
	Front
	Back
	Left
	Right
)

// Directions lists all six directions in index order.
var Directions = [6]Direction{Up, Down, Front, Back, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "?"
	}
}

// solvedColor returns the color a direction carries in the solved state.
func solvedColor(d Direction) Color {
	switch d {
	case Up:
		return White
	case Down:
		return Yellow
	case Front:
		return Green
	case Back:
		return Blue
	case Right:
		return Red
	case Left:
		return Orange
	default:
		return White
	}
}

// Sticker is a facelet slot: either a color or absent.
type Sticker struct {
	color   Color
	present bool
}

// Blank is the absent sticker.
var Blank = Sticker{}

// Paint returns a sticker of the given color.
func Paint(c Color) Sticker {
	return Sticker{color: c, present: true}
}

// Color returns the sticker's color and whether it is present.
func (s Sticker) Color() (Color, bool) {
	return s.color, s.present
}

// Present reports whether the slot carries a sticker.
func (s Sticker) Present() bool {
	return s.present
}

func (s Sticker) String() string {
	if !s.present {
		return "."
	}
	return s.color.String()
}

// Facelets holds one cubie's six slots indexed by Direction.
type Facelets [6]Sticker

// Count returns the number of present stickers.
func (f Facelets) Count() int {
	n := 0
	for _, s := range f {
		if s.present {
			n++
		}
	}
	return n
}

// Coord is a cubie position. Each component is in {-1, 0, 1}.
type Coord struct {
	X, Y, Z int
}

// C is a convenience constructor for Coord.
func C(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Valid reports whether every component lies in {-1, 0, 1}.
func (c Coord) Valid() bool {
	return inRange(c.X) && inRange(c.Y) && inRange(c.Z)
}

func inRange(v int) bool {
	return v >= -1 && v <= 1
}

// Faces returns true for each direction the cubie at c exposes to the outside.
func (c Coord) Faces() [6]bool {
	var out [6]bool
	out[Up] = c.Y == 1
	out[Down] = c.Y == -1
	out[Front] = c.Z == 1
	out[Back] = c.Z == -1
	out[Left] = c.X == -1
	out[Right] = c.X == 1
	return out
}

func (c Coord) index() int {
	return (c.X+1)*9 + (c.Y+1)*3 + (c.Z + 1)
}

// Coords lists all 27 coordinates, x outermost and z innermost.
var Coords = func() [27]Coord {
	var out [27]Coord
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				out[i] = Coord{X: x, Y: y, Z: z}
				i++
			}
		}
	}
	return out
}()

// State is a snapshot of all 27 cubies.
type State struct {
	cells [27]Facelets
}

// New returns the solved cube: white up, yellow down, green front,
// blue back, orange left, red right.
func New() State {
	var s State
	for _, c := range Coords {
		exposed := c.Faces()
		var f Facelets
		for _, d := range Directions {
			if exposed[d] {
				f[d] = Paint(solvedColor(d))
			}
		}
		s.cells[c.index()] = f
	}
	return s
}

// Copy returns an independent snapshot equal to s.
func (s State) Copy() State {
	return s
}

// At returns the facelets of the cubie at c. It panics if c is out of range.
func (s State) At(c Coord) Facelets {
	return s.cells[mustIndex(c)]
}

// Sticker returns the color facing direction d on the cubie at c.
func (s State) Sticker(c Coord, d Direction) (Color, bool) {
	return s.At(c)[d].Color()
}

func (s *State) set(c Coord, f Facelets) {
	s.cells[mustIndex(c)] = f
}

// mustIndex treats an out-of-range coordinate as a broken rotation rule.
func mustIndex(c Coord) int {
	if !c.Valid() {
		panic(fmt.Sprintf("cube: coordinate %s outside {-1,0,1}³", c))
	}
	return c.index()
}

// IsSolved returns true if the cube is in the solved state.
func (s State) IsSolved() bool {
	return s == New()
}

// ColorCounts returns how many stickers of each color are on the cube.
func (s State) ColorCounts() [ColorCount]int {
	var counts [ColorCount]int
	for _, f := range s.cells {
		for _, st := range f {
			if c, ok := st.Color(); ok && int(c) < ColorCount {
				counts[c]++
			}
		}
	}
	return counts
}

// Validate checks that s is a legal cube: every cubie carries stickers on
// exactly its outward directions, the core is empty, and each color
// appears nine times.
func (s State) Validate() error {
	for _, c := range Coords {
		f := s.cells[c.index()]
		exposed := c.Faces()
		for _, d := range Directions {
			if f[d].present != exposed[d] {
				return fmt.Errorf("%w: cubie %s has present=%v on %s", ErrInvariant, c, f[d].present, d)
			}
			if col, ok := f[d].Color(); ok && int(col) >= ColorCount {
				return fmt.Errorf("%w: cubie %s has unknown color %d on %s", ErrInvariant, c, col, d)
			}
		}
	}

	for col, n := range s.ColorCounts() {
		if n != 9 {
			return fmt.Errorf("%w: color %s appears %d times", ErrInvariant, Color(col), n)
		}
	}

	return nil
}
