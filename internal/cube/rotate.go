package cube

// Axis is a principal rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Sign is the direction of a quarter rotation about an axis.
type Sign int

const (
	CW  Sign = 1  // Clockwise seen from the positive end of the axis
	CCW Sign = -1 // Counter-clockwise
)

// RotatePosition returns where the cubie at c lands after a quarter
// rotation about axis. The axis component is unchanged.
//
//	X cw: (x, y, z) -> (x, z, -y)    ccw: (x, -z, y)
//	Y cw: (x, y, z) -> (-z, y, x)    ccw: (z, y, -x)
//	Z cw: (x, y, z) -> (y, -x, z)    ccw: (-y, x, z)
func RotatePosition(c Coord, axis Axis, sign Sign) Coord {
	x, y, z := c.X, c.Y, c.Z
	if sign == CW {
		switch axis {
		case AxisX:
			return Coord{X: x, Y: z, Z: -y}
		case AxisY:
			return Coord{X: -z, Y: y, Z: x}
		case AxisZ:
			return Coord{X: y, Y: -x, Z: z}
		}
	} else {
		switch axis {
		case AxisX:
			return Coord{X: x, Y: -z, Z: y}
		case AxisY:
			return Coord{X: z, Y: y, Z: -x}
		case AxisZ:
			return Coord{X: -y, Y: x, Z: z}
		}
	}
	return c
}

// rings lists, per axis, the four directions around it such that a
// clockwise rotation moves the sticker at ring[i+1] onto ring[i].
//
//	Y: front<-right, right<-back, back<-left, left<-front
//	X: front<-down, down<-back, back<-up, up<-front
//	Z: up<-left, left<-down, down<-right, right<-up
var rings = [3][4]Direction{
	AxisX: {Front, Down, Back, Up},
	AxisY: {Front, Right, Back, Left},
	AxisZ: {Up, Left, Down, Right},
}

// Rotate returns the facelets of a cubie after a quarter rotation about
// axis. The two slots on the axis keep their stickers; the other four
// cycle. Absent slots travel like any other.
func (f Facelets) Rotate(axis Axis, sign Sign) Facelets {
	ring := rings[axis]
	out := f
	for i := 0; i < 4; i++ {
		from := (i + 1) % 4
		if sign == CCW {
			from = (i + 3) % 4
		}
		out[ring[i]] = f[ring[from]]
	}
	return out
}
