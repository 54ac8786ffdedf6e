package cube

import "github.com/SeamusWaldron/cubesim/pkg/types"

// layerDef describes the slab turned by a face letter.
type layerDef struct {
	axis  Axis
	level int  // fixed coordinate value on axis
	sign  Sign // axis sign of a clockwise turn of this face
}

// Face letters are read by someone looking at that face from outside the
// cube. U, F and R look down their positive axis, so a clockwise face turn
// is a clockwise axis rotation. D, B and L look the other way: a clockwise
// D turn is a counter-clockwise rotation about +Y, and likewise for B on Z
// and L on X. Getting this inversion wrong mirrors every D, B and L move.
var layers = map[types.Face]layerDef{
	types.FaceU: {axis: AxisY, level: 1, sign: CW},
	types.FaceD: {axis: AxisY, level: -1, sign: CCW},
	types.FaceF: {axis: AxisZ, level: 1, sign: CW},
	types.FaceB: {axis: AxisZ, level: -1, sign: CCW},
	types.FaceL: {axis: AxisX, level: -1, sign: CCW},
	types.FaceR: {axis: AxisX, level: 1, sign: CW},
}

// Layer returns the nine coordinates in the slab of the given face.
// The face's axis component is fixed and the other two vary over {-1,0,1}.
// It returns nil for an unknown face.
func Layer(face types.Face) []Coord {
	def, ok := layers[face]
	if !ok {
		return nil
	}

	out := make([]Coord, 0, 9)
	for a := -1; a <= 1; a++ {
		for b := -1; b <= 1; b++ {
			switch def.axis {
			case AxisX:
				out = append(out, Coord{X: def.level, Y: a, Z: b})
			case AxisY:
				out = append(out, Coord{X: a, Y: def.level, Z: b})
			case AxisZ:
				out = append(out, Coord{X: a, Y: b, Z: def.level})
			}
		}
	}
	return out
}
