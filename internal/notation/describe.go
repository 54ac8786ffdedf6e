package notation

import "github.com/SeamusWaldron/cubesim/pkg/types"

// Describe converts a Move to a plain-language instruction.
// Reference frame: White on top, Green in front, facing the cube.
//
// Mapping:
//
//	R  -> "R up"                 R' -> "R down"
//	L  -> "L down"               L' -> "L up"
//	U  -> "T rotate left"        U' -> "T rotate right"
//	D  -> "B rotate right"       D' -> "B rotate left"
//	F  -> "F rotate clockwise"   F' -> "F rotate anti-clockwise"
//	B  -> "Back rotate clockwise"  B' -> "Back rotate anti-clockwise"
//
// "T rotate left" means the front stickers of the top layer travel to the
// left, which is what a clockwise U does.
func Describe(m types.Move) string {
	cw := m.Clockwise()
	switch m.Face {
	case types.FaceR:
		return pick(cw, "R up", "R down")
	case types.FaceL:
		return pick(cw, "L down", "L up")
	case types.FaceU:
		return pick(cw, "T rotate left", "T rotate right")
	case types.FaceD:
		return pick(cw, "B rotate right", "B rotate left")
	case types.FaceF:
		return pick(cw, "F rotate clockwise", "F rotate anti-clockwise")
	case types.FaceB:
		return pick(cw, "Back rotate clockwise", "Back rotate anti-clockwise")
	}
	return m.Notation()
}

func pick(cw bool, a, b string) string {
	if cw {
		return a
	}
	return b
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(moves []types.Move) string {
	result := ""
	for i, m := range moves {
		if i > 0 {
			result += ", "
		}
		result += Describe(m)
	}
	return result
}
