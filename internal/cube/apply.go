package cube

import "github.com/SeamusWaldron/cubesim/pkg/types"

// Turn rotates the layer of face a quarter turn, clockwise as seen from
// outside that face when clockwise is true. An unknown face returns s
// unchanged.
func Turn(s State, face types.Face, clockwise bool) State {
	def, ok := layers[face]
	if !ok {
		return s
	}

	sign := def.sign
	if !clockwise {
		sign = -sign
	}

	// Read the whole layer before writing anything back.
	coords := Layer(face)
	var snapshot [9]Facelets
	for i, c := range coords {
		snapshot[i] = s.At(c)
	}

	next := s
	for i, c := range coords {
		dst := RotatePosition(c, def.axis, sign)
		next.set(dst, snapshot[i].Rotate(def.axis, sign))
	}
	return next
}

// ApplyMove applies a types.Move to the cube.
func ApplyMove(s State, m types.Move) State {
	return Turn(s, m.Face, m.Clockwise())
}

// ApplyMoves applies a sequence of moves to the cube.
func ApplyMoves(s State, moves []types.Move) State {
	for _, m := range moves {
		s = ApplyMove(s, m)
	}
	return s
}

// Apply applies a single notation token. Tokens that do not parse leave
// the state unchanged.
func Apply(s State, token string) State {
	m, err := types.ParseMove(token)
	if err != nil {
		return s
	}
	return ApplyMove(s, m)
}
