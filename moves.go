package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	s = cubesim.ApplyMoves(s, cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}  // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW} // Right counter-clockwise

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}  // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW} // Left counter-clockwise

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}  // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW} // Up counter-clockwise

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}  // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW} // Down counter-clockwise

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}  // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW} // Front counter-clockwise

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}  // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW} // Back counter-clockwise
)

// AllMoves lists the twelve quarter turns in scramble draw order.
var AllMoves = []Move{U, UPrime, D, DPrime, F, FPrime, B, BPrime, L, LPrime, R, RPrime}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm, with the half turn written as two quarter turns.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R, R, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
