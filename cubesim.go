// Package cubesim models a 3x3x3 twisty puzzle as 27 cubies and applies
// face turns and scrambles to it.
//
// # Features
//
//   - Value-typed cube state: every operation returns a new snapshot
//   - Quarter turns of the six outer faces in standard notation
//   - Scrambles that never turn the same face twice in a row
//   - A Session type that keeps the current state and move history
//
// # Quick Start
//
//	s := cubesim.Initialize()
//	s = cubesim.Apply(s, "R")
//	s = cubesim.Apply(s, "U'")
//	fmt.Println(s)
//
//	sc := cubesim.Scramble(cubesim.Initialize(), cubesim.DefaultScrambleSteps)
//	fmt.Println(strings.Join(sc.Moves, " "))
//
// # Unknown Tokens
//
// Apply ignores tokens it does not recognise and returns its input
// unchanged. ApplyStrict and ApplyNotation report ErrInvalidMove instead
// and never apply part of a move.
//
// # Sessions
//
// A Session owns a current state for callers that want one:
//
//	sess := cubesim.NewSession(cubesim.WithSeed(7))
//	sess.Scramble(20)
//	_ = sess.Move("F")
//	fmt.Println(sess.History())
package cubesim
