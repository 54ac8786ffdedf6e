package types

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"U", Move{Face: FaceU, Turn: TurnCW}},
		{"U'", Move{Face: FaceU, Turn: TurnCCW}},
		{"D", Move{Face: FaceD, Turn: TurnCW}},
		{"B'", Move{Face: FaceB, Turn: TurnCCW}},
		{"L", Move{Face: FaceL, Turn: TurnCW}},
		{"R'", Move{Face: FaceR, Turn: TurnCCW}},
	}

	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.Notation() != tt.in {
			t.Errorf("Notation() = %q, want %q", got.Notation(), tt.in)
		}
	}
}

func TestParseMoveRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "X", "u", "R2", "R''", "R`", "RU", " R"} {
		_, err := ParseMove(in)
		if !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", in, err)
		}
	}
}

func TestInverse(t *testing.T) {
	m := Move{Face: FaceF, Turn: TurnCW}
	inv := m.Inverse()
	if inv.Notation() != "F'" {
		t.Errorf("Inverse of F = %s, want F'", inv)
	}
	if inv.Inverse() != m {
		t.Error("Inverse should be an involution")
	}
	if !m.IsCancellation(inv) {
		t.Error("F and F' should cancel")
	}
	if m.IsCancellation(m) {
		t.Error("F and F should not cancel")
	}
}

func TestBaseIgnoresMarker(t *testing.T) {
	a, _ := ParseMove("L")
	b, _ := ParseMove("L'")
	if a.Base() != b.Base() || a.Base() != "L" {
		t.Errorf("Base() = %q / %q, want L", a.Base(), b.Base())
	}
	if !a.SameFace(b) {
		t.Error("L and L' should share a face")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	want := []string{"U", "U'", "D", "D'", "F", "F'", "B", "B'", "L", "L'", "R", "R'"}
	for i := 0; i < TokenCount; i++ {
		m := MoveFromToken(uint8(i))
		if m.Notation() != want[i] {
			t.Errorf("MoveFromToken(%d) = %s, want %s", i, m, want[i])
		}
		if m.Token() != uint8(i) {
			t.Errorf("%s.Token() = %d, want %d", m, m.Token(), i)
		}
	}
}
