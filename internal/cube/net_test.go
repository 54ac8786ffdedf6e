package cube

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestNetGolden(t *testing.T) {
	g := goldie.New(t)

	g.Assert(t, "solved", []byte(New().String()))
	g.Assert(t, "after_u", []byte(Apply(New(), "U").String()))
	g.Assert(t, "after_r", []byte(Apply(New(), "R").String()))
}

func TestFaceGridCentres(t *testing.T) {
	s := scrambled(t)
	want := map[Direction]Color{
		Up: White, Down: Yellow, Front: Green, Back: Blue, Left: Orange, Right: Red,
	}
	for d, c := range want {
		got, ok := s.FaceGrid(d)[4].Color()
		assert.True(t, ok)
		assert.Equal(t, c, got, "centre of %s", d)
	}
}
