package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

func TestRotatePositionClockwise(t *testing.T) {
	tests := []struct {
		axis Axis
		in   Coord
		want Coord
	}{
		{AxisX, C(1, 0, 1), C(1, 1, 0)},  // front -> up
		{AxisY, C(0, 1, 1), C(-1, 1, 0)}, // front -> left
		{AxisZ, C(0, 1, 1), C(1, 0, 1)},  // up -> right
		{AxisX, C(1, 0, 0), C(1, 0, 0)},  // axis centre stays
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RotatePosition(tt.in, tt.axis, CW), "%s cw %s", tt.axis, tt.in)
	}
}

func TestRotatePositionInverse(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, c := range Coords {
			cw := RotatePosition(c, axis, CW)
			assert.Equal(t, c, RotatePosition(cw, axis, CCW))

			four := c
			for i := 0; i < 4; i++ {
				four = RotatePosition(four, axis, CW)
			}
			assert.Equal(t, c, four)

			three := c
			for i := 0; i < 3; i++ {
				three = RotatePosition(three, axis, CW)
			}
			assert.Equal(t, RotatePosition(c, axis, CCW), three)
		}
	}
}

func TestLayerRotationIsBijective(t *testing.T) {
	for _, face := range types.Faces {
		layer := Layer(face)
		require.Len(t, layer, 9)

		in := map[Coord]bool{}
		for _, c := range layer {
			in[c] = true
		}
		require.Len(t, in, 9)

		def := layers[face]
		for _, sign := range []Sign{CW, CCW} {
			out := map[Coord]bool{}
			for _, c := range layer {
				dst := RotatePosition(c, def.axis, sign)
				require.True(t, dst.Valid())
				require.True(t, in[dst], "%s maps %s outside its layer", face, c)
				out[dst] = true
			}
			assert.Len(t, out, 9)
		}
	}
}

func TestLayerFixesAxis(t *testing.T) {
	for _, c := range Layer(types.FaceD) {
		assert.Equal(t, -1, c.Y)
	}
	for _, c := range Layer(types.FaceR) {
		assert.Equal(t, 1, c.X)
	}
	for _, c := range Layer(types.FaceB) {
		assert.Equal(t, -1, c.Z)
	}
	assert.Nil(t, Layer(types.Face("M")))
}

func TestFaceletRotateClockwise(t *testing.T) {
	f := Facelets{
		Up:    Paint(White),
		Down:  Paint(Yellow),
		Front: Paint(Green),
		Back:  Paint(Blue),
		Left:  Paint(Orange),
		Right: Paint(Red),
	}

	y := f.Rotate(AxisY, CW)
	assert.Equal(t, f[Up], y[Up])
	assert.Equal(t, f[Down], y[Down])
	assert.Equal(t, f[Right], y[Front])
	assert.Equal(t, f[Front], y[Left])
	assert.Equal(t, f[Left], y[Back])
	assert.Equal(t, f[Back], y[Right])

	x := f.Rotate(AxisX, CW)
	assert.Equal(t, f[Left], x[Left])
	assert.Equal(t, f[Down], x[Front])
	assert.Equal(t, f[Front], x[Up])
	assert.Equal(t, f[Up], x[Back])
	assert.Equal(t, f[Back], x[Down])

	z := f.Rotate(AxisZ, CW)
	assert.Equal(t, f[Front], z[Front])
	assert.Equal(t, f[Left], z[Up])
	assert.Equal(t, f[Up], z[Right])
	assert.Equal(t, f[Right], z[Down])
	assert.Equal(t, f[Down], z[Left])
}

func TestFaceletRotateCounterClockwiseMatchesThreeClockwise(t *testing.T) {
	f := Facelets{Up: Paint(White), Front: Paint(Green), Right: Paint(Red)}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		three := f.Rotate(axis, CW).Rotate(axis, CW).Rotate(axis, CW)
		assert.Equal(t, three, f.Rotate(axis, CCW), "axis %s", axis)
		assert.Equal(t, f, f.Rotate(axis, CW).Rotate(axis, CCW))
	}
}

func TestFaceletRotateCarriesAbsence(t *testing.T) {
	f := Facelets{Up: Paint(White), Right: Paint(Red)}
	got := f.Rotate(AxisY, CW)
	assert.Equal(t, Paint(Red), got[Front])
	assert.Equal(t, Blank, got[Right])
	assert.Equal(t, 2, got.Count())
}
