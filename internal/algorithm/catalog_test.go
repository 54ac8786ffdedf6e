package algorithm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

func TestDefaultCatalogOrders(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.Algorithms)

	for _, res := range c.CheckAll() {
		require.NoError(t, res.Err, res.Name)
		assert.True(t, res.OK(), "%s: expected order %d, got %d", res.Name, res.Expected, res.Actual)
	}
}

func TestOrderEmptySequence(t *testing.T) {
	n, err := Order(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOrderSingleMove(t *testing.T) {
	n, err := Order([]types.Move{{Face: types.FaceB, Turn: types.TurnCCW}})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCheckReportsMismatch(t *testing.T) {
	res := Check(Algorithm{Name: "wrong", Moves: "F", Order: 3})
	require.NoError(t, res.Err)
	assert.Equal(t, 4, res.Actual)
	assert.False(t, res.OK())
}

func TestLoadRejectsBadMoves(t *testing.T) {
	_, err := Load(strings.NewReader("algorithms:\n  - name: bad\n    moves: \"R X\"\n    order: 4\n"))
	assert.ErrorIs(t, err, types.ErrInvalidNotation)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("algorithms:\n  - name: a\n    moves: R\n    period: 4\n"))
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = Load(strings.NewReader("algorithms: []\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithms:\n  - name: d\n    moves: \"D D'\"\n    order: 1\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Algorithms, 1)
	assert.True(t, Check(c.Algorithms[0]).OK())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
