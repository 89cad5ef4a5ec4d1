package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackrun/gridgraph"
)

func mustGraph(t testing.TB, grid gridgraph.Grid) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(grid)
	require.NoError(t, err)

	return gg
}

// TestExtractKeyPoints_Basic checks start, flag scan order and the empty partner map.
func TestExtractKeyPoints_Basic(t *testing.T) {
	gg := mustGraph(t, gridgraph.Grid{
		{"1", "F", "1"},
		{"S", "1", "F"},
		{"F", "0", "1"},
	})
	kp, err := gridgraph.ExtractKeyPoints(gg)
	require.NoError(t, err)

	assert.Equal(t, gridgraph.Position{Row: 1, Col: 0}, kp.Start)
	assert.Equal(t, []gridgraph.Position{{0, 1}, {1, 2}, {2, 0}}, kp.Flags)
	assert.Empty(t, kp.Partner)
	assert.Empty(t, kp.Teleports)
	assert.Equal(t, []gridgraph.Position{{1, 0}, {0, 1}, {1, 2}, {2, 0}}, kp.Points())
}

// TestExtractKeyPoints_Teleports checks the partner map is symmetric per label.
func TestExtractKeyPoints_Teleports(t *testing.T) {
	gg := mustGraph(t, gridgraph.Grid{
		{"S", "T1", "TA"},
		{"TA", "1", "F"},
		{"1", "1", "T1"},
	})
	kp, err := gridgraph.ExtractKeyPoints(gg)
	require.NoError(t, err)

	t1a, t1b := gridgraph.Position{Row: 0, Col: 1}, gridgraph.Position{Row: 2, Col: 2}
	taa, tab := gridgraph.Position{Row: 0, Col: 2}, gridgraph.Position{Row: 1, Col: 0}
	require.Len(t, kp.Partner, 4)
	assert.Equal(t, t1b, kp.Partner[t1a])
	assert.Equal(t, t1a, kp.Partner[t1b])
	assert.Equal(t, tab, kp.Partner[taa])
	assert.Equal(t, taa, kp.Partner[tab])
	assert.Equal(t, []gridgraph.Position{t1a, t1b}, kp.Teleports["T1"])
	for a, b := range kp.Partner {
		assert.Equal(t, a, kp.Partner[b], "partner map must be symmetric")
	}
}

func TestExtractKeyPoints_MissingStart(t *testing.T) {
	_, err := gridgraph.ExtractKeyPoints(mustGraph(t, gridgraph.Grid{{"1", "F"}}))
	require.ErrorIs(t, err, gridgraph.ErrMissingStart)
}

func TestExtractKeyPoints_MalformedTeleport(t *testing.T) {
	_, err := gridgraph.ExtractKeyPoints(mustGraph(t, gridgraph.Grid{
		{"S", "T1", "T2"},
		{"T2", "F", "T2"},
	}))
	require.ErrorIs(t, err, gridgraph.ErrMalformedTeleport)
	var te *gridgraph.TeleportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "T1", te.Label)
	assert.Equal(t, 1, te.Count)
}

// TestExtractKeyPoints_NoTokenChecks shows extraction ignores unknown tokens.
func TestExtractKeyPoints_NoTokenChecks(t *testing.T) {
	kp, err := gridgraph.ExtractKeyPoints(mustGraph(t, gridgraph.Grid{{"S", "?", "F"}}))
	require.NoError(t, err)
	assert.Len(t, kp.Flags, 1)
}
