package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackrun/bfs"
	"github.com/katalvlaran/trackrun/gridgraph"
)

var (
	U = gridgraph.Up
	D = gridgraph.Down
	L = gridgraph.Left
	R = gridgraph.Right
)

func setup(t testing.TB, grid gridgraph.Grid) (*gridgraph.GridGraph, *gridgraph.KeyPoints) {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(grid)
	require.NoError(t, err)
	kp, err := gridgraph.ExtractKeyPoints(gg)
	require.NoError(t, err)

	return gg, kp
}

// plainDistances is an independent unit-cost BFS with no teleport handling.
func plainDistances(gg *gridgraph.GridGraph, src gridgraph.Position) map[gridgraph.Position]int {
	dist := map[gridgraph.Position]int{src: 0}
	queue := []gridgraph.Position{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, d := range gridgraph.Directions {
			v := u.Step(d)
			if _, seen := dist[v]; seen || !gg.Drivable(v) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}

// TestWalk_MatchesPlainBFS checks that without teleports every distance is a
// plain unit-cost shortest-path distance.
func TestWalk_MatchesPlainBFS(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{
		{"S", "1", "1", "0", "F"},
		{"0", "0", "1", "0", "1"},
		{"1", "1", "1", "1", "1"},
		{"1", "0", "0", "0", "F"},
	})
	require.Empty(t, kp.Partner)

	res := bfs.Walk(gg, kp.Partner, kp.Start)
	want := plainDistances(gg, kp.Start)
	for i := 0; i < gg.Len(); i++ {
		p := gg.PositionOf(i)
		d, ok := want[p]
		if !ok {
			assert.Equal(t, bfs.Unreached, res.DistanceTo(p), "cell %v", p)
			continue
		}
		assert.Equal(t, d, res.DistanceTo(p), "cell %v", p)
	}
	assert.Equal(t, 8, res.DistanceTo(gridgraph.Position{Row: 0, Col: 4}))
}

// TestWalk_TieBreakOrder verifies the up/down/left/right expansion order
// decides between equal-length paths.
func TestWalk_TieBreakOrder(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{
		{"S", "1"},
		{"1", "F"},
	})
	res := bfs.Walk(gg, nil, kp.Start)
	moves, ok := res.PathTo(kp.Flags[0])
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Direction{D, R}, moves)

	back := bfs.Walk(gg, nil, kp.Flags[0])
	moves, ok = back.PathTo(kp.Start)
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Direction{U, L}, moves)
}

// TestWalk_TeleportIsOneStep checks entering a teleport costs exactly one
// move and the jump itself adds nothing.
func TestWalk_TeleportIsOneStep(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{
		{"S", "1", "T1", "0", "0", "0", "T1", "F"},
	})
	res := bfs.Walk(gg, kp.Partner, kp.Start)

	assert.Equal(t, 3, res.DistanceTo(kp.Flags[0]))
	moves, ok := res.PathTo(kp.Flags[0])
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Direction{R, R, R}, moves)

	// The landing cell gets the distance, the entered teleport cell does not.
	assert.Equal(t, 2, res.DistanceTo(gridgraph.Position{Row: 0, Col: 6}))
	assert.Equal(t, bfs.Unreached, res.DistanceTo(gridgraph.Position{Row: 0, Col: 2}))

	back := bfs.Walk(gg, kp.Partner, kp.Flags[0])
	moves, ok = back.PathTo(kp.Start)
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Direction{L, L, L}, moves)
}

// TestWalk_TeleportShortcut compares a long detour against the jump.
func TestWalk_TeleportShortcut(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{
		{"S", "1", "1", "1", "1", "1"},
		{"T1", "0", "0", "0", "0", "1"},
		{"0", "0", "0", "0", "0", "1"},
		{"1", "1", "1", "1", "F", "1"},
		{"T1", "1", "1", "1", "1", "1"},
	})
	res := bfs.Walk(gg, kp.Partner, kp.Start)
	// down onto T1 → (4,0); up, then right ×4.
	assert.Equal(t, 6, res.DistanceTo(kp.Flags[0]))
	moves, ok := res.PathTo(kp.Flags[0])
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Direction{D, U, R, R, R, R}, moves)
}

// TestWalk_Unreachable leaves walled-off cells at the sentinel.
func TestWalk_Unreachable(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{
		{"S", "1", "0", "1"},
		{"1", "1", "0", "F"},
	})
	res := bfs.Walk(gg, kp.Partner, kp.Start)
	assert.Equal(t, bfs.Unreached, res.DistanceTo(kp.Flags[0]))
	moves, ok := res.PathTo(kp.Flags[0])
	assert.False(t, ok)
	assert.Nil(t, moves)
	assert.Equal(t, bfs.Unreached, res.DistanceTo(gridgraph.Position{Row: 9, Col: 9}))
}

// TestWalk_OnVisit checks the hook sees each reached cell once in FIFO order.
func TestWalk_OnVisit(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{{"S", "1", "F"}})
	var seen []int
	res := bfs.Walk(gg, nil, kp.Start, bfs.WithOrder(), bfs.WithOnVisit(func(_ gridgraph.Position, depth int) {
		seen = append(seen, depth)
	}))
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, []gridgraph.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, res.Order)
}

// TestWalk_OrderOptIn checks Order stays nil unless requested.
func TestWalk_OrderOptIn(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{{"S", "1", "F"}})
	res := bfs.Walk(gg, nil, kp.Start)
	assert.Nil(t, res.Order)
	assert.Equal(t, 2, res.DistanceTo(gridgraph.Position{Row: 0, Col: 2}))
}

//----------------------------------------------------------------------------//
// Pairwise Tests
//----------------------------------------------------------------------------//

func TestPairwise(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{
		{"F", "1", "S", "1", "F"},
	})
	table := bfs.Pairwise(gg, kp.Partner, kp.Points())

	require.Equal(t, [][]int{
		{0, 2, 2},
		{2, 0, 4},
		{2, 4, 0},
	}, table.Dist)
	assert.Equal(t, []gridgraph.Direction{L, L}, table.Moves[0][1])
	assert.Equal(t, []gridgraph.Direction{R, R}, table.Moves[0][2])
	assert.Equal(t, []gridgraph.Direction{R, R, R, R}, table.Moves[1][2])
	for i := range table.Points {
		assert.Empty(t, table.Moves[i][i])
		assert.Len(t, table.Moves[i][(i+1)%3], table.Dist[i][(i+1)%3])
	}
}

// TestPairwise_Unreachable keeps unreachable pairs as data, not errors.
func TestPairwise_Unreachable(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{
		{"S", "1", "0", "F"},
		{"F", "1", "0", "1"},
	})
	table := bfs.Pairwise(gg, kp.Partner, kp.Points())
	assert.True(t, table.Reachable(0, 2))
	assert.False(t, table.Reachable(0, 1))
	assert.False(t, table.Reachable(1, 2))
	assert.Equal(t, bfs.Unreached, table.Dist[2][1])
	assert.Empty(t, table.Moves[0][1])
	assert.NotNil(t, table.Moves[0][1])
}

// TestPairwise_CoincidingPoints treats repeated positions as zero-distance.
func TestPairwise_CoincidingPoints(t *testing.T) {
	gg, kp := setup(t, gridgraph.Grid{{"S", "F"}})
	pts := []gridgraph.Position{kp.Start, kp.Flags[0], kp.Flags[0]}
	table := bfs.Pairwise(gg, kp.Partner, pts)
	assert.Equal(t, 0, table.Dist[1][2])
	assert.Empty(t, table.Moves[1][2])
	assert.Equal(t, 1, table.Dist[0][2])
}
