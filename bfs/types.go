package bfs

import (
	"math"

	"github.com/katalvlaran/trackrun/gridgraph"
)

// Unreached marks a cell or pair with no path. It equals tsp.Inf so a
// PairTable's Dist can be fed to the optimizer unchanged.
const Unreached = math.MaxInt32

// Option configures Walk via functional arguments.
type Option func(*Options)

// Options holds callbacks and switches to observe a traversal.
type Options struct {
	// OnVisit is called when a cell is dequeued, with its distance from the source.
	OnVisit func(p gridgraph.Position, depth int)
	// RecordOrder fills Result.Order.
	RecordOrder bool
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(gridgraph.Position, int) {},
	}
}

// WithOnVisit registers a callback run for every dequeued cell.
func WithOnVisit(fn func(p gridgraph.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOrder makes Walk record the dequeue order in Result.Order.
func WithOrder() Option {
	return func(o *Options) {
		o.RecordOrder = true
	}
}

// Result holds the outcome of a single-source Walk. Slices are indexed by
// the grid's row-major cell index.
//   - Dist:   steps from Source, or Unreached.
//   - Parent: cell index the landing cell was reached from, or -1.
//   - Move:   physical direction of the step that produced the landing cell.
//   - Order:  cells in dequeue order; nil unless WithOrder is given.
type Result struct {
	Source gridgraph.Position
	Dist   []int
	Parent []int
	Move   []gridgraph.Direction
	Order  []gridgraph.Position

	gg *gridgraph.GridGraph
}

// DistanceTo returns the distance from Source to p, or Unreached.
func (r *Result) DistanceTo(p gridgraph.Position) int {
	if !r.gg.InBounds(p) {
		return Unreached
	}

	return r.Dist[r.gg.Index(p)]
}

// PathTo reconstructs the move sequence from Source to dst by walking parent
// links backward and reversing. It reports false if dst was not reached.
// PathTo(Source) is an empty, non-nil sequence.
func (r *Result) PathTo(dst gridgraph.Position) ([]gridgraph.Direction, bool) {
	if r.DistanceTo(dst) == Unreached {
		return nil, false
	}
	src := r.gg.Index(r.Source)
	moves := make([]gridgraph.Direction, 0, r.Dist[r.gg.Index(dst)])
	for cur := r.gg.Index(dst); cur != src; cur = r.Parent[cur] {
		if r.Parent[cur] < 0 {
			return nil, false
		}
		moves = append(moves, r.Move[cur])
	}
	// reverse to get source → dst
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves, true
}

// PairTable is the pairwise distance matrix and move table over an ordered
// key-point sequence. Dist[i][i] is 0 and Moves[i][i] is empty.
type PairTable struct {
	Points []gridgraph.Position
	Dist   [][]int
	Moves  [][][]gridgraph.Direction
}

// Reachable reports whether Points[j] can be reached from Points[i].
func (t *PairTable) Reachable(i, j int) bool {
	return t.Dist[i][j] != Unreached
}
