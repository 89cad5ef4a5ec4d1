package bfs

import (
	"github.com/katalvlaran/trackrun/gridgraph"
)

// walker encapsulates mutable traversal state.
type walker struct {
	gg      *gridgraph.GridGraph
	partner map[gridgraph.Position]gridgraph.Position
	opts    Options
	queue   []int
	res     *Result
}

// Walk runs a unit-cost breadth-first traversal of gg from src.
//
// Behavior:
//  1. Every cell starts at Unreached; src starts at 0.
//  2. Cells are expanded in FIFO order; neighbors in order up, down, left, right.
//  3. A neighbor is a candidate only if in bounds and not blocked.
//  4. A teleport candidate is replaced by its partner (the landing cell).
//  5. The landing cell is updated only if dist[u]+1 is strictly smaller,
//     recording u as parent and the step direction as its move.
//
// partner may be nil for teleport-free grids. src must be in bounds.
// Complexity: O(W×H) time and memory.
func Walk(gg *gridgraph.GridGraph, partner map[gridgraph.Position]gridgraph.Position, src gridgraph.Position, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := gg.Len()
	w := &walker{
		gg:      gg,
		partner: partner,
		opts:    o,
		queue:   make([]int, 0, n),
		res: &Result{
			Source: src,
			Dist:   make([]int, n),
			Parent: make([]int, n),
			Move:   make([]gridgraph.Direction, n),
			gg:     gg,
		},
	}
	if o.RecordOrder {
		w.res.Order = make([]gridgraph.Position, 0, n)
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = Unreached
		w.res.Parent[i] = -1
	}

	s := gg.Index(src)
	w.res.Dist[s] = 0
	w.queue = append(w.queue, s)
	w.loop()

	return w.res
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		up := w.gg.PositionOf(u)
		if w.opts.RecordOrder {
			w.res.Order = append(w.res.Order, up)
		}
		w.opts.OnVisit(up, w.res.Dist[u])
		w.relaxNeighbors(u, up)
	}
}

// relaxNeighbors tries the four physical steps out of u.
func (w *walker) relaxNeighbors(u int, up gridgraph.Position) {
	nd := w.res.Dist[u] + 1
	for _, d := range gridgraph.Directions {
		vp := up.Step(d)
		if !w.gg.Drivable(vp) {
			continue
		}
		vp = w.land(vp)
		v := w.gg.Index(vp)
		if nd < w.res.Dist[v] {
			w.res.Dist[v] = nd
			w.res.Parent[v] = u
			w.res.Move[v] = d
			w.queue = append(w.queue, v)
		}
	}
}

// land returns where a traveler ends up after stepping onto p.
func (w *walker) land(p gridgraph.Position) gridgraph.Position {
	if !gridgraph.IsTeleport(w.gg.Tile(p)) {
		return p
	}
	if q, ok := w.partner[p]; ok {
		return q
	}

	return p
}

// Pairwise computes the distance matrix and move table over points, in the
// given order. One Walk runs per point; diagonal entries are 0 with an empty
// move list. Unreachable pairs hold Unreached and an empty move list.
//
// Complexity: O(K·W×H) time for K points.
func Pairwise(gg *gridgraph.GridGraph, partner map[gridgraph.Position]gridgraph.Position, points []gridgraph.Position, opts ...Option) *PairTable {
	k := len(points)
	t := &PairTable{
		Points: append([]gridgraph.Position(nil), points...),
		Dist:   make([][]int, k),
		Moves:  make([][][]gridgraph.Direction, k),
	}
	for i, src := range points {
		t.Dist[i] = make([]int, k)
		t.Moves[i] = make([][]gridgraph.Direction, k)
		res := Walk(gg, partner, src, opts...)
		for j, dst := range points {
			if i == j {
				t.Moves[i][j] = []gridgraph.Direction{}
				continue
			}
			moves, ok := res.PathTo(dst)
			if !ok {
				t.Dist[i][j] = Unreached
				t.Moves[i][j] = []gridgraph.Direction{}
				continue
			}
			t.Dist[i][j] = res.DistanceTo(dst)
			t.Moves[i][j] = moves
		}
	}

	return t
}
