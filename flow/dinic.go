package flow

import (
	"github.com/katalvlaran/lvflow/residual"
)

// Dinic computes the maximum flow from `source` to `sink` in place on n
// using Dinic’s algorithm (level graph + blocking flows).
//
// It returns:
//   - Result : total flow value and number of augmenting paths
//   - err    : ErrSourceNotFound, ErrSinkNotFound, or the context error if
//     opts.Ctx is cancelled (the partial result is returned alongside)
//
// Steps:
//  1. If source == sink, return an empty Result.
//  2. Repeat until the sink has no level:
//     a. BFS over arcs with Flow < Capacity to assign levels (O(V + E)).
//     b. If sink unreachable, break.
//     c. Reset each vertex's resume index to 0.
//     d. Push along level-increasing paths until a search pushes nothing.
//
// The blocking-flow search uses an explicit stack instead of recursion, so
// path length is bounded by memory, not goroutine stack depth.
//
// Complexity:
//
//	Time:   O(V² · E) overall; O(E · √V) on unit-capacity networks.
//	Memory: O(V) for levels, resume indices and the path stack.
func Dinic(n *residual.Network, source, sink int, opts FlowOptions) (Result, error) {
	// 1) Normalize options and validate terminals
	opts.normalize()
	if err := validateTerminals(n, source, sink); err != nil {
		return Result{}, err
	}

	var res Result
	if source == sink {
		return res, nil
	}

	d := newLevelGraph(n.NumVertices())
	logger := opts.Logger
	phase := 0

	// 2) Main loop: level graph + blocking flows
	for {
		if err := opts.Ctx.Err(); err != nil {
			return res, err
		}

		// 2a-b) BFS levels; stop when the sink falls out of reach
		if !d.assignLevels(n, source, sink) {
			break
		}
		phase++

		// 2c) Resume indices start over each phase
		clear(d.next)

		// 2d) Blocking flow
		var phaseFlow int64
		phasePaths := 0
		for {
			if err := opts.Ctx.Err(); err != nil {
				return res, err
			}
			pushed := d.augment(n, source, sink)
			if pushed == 0 {
				break
			}
			phaseFlow += int64(pushed)
			phasePaths++
			res.MaxFlow += int64(pushed)
			res.AugmentingPaths++
		}

		logger.Trace().
			Int("phase", phase).
			Int32("sink_level", d.level[sink]).
			Int64("pushed", phaseFlow).
			Int("paths", phasePaths).
			Msg("dinic: phase complete")
	}

	logger.Debug().
		Int64("max_flow", res.MaxFlow).
		Int("augmenting_paths", res.AugmentingPaths).
		Int("phases", phase).
		Msg("dinic: done")

	return res, nil
}

// levelGraph holds the per-phase state of Dinic's algorithm.
type levelGraph struct {
	level []int32  // BFS distance from source, -1 when unreached
	next  []int    // resume index into each vertex's arc list
	queue []int    // BFS queue
	path  []arcRef // DFS stack: arcs from source to the current vertex
}

func newLevelGraph(numVertices int) *levelGraph {
	return &levelGraph{
		level: make([]int32, numVertices),
		next:  make([]int, numVertices),
		queue: make([]int, 0, numVertices),
	}
}

// assignLevels runs a BFS from source over residual arcs and reports whether
// the sink was reached.
func (d *levelGraph) assignLevels(n *residual.Network, source, sink int) bool {
	for i := range d.level {
		d.level[i] = -1
	}
	d.level[source] = 0

	d.queue = append(d.queue[:0], source)
	for head := 0; head < len(d.queue); head++ {
		u := d.queue[head]
		for _, a := range n.Vertex(u) {
			if d.level[a.Destination] < 0 && a.Flow < a.Capacity {
				d.level[a.Destination] = d.level[u] + 1
				d.queue = append(d.queue, a.Destination)
			}
		}
	}

	return d.level[sink] >= 0
}

// augment finds one source→sink path in the level graph, pushes its
// bottleneck and returns the amount pushed, or 0 when the level graph is
// blocked.
//
// An arc is followed only if it has residual capacity and leads exactly one
// level deeper. When a vertex has no such arc left it is a dead end: the
// search backs up one arc and the parent's resume index moves past it for
// the rest of the phase. After a successful push no resume index advances,
// so arcs that still have room are tried again by the next search.
func (d *levelGraph) augment(n *residual.Network, source, sink int) int32 {
	d.path = d.path[:0]
	u := source

	for {
		if u == sink {
			bottleneck := pathBottleneck(n, d.path)
			augmentPath(n, d.path, bottleneck)

			return bottleneck
		}

		arcs := n.Vertex(u)
		advanced := false
		for ; d.next[u] < len(arcs); d.next[u]++ {
			a := &arcs[d.next[u]]
			if a.Flow < a.Capacity && d.level[a.Destination] == d.level[u]+1 {
				d.path = append(d.path, arcRef{vertex: u, arc: d.next[u]})
				u = a.Destination
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}

		// dead end
		if len(d.path) == 0 {
			return 0
		}
		last := d.path[len(d.path)-1]
		d.path = d.path[:len(d.path)-1]
		u = last.vertex
		d.next[u]++
	}
}
