package flow

import (
	"github.com/katalvlaran/lvflow/residual"
)

// EdmondsKarp computes the maximum flow from source→sink in place on n
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - Result: total flow value and number of augmenting paths
//   - err: ErrSourceNotFound, ErrSinkNotFound, or the context error if
//     opts.Ctx is cancelled (the partial result is returned alongside).
//
// Steps:
//  1. BFS from source over arcs with Capacity > Flow, recording one
//     predecessor arc per newly reached vertex. The source is never
//     rediscovered.
//  2. If the sink is unreached, stop.
//  3. Bottleneck = min residual along the predecessor chain.
//  4. Augment each chain arc (its pair loses the same amount).
//
// Complexity: O(V · E²)
// Memory:     O(V) for predecessors and the queue.
func EdmondsKarp(n *residual.Network, source, sink int, opts FlowOptions) (Result, error) {
	opts.normalize()
	if err := validateTerminals(n, source, sink); err != nil {
		return Result{}, err
	}

	var res Result
	bfs := newPathFinder(n.NumVertices())
	logger := opts.Logger

	for {
		if err := opts.Ctx.Err(); err != nil {
			return res, err
		}

		path := bfs.shortestPath(n, source, sink)
		if len(path) == 0 {
			break
		}

		bottleneck := pathBottleneck(n, path)
		augmentPath(n, path, bottleneck)
		res.MaxFlow += int64(bottleneck)
		res.AugmentingPaths++

		logger.Trace().
			Int("path", res.AugmentingPaths).
			Int("length", len(path)).
			Int32("bottleneck", bottleneck).
			Msg("edmonds-karp: augmented")
	}

	logger.Debug().
		Int64("max_flow", res.MaxFlow).
		Int("augmenting_paths", res.AugmentingPaths).
		Msg("edmonds-karp: done")

	return res, nil
}

// pathFinder holds the BFS scratch space reused across iterations.
type pathFinder struct {
	pred  []arcRef
	queue []int
	path  []arcRef
}

func newPathFinder(numVertices int) *pathFinder {
	return &pathFinder{
		pred:  make([]arcRef, numVertices),
		queue: make([]int, 0, numVertices),
	}
}

// shortestPath returns the arcs of a fewest-arc residual path from source to
// sink, ordered sink→source, or nil when the sink is unreachable. The slice
// is reused by the next call.
func (p *pathFinder) shortestPath(n *residual.Network, source, sink int) []arcRef {
	for i := range p.pred {
		p.pred[i] = arcRef{vertex: noArc, arc: noArc}
	}

	p.queue = append(p.queue[:0], source)
	found := false
	for head := 0; head < len(p.queue) && !found; head++ {
		u := p.queue[head]
		for i, a := range n.Vertex(u) {
			v := a.Destination
			if v == source || p.pred[v].arc != noArc || a.Capacity <= a.Flow {
				continue
			}
			p.pred[v] = arcRef{vertex: u, arc: i}
			if v == sink {
				found = true
				break
			}
			p.queue = append(p.queue, v)
		}
	}
	if !found {
		return nil
	}

	p.path = p.path[:0]
	for v := sink; v != source; v = p.pred[v].vertex {
		p.path = append(p.path, p.pred[v])
	}

	return p.path
}
