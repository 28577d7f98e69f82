package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvflow/residual"
)

// WriteJuMPModel writes a Julia/JuMP script that solves the maximum flow of
// n as an integer program with GLPK. The source is vertex 0 and the sink is
// the last vertex, which holds for both generators.
//
// Julia indices are 1-based, so vertex v is x[v+1, ·]. The model has:
//
//   - x[u, v] <= capacity for every arc (reverse halves included)
//   - x[u, v] == 0 for every ordered pair without an arc
//   - conservation on 2:n-1, and source outflow equal to sink inflow
//   - objective: maximise sum(x[1, :])
//
// With withMatchings set, the script also prints the matched pairs among the
// inner vertices. The writer is buffered and flushed before returning.
//
// Complexity: O(V² + E) lines of output.
func WriteJuMPModel(w io.Writer, n *residual.Network, withMatchings bool) error {
	bw := bufio.NewWriter(w)
	size := n.NumVertices()

	fmt.Fprintln(bw, "import LinearAlgebra")
	fmt.Fprintln(bw, "using JuMP")
	fmt.Fprintln(bw, "using GLPK")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "model = Model(GLPK.Optimizer)")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "# x[u, v] - flow from vertex u to vertex v")
	fmt.Fprintln(bw, "# vertices indexed 1 to n")
	fmt.Fprintf(bw, "n = %d\n", size)
	fmt.Fprintf(bw, "@variable(model, x[1:%d, 1:%d] >= 0, Int)\n", size, size)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "# capacities of given arcs")
	fmt.Fprintln(bw, "@constraints(model, begin")
	for u := 0; u < size; u++ {
		for _, a := range n.Vertex(u) {
			fmt.Fprintf(bw, "\tx[%d, %d] <= %d\n", u+1, a.Destination+1, a.Capacity)
		}
		for v := 0; v < size; v++ {
			if !n.HasEdge(u, v) {
				fmt.Fprintf(bw, "\tx[%d, %d] == 0\n", u+1, v+1)
			}
		}
	}
	fmt.Fprintln(bw, "end)")

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "# flow must be balanced")
	fmt.Fprintf(bw, "@constraint(model, [u = 2:%d], sum(x[u, :]) == sum(x[:, u]))\n", size-1)
	fmt.Fprintf(bw, "@constraint(model, sum(x[1, :]) == sum(x[:, %d]))\n", size)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "# maximize the flow")
	fmt.Fprintln(bw, "@objective(model, Max, sum(x[1, :]))")
	fmt.Fprintln(bw, "optimize!(model)")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "println(Int64(objective_value(model)))")
	fmt.Fprintln(bw, "println(solution_summary(model))")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `println("maximum flow = ", Int64(value(sum(x[1, :]))))`)
	fmt.Fprintln(bw, "for u in 1:n")
	fmt.Fprintln(bw, "\tfor v in 1:n")
	fmt.Fprintln(bw, "\t\tif value(x[u, v]) > 0")
	fmt.Fprintln(bw, `			println(u - 1, " - ", v - 1, ": ", Int64(value(x[u, v])))`)
	fmt.Fprintln(bw, "\t\tend")
	fmt.Fprintln(bw, "\tend")
	fmt.Fprintln(bw, "end")

	if withMatchings {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "matchings = Vector{Pair}()")
		fmt.Fprintf(bw, "for u in 2:%d\n", size-1)
		fmt.Fprintf(bw, "\tfor v in (u + 1):%d\n", size-1)
		fmt.Fprintln(bw, "\t\tif value(x[u, v]) > 0")
		fmt.Fprintln(bw, "\t\t\tpush!(matchings, Pair(u, v))")
		fmt.Fprintln(bw, "\t\tend")
		fmt.Fprintln(bw, "\tend")
		fmt.Fprintln(bw, "end")
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, `println("maximum matching = ", length(matchings))`)
		fmt.Fprintln(bw, "for matching in matchings")
		fmt.Fprintln(bw, "\tu, v = matching")
		fmt.Fprintln(bw, `	println(u - 1, " -> ", v - 1)`)
		fmt.Fprintln(bw, "end")
	}

	return bw.Flush()
}
