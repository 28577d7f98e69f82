// Command lvflow generates a flow network, solves it and reports the result.
//
//	lvflow -problem flow       -size 10             # Edmonds–Karp on a 10-cube
//	lvflow -problem dinic_flow -size 10             # Dinic on a 10-cube
//	lvflow -problem matchings  -size 8 -degree 3    # Dinic on a bipartite network
//
// Results can be appended to a CSV file with -save and restated as a JuMP
// model with -glpk.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvflow/builder"
	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/report"
	"github.com/katalvlaran/lvflow/residual"
	"github.com/katalvlaran/lvflow/utils"
)

const (
	problemFlow      = "flow"
	problemDinicFlow = "dinic_flow"
	problemMatchings = "matchings"
)

// config is the parsed command line.
type config struct {
	problem     string
	size        int
	degree      int
	printDetail bool
	save        string
	glpk        string
	seed        int64
	verify      bool
	verbosity   int
	noColor     bool
}

// outcome is what a run produced, ready to be printed and saved.
type outcome struct {
	network   *residual.Network
	source    int
	sink      int
	result    flow.Result
	matchings []flow.Pair
	elapsed   time.Duration
}

func main() {
	problem := flag.String("problem", problemFlow, "Problem type: flow, dinic_flow or matchings")
	size := flag.Int("size", 0, "Graph size specifier k (hypercube dimension / log2 of each bipartite side)")
	degree := flag.Int("degree", 1, "Maximum degree of each left vertex in the matching problem")
	printDetail := flag.Bool("print-detail", false, "Print the solved network and the matched pairs")
	save := flag.String("save", "", "Optional path to a .csv file the results are appended to")
	glpk := flag.String("glpk", "", "Optional path to a .jl file the linear programming model is written to")
	seed := flag.Int64("seed", 0, "Generator seed; 0 picks one from the clock")
	verify := flag.Bool("verify", false, "Check pairing, capacity, conservation and maximality after solving")
	verbosity := flag.Int("v", 0, "Log verbosity: 0 info, 1 debug, 2 trace")
	noColor := flag.Bool("no-color", false, "Disable coloured log output")
	flag.Parse()

	cfg := config{
		problem:     *problem,
		size:        *size,
		degree:      *degree,
		printDetail: *printDetail,
		save:        *save,
		glpk:        *glpk,
		seed:        *seed,
		verify:      *verify,
		verbosity:   *verbosity,
		noColor:     *noColor,
	}

	logger := utils.SetupLogger(os.Stderr, cfg.verbosity, cfg.noColor)
	if err := run(context.Background(), cfg, os.Stdout, os.Stderr, &logger); err != nil {
		logger.Error().Err(err).Msg("lvflow failed")
		os.Exit(1)
	}
}

// run executes one problem end to end.
func run(ctx context.Context, cfg config, stdout, stderr io.Writer, logger *zerolog.Logger) error {
	switch cfg.problem {
	case problemFlow, problemDinicFlow, problemMatchings:
	default:
		logger.Warn().Str("problem", cfg.problem).Msg("unknown problem, falling back to flow")
		cfg.problem = problemFlow
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	logger.Debug().
		Str("problem", cfg.problem).
		Int("size", cfg.size).
		Int("degree", cfg.degree).
		Int64("seed", cfg.seed).
		Msg("starting")

	out, err := solve(ctx, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "execution time = %s (ms)\n", utils.Millis(out.elapsed))
	fmt.Fprintf(stdout, "\nsource = %d, sink = %d\n", out.source, out.sink)
	fmt.Fprintf(stdout, "maximum flow = %d\n", out.result.MaxFlow)
	fmt.Fprintf(stderr, "augmenting paths = %d\n", out.result.AugmentingPaths)

	if cfg.printDetail {
		fmt.Fprintln(stdout)
		if err := out.network.Render(stdout); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if cfg.problem == problemMatchings {
		fmt.Fprintf(stdout, "\nmaximum matching size = %d\n", len(out.matchings))
		if cfg.printDetail {
			for _, p := range out.matchings {
				fmt.Fprintf(stdout, "%d -> %d\n", p.U, p.V)
			}
		}
	}

	if cfg.verify {
		if err := flow.Verify(out.network, out.source, out.sink); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		logger.Info().Msg("verification passed")
	}

	if cfg.save != "" {
		if err := report.AppendRow(cfg.save, func(w io.Writer) error { return writeRow(w, cfg, out) }); err != nil {
			return err
		}
		logger.Debug().Str("path", cfg.save).Msg("result row appended")
	}

	if cfg.glpk != "" {
		if err := writeModel(cfg.glpk, out.network, cfg.problem == problemMatchings); err != nil {
			return err
		}
		logger.Debug().Str("path", cfg.glpk).Msg("JuMP model written")
	}

	return nil
}

// solve builds the network for cfg.problem and runs the matching solver.
// The elapsed time covers generation, solving and matching extraction.
func solve(ctx context.Context, cfg config, logger *zerolog.Logger) (outcome, error) {
	start := time.Now()
	out := outcome{network: residual.New(0)}
	opts := flow.FlowOptions{Ctx: ctx, Logger: logger}
	seed := builder.WithSeed(cfg.seed)

	var err error
	switch cfg.problem {
	case problemMatchings:
		if err = builder.Bipartite(out.network, cfg.size, cfg.degree, seed); err != nil {
			return out, err
		}
		out.source, out.sink = builder.BipartiteTerminals(cfg.size)
		if out.result, err = flow.Dinic(out.network, out.source, out.sink, opts); err != nil {
			return out, err
		}
		out.matchings = flow.Matchings(out.network, out.source, out.sink)

	default:
		if err = builder.Hypercube(out.network, cfg.size, seed); err != nil {
			return out, err
		}
		out.source, out.sink = builder.HypercubeTerminals(cfg.size)
		solver := flow.EdmondsKarp
		if cfg.problem == problemDinicFlow {
			solver = flow.Dinic
		}
		if out.result, err = solver(out.network, out.source, out.sink, opts); err != nil {
			return out, err
		}
	}

	out.elapsed = time.Since(start)

	return out, nil
}

func writeRow(w io.Writer, cfg config, out outcome) error {
	if cfg.problem == problemMatchings {
		return report.WriteMatchingRow(w, report.MatchingRow{
			Size:            cfg.size,
			Degree:          cfg.degree,
			MaxFlow:         out.result.MaxFlow,
			AugmentingPaths: out.result.AugmentingPaths,
			Matchings:       len(out.matchings),
			Elapsed:         out.elapsed,
		})
	}

	return report.WriteFlowRow(w, report.FlowRow{
		Size:            cfg.size,
		MaxFlow:         out.result.MaxFlow,
		AugmentingPaths: out.result.AugmentingPaths,
		Elapsed:         out.elapsed,
	})
}

func writeModel(path string, n *residual.Network, withMatchings bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("glpk: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("glpk: %w", cerr)
		}
	}()

	if err = report.WriteJuMPModel(f, n, withMatchings); err != nil {
		return fmt.Errorf("glpk: %w", err)
	}

	return nil
}
