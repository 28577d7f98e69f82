package flow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrSourceNotFound is returned when the source index is outside the network.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the sink index is outside the network.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// FlowOptions configures all max-flow algorithms.
//   - Ctx: checked once per phase and once per augmentation; nil means
//     context.Background().
//   - Logger: receives Debug summaries and Trace per-path events; nil
//     disables logging.
type FlowOptions struct {
	Ctx    context.Context
	Logger *zerolog.Logger
}

// DefaultOptions returns options with a background context and logging off.
func DefaultOptions() FlowOptions {
	nop := zerolog.Nop()

	return FlowOptions{
		Ctx:    context.Background(),
		Logger: &nop,
	}
}

// normalize fills unset fields with their defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
}

// Result is the outcome of a max-flow computation.
type Result struct {
	// MaxFlow is the total flow pushed from source to sink.
	MaxFlow int64
	// AugmentingPaths counts the augmentations performed.
	AugmentingPaths int
}

// Pair is a matched (left, right) vertex pair with U < V.
type Pair struct {
	U, V int
}

// arcRef addresses an arc by its tail vertex and position.
type arcRef struct {
	vertex int
	arc    int
}

// noArc marks an arcRef that points nowhere.
const noArc = -1
