package flow

import (
	"errors"
	"fmt"
	"math"
)

// Infinite is the capacity of an uncuttable edge.
var Infinite = math.Inf(1)

// ErrSourceNotFound is returned when the specified source node is missing.
var ErrSourceNotFound = errors.New("flow: source node not found")

// ErrSinkNotFound is returned when the specified sink node is missing.
var ErrSinkNotFound = errors.New("flow: sink node not found")

// ErrNodeCollision is returned when bipartite sides share a node or use
// a reserved pseudonode ID.
var ErrNodeCollision = errors.New("flow: bipartite node sets collide")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// Edge identifies a directed edge by its endpoints.
type Edge struct {
	From, To int
}

// Options configures FordFulkerson.
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Verbose: print each augmentation via fmt.Printf.
type Options struct {
	Epsilon float64
	Verbose bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9}
}

// normalize fills unset fields with defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}

// Result carries the outcome of one max-flow computation.
type Result struct {
	// Value is the total flow pushed from source to sink.
	Value float64

	// Flow maps each original edge to the flow routed through it.
	// Edges carrying no flow are present with value 0.
	Flow map[Edge]float64

	// MinCut is the source side of one minimum cut: every node still
	// reachable from the source in the residual network, source included.
	MinCut []int
}

// OnSourceSide reports whether node id ended up on the source side of
// the minimum cut.
func (r Result) OnSourceSide(id int) bool {
	for _, v := range r.MinCut {
		if v == id {
			return true
		}
	}

	return false
}
