package gridnav

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Position is a cell on the grid. It is a plain value; the search layer
// never owns or mutates grid state.
type Position struct {
	X, Y int
}

// Environment is the read-only contract every planner consumes. The
// time-parameterized queries account for moving obstacles; the plain forms
// consider static obstacles only.
type Environment interface {
	Neighbors(pos Position) []Position
	NeighborsAt(pos Position, tick int) []Position
	Passable(pos Position) bool
	PassableAt(pos Position, tick int) bool
	TerrainCost(pos Position) float64
	Now() int
}

// TickingEnvironment extends Environment with the single mutation the
// engine ever performs: advancing the shared clock between executed steps.
// The Agent is the only writer.
type TickingEnvironment interface {
	Environment
	Advance()
}

// Heuristic returns the estimated cost from one position to another.
type Heuristic func(from, to Position) float64

// Manhattan is the default heuristic: sum of absolute coordinate
// differences. Admissible on a 4-connected grid with costs >= 1.
func Manhattan(from, to Position) float64 {
	return math.Abs(float64(from.X-to.X)) + math.Abs(float64(from.Y-to.Y))
}

// Euclidean is an alternative admissible heuristic; it estimates lower than
// Manhattan and so expands more nodes.
func Euclidean(from, to Position) float64 {
	dx := float64(from.X - to.X)
	dy := float64(from.Y - to.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Result contains the outcome of a search.
type Result struct {
	Path          []Position
	TotalCost     float64
	ExpandedNodes int
	Duration      time.Duration
	Found         bool
	Algorithm     string
}

// Planner is the uniform contract shared by all five algorithms. FindPath
// blocks until the search runs to completion; startTick anchors temporal
// queries and is ignored by the purely static planners.
type Planner interface {
	Name() string
	FindPath(start, goal Position, startTick int) Result
}

// Algorithm selectors accepted by New.
const (
	BFSName           = "bfs"
	UCSName           = "ucs"
	AStarName         = "astar"
	TemporalAStarName = "temporal_astar"
	HillClimbingName  = "hill_climbing"
)

// Options defines parameters for planner construction.
type Options struct {
	Heuristic   Heuristic
	Horizon     int
	MaxRestarts int
	Rand        *rand.Rand
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic overrides the default Manhattan heuristic for A* (and the
// hill-climbing baseline it feeds).
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithHorizon bounds how many ticks into the future temporal search will
// expand. Zero or negative keeps the default.
func WithHorizon(ticks int) Option {
	return func(options *Options) { options.Horizon = ticks }
}

// WithMaxRestarts sets the number of perturb-and-climb rounds hill climbing
// performs after its A* baseline.
func WithMaxRestarts(restarts int) Option {
	return func(options *Options) { options.MaxRestarts = restarts }
}

// WithSeed makes hill climbing's randomized perturbation reproducible.
func WithSeed(seed int64) Option {
	return func(options *Options) { options.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand injects a pseudo-random source directly; it takes precedence
// over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(options *Options) { options.Rand = rng }
}

const (
	defaultHorizon     = 50
	defaultMaxRestarts = 5
)

// New constructs a planner by selector name. An unknown name is a
// configuration error and fails construction; it is never defaulted.
func New(name string, env Environment, options ...Option) (Planner, error) {
	opts := Options{
		Heuristic:   Manhattan,
		Horizon:     defaultHorizon,
		MaxRestarts: defaultMaxRestarts,
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.Heuristic == nil {
		opts.Heuristic = Manhattan
	}
	if opts.Horizon <= 0 {
		opts.Horizon = defaultHorizon
	}
	if opts.MaxRestarts <= 0 {
		opts.MaxRestarts = defaultMaxRestarts
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch name {
	case BFSName:
		return &breadthFirst{env: env}, nil
	case UCSName:
		return &uniformCost{env: env}, nil
	case AStarName:
		return &aStar{env: env, heuristic: opts.Heuristic}, nil
	case TemporalAStarName:
		return &temporalAStar{env: env, horizon: opts.Horizon}, nil
	case HillClimbingName:
		return &hillClimbing{
			env:         env,
			base:        &aStar{env: env, heuristic: opts.Heuristic},
			maxRestarts: opts.MaxRestarts,
			rng:         opts.Rand,
		}, nil
	default:
		return nil, fmt.Errorf("gridnav: unknown algorithm %q", name)
	}
}

// failed builds the uniform unreachable-goal result: empty path, infinite
// cost, Found false.
func failed(algorithm string, expanded int, began time.Time) Result {
	return Result{
		TotalCost:     math.Inf(1),
		ExpandedNodes: expanded,
		Duration:      time.Since(began),
		Algorithm:     algorithm,
	}
}
