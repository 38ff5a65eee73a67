package gridnav

import (
	"fmt"
	"time"
)

// AgentStatus tracks the executor state machine:
// planning -> moving -> (replanning -> moving)* -> succeeded | failed.
type AgentStatus int

const (
	StatusPlanning AgentStatus = iota
	StatusMoving
	StatusReplanning
	StatusSucceeded
	StatusFailed
)

func (s AgentStatus) String() string {
	return [...]string{"planning", "moving", "replanning", "succeeded", "failed"}[s]
}

// Agent drives a position stepwise along a committed path, advancing the
// environment clock one tick per executed move and replanning through its
// planner whenever the next waypoint is blocked at the current tick. All
// plan state lives here; the environment is only ever read, except for the
// clock advance between steps.
type Agent struct {
	env     TickingEnvironment
	planner Planner

	pos       Position
	goal      Position
	path      []Position
	pathIndex int

	totalCost    float64
	elapsedTicks int
	replans      int
	status       AgentStatus
	searches     []Result
}

// AgentStats aggregates a finished (or in-flight) navigation.
type AgentStats struct {
	Algorithm      string
	TotalCost      float64
	ElapsedTicks   int
	Replans        int
	NodesExpanded  int
	SearchDuration time.Duration
	Searches       []Result
}

// NewAgent constructs an agent at start using the named algorithm. An
// unknown algorithm name fails construction.
func NewAgent(env TickingEnvironment, algorithm string, start Position, options ...Option) (*Agent, error) {
	planner, err := New(algorithm, env, options...)
	if err != nil {
		return nil, fmt.Errorf("new agent: %w", err)
	}
	return &Agent{
		env:     env,
		planner: planner,
		pos:     start,
		status:  StatusPlanning,
	}, nil
}

// Position returns the agent's current position.
func (a *Agent) Position() Position { return a.pos }

// Status returns the executor's current state.
func (a *Agent) Status() AgentStatus { return a.status }

// Replans returns how many times the committed path was invalidated.
func (a *Agent) Replans() int { return a.replans }

// Path returns the currently committed path.
func (a *Agent) Path() []Position { return a.path }

// Stats summarizes accumulated cost, ticks, and search work.
func (a *Agent) Stats() AgentStats {
	stats := AgentStats{
		Algorithm:    a.planner.Name(),
		TotalCost:    a.totalCost,
		ElapsedTicks: a.elapsedTicks,
		Replans:      a.replans,
		Searches:     a.searches,
	}
	for _, search := range a.searches {
		stats.NodesExpanded += search.ExpandedNodes
		stats.SearchDuration += search.Duration
	}
	return stats
}

// NavigateTo plans toward goal and executes the plan one tick at a time,
// replanning as needed. It returns true once the agent stands on the goal;
// false when planning fails or the step budget runs out. The budget is the
// only cancellation mechanism and is checked between ticks, never inside a
// search.
func (a *Agent) NavigateTo(goal Position, maxSteps int) bool {
	a.goal = goal
	a.status = StatusPlanning
	if !a.plan() {
		a.status = StatusFailed
		return false
	}
	if a.pos == goal {
		a.status = StatusSucceeded
		return true
	}
	a.status = StatusMoving

	for steps := 0; a.status == StatusMoving && steps < maxSteps; steps++ {
		a.Step()
	}
	if a.status == StatusMoving {
		// Budget exhausted mid-route.
		a.status = StatusFailed
	}
	return a.status == StatusSucceeded
}

// Step advances the executor by one transition: either one executed move or
// one replanning event. It is a no-op once a terminal state is reached.
func (a *Agent) Step() {
	if a.status != StatusMoving && a.status != StatusReplanning {
		return
	}
	if a.pathIndex >= len(a.path) {
		a.status = StatusFailed
		return
	}

	next := a.path[a.pathIndex]
	if !a.env.PassableAt(next, a.env.Now()) {
		a.replans++
		a.status = StatusReplanning
		if !a.plan() {
			a.status = StatusFailed
			return
		}
		a.status = StatusMoving
		return
	}

	a.pos = next
	a.pathIndex++
	a.totalCost += a.env.TerrainCost(next)
	a.env.Advance()
	a.elapsedTicks++

	if a.pos == a.goal {
		a.status = StatusSucceeded
	}
}

// plan invokes the configured planner from the current position at the
// current tick and commits the result. The leading waypoint is skipped when
// it is the position the agent already occupies.
func (a *Agent) plan() bool {
	result := a.planner.FindPath(a.pos, a.goal, a.env.Now())
	a.searches = append(a.searches, result)
	if !result.Found {
		return false
	}
	a.path = result.Path
	a.pathIndex = 0
	if len(a.path) > 0 && a.path[0] == a.pos {
		a.pathIndex = 1
	}
	return true
}
