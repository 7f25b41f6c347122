package crucible

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by Search and SearchContext.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrInvalidBounds indicates negative run bounds or MinRun > MaxRun.
	ErrInvalidBounds = errors.New("crucible: invalid run bounds")

	// ErrOutOfBounds indicates an origin or destination outside the grid or on a wall.
	ErrOutOfBounds = errors.New("crucible: cell is outside the grid or impassable")

	// ErrBadBudget indicates a negative MaxCost or MaxExpansions.
	ErrBadBudget = errors.New("crucible: budgets must be non-negative")
)

// Direction is the heading of the last move. None marks the origin state,
// before any move was made.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
)

// Headings lists the four compass directions in the order successors are generated.
var Headings = [4]Direction{North, East, South, West}

// Opposite returns the reversed heading; None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// Delta returns the unit step of d. Y grows to the south.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "-"
	}
}

// State is the identity of a search node: where the mover is, which way it
// last moved and how many consecutive steps it has taken that way.
// Run is 0 exactly when Dir is None. State is comparable and used as a map key.
type State struct {
	Pos gridgraph.Cell
	Dir Direction
	Run int
}

// Move is a legal successor state paired with the cost of entering it.
type Move struct {
	To   State
	Cost int
}

// Status is a phase of the search state machine.
type Status int

const (
	// Initialized: options validated and the frontier seeded.
	Initialized Status = iota
	// Running: extracting and relaxing states.
	Running
	// Solved: the destination was finalized with a completed minimum run.
	Solved
	// Exhausted: the frontier emptied first; no legal path exists.
	Exhausted
	// Aborted: the expansion budget ran out or the context was cancelled.
	Aborted
)

func (s Status) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the terminal outcome of one query.
//
// Cost is meaningful only when Status == Solved. Path is the sequence of
// cells from origin to destination inclusive and is filled only when
// WithReturnPath was given. Expanded counts finalized states.
type Result struct {
	Status   Status
	Cost     int
	Path     []gridgraph.Cell
	Expanded int
}

// Reachable reports whether the query found a path.
func (r Result) Reachable() bool { return r.Status == Solved }

// Options configures a query.
//
// Origin, Destination – endpoints; Destination defaults to the grid's bottom-right cell.
// MinRun, MaxRun      – inclusive run-length bounds, 0 ≤ MinRun ≤ MaxRun.
// MaxCost             – states whose cumulative cost would exceed MaxCost are never relaxed.
//
//	Default is math.MaxInt (no cap).
//
// MaxExpansions       – stop with Aborted after this many finalized states; 0 means unlimited.
// ReturnPath          – reconstruct Result.Path.
// OnFinalize          – called once per finalized state with its cumulative cost.
// Logger              – receives one debug record per finished query; nil disables logging.
type Options struct {
	Origin        gridgraph.Cell
	Destination   gridgraph.Cell
	MinRun        int
	MaxRun        int
	MaxCost       int
	MaxExpansions int
	ReturnPath    bool
	OnFinalize    func(s State, cost int)
	Logger        *slog.Logger

	destinationSet bool
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// From sets the origin cell.
func From(x, y int) Option {
	return func(o *Options) {
		o.Origin = gridgraph.Cell{X: x, Y: y}
	}
}

// To sets the destination cell. Without it the bottom-right cell is used.
func To(x, y int) Option {
	return func(o *Options) {
		o.Destination = gridgraph.Cell{X: x, Y: y}
		o.destinationSet = true
	}
}

// WithRunBounds sets MinRun and MaxRun. Bounds are validated by Search.
func WithRunBounds(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// Crucible selects the basic discipline: turn any time, at most 3 straight.
func Crucible() Option { return WithRunBounds(1, 3) }

// UltraCrucible selects the strict discipline: at least 4, at most 10 straight.
func UltraCrucible() Option { return WithRunBounds(4, 10) }

// WithMaxCost caps cumulative cost; states above the cap are not explored.
func WithMaxCost(c int) Option {
	return func(o *Options) {
		o.MaxCost = c
	}
}

// WithMaxExpansions bounds the number of finalized states.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithReturnPath enables path reconstruction in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnFinalize registers a hook called for every finalized state.
func WithOnFinalize(fn func(s State, cost int)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Origin:        (0,0).
//   - Destination:   bottom-right cell of the searched grid.
//   - MinRun/MaxRun: 1 / 3.
//   - MaxCost:       math.MaxInt.
//   - MaxExpansions: 0 (unlimited).
//   - ReturnPath:    false.
func DefaultOptions() Options {
	return Options{
		MinRun:  1,
		MaxRun:  3,
		MaxCost: math.MaxInt,
	}
}
