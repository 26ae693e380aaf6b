// Package anneal: run states, configuration, results, and the unified
// sentinel error set.
//
// Every message is prefixed with "anneal: ..."; algorithms MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics on
// user input — configuration is validated by New before a run starts.
package anneal

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNilSet indicates a nil location set was passed to New or Solve.
	ErrNilSet = errors.New("anneal: nil location set")

	// ErrNilMatrix indicates a nil distance matrix was passed to New.
	ErrNilMatrix = errors.New("anneal: nil distance matrix")

	// ErrMatrixMismatch indicates the matrix order differs from the set size.
	ErrMatrixMismatch = errors.New("anneal: matrix order does not match location set")

	// ErrTooFewLocations is returned when the set holds fewer than two
	// locations; a tour needs at least two distinct points.
	ErrTooFewLocations = errors.New("anneal: at least two locations required")

	// ErrBadTemperature is returned when the initial or minimum temperature
	// is not strictly positive (NaN fails too).
	ErrBadTemperature = errors.New("anneal: temperatures must be positive")

	// ErrBadCoolingRate is returned when the geometric cooling rate lies
	// outside the open interval (0, 1).
	ErrBadCoolingRate = errors.New("anneal: cooling rate must lie in (0,1)")

	// ErrBadMaxSteps is returned when the step budget is not positive.
	ErrBadMaxSteps = errors.New("anneal: max steps must be positive")

	// ErrBadTimeBudget is returned for a negative wall-clock budget
	// (zero means unlimited).
	ErrBadTimeBudget = errors.New("anneal: time budget must be non-negative")

	// ErrBadRestarts is returned when Race is asked for fewer than one run.
	ErrBadRestarts = errors.New("anneal: restart count must be positive")

	// ErrAnchorNotFound indicates the requested anchor id is absent from the
	// tour. Under correct usage this is unreachable (the tour is a
	// permutation of the full id set); it surfaces a caller/engine contract
	// violation rather than being silently ignored.
	ErrAnchorNotFound = errors.New("anneal: anchor id not present in tour")
)

// State is the engine's lifecycle position. Converged and TimedOut are
// terminal; both yield the current tour as the result.
type State int

const (
	// Initializing: seed permutation built, initial energy computed,
	// temperature set to InitialTemperature.
	Initializing State = iota

	// Running: the propose/accept/cool loop is active.
	Running

	// Converged: the schedule exhausted itself — temperature fell below
	// MinTemperature or MaxSteps was reached.
	Converged

	// TimedOut: the external deadline fired first — TimeBudget elapsed or
	// the run context was cancelled.
	TimedOut
)

// String returns the state name for logs and test output.
func (s State) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Running:
		return "Running"
	case Converged:
		return "Converged"
	case TimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// Default schedule parameters. The temperature span and step budget follow
// the reference schedule for county-scale instances; callers tuning small
// instances should lower InitialTemperature accordingly.
const (
	DefaultInitialTemperature = 25000.0
	DefaultCoolingRate        = 0.9995
	DefaultMinTemperature     = 2.5
	DefaultMaxSteps           = 50000
)

// Options configures a single annealing run.
//
// InitialTemperature — starting temperature T₀; must be > 0.
// CoolingRate        — geometric decay factor α applied once per step; (0,1).
// MinTemperature     — temperature floor; falling below it means Converged.
// MaxSteps           — hard step budget; reaching it means Converged.
// TimeBudget         — optional wall-clock budget; exceeding it means
//
//	TimedOut. Zero disables the deadline.
//
// Seed               — RNG seed; 0 selects a fixed default stream so that
//
//	the zero value stays deterministic.
//
// AnchorID           — optional id rotated to position 0 of the final tour;
//
//	empty means "emit as annealed". Rotation never changes
//	the cyclic tour or its length.
//
// TrackBest          — retain a best-seen shadow tour alongside the final
//
//	annealed state. Never alters acceptance dynamics.
//
// Logger / LogEvery  — optional zap progress logging every LogEvery steps;
//
//	LogEvery 0 disables it. The engine never prints.
type Options struct {
	InitialTemperature float64
	CoolingRate        float64
	MinTemperature     float64
	MaxSteps           int
	TimeBudget         time.Duration
	Seed               int64
	AnchorID           string
	TrackBest          bool
	Logger             *zap.Logger
	LogEvery           int
}

// Option is a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns the documented defaults: the reference cooling
// schedule, no deadline, seed 0 (deterministic default stream), no anchor,
// no best tracking, and a nop logger.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
		MinTemperature:     DefaultMinTemperature,
		MaxSteps:           DefaultMaxSteps,
		TimeBudget:         0,
		Seed:               0,
		AnchorID:           "",
		TrackBest:          false,
		Logger:             zap.NewNop(),
		LogEvery:           0,
	}
}

// WithInitialTemperature sets T₀. Validated by New (ErrBadTemperature).
func WithInitialTemperature(t float64) Option {
	return func(o *Options) { o.InitialTemperature = t }
}

// WithCoolingRate sets the geometric decay factor α ∈ (0,1).
// Validated by New (ErrBadCoolingRate).
func WithCoolingRate(alpha float64) Option {
	return func(o *Options) { o.CoolingRate = alpha }
}

// WithMinTemperature sets the temperature floor.
// Validated by New (ErrBadTemperature).
func WithMinTemperature(t float64) Option {
	return func(o *Options) { o.MinTemperature = t }
}

// WithMaxSteps sets the hard step budget. Validated by New (ErrBadMaxSteps).
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithTimeBudget sets the wall-clock budget; zero disables the deadline.
// Validated by New (ErrBadTimeBudget).
func WithTimeBudget(d time.Duration) Option {
	return func(o *Options) { o.TimeBudget = d }
}

// WithSeed fixes the RNG seed. Seed 0 selects the default deterministic
// stream (see rng.go); any other value is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithAnchor designates the id rotated to the front of the final tour.
// New rejects anchors absent from the location set (ErrAnchorNotFound).
func WithAnchor(id string) Option {
	return func(o *Options) { o.AnchorID = id }
}

// WithTrackBest retains the best-seen tour across the run as a documented
// enhancement. Acceptance dynamics are unaffected; only the Result gains
// BestTour/BestLength.
func WithTrackBest() Option {
	return func(o *Options) { o.TrackBest = true }
}

// WithLogger installs a zap logger for progress reporting every n steps.
// A nil logger or n <= 0 keeps logging disabled.
func WithLogger(l *zap.Logger, n int) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
		o.LogEvery = n
	}
}

// Result is the structured outcome of a run: the final tour plus the run
// report that replaces any printed side effects.
type Result struct {
	// Tour is the final permutation of location ids, rotated to AnchorID
	// when one was configured.
	Tour []string

	// Length is the total cyclic tour length in miles under the distance
	// model, recomputed exactly at the end and stabilized to 1e-9.
	Length float64

	// State is the terminal state: Converged or TimedOut.
	State State

	// Steps counts executed annealing steps; Accepted counts committed
	// moves; Uphill counts accepted energy-increasing moves.
	Steps    int
	Accepted int
	Uphill   int

	// FinalTemp is the temperature at termination; Elapsed the wall time.
	FinalTemp float64
	Elapsed   time.Duration

	// EnergyMean and EnergyStd summarize the sampled energy trace of the
	// run (diagnostics for schedule tuning).
	EnergyMean float64
	EnergyStd  float64

	// BestTour/BestLength are populated only under WithTrackBest.
	BestTour   []string
	BestLength float64
}

// validateOptions checks configuration consistency with sentinels.
// Negated comparisons deliberately catch NaN parameters.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if !(o.InitialTemperature > 0) || !(o.MinTemperature > 0) {
		return ErrBadTemperature
	}
	if !(o.CoolingRate > 0 && o.CoolingRate < 1) {
		return ErrBadCoolingRate
	}
	if o.MaxSteps <= 0 {
		return ErrBadMaxSteps
	}
	if o.TimeBudget < 0 {
		return ErrBadTimeBudget
	}

	return nil
}
