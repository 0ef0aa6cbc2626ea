package solver

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wfc/catalog"
)

// Outcome is the result of one Run call.
type Outcome int

const (
	// Incomplete means the step budget ran out with cells still undecided.
	Incomplete Outcome = iota
	// Success means every cell is decided.
	Success
	// Contradiction means some cell has no possible pattern; terminal for the seed.
	Contradiction
)

func (o Outcome) String() string {
	switch o {
	case Incomplete:
		return "incomplete"
	case Success:
		return "success"
	case Contradiction:
		return "contradiction"
	}
	return "unknown"
}

// State is the Model's lifecycle position.
type State int

const (
	StateReady State = iota
	StateRunning
	StateSuccess
	StateContradiction
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateSuccess:
		return "success"
	case StateContradiction:
		return "contradiction"
	}
	return "unknown"
}

// Budget bounds the number of collapses a single Run may perform.
type Budget struct {
	steps   int
	bounded bool
}

// Unbounded runs until Success or Contradiction.
func Unbounded() Budget { return Budget{} }

// Steps allows at most n collapses; n <= 0 only reports the current outcome.
func Steps(n int) Budget {
	if n < 0 {
		n = 0
	}
	return Budget{steps: n, bounded: true}
}

// Bounded reports whether the budget has a limit, and the limit.
func (b Budget) Bounded() (int, bool) { return b.steps, b.bounded }

// Sample is the content of one output position.
type Sample struct {
	// Pattern is the decided pattern of the cell covering the position.
	Pattern int
	// Tile is the tile the pattern places at the position.
	Tile catalog.Tile
	// Resolved is false while the covering cell is undecided; the other fields are zero then.
	Resolved bool
}

// Options configures a Model.
type Options struct {
	// Periodic wraps the output at its edges.
	Periodic bool
	// Logger receives lifecycle entries (reseed, success, contradiction, clear)
	// with their seed, step and position fields.
	Logger logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// WithPeriodic sets output wrapping.
func WithPeriodic(periodic bool) Option {
	return func(o *Options) {
		o.Periodic = periodic
	}
}

// WithLogger routes lifecycle lines to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns a non-periodic, silent configuration.
func DefaultOptions() Options {
	return Options{
		Periodic: false,
		Logger:   discard(),
	}
}

func discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
