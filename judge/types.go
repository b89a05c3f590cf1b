package judge

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/catalog"
)

// Sentinel errors returned by the judge.
var (
	// ErrNoCases indicates a suite, file or directory without any case.
	ErrNoCases = errors.New("judge: no cases")

	// ErrUnsupportedFormat indicates a suite file with an unknown extension.
	ErrUnsupportedFormat = errors.New("judge: unsupported suite format")

	// ErrInvalidSuite indicates a suite that fails validation or cannot be parsed.
	ErrInvalidSuite = errors.New("judge: invalid suite")

	// ErrBadParallelism indicates a parallelism below one.
	ErrBadParallelism = errors.New("judge: parallelism must be at least 1")

	// ErrBadTimeout indicates a non-positive case timeout.
	ErrBadTimeout = errors.New("judge: timeout must be positive")
)

// Verdict is the outcome of one case.
type Verdict string

// Verdicts, in the order they are reported.
const (
	Accepted      Verdict = "AC"
	WrongAnswer   Verdict = "WA"
	RuntimeError  Verdict = "RTE"
	TimeLimit     Verdict = "TLE"
	InternalError Verdict = "IER"
)

// Verdicts lists every verdict in report order.
var Verdicts = []Verdict{Accepted, WrongAnswer, RuntimeError, TimeLimit, InternalError}

// Result is the outcome of one case.
type Result struct {
	Case    string        `json:"case"`
	Verdict Verdict       `json:"verdict"`
	Elapsed time.Duration `json:"elapsed"`
	Message string        `json:"message,omitempty"`
	Got     any           `json:"got,omitempty"`
}

// SuiteResult holds the results of one suite in case order.
type SuiteResult struct {
	Path    string   `json:"path,omitempty"`
	Problem string   `json:"problem"`
	ID      int      `json:"id,omitempty"`
	Results []Result `json:"results"`
}

// Report is the outcome of one Run.
type Report struct {
	ID        uuid.UUID       `json:"id"`
	StartedAt time.Time       `json:"started_at"`
	Elapsed   time.Duration   `json:"elapsed"`
	Suites    []SuiteResult   `json:"suites"`
	Totals    map[Verdict]int `json:"totals"`
}

// Total returns the number of judged cases.
func (r *Report) Total() int {
	n := 0
	for _, c := range r.Totals {
		n += c
	}

	return n
}

// Passed reports whether every case was accepted.
func (r *Report) Passed() bool {
	return r.Totals[Accepted] == r.Total()
}

// Options configures a Judge.
//
// Parallelism – maximum number of cases running at once. Must be ≥ 1.
// Timeout     – wall-clock limit per case. Must be > 0.
// Logger      – receives per-case debug lines and per-run summaries.
// Catalog     – resolves suite problem keys.
type Options struct {
	Parallelism int
	Timeout     time.Duration
	Logger      *zap.Logger
	Catalog     *catalog.Catalog
}

// Option represents a functional option for configuring a Judge.
type Option func(*Options)

// WithParallelism bounds the number of concurrently running cases.
// Panics with ErrBadParallelism when n < 1.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadParallelism.Error())
		}
		o.Parallelism = n
	}
}

// WithTimeout sets the per-case time limit.
// Panics with ErrBadTimeout when d <= 0.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadTimeout.Error())
		}
		o.Timeout = d
	}
}

// WithLogger sets the logger. A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCatalog resolves problems from c instead of catalog.Default().
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *Options) {
		o.Catalog = c
	}
}

// DefaultOptions returns the defaults:
//   - Parallelism: 4
//   - Timeout:     2s
//   - Logger:      zap.NewNop()
//   - Catalog:     nil, meaning catalog.Default() at New
func DefaultOptions() Options {
	return Options{
		Parallelism: 4,
		Timeout:     2 * time.Second,
		Logger:      zap.NewNop(),
	}
}
