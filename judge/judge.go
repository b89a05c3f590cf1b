package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpuzzle/catalog"
	"github.com/katalvlaran/lvpuzzle/problem"
)

// Judge runs suites against a catalog.
type Judge struct {
	opts Options
	log  *zap.Logger
}

// New returns a Judge configured by opts on top of DefaultOptions.
func New(opts ...Option) *Judge {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}

	return &Judge{opts: o, log: o.Logger}
}

// Options returns the effective configuration.
func (j *Judge) Options() Options { return j.opts }

// job is one case bound to the slot its result goes to.
type job struct {
	suite   int
	index   int
	problem problem.Problem
	c       Case
}

// Run judges every case of suites. Suites that are invalid or name an unknown
// problem yield IER for each of their cases instead of failing the run.
//
// The returned error is non-nil only when ctx ends before every case ran;
// the report is still returned, with unfinished cases marked IER.
func (j *Judge) Run(ctx context.Context, suites ...*Suite) (*Report, error) {
	rep := &Report{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		Suites:    make([]SuiteResult, len(suites)),
		Totals:    make(map[Verdict]int),
	}
	log := j.log.With(zap.String("run", rep.ID.String()))

	var jobs []job
	for si, s := range suites {
		sr := &rep.Suites[si]
		sr.Path = s.Path
		sr.Problem = s.Problem
		sr.Results = make([]Result, len(s.Cases))
		for ci, c := range s.Cases {
			sr.Results[ci].Case = c.Name
		}

		p, err := j.resolve(s)
		if err != nil {
			log.Warn("suite not runnable", zap.String("suite", s.label()), zap.Error(err))
			for ci := range sr.Results {
				sr.Results[ci].Verdict = InternalError
				sr.Results[ci].Message = err.Error()
			}
			continue
		}
		sr.ID = p.ID
		sr.Problem = p.Meta.String()
		for ci, c := range s.Cases {
			jobs = append(jobs, job{suite: si, index: ci, problem: p, c: c})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.opts.Parallelism)
	for _, jb := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res := j.runCase(gctx, jb.problem, jb.c)
			rep.Suites[jb.suite].Results[jb.index] = res
			log.Debug("case judged",
				zap.Int("problem", jb.problem.ID),
				zap.String("case", res.Case),
				zap.String("verdict", string(res.Verdict)),
				zap.Duration("elapsed", res.Elapsed))
			return nil
		})
	}
	_ = g.Wait()

	for si := range rep.Suites {
		for ci := range rep.Suites[si].Results {
			r := &rep.Suites[si].Results[ci]
			if r.Verdict == "" {
				r.Verdict = InternalError
				r.Message = "not run"
				if cause := context.Cause(ctx); cause != nil {
					r.Message += ": " + cause.Error()
				}
			}
			rep.Totals[r.Verdict]++
		}
	}
	rep.Elapsed = time.Since(rep.StartedAt)

	fields := []zap.Field{zap.Int("suites", len(suites)), zap.Int("cases", rep.Total()), zap.Duration("elapsed", rep.Elapsed)}
	for _, v := range Verdicts {
		if n := rep.Totals[v]; n > 0 {
			fields = append(fields, zap.Int(string(v), n))
		}
	}
	log.Info("run finished", fields...)

	return rep, ctx.Err()
}

func (j *Judge) resolve(s *Suite) (problem.Problem, error) {
	if err := s.Validate(); err != nil {
		return problem.Problem{}, err
	}

	return j.opts.Catalog.Lookup(s.Problem)
}

// outcome of one solver call
type outcome struct {
	got      any
	err      error
	panicked any
}

// runCase judges one case. A solver that exceeds the timeout is abandoned;
// it keeps running in its goroutine until it returns.
func (j *Judge) runCase(ctx context.Context, p problem.Problem, c Case) Result {
	res := Result{Case: c.Name}

	args := make([]json.RawMessage, len(c.Args))
	for i, a := range c.Args {
		b, err := json.Marshal(a)
		if err != nil {
			res.Verdict = InternalError
			res.Message = fmt.Sprintf("argument %d: %v", i, err)
			return res
		}
		args[i] = b
	}

	cctx, cancel := context.WithTimeout(ctx, j.opts.Timeout)
	defer cancel()

	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{panicked: r}
			}
		}()
		got, err := p.Solve(args)
		done <- outcome{got: got, err: err}
	}()

	var o outcome
	select {
	case o = <-done:
		res.Elapsed = time.Since(start)
	case <-cctx.Done():
		res.Elapsed = time.Since(start)
		if ctx.Err() != nil {
			res.Verdict = InternalError
			res.Message = "not finished: " + ctx.Err().Error()
		} else {
			res.Verdict = TimeLimit
			res.Message = fmt.Sprintf("exceeded %s", j.opts.Timeout)
		}
		return res
	}

	switch {
	case o.panicked != nil:
		res.Verdict = RuntimeError
		res.Message = fmt.Sprintf("panic: %v", o.panicked)
	case o.err != nil && c.WantError:
		res.Verdict = Accepted
		res.Message = o.err.Error()
	case o.err != nil:
		res.Verdict = RuntimeError
		res.Message = o.err.Error()
	case c.WantError:
		res.Verdict = WrongAnswer
		res.Got = o.got
		res.Message = "expected the input to be rejected"
	default:
		res.Got = o.got
		unordered := p.Unordered
		if c.Unordered != nil {
			unordered = *c.Unordered
		}
		ok, diff, err := compare(o.got, c.Want, unordered, p.Nested)
		switch {
		case err != nil:
			res.Verdict = InternalError
			res.Message = err.Error()
		case ok:
			res.Verdict = Accepted
		default:
			res.Verdict = WrongAnswer
			res.Message = diff
		}
	}

	return res
}

// IsSuiteError reports whether err comes from loading or validating suites.
func IsSuiteError(err error) bool {
	return errors.Is(err, ErrInvalidSuite) || errors.Is(err, ErrNoCases) || errors.Is(err, ErrUnsupportedFormat)
}
