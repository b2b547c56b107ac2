// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package harness runs scripted container checks: named cases whose printed
// output is compared with a literal expectation, and cases that must fail.
//
// A suite stops at its first failing case; the remaining cases are reported
// as skipped.
package harness

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Status is the outcome of one case.
type Status string

const (
	Passed  Status = "passed"
	Failed  Status = "failed"
	Skipped Status = "skipped"
)

// Result records one case.
type Result struct {
	Number   int           `json:"number"`
	Name     string        `json:"name"`
	Status   Status        `json:"status"`
	Expected string        `json:"expected,omitempty"`
	Got      string        `json:"got,omitempty"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Report summarizes a finished suite.
type Report struct {
	Suite   string   `json:"suite"`
	Results []Result `json:"results"`
}

// Passed reports whether no case of the suite failed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if res.Status == Failed {
			return false
		}
	}
	return true
}

// Count returns the number of cases with the given status.
func (r Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Option configures a Suite.
type Option func(*Suite)

// WithOutput directs the progress transcript to w. The default discards it.
func WithOutput(w io.Writer) Option {
	return func(s *Suite) { s.out = w }
}

// WithColor enables or disables styled output.
func WithColor(on bool) Option {
	return func(s *Suite) { s.color = on }
}

// WithLogger logs case outcomes to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *Suite) { s.log = l }
}

// Suite runs the cases of one named script.
type Suite struct {
	out    io.Writer
	color  bool
	log    *zap.Logger
	styles styles

	name    string
	results []Result
	failed  bool
}

// New returns a suite runner. Call Start before the first case.
func New(opts ...Option) *Suite {
	s := &Suite{out: io.Discard, color: true, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.styles = newStyles(s.out, s.color)
	return s
}

type styles struct {
	suite, number, name, pass, fail, want, got, plain lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		suite:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		number: r.NewStyle().Foreground(lipgloss.Color("5")),
		name:   r.NewStyle().Underline(true).Foreground(lipgloss.Color("6")),
		pass:   r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		want:   r.NewStyle().Foreground(lipgloss.Color("2")),
		got:    r.NewStyle().Foreground(lipgloss.Color("1")),
		plain:  r.NewStyle(),
	}
}

func (s *Suite) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Suite) delimiter() {
	s.printf("%s\n", strings.Repeat("-", 53))
}

// Start begins the suite called name, discarding earlier results.
func (s *Suite) Start(name string) {
	s.name = name
	s.results = nil
	s.failed = false
	s.printf("\nRunning suite %s...\n", s.styles.suite.Render(name))
	s.delimiter()
	s.log.Debug("suite started", zap.String("suite", name))
}

// Name returns the name given to Start.
func (s *Suite) Name() string { return s.name }

// begin numbers a new case. It reports false when the suite already failed.
func (s *Suite) begin(name string) (*Result, bool) {
	s.results = append(s.results, Result{Number: len(s.results) + 1, Name: name})
	r := &s.results[len(s.results)-1]
	if s.failed {
		r.Status = Skipped
		return r, false
	}
	s.printf("Running %s (%s)...\n",
		s.styles.number.Render(fmt.Sprintf("test #%d", r.Number)), s.styles.name.Render(name))
	return r, true
}

// call runs op, turning a panic into an error.
func call(op func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = errors.Wrap(e, "panic")
			} else {
				err = errors.Newf("panic: %v", p)
			}
		}
	}()
	return op()
}

// Case runs op with a fresh buffer and passes when op succeeds and wrote
// exactly expected.
func (s *Suite) Case(name string, op func(w io.Writer) error, expected string) bool {
	r, ok := s.begin(name)
	if !ok {
		return false
	}
	var buf bytes.Buffer
	start := time.Now()
	err := call(func() error { return op(&buf) })
	r.Elapsed = time.Since(start)
	r.Expected, r.Got = expected, buf.String()

	switch {
	case err != nil:
		r.Error = err.Error()
		s.printf("%s Caught unexpected error %q.\n", s.styles.fail.Render("Failed!"), r.Error)
		s.fail(r)
	case r.Got != expected:
		s.printf("%s Expected %s, got %s.\n", s.styles.fail.Render("Failed!"),
			s.styles.want.Render(fmt.Sprintf("%q", expected)), s.styles.got.Render(fmt.Sprintf("%q", r.Got)))
		s.fail(r)
	default:
		s.printf("%s %q.\n",
			s.styles.pass.Render(fmt.Sprintf("Test #%d passed! Expected and got", r.Number)), expected)
		s.pass(r)
	}
	return r.Status == Passed
}

// ExpectFailure runs op and passes when it returns an error or panics.
func (s *Suite) ExpectFailure(name string, op func() error) bool {
	r, ok := s.begin(name)
	if !ok {
		return false
	}
	start := time.Now()
	err := call(op)
	r.Elapsed = time.Since(start)

	if err == nil {
		s.printf("%s No error caught.\n", s.styles.fail.Render("Failed!"))
		s.fail(r)
		return false
	}
	r.Error = err.Error()
	s.printf("%s %q.\n",
		s.styles.pass.Render(fmt.Sprintf("Test #%d passed! Caught an error", r.Number)), r.Error)
	s.pass(r)
	return true
}

func (s *Suite) pass(r *Result) {
	r.Status = Passed
	s.delimiter()
	s.log.Debug("case passed",
		zap.String("suite", s.name),
		zap.Int("number", r.Number),
		zap.String("case", r.Name),
		zap.Duration("elapsed", r.Elapsed),
	)
}

func (s *Suite) fail(r *Result) {
	r.Status = Failed
	s.failed = true
	s.delimiter()
	s.printf("Terminating suite %s on %s...\n",
		s.styles.suite.Render(s.name), s.styles.number.Render(fmt.Sprintf("test #%d", r.Number)))
	s.log.Warn("case failed",
		zap.String("suite", s.name),
		zap.Int("number", r.Number),
		zap.String("case", r.Name),
		zap.String("expected", r.Expected),
		zap.String("got", r.Got),
		zap.String("error", r.Error),
	)
}

// Finish closes the suite and returns its report.
func (s *Suite) Finish() Report {
	rep := Report{Suite: s.name, Results: s.results}
	n := rep.Count(Passed)
	switch {
	case s.failed:
	case n == 0:
		s.printf("%s\n\n", s.styles.pass.Render("Empty suite completed!"))
	default:
		plural := "s"
		if n == 1 {
			plural = ""
		}
		s.printf("%s\n\n", s.styles.pass.Render(fmt.Sprintf("%d test%s from suite %s passed!", n, plural, s.name)))
	}
	s.log.Info("suite finished",
		zap.String("suite", s.name),
		zap.Int("passed", n),
		zap.Int("failed", rep.Count(Failed)),
		zap.Int("skipped", rep.Count(Skipped)),
	)
	return rep
}
