// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"code.hybscloud.com/vec/internal/harness"
)

func TestSuitePasses(t *testing.T) {
	var out bytes.Buffer
	s := harness.New(harness.WithOutput(&out), harness.WithColor(false))
	s.Start("demo")
	assert.Equal(t, "demo", s.Name())

	assert.True(t, s.Case("prints", func(w io.Writer) error {
		fmt.Fprint(w, "a b ")
		return nil
	}, "a b "))
	assert.True(t, s.ExpectFailure("fails", func() error {
		return errors.New("boom")
	}))
	rep := s.Finish()

	assert.True(t, rep.Passed())
	assert.Equal(t, "demo", rep.Suite)
	assert.Equal(t, 2, rep.Count(harness.Passed))
	assert.Equal(t, "boom", rep.Results[1].Error)

	transcript := out.String()
	assert.Contains(t, transcript, "Running suite demo...")
	assert.Contains(t, transcript, "Running test #1 (prints)...")
	assert.Contains(t, transcript, `Test #1 passed! Expected and got "a b ".`)
	assert.Contains(t, transcript, `Test #2 passed! Caught an error "boom".`)
	assert.Contains(t, transcript, "2 tests from suite demo passed!")
	assert.Contains(t, transcript, strings.Repeat("-", 53))
}

func TestSuiteStopsAtFirstFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	var out bytes.Buffer
	s := harness.New(harness.WithOutput(&out), harness.WithColor(false), harness.WithLogger(zap.New(core)))
	s.Start("broken")

	s.Case("ok", func(io.Writer) error { return nil }, "")
	assert.False(t, s.Case("mismatch", func(w io.Writer) error {
		fmt.Fprint(w, "got")
		return nil
	}, "want"))
	ran := false
	assert.False(t, s.Case("after", func(io.Writer) error {
		ran = true
		return nil
	}, ""))
	assert.False(t, s.ExpectFailure("after too", func() error { return errors.New("x") }))
	rep := s.Finish()

	assert.False(t, ran)
	assert.False(t, rep.Passed())
	assert.Equal(t, 1, rep.Count(harness.Passed))
	assert.Equal(t, 1, rep.Count(harness.Failed))
	assert.Equal(t, 2, rep.Count(harness.Skipped))
	assert.Equal(t, "want", rep.Results[1].Expected)
	assert.Equal(t, "got", rep.Results[1].Got)

	transcript := out.String()
	assert.Contains(t, transcript, `Failed! Expected "want", got "got".`)
	assert.Contains(t, transcript, "Terminating suite broken on test #2...")
	assert.NotContains(t, transcript, "passed!\n\n")

	warnings := logs.FilterMessage("case failed").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "mismatch", warnings[0].ContextMap()["case"])
	assert.Equal(t, 1, logs.FilterMessage("suite finished").Len())
}

func TestSuiteErrorsAndPanics(t *testing.T) {
	s := harness.New()
	s.Start("errors")
	assert.False(t, s.Case("error", func(io.Writer) error { return errors.New("nope") }, ""))
	rep := s.Finish()
	assert.Equal(t, "nope", rep.Results[0].Error)

	s.Start("panics")
	assert.True(t, s.ExpectFailure("panic value", func() error { panic("index out of range") }))
	assert.True(t, s.ExpectFailure("panic error", func() error { panic(errors.New("bad")) }))
	rep = s.Finish()
	assert.True(t, rep.Passed())
	assert.Contains(t, rep.Results[0].Error, "index out of range")
	assert.Contains(t, rep.Results[1].Error, "bad")

	s.Start("no failure")
	assert.False(t, s.ExpectFailure("quiet", func() error { return nil }))
	assert.False(t, s.Finish().Passed())
}

func TestEmptySuite(t *testing.T) {
	var out bytes.Buffer
	s := harness.New(harness.WithOutput(&out), harness.WithColor(false))
	s.Start("empty")
	rep := s.Finish()
	assert.True(t, rep.Passed())
	assert.Contains(t, out.String(), "Empty suite completed!")
}

func TestReportJSON(t *testing.T) {
	s := harness.New()
	s.Start("json")
	s.Case("one", func(w io.Writer) error {
		fmt.Fprint(w, "1")
		return nil
	}, "1")
	b, err := json.Marshal(s.Finish())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "json", got["suite"])
	results := got["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "passed", results[0].(map[string]any)["status"])
}
