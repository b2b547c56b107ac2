// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"code.hybscloud.com/vec"
	"code.hybscloud.com/vec/internal/harness"
	"code.hybscloud.com/vec/internal/suites"
)

// errFailed reports that at least one case failed.
var errFailed = errors.New("vecdbg: suite failed")

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run suites, all of them by default",
		Long: `The run command runs the named suites in order, or every suite when
none is named. It exits non-zero when any case fails.

Example:
  vecdbg run
  vecdbg run iterator_tests bit_vector
  vecdbg run --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(cmd.OutOrStdout(), args)
		},
	}
}

func selectSuites(names []string) ([]suites.Entry, error) {
	if len(names) == 0 {
		return suites.All(), nil
	}
	entries := make([]suites.Entry, 0, len(names))
	for _, name := range names {
		e, ok := suites.Lookup(name)
		if !ok {
			return nil, errors.Newf("unknown suite %q", name)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func runSuites(w io.Writer, names []string) error {
	entries, err := selectSuites(names)
	if err != nil {
		return err
	}

	transcript := w
	if jsonOut {
		transcript = io.Discard
	}
	s := harness.New(
		harness.WithOutput(transcript),
		harness.WithColor(!noColor && !jsonOut),
		harness.WithLogger(vec.Logger()),
	)

	reports := make([]harness.Report, 0, len(entries))
	failed := 0
	for _, e := range entries {
		rep := e.Run(s)
		if !rep.Passed() {
			failed++
		}
		reports = append(reports, rep)
	}

	if jsonOut {
		if err := printJSON(w, reports); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Wrapf(errFailed, "%d of %d suites", failed, len(entries))
	}
	if !jsonOut {
		fmt.Fprintf(w, "All %d suites passed.\n", len(entries))
	}
	return nil
}
