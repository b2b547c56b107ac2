// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/vec"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "vecdbg",
	Short: "Run the scripted container suites",
	Long: `vecdbg runs scripted checks of the vec containers: growable vectors,
fixed arrays over embedded and heap storage, and packed bit containers.
Each case prints what it observed and is compared with a literal expectation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		vec.SetLogger(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log storage tracing and case outcomes")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output reports in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns a development logger with --verbose and a no-op
// logger otherwise.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
