// Copyright 2026 The Protols Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command protols-lint walks one or more directories of .proto files,
// builds a workspace over them, and prints every diagnostic the validator
// reports, exiting non-zero if any have error severity.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DrBlury/protols/internal/protolslint"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath  string
		errorFormat string
		verbose     bool
	)
	cmd := &cobra.Command{
		Use:   "protols-lint <path...>",
		Short: "Check protobuf sources for structural and reference errors.",
		Long:  "protols-lint parses and analyzes one or more directories of .proto files, reporting syntax, tag-number, naming, reference, import, and deprecation diagnostics without needing a compiled descriptor set.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if errorFormat != "text" && errorFormat != "json" {
				return fmt.Errorf("--error-format must be one of [text, json], got %q", errorFormat)
			}
			report, err := protolslint.Run(cmd.Context(), protolslint.Options{
				Roots:      args,
				ConfigPath: configPath,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			if err := report.Print(cmd.OutOrStdout(), errorFormat); err != nil {
				return err
			}
			if report.HasErrors() {
				return fmt.Errorf("lint found %d error(s)", report.ErrorCount())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a protols.yaml workspace config file.")
	cmd.Flags().StringVar(&errorFormat, "error-format", "text", "Output format for diagnostics. Must be one of [text, json].")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging.")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}
