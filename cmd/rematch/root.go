// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/rematch/cmd/rematch/commands"
	"github.com/walteh/rematch/pkg/config"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootCmd creates the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	opts := &commands.RootOpts{Out: os.Stdout}

	rootCmd := &cobra.Command{
		Use:   "rematch",
		Short: "Find and replace text with pattern matching and precise positions",
		Long: `rematch runs pattern find/replace operations over text, reporting every
match position in both UTF-8 byte and UTF-16 code unit coordinates. Inputs
may be quoted in source-literal dialects (str, raw, rawhash1..4) and are
decoded before matching.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path := configFile
			if path == "" {
				path = config.Discover(".")
			}

			cfg := &config.Config{}
			if path != "" {
				loaded, err := config.Load(ctx, path)
				if err != nil {
					return errors.Errorf("loading config: %w", err)
				}
				cfg = loaded
			}
			opts.Config = cfg

			level := cfg.Level()
			if debug {
				level = zerolog.DebugLevel
			}
			logger := zerolog.Ctx(ctx).Level(level)
			cmd.SetContext(logger.WithContext(ctx))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: discover .rematch.{yaml,hcl,json})")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(
		commands.NewFindCmd(opts),
		commands.NewReplaceCmd(opts),
		commands.NewReplaceListCmd(opts),
	)

	return rootCmd
}
