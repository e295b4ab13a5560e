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

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/rematch/pkg/rematch"
	"github.com/walteh/rematch/pkg/render"
)

// NewFindCmd creates the find command
func NewFindCmd(opts *RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <pattern>",
		Short: "Find every match of a pattern in the subject",
		Long: `Find prints every match of the pattern, one capture table per subject,
with spans in both UTF-8 byte and UTF-16 code unit coordinates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			inputs, err := opts.subjects(cmd)
			if err != nil {
				return err
			}

			r := render.New(opts.Out)
			multi := opts.Glob != ""
			var fileResults []fileResult
			failed := false

			for _, in := range inputs {
				req, err := opts.request(in.Text, args[0], "")
				if err != nil {
					return err
				}

				res, errRes := rematch.Find(ctx, req)

				if opts.JSON {
					var payload any = res
					if errRes != nil {
						payload = errRes
						failed = true
					}
					if multi {
						fileResults = append(fileResults, fileResult{File: in.Name, Result: payload})
						continue
					}
					if err := emitJSON(opts.Out, payload); err != nil {
						return err
					}
					continue
				}

				if multi {
					fmt.Fprintln(opts.Out, color.CyanString(in.Name))
				}
				if errRes != nil {
					r.Error(errRes)
					failed = true
					continue
				}
				if err := r.Matches(in.Text, res); err != nil {
					return err
				}
			}

			if multi && opts.JSON {
				if err := emitJSON(opts.Out, fileResults); err != nil {
					return err
				}
			}
			if failed {
				return errors.New("find reported errors")
			}
			return nil
		},
	}

	opts.addSharedFlags(cmd)
	return cmd
}
