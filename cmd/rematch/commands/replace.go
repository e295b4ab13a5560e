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
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/rematch/pkg/rematch"
	"github.com/walteh/rematch/pkg/render"
	"github.com/walteh/rematch/pkg/result"
)

// replaceOp is the shape shared by Replace and ReplaceList.
type replaceOp func(context.Context, rematch.Request) (string, *result.ErrorResult)

// NewReplaceCmd creates the replace command
func NewReplaceCmd(opts *RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <pattern> <replacement>",
		Short: "Replace every match, keeping the text between matches",
		Long: `Replace substitutes the replacement template for every match of the
pattern. Text between matches is preserved verbatim. The template may
reference groups as $0, $name, or ${name}.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(cmd, opts, args, "replace", rematch.Replace)
		},
	}

	opts.addSharedFlags(cmd)
	return cmd
}

// NewReplaceListCmd creates the replace-list command
func NewReplaceListCmd(opts *RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace-list <pattern> <replacement>",
		Short: "Replace every match, keeping only the substituted fragments",
		Long: `Replace-list substitutes the replacement template for every match and
prints only the substituted fragments, concatenated in match order. Text
between matches is discarded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(cmd, opts, args, "replace-list", rematch.ReplaceList)
		},
	}

	opts.addSharedFlags(cmd)
	return cmd
}

func runReplace(cmd *cobra.Command, opts *RootOpts, args []string, name string, op replaceOp) error {
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
		req, err := opts.request(in.Text, args[0], args[1])
		if err != nil {
			return err
		}

		out, errRes := op(ctx, req)

		if opts.JSON {
			var payload any = replacedResult{Result: out}
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
		r.Replaced(out)
	}

	if multi && opts.JSON {
		if err := emitJSON(opts.Out, fileResults); err != nil {
			return err
		}
	}
	if failed {
		return errors.Errorf("%s reported errors", name)
	}
	return nil
}
