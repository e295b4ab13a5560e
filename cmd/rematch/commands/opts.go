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

// Package commands holds the rematch subcommands. Each command sources its
// subject from stdin, a file, or a glob over many files, runs one façade
// operation, and renders the outcome as JSON or colorized text.
package commands

import (
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/rematch/pkg/config"
	"github.com/walteh/rematch/pkg/quote"
	"github.com/walteh/rematch/pkg/rematch"
)

// 📦 RootOpts carries the options shared by every subcommand.
type RootOpts struct {
	Config *config.Config
	Out    io.Writer

	// Flags
	JSON             bool
	Flags            string
	SubjectStyle     string
	PatternStyle     string
	ReplacementStyle string
	InFile           string
	Glob             string
}

// addSharedFlags registers the option surface common to all three
// operations.
func (o *RootOpts) addSharedFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.JSON, "json", false, "emit the JSON wire format")
	cmd.Flags().StringVarP(&o.Flags, "flags", "f", "", "matching flags, any of imsUux")
	cmd.Flags().StringVar(&o.SubjectStyle, "subject-style", "", "quote style of the subject (ignore|str|raw|rawhash1..4)")
	cmd.Flags().StringVar(&o.PatternStyle, "pattern-style", "", "quote style of the pattern")
	cmd.Flags().StringVar(&o.ReplacementStyle, "replacement-style", "", "quote style of the replacement")
	cmd.Flags().StringVarP(&o.InFile, "in", "i", "", "read the subject from a file instead of stdin")
	cmd.Flags().StringVarP(&o.Glob, "glob", "g", "", "run against every file matching a doublestar glob")
}

// style resolves one role's dialect: the command-line token wins, then the
// config default.
func (o *RootOpts) style(token, role string) (quote.Style, error) {
	if token == "" {
		return o.Config.Style(role), nil
	}
	s, derr := quote.ParseStyle(token)
	if derr != nil {
		return nil, errors.Errorf("%s style: %s", role, derr.Message)
	}
	return s, nil
}

// request assembles the façade request for one subject.
func (o *RootOpts) request(subject, pattern, replacement string) (rematch.Request, error) {
	subjectStyle, err := o.style(o.SubjectStyle, "subject")
	if err != nil {
		return rematch.Request{}, err
	}
	patternStyle, err := o.style(o.PatternStyle, "pattern")
	if err != nil {
		return rematch.Request{}, err
	}
	replacementStyle, err := o.style(o.ReplacementStyle, "replacement")
	if err != nil {
		return rematch.Request{}, err
	}

	flags := o.Flags
	if flags == "" {
		flags = o.Config.DefaultFlags
	}

	return rematch.Request{
		Subject:          subject,
		Pattern:          pattern,
		Replacement:      replacement,
		Flags:            flags,
		SubjectStyle:     subjectStyle,
		PatternStyle:     patternStyle,
		ReplacementStyle: replacementStyle,
		Options:          o.Config.EngineOptions(),
	}, nil
}

// 📄 subjectInput is one subject text and where it came from.
type subjectInput struct {
	Name string
	Text string
}

// subjects gathers the subject texts for an invocation: every glob match,
// the --in file, or stdin.
func (o *RootOpts) subjects(cmd *cobra.Command) ([]subjectInput, error) {
	if o.Glob != "" {
		return globSubjects(o.Glob)
	}

	if o.InFile != "" {
		data, err := os.ReadFile(o.InFile)
		if err != nil {
			return nil, errors.Errorf("reading subject file: %w", err)
		}
		return []subjectInput{{Name: o.InFile, Text: string(data)}}, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Errorf("reading stdin: %w", err)
	}
	return []subjectInput{{Name: "stdin", Text: string(data)}}, nil
}

// globSubjects reads every file matching the glob, concurrently, in stable
// name order.
func globSubjects(pattern string) ([]subjectInput, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Errorf("expanding glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("glob %q matched no files", pattern)
	}
	sort.Strings(paths)

	inputs := make([]subjectInput, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Errorf("reading %s: %w", path, err)
			}
			inputs[i] = subjectInput{Name: path, Text: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}
