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

// Package config loads the CLI's configuration file. The file is optional;
// every setting has a usable default and can be overridden per invocation
// with command-line flags.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/rematch/pkg/engine"
	"github.com/walteh/rematch/pkg/quote"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🏷️ Styles holds the default quoting-dialect token per input role.
type Styles struct {
	Subject     string `json:"subject,omitempty" yaml:"subject,omitempty" hcl:"subject,optional"`
	Pattern     string `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty" hcl:"replacement,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	// SizeLimit caps the compiled pattern size in bytes. Zero uses the
	// engine default.
	SizeLimit int64 `json:"size_limit,omitempty" yaml:"size_limit,omitempty" hcl:"size_limit,optional"`

	// DefaultFlags is applied when an invocation passes no flags.
	DefaultFlags string `json:"default_flags,omitempty" yaml:"default_flags,omitempty" hcl:"default_flags,optional"`

	// Styles are the default dialect tokens; empty means ignore.
	Styles *Styles `json:"styles,omitempty" yaml:"styles,omitempty" hcl:"styles,block"`

	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" hcl:"log_level,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Discover looks for a config file in dir, trying the well-known names in
// order. It returns "" when none exists.
func Discover(dir string) string {
	for _, name := range []string{".rematch.yaml", ".rematch.yml", ".rematch.hcl", ".rematch.json"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.SizeLimit < 0 {
		return errors.Errorf("size_limit must be non-negative, got %d", cfg.SizeLimit)
	}

	if _, ferr := engine.ParseFlags(cfg.DefaultFlags); ferr != nil {
		return errors.Errorf("default_flags: %s", ferr.Message)
	}

	if cfg.Styles != nil {
		for role, token := range map[string]string{
			"subject":     cfg.Styles.Subject,
			"pattern":     cfg.Styles.Pattern,
			"replacement": cfg.Styles.Replacement,
		} {
			if token == "" {
				continue
			}
			if _, derr := quote.ParseStyle(token); derr != nil {
				return errors.Errorf("styles.%s: %s", role, derr.Message)
			}
		}
	}

	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
			return errors.Errorf("log_level: %w", err)
		}
	}

	return nil
}

// Style returns the configured dialect for a role name, defaulting to
// ignore.
func (cfg *Config) Style(role string) quote.Style {
	if cfg.Styles == nil {
		return quote.Ignore
	}
	var token string
	switch role {
	case "subject":
		token = cfg.Styles.Subject
	case "pattern":
		token = cfg.Styles.Pattern
	case "replacement":
		token = cfg.Styles.Replacement
	}
	if token == "" {
		return quote.Ignore
	}
	s, derr := quote.ParseStyle(token)
	if derr != nil {
		return quote.Ignore
	}
	return s
}

// EngineOptions maps the config onto engine compilation options.
func (cfg *Config) EngineOptions() engine.Options {
	return engine.Options{SizeLimit: cfg.SizeLimit}
}

// Level returns the configured log level, defaulting to info.
func (cfg *Config) Level() zerolog.Level {
	if cfg.LogLevel == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
