/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/NVIDIA/myapp/pkg/errors"
)

// Invocation is the decoded form of a command line. Exactly one of the leaf
// types below implements it: ConfigGet, ConfigSet, Server or Remote.
type Invocation interface {
	// Command returns the space-separated path of the leaf command,
	// without the root name.
	Command() string

	isInvocation()
}

// Handler receives a decoded invocation.
type Handler interface {
	Handle(ctx context.Context, inv Invocation) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, inv Invocation) error

// Handle calls f(ctx, inv).
func (f HandlerFunc) Handle(ctx context.Context, inv Invocation) error {
	return f(ctx, inv)
}

// OutputFormat is the rendering requested by `config get --format`.
type OutputFormat string

const (
	// FormatPlain prints the bare value.
	FormatPlain OutputFormat = "plain"
	// FormatJSON prints the value as JSON.
	FormatJSON OutputFormat = "json"
)

// SupportedOutputFormats lists the values accepted by --format.
func SupportedOutputFormats() []string {
	return []string{string(FormatPlain), string(FormatJSON)}
}

// String returns the display name printed by `config get`.
func (f OutputFormat) String() string {
	switch f {
	case FormatPlain:
		return "Plain"
	case FormatJSON:
		return "Json"
	default:
		return string(f)
	}
}

// ParseOutputFormat validates s as an OutputFormat. Matching is exact.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatPlain, FormatJSON:
		return f, nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("invalid format %q, supported values: %s", s, strings.Join(SupportedOutputFormats(), ", ")),
			map[string]any{"flag": flagFormat})
	}
}

// ConfigGet is `config get`.
type ConfigGet struct {
	Key    string       `json:"key" yaml:"key"`
	Format OutputFormat `json:"format" yaml:"format"`
}

// ConfigSet is `config set`.
type ConfigSet struct {
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value" yaml:"value"`
	Global bool   `json:"global" yaml:"global"`
}

// Server is `server`.
type Server struct {
	Addr    string `json:"addr" yaml:"addr"`
	Port    uint16 `json:"port" yaml:"port"`
	Verbose int    `json:"verbose" yaml:"verbose"`
}

// Remote is `remote`. URL is nil when --url was not given; an explicit
// empty value is kept.
type Remote struct {
	Name   string  `json:"name" yaml:"name"`
	URL    *string `json:"url,omitempty" yaml:"url,omitempty"`
	Remove bool    `json:"remove" yaml:"remove"`
}

func (ConfigGet) Command() string { return "config get" }
func (ConfigSet) Command() string { return "config set" }
func (Server) Command() string    { return "server" }
func (Remote) Command() string    { return "remote" }

func (ConfigGet) isInvocation() {}
func (ConfigSet) isInvocation() {}
func (Server) isInvocation()    {}
func (Remote) isInvocation()    {}
