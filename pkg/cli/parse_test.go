/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Invocation
	}{
		{
			name: "config get defaults to plain",
			args: []string{"myapp", "config", "get", "core.editor"},
			want: ConfigGet{Key: "core.editor", Format: FormatPlain},
		},
		{
			name: "config get json",
			args: []string{"myapp", "config", "get", "--format", "json", "core.editor"},
			want: ConfigGet{Key: "core.editor", Format: FormatJSON},
		},
		{
			name: "config set local",
			args: []string{"myapp", "config", "set", "core.editor", "vim"},
			want: ConfigSet{Key: "core.editor", Value: "vim"},
		},
		{
			name: "config set global",
			args: []string{"myapp", "config", "set", "--global", "user.name", "Ada"},
			want: ConfigSet{Key: "user.name", Value: "Ada", Global: true},
		},
		{
			name: "server defaults",
			args: []string{"myapp", "server"},
			want: Server{Addr: "127.0.0.1", Port: 8080},
		},
		{
			name: "server overrides",
			args: []string{"myapp", "server", "--addr", "0.0.0.0", "-p", "9000"},
			want: Server{Addr: "0.0.0.0", Port: 9000},
		},
		{
			name: "server single verbose",
			args: []string{"myapp", "server", "-v"},
			want: Server{Addr: "127.0.0.1", Port: 8080, Verbose: 1},
		},
		{
			name: "server stacked verbose",
			args: []string{"myapp", "server", "-vv"},
			want: Server{Addr: "127.0.0.1", Port: 8080, Verbose: 2},
		},
		{
			name: "server repeated verbose",
			args: []string{"myapp", "server", "-v", "--verbose", "-v"},
			want: Server{Addr: "127.0.0.1", Port: 8080, Verbose: 3},
		},
		{
			name: "remote info",
			args: []string{"myapp", "remote", "origin"},
			want: Remote{Name: "origin"},
		},
		{
			name: "remote add",
			args: []string{"myapp", "remote", "--url", "https://example.com/repo.git", "origin"},
			want: Remote{Name: "origin", URL: strPtr("https://example.com/repo.git")},
		},
		{
			name: "remote add with empty url",
			args: []string{"myapp", "remote", "--url", "", "origin"},
			want: Remote{Name: "origin", URL: strPtr("")},
		},
		{
			name: "remote remove",
			args: []string{"myapp", "remote", "--remove", "origin"},
			want: Remote{Name: "origin", Remove: true},
		},
		{
			name: "global flag before subcommand",
			args: []string{"myapp", "--log-level", "debug", "remote", "origin"},
			want: Remote{Name: "origin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(context.Background(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errMsg  string
		errCode errors.ErrorCode
	}{
		{
			name:    "no subcommand",
			args:    []string{"myapp"},
			errMsg:  "requires a subcommand",
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:    "unknown subcommand",
			args:    []string{"myapp", "deploy"},
			errMsg:  `unknown command "deploy"`,
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:    "config without action",
			args:    []string{"myapp", "config"},
			errMsg:  "requires a subcommand",
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:    "config get missing key",
			args:    []string{"myapp", "config", "get"},
			errMsg:  "missing required argument <KEY>",
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:    "config get format is case-sensitive",
			args:    []string{"myapp", "config", "get", "--format", "JSON", "core.editor"},
			errMsg:  `invalid format "JSON"`,
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:    "config get invalid format",
			args:    []string{"myapp", "config", "get", "--format", "xml", "core.editor"},
			errMsg:  `invalid format "xml"`,
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:    "config set missing value",
			args:    []string{"myapp", "config", "set", "core.editor"},
			errMsg:  "missing required argument <VALUE>",
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:    "remote missing name",
			args:    []string{"myapp", "remote"},
			errMsg:  "missing required argument <NAME>",
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:    "server positional",
			args:    []string{"myapp", "server", "extra"},
			errMsg:  `unexpected argument "extra"`,
			errCode: errors.ErrCodeInvalidArgument,
		},
		{
			name:   "server port out of range",
			args:   []string{"myapp", "server", "--port", "70000"},
			errMsg: "port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(context.Background(), tt.args)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tt.errMsg)
			if tt.errCode != "" {
				assert.Equal(t, tt.errCode, errors.CodeOf(err))
			}
		})
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	for _, args := range [][]string{
		{"myapp", "--help"},
		{"myapp", "-h"},
		{"myapp", "--version"},
		{"myapp", "-V"},
		{"myapp", "config", "--help"},
		{"myapp", "config", "get", "--help"},
	} {
		got, err := Parse(context.Background(), args)
		require.NoError(t, err, "args %v", args)
		assert.Nil(t, got, "args %v", args)
	}
}

// The runtime path and Parse must agree on the decoded result for the same argv.
func TestRunMatchesParse(t *testing.T) {
	argvs := [][]string{
		{"myapp", "config", "get", "--format", "json", "core.editor"},
		{"myapp", "config", "set", "--global", "core.editor", "vim"},
		{"myapp", "server", "-p", "9090", "-vv"},
		{"myapp", "remote", "--url", "https://example.com/repo.git", "origin"},
	}

	for _, argv := range argvs {
		parsed, err := Parse(context.Background(), argv)
		require.NoError(t, err)

		var dispatched Invocation
		var out bytes.Buffer
		err = Run(context.Background(), argv,
			WithWriter(&out),
			WithHandler(HandlerFunc(func(_ context.Context, inv Invocation) error {
				dispatched = inv
				return nil
			})),
		)
		require.NoError(t, err)
		assert.Equal(t, parsed, dispatched, "argv %v", argv)
		assert.Zero(t, out.Len())
	}
}

func TestRunPrintsInvocation(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{
			args: []string{"myapp", "server", "--addr", "0.0.0.0", "--port", "3000", "-vv"},
			want: "server start on 0.0.0.0:3000 (verbosity: 2)\n",
		},
		{
			args: []string{"myapp", "remote", "--remove", "origin"},
			want: "remote removed: origin\n",
		},
		{
			args: []string{"myapp", "remote", "--url", "https://example.com/repo.git", "origin"},
			want: "remote added: origin -> https://example.com/repo.git\n",
		},
		{
			args: []string{"myapp", "remote", "origin"},
			want: "remote info requested: origin\n",
		},
		{
			args: []string{"myapp", "config", "get", "core.editor"},
			want: "config get core.editor (format: Plain)\n",
		},
		{
			args: []string{"myapp", "config", "get", "--format", "json", "core.editor"},
			want: "config get core.editor (format: Json)\n",
		},
		{
			args: []string{"myapp", "remote", "--url", "", "origin"},
			want: "remote added: origin -> \n",
		},
		{
			args: []string{"myapp", "config", "set", "--global", "core.editor", "vim"},
			want: "config set core.editor=vim (global: true)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(context.Background(), tt.args, WithWriter(&out), WithErrWriter(&bytes.Buffer{}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunBeforeHook(t *testing.T) {
	var level string
	err := Run(context.Background(), []string{"myapp", "--log-level", "warn", "remote", "origin"},
		WithWriter(&bytes.Buffer{}),
		WithBefore(func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level = cmd.String(flagLogLevel)
			return ctx, nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "warn", level)
}
