/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	myerrors "github.com/NVIDIA/myapp/pkg/errors"
	"github.com/NVIDIA/myapp/pkg/positional"
)

func hasName(flag cli.Flag, name string) bool {
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func findCommand(t *testing.T, parent *cli.Command, name string) *cli.Command {
	t.Helper()
	for _, c := range parent.Commands {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("command %q not found under %q", name, parent.Name)
	return nil
}

func TestNewCommandShape(t *testing.T) {
	root := NewCommand()

	assert.Equal(t, "myapp", root.Name)
	assert.NotEmpty(t, root.Usage)
	assert.Contains(t, root.Description, "config: manage configuration values")
	assert.Equal(t, Version(), root.Version)

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"config", "server", "remote"}, names)

	config := findCommand(t, root, "config")
	require.Len(t, config.Commands, 2)
	assert.Equal(t, "get", config.Commands[0].Name)
	assert.Equal(t, "set", config.Commands[1].Name)
}

func TestCommandNamesUniquePerParent(t *testing.T) {
	var walk func(*cli.Command)
	walk = func(cmd *cli.Command) {
		seen := map[string]bool{}
		for _, c := range cmd.Commands {
			assert.False(t, seen[c.Name], "duplicate command %q under %q", c.Name, cmd.Name)
			seen[c.Name] = true
			walk(c)
		}
	}
	walk(NewCommand())
}

func TestCommandFlags(t *testing.T) {
	root := NewCommand()
	config := findCommand(t, root, "config")

	tests := []struct {
		cmd   *cli.Command
		flags []string
	}{
		{root, []string{"log-level"}},
		{findCommand(t, config, "get"), []string{"format"}},
		{findCommand(t, config, "set"), []string{"global"}},
		{findCommand(t, root, "server"), []string{"port", "p", "addr", "verbose", "v"}},
		{findCommand(t, root, "remote"), []string{"url", "remove"}},
	}

	for _, tt := range tests {
		for _, flagName := range tt.flags {
			found := false
			for _, flag := range tt.cmd.Flags {
				if hasName(flag, flagName) {
					found = true
					break
				}
			}
			assert.True(t, found, "flag %q not found on %q", flagName, tt.cmd.Name)
		}
		assert.NotNil(t, tt.cmd.Action, "%q should have an action", tt.cmd.Name)
	}
}

func TestCommandPositionals(t *testing.T) {
	root := NewCommand()
	config := findCommand(t, root, "config")

	assert.Equal(t, "<KEY>", findCommand(t, config, "get").ArgsUsage)
	assert.Equal(t, "<KEY> <VALUE>", findCommand(t, config, "set").ArgsUsage)
	assert.Equal(t, "<NAME>", findCommand(t, root, "remote").ArgsUsage)
	assert.Empty(t, positional.Of(findCommand(t, root, "server")))
}

func TestVersionFlagUsesUpperV(t *testing.T) {
	assert.True(t, hasName(cli.VersionFlag, "V"))
	assert.False(t, hasName(cli.VersionFlag, "v"))

	var out bytes.Buffer
	err := Run(context.Background(), []string{"myapp", "--version"}, WithWriter(&out))
	require.NoError(t, err)
	assert.Contains(t, out.String(), Version())
}

func TestHelpListsCommands(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), []string{"myapp", "--help"}, WithWriter(&out))
	require.NoError(t, err)

	help := out.String()
	assert.Contains(t, help, "Example CLI with nested subcommands")
	assert.Contains(t, help, "config")
	assert.Contains(t, help, "server")
	assert.Contains(t, help, "remote")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"plain", FormatPlain, false},
		{"json", FormatJSON, false},
		{"JSON", "", true},
		{"Plain", "", true},
		{" json", "", true},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

type unknownInvocation struct{}

func (unknownInvocation) Command() string { return "unknown" }
func (unknownInvocation) isInvocation()   {}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestPrinterErrors(t *testing.T) {
	err := (&Printer{Out: &bytes.Buffer{}}).Handle(context.Background(), unknownInvocation{})
	require.Error(t, err)
	assert.Equal(t, myerrors.ErrCodeInternal, myerrors.CodeOf(err))

	err = (&Printer{Out: failingWriter{}}).Handle(context.Background(), Remote{Name: "origin"})
	require.Error(t, err)
	assert.Equal(t, myerrors.ErrCodeIO, myerrors.CodeOf(err))
	assert.Contains(t, err.Error(), "pipe closed")
}

func TestOutputFormatString(t *testing.T) {
	assert.Equal(t, "Plain", FormatPlain.String())
	assert.Equal(t, "Json", FormatJSON.String())
	assert.Equal(t, "xml", OutputFormat("xml").String())
}

func TestInvocationCommand(t *testing.T) {
	assert.Equal(t, "config get", ConfigGet{}.Command())
	assert.Equal(t, "config set", ConfigSet{}.Command())
	assert.Equal(t, "server", Server{}.Command())
	assert.Equal(t, "remote", Remote{}.Command())
}

func TestUsageHint(t *testing.T) {
	_, err := ParseOutputFormat("xml")
	require.Error(t, err)
	assert.Equal(t, "Run 'myapp --help' for usage.", usageHint(err))

	wrapped := myerrors.Wrap(myerrors.ErrCodeInternal, "dispatch failed", err)
	assert.Equal(t, "Run 'myapp --help' for usage.", usageHint(wrapped))

	assert.Empty(t, usageHint(myerrors.New(myerrors.ErrCodeIO, "write failed")))
	assert.Empty(t, usageHint(errors.New("plain")))
}
