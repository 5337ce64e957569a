// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package manpage

import (
	"strings"

	"github.com/urfave/cli/v3"
)

// helpCommandName is the name urfave/cli gives its implicit help command.
const helpCommandName = "help"

// Node is a visible command together with its position in the tree.
type Node struct {
	// Command is the schema node.
	Command *cli.Command
	// Path holds the command names from the root down to Command, inclusive.
	Path []string
	// Ancestors holds the parent commands, root first. Empty for the root.
	Ancestors []*cli.Command
}

// PageName returns the manual page name of the node.
func (n Node) PageName() string {
	return PageName(n.Path)
}

// CommandPath returns the space-separated invocation, e.g. "myapp config get".
func (n Node) CommandPath() string {
	return strings.Join(n.Path, " ")
}

// Parent returns the parent command, or nil for the root.
func (n Node) Parent() *cli.Command {
	if len(n.Ancestors) == 0 {
		return nil
	}
	return n.Ancestors[len(n.Ancestors)-1]
}

// PageName joins a command path into a page name: "myapp-config-get".
func PageName(path []string) string {
	return strings.Join(path, "-")
}

// FileName returns the file name for a page in the given section and format.
// Markdown pages use the ".md" extension.
func FileName(path []string, section string, format Format) string {
	if format == FormatMarkdown {
		return PageName(path) + ".md"
	}
	return PageName(path) + "." + section
}

// Walk visits root and every visible descendant depth-first, parents before
// children, in declaration order. Returning an error from fn stops the walk.
func Walk(root *cli.Command, fn func(Node) error) error {
	return walk(root, nil, nil, fn)
}

func walk(cmd *cli.Command, path []string, ancestors []*cli.Command, fn func(Node) error) error {
	path = append(path[:len(path):len(path)], cmd.Name)
	if err := fn(Node{Command: cmd, Path: path, Ancestors: ancestors}); err != nil {
		return err
	}

	children := append(ancestors[:len(ancestors):len(ancestors)], cmd)
	for _, sub := range visibleCommands(cmd) {
		if err := walk(sub, path, children, fn); err != nil {
			return err
		}
	}
	return nil
}

func visibleCommands(cmd *cli.Command) []*cli.Command {
	var out []*cli.Command
	for _, sub := range cmd.Commands {
		if sub.Hidden || sub.Name == helpCommandName {
			continue
		}
		out = append(out, sub)
	}
	return out
}
