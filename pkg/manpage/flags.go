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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

// Names of the flags urfave/cli injects into a command tree during setup.
// They are documented from cli.HelpFlag and cli.VersionFlag instead.
const (
	helpFlagName    = "help"
	versionFlagName = "version"
)

// ownFlags lists the options a command declares, followed by the help and
// version flags the framework adds at run time.
func ownFlags(n Node) []flagView {
	cmd := n.Command

	var out []flagView
	for _, f := range cmd.Flags {
		if isFrameworkFlag(f) || !isVisible(f) {
			continue
		}
		out = append(out, describeFlag(f))
	}

	if !cmd.HideHelp && cli.HelpFlag != nil {
		out = append(out, describeFlag(cli.HelpFlag))
	}
	if n.Parent() == nil && cmd.Version != "" && !cmd.HideVersion && cli.VersionFlag != nil {
		out = append(out, describeFlag(cli.VersionFlag))
	}
	return out
}

// inheritedFlags lists the persistent options of every ancestor, root first.
func inheritedFlags(n Node) []flagView {
	var out []flagView
	for _, parent := range n.Ancestors {
		for _, f := range parent.Flags {
			if isFrameworkFlag(f) || !isVisible(f) {
				continue
			}
			if lf, ok := f.(cli.LocalFlag); ok && lf.IsLocal() {
				continue
			}
			out = append(out, describeFlag(f))
		}
	}
	return out
}

func isFrameworkFlag(f cli.Flag) bool {
	names := f.Names()
	if len(names) == 0 {
		return true
	}
	return names[0] == helpFlagName || names[0] == versionFlagName
}

func isVisible(f cli.Flag) bool {
	vf, ok := f.(cli.VisibleFlag)
	return !ok || vf.IsVisible()
}

// describeFlag formats a flag the way man pages conventionally list options:
// short names first, then long names, then "=default" for value flags.
func describeFlag(f cli.Flag) flagView {
	var short, long []string
	for _, name := range f.Names() {
		if len(name) == 1 {
			short = append(short, fmt.Sprintf("**-%s**", escape(name)))
		} else {
			long = append(long, fmt.Sprintf("**--%s**", escape(name)))
		}
	}
	spec := strings.Join(append(short, long...), ", ")

	v := flagView{Spec: spec}

	df, ok := f.(cli.DocGenerationFlag)
	if !ok {
		return v
	}
	v.Usage = strings.TrimSpace(df.GetUsage())
	v.Env = df.GetEnvVars()

	if df.TakesValue() {
		v.Spec += "=" + defaultValue(df)
	}
	return v
}

func defaultValue(df cli.DocGenerationFlag) string {
	if text := df.GetDefaultText(); text != "" {
		return escape(text)
	}
	val := df.GetValue()
	if df.TypeName() == "string" && val == "" {
		return `""`
	}
	if val == "" {
		return escape(strings.ToUpper(df.TypeName()))
	}
	return escape(val)
}

// longName returns the first long option in the spec, e.g. "**--log-level**".
func (f flagView) longName() string {
	for _, part := range strings.Split(f.Spec, ", ") {
		if strings.HasPrefix(part, "**--") {
			if i := strings.Index(part, "="); i >= 0 {
				return part[:i]
			}
			return part
		}
	}
	return f.Spec
}
