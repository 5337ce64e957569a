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

package positional

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/errors"
)

// metadataKey is the cli.Command.Metadata key holding the descriptors.
const metadataKey = "positional.args"

// Arg describes a single positional argument.
type Arg struct {
	// Name is the lower-case identifier used to look the value up.
	Name string
	// Usage is the one-line help text.
	Usage string
	// Required marks arguments that must be present.
	Required bool
}

// Placeholder returns the display form of the argument: <NAME> when
// required, [NAME] otherwise.
func (a Arg) Placeholder() string {
	name := strings.ToUpper(a.Name)
	if a.Required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}

// Values maps argument names to the values bound from the command line.
type Values map[string]string

// Get returns the value bound to name, or the empty string.
func (v Values) Get(name string) string {
	return v[name]
}

// Attach records args on cmd and sets cmd.ArgsUsage accordingly.
// It returns cmd so it can wrap a composite literal.
func Attach(cmd *cli.Command, args ...Arg) *cli.Command {
	if cmd.Metadata == nil {
		cmd.Metadata = make(map[string]any)
	}
	cmd.Metadata[metadataKey] = args
	cmd.ArgsUsage = Usage(args)
	return cmd
}

// Of returns the descriptors attached to cmd, or nil.
func Of(cmd *cli.Command) []Arg {
	if cmd == nil || cmd.Metadata == nil {
		return nil
	}
	args, _ := cmd.Metadata[metadataKey].([]Arg)
	return args
}

// Usage renders the synopsis fragment for args, e.g. "<KEY> <VALUE>".
func Usage(args []Arg) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.Placeholder())
	}
	return strings.Join(parts, " ")
}

// Bind maps the positional values of a parsed command onto its descriptors.
// Missing required arguments and surplus arguments are usage errors.
func Bind(cmd *cli.Command) (Values, error) {
	specs := Of(cmd)
	given := cmd.Args().Slice()

	if len(given) > len(specs) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unexpected argument %q", given[len(specs)]),
			map[string]any{"command": cmd.FullName()})
	}

	vals := make(Values, len(specs))
	for i, spec := range specs {
		if i < len(given) {
			vals[spec.Name] = given[i]
			continue
		}
		if spec.Required {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
				fmt.Sprintf("missing required argument %s", spec.Placeholder()),
				map[string]any{"command": cmd.FullName()})
		}
	}
	return vals, nil
}
