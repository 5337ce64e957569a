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

// Package positional describes the positional arguments of a urfave/cli
// command in a form both the argument decoder and the manual page renderer
// can read.
//
// urfave/cli only knows a free-form ArgsUsage string for positionals. Attach
// stores typed descriptors in the command's Metadata and derives ArgsUsage
// from them, so a single declaration drives parsing, help output and docs:
//
//	cmd := positional.Attach(&cli.Command{Name: "set"},
//		positional.Arg{Name: "key", Usage: "Configuration key", Required: true},
//		positional.Arg{Name: "value", Usage: "Value to assign", Required: true},
//	)
//
//	// inside the action
//	vals, err := positional.Bind(cmd)
//	key := vals.Get("key")
package positional
