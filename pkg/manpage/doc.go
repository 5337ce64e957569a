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

// Package manpage renders a urfave/cli command tree into manual pages.
//
// Every visible command node becomes one page. The page name is the root
// command name followed by the hyphen-joined path of subcommand names, and the
// file name appends the manual section:
//
//	myapp            -> myapp.1
//	myapp config get -> myapp-config-get.1
//
// Pages are assembled as Markdown from the command's own metadata (name,
// usage, description, flags, positional arguments, children) and converted to
// roff with go-md2man. Hidden commands and the implicit help command are not
// documented.
//
// Generation is deterministic: the header date is empty unless pinned, so
// regenerating from an unchanged command tree produces identical bytes, and
// GenerateTree leaves unchanged files untouched.
//
// Usage:
//
//	root := cli.NewCommand()
//	res, err := manpage.GenerateTree(ctx, root, "man", manpage.Header{Section: "1"})
//	if err != nil {
//		return err
//	}
//	stale, err := manpage.Check(ctx, root, "man", res.Header)
//
// Reference renders the whole tree into a single Markdown document using
// urfave/cli-docs, for READMEs and web docs.
package manpage
