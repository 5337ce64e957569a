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
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/defaults"
	"github.com/NVIDIA/myapp/pkg/errors"
)

// Reference renders the whole command tree as a single Markdown document.
func Reference(root *cli.Command) (string, error) {
	if root == nil {
		return "", errors.New(errors.ErrCodeInvalidArgument, "command tree is nil")
	}
	md, err := docs.ToMarkdown(root)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to render CLI reference", err)
	}
	return md, nil
}

// WriteReference writes Reference(root) to path.
func WriteReference(root *cli.Command, path string) error {
	md, err := Reference(root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(md), defaults.ManFileMode); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to write CLI reference", err,
			map[string]any{"path": path})
	}
	return nil
}
