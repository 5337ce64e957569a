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
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/defaults"
	"github.com/NVIDIA/myapp/pkg/errors"
)

// Result describes a completed generation run.
type Result struct {
	// Dir is the output directory.
	Dir string
	// Header is the header after defaults were applied.
	Header Header
	// Version is the version of the documented command tree.
	Version string
	// Pages holds every rendered page in walk order.
	Pages []Page
	// Written lists the files that were created or replaced.
	Written []string
	// Unchanged lists the files whose content already matched.
	Unchanged []string
}

// Files returns the paths of all generated pages.
func (r *Result) Files() []string {
	files := make([]string, 0, len(r.Pages))
	for _, p := range r.Pages {
		files = append(files, filepath.Join(r.Dir, p.File))
	}
	return files
}

// GenerateTree renders every visible node of root and writes one file per
// page into dir, creating it if needed. Files whose content is unchanged are
// not rewritten. The first filesystem error aborts generation.
func GenerateTree(ctx context.Context, root *cli.Command, dir string, h Header) (*Result, error) {
	if dir == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "output directory is empty")
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "command tree is nil")
	}

	h = h.withDefaults(root)
	pages, err := Render(root, h)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, defaults.ManDirMode); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to create output directory", err,
			map[string]any{"dir": dir})
	}

	res := &Result{Dir: dir, Header: h, Version: root.Version, Pages: pages}
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "generation cancelled", err)
		}

		path := filepath.Join(dir, p.File)
		changed, err := writeIfChanged(path, p.Content)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to write manual page", err,
				map[string]any{"path": path, "page": p.Name})
		}

		if changed {
			res.Written = append(res.Written, path)
		} else {
			res.Unchanged = append(res.Unchanged, path)
		}
		slog.Debug("manual page generated",
			"page", p.Name,
			"path", path,
			"bytes", len(p.Content),
			"changed", changed)
	}

	slog.Info("manual pages generated",
		"dir", dir,
		"pages", len(pages),
		"written", len(res.Written),
		"unchanged", len(res.Unchanged))

	return res, nil
}

// writeIfChanged writes content to path unless the file already holds it.
func writeIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		return false, nil
	case err != nil && !stderrors.Is(err, fs.ErrNotExist):
		return false, err
	}

	if err := os.WriteFile(path, content, defaults.ManFileMode); err != nil {
		return false, err
	}
	return true, nil
}
