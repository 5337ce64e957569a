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
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/checksum"
	"github.com/NVIDIA/myapp/pkg/errors"
)

// Check renders root in memory and compares the result with the files in dir.
// It returns the sorted names of pages that are missing or differ, plus pages
// in dir that no longer correspond to a command. An empty result means dir is
// up to date.
func Check(ctx context.Context, root *cli.Command, dir string, h Header) ([]string, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "command tree is nil")
	}

	h = h.withDefaults(root)
	pages, err := Render(root, h)
	if err != nil {
		return nil, err
	}

	want := make(map[string]string, len(pages))
	for _, p := range pages {
		want[p.File] = checksum.Sum(p.Content)
	}

	stale, err := checksum.Verify(ctx, dir, want)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to compare manual pages", err,
			map[string]any{"dir": dir})
	}

	orphans, err := orphanedPages(dir, root.Name, h, want)
	if err != nil {
		return nil, err
	}

	stale = append(stale, orphans...)
	sort.Strings(stale)
	return stale, nil
}

// orphanedPages returns page files in dir that belong to root but are not in
// want, left behind by renamed or removed commands.
func orphanedPages(dir, rootName string, h Header, want map[string]string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to list output directory", err,
			map[string]any{"dir": dir})
	}

	ext := filepath.Ext(FileName([]string{rootName}, h.Section, h.Format))

	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ext {
			continue
		}
		base := strings.TrimSuffix(name, ext)
		if base != rootName && !strings.HasPrefix(base, rootName+"-") {
			continue
		}
		if _, ok := want[name]; !ok {
			out = append(out, name)
		}
	}
	return out, nil
}
