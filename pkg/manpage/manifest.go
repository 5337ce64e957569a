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
	"fmt"
	"log/slog"

	"github.com/NVIDIA/myapp/pkg/checksum"
	"github.com/NVIDIA/myapp/pkg/errors"
	"github.com/NVIDIA/myapp/pkg/header"
	"github.com/NVIDIA/myapp/pkg/serializer"
)

// Manifest records what a generation run produced.
type Manifest struct {
	header.Header `json:",inline" yaml:",inline"`

	Section string          `json:"section" yaml:"section"`
	Format  Format          `json:"format" yaml:"format"`
	Source  string          `json:"source,omitempty" yaml:"source,omitempty"`
	Pages   []ManifestEntry `json:"pages" yaml:"pages"`
}

// ManifestEntry describes one generated page.
type ManifestEntry struct {
	Name    string `json:"name" yaml:"name"`
	File    string `json:"file" yaml:"file"`
	Command string `json:"command" yaml:"command"`
	SHA256  string `json:"sha256" yaml:"sha256"`
}

// Manifest returns the manifest for the run.
func (r *Result) Manifest() Manifest {
	m := Manifest{
		Section: r.Header.Section,
		Format:  r.Header.Format,
		Source:  r.Header.Source,
		Pages:   make([]ManifestEntry, 0, len(r.Pages)),
	}
	for _, p := range r.Pages {
		m.Pages = append(m.Pages, ManifestEntry{
			Name:    p.Name,
			File:    p.File,
			Command: p.Command,
			SHA256:  checksum.Sum(p.Content),
		})
	}
	m.Header = *header.New(
		header.WithKind(header.KindManPageManifest),
		header.WithAPIVersion(header.APIVersion),
		header.WithVersion(r.Version),
		header.WithDate(r.Header.Date),
	)
	return m
}

// WriteManifest serializes m to path. The format follows the file extension,
// which must be .json, .yaml or .yml.
func WriteManifest(ctx context.Context, path string, m Manifest) error {
	format, err := serializer.FormatFromPath(path)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidArgument, "unsupported manifest format", err,
			map[string]any{"path": path, "supported": serializer.SupportedFormats()})
	}

	w, err := serializer.NewFileWriter(format, path)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to create manifest", err,
			map[string]any{"path": path})
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			slog.Warn("failed to close manifest", "path", path, "error", closeErr)
		}
	}()

	if err := w.Serialize(ctx, m); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to write manifest", err,
			map[string]any{"path": path})
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	if _, err := serializer.FormatFromPath(path); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidArgument, "unsupported manifest format", err,
			map[string]any{"path": path})
	}

	m, err := serializer.FromFile[Manifest](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to read manifest", err,
			map[string]any{"path": path})
	}
	if !m.Kind.IsValid() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unexpected kind %q", m.Kind),
			map[string]any{"path": path})
	}
	return m, nil
}

// Lookup returns the entry for the named page.
func (m *Manifest) Lookup(name string) (ManifestEntry, error) {
	for _, e := range m.Pages {
		if e.Name == name {
			return e, nil
		}
	}
	return ManifestEntry{}, errors.New(errors.ErrCodeNotFound, fmt.Sprintf("page %q not in manifest", name))
}
