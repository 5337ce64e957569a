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

package checksum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileName is the conventional name for checksum listings.
const FileName = "checksums.txt"

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// SumFile returns the hex-encoded SHA-256 digest of the file at path.
func SumFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s for checksum: %w", path, err)
	}
	return Sum(data), nil
}

// Generate writes a sha256sum-compatible listing to out for all provided
// files. Paths in the listing are relative to baseDir.
//
// Returns an error if the context is canceled, any file cannot be read,
// or the listing cannot be written.
func Generate(ctx context.Context, baseDir, out string, files []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}

	lines := make([]string, 0, len(files))

	for _, file := range files {
		sum, err := SumFile(file)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(baseDir, file)
		if err != nil {
			// If relative path fails, use the path as given
			relPath = file
		}

		lines = append(lines, fmt.Sprintf("%s  %s", sum, filepath.ToSlash(relPath)))
	}

	content := strings.Join(lines, "\n") + "\n"

	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write checksums: %w", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(lines),
		"path", out,
	)

	return nil
}

// Verify compares the files under dir against the expected digests, keyed by
// path relative to dir. It returns the sorted names of files that are missing
// or whose content differs. Read errors other than a missing file abort the
// comparison.
func Verify(ctx context.Context, dir string, want map[string]string) ([]string, error) {
	names := make([]string, 0, len(want))
	for name := range want {
		names = append(names, name)
	}
	sort.Strings(names)

	var mismatched []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled: %w", err)
		}

		got, err := SumFile(filepath.Join(dir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				mismatched = append(mismatched, name)
				continue
			}
			return nil, err
		}

		if got != want[name] {
			mismatched = append(mismatched, name)
		}
	}

	return mismatched, nil
}
