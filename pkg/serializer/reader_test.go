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
package serializer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"manifest.json", FormatJSON, false},
		{"manifest.JSON", FormatJSON, false},
		{"manifest.yaml", FormatYAML, false},
		{"man/manifest.yml", FormatYAML, false},
		{"pages.txt", "", true},
		{"pages.table", "", true},
		{"manifest", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownExtension)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFileReader_Errors(t *testing.T) {
	_, err := NewFileReader(FormatJSON, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewFileReader(Format("table"), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestFromFile_RoundTrip(t *testing.T) {
	for _, name := range []string{"pages.json", "pages.yaml", "pages.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := []testPage{
				{Name: "myapp", File: "myapp.1", SHA256: "aa"},
				{Name: "myapp-config", File: "myapp-config.1", SHA256: "bb"},
			}

			format, err := FormatFromPath(path)
			require.NoError(t, err)
			w, err := NewFileWriter(format, path)
			require.NoError(t, err)
			require.NoError(t, w.Serialize(context.Background(), want))
			require.NoError(t, w.Close())

			got, err := FromFile[[]testPage](path)
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		})
	}
}

func TestFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unknown extension", func(t *testing.T) {
		_, err := FromFile[testPage](filepath.Join(dir, "pages.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownExtension)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

		_, err := FromFile[testPage](path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile[testPage](filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
