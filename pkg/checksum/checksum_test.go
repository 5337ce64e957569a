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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSum(t *testing.T) {
	// sha256 of the empty input
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Sum(nil))
	assert.Len(t, Sum([]byte("myapp")), 64)
	assert.NotEqual(t, Sum([]byte("a")), Sum([]byte("b")))
}

func TestSumFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "myapp.1", "content")

	got, err := SumFile(path)
	require.NoError(t, err)
	assert.Equal(t, Sum([]byte("content")), got)

	_, err = SumFile(filepath.Join(dir, "missing.1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("generates checksums for files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file1 := writeFile(t, dir, "myapp.1", "content1")
		file2 := writeFile(t, dir, "myapp-server.1", "content2")
		out := filepath.Join(dir, FileName)

		require.NoError(t, Generate(context.Background(), dir, out, []string{file1, file2}))

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, Sum([]byte("content1"))+"  myapp.1", lines[0])
		assert.Equal(t, Sum([]byte("content2"))+"  myapp-server.1", lines[1])
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dir := t.TempDir()
		err := Generate(ctx, dir, filepath.Join(dir, FileName), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := Generate(context.Background(), dir, filepath.Join(dir, FileName),
			[]string{filepath.Join(dir, "missing.1")})
		require.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "myapp.1", "same")
	writeFile(t, dir, "myapp-config.1", "changed")

	want := map[string]string{
		"myapp.1":        Sum([]byte("same")),
		"myapp-config.1": Sum([]byte("original")),
		"myapp-server.1": Sum([]byte("new")),
	}

	got, err := Verify(context.Background(), dir, want)
	require.NoError(t, err)
	assert.Equal(t, []string{"myapp-config.1", "myapp-server.1"}, got)
}

func TestVerify_AllMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "myapp.1", "same")

	got, err := Verify(context.Background(), dir, map[string]string{"myapp.1": Sum([]byte("same"))})
	require.NoError(t, err)
	assert.Empty(t, got)
}
