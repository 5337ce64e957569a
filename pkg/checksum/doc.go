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

// Package checksum computes SHA-256 digests of generated manual pages.
//
// Digests are hex encoded. Checksum listings use the sha256sum format, one
// "<digest>  <relative path>" line per file, so a generated directory can be
// verified without this tool:
//
//	cd man && sha256sum -c checksums.txt
//
// Usage:
//
//	sum := checksum.Sum(page.Content)
//	stale, err := checksum.Verify(ctx, "man", map[string]string{"myapp.1": sum})
package checksum
