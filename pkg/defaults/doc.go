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

// Package defaults provides centralized configuration constants for myapp.
//
// Flag defaults for the runtime CLI and for the manual page generator live
// here so the schema, the generator binary and the tests agree on them.
//
// # Categories
//
//   - Server defaults: bind address and port of the demo server command
//   - Manual page defaults: output directory, section, manual title
//   - Environment: variable names read by both binaries
//
// # Usage
//
//	import "github.com/NVIDIA/myapp/pkg/defaults"
//
//	dir := defaults.ManDir
package defaults
