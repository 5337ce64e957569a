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
// Package serializer reads and writes structured data as JSON or YAML files.
//
// The format follows the file extension:
//   - .json: indented JSON
//   - .yaml, .yml: YAML with two-space indentation
//
// Other extensions are rejected with ErrUnknownExtension.
//
// Usage:
//
//	writer, err := serializer.NewFileWriter(serializer.FormatYAML, "man/manifest.yaml")
//	if err != nil {
//		return err
//	}
//	defer writer.Close()
//	if err := writer.Serialize(ctx, manifest); err != nil {
//		return err
//	}
//
// Reading back, with the format picked from the file extension:
//
//	manifest, err := serializer.FromFile[manpage.Manifest]("man/manifest.yaml")
package serializer
