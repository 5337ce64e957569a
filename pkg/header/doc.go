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

// Package header provides the common header for serialized myapp artifacts.
//
// The Header carries Kind, APIVersion and free-form Metadata, so readers can
// tell what a file is before decoding the rest of it:
//
//	kind: ManPageManifest
//	apiVersion: myapp.nvidia.com/v1
//	metadata:
//	  version: dev
//
// Build one with the functional options and embed it inline in the artifact
// type:
//
//	h := header.New(header.WithKind(header.KindManPageManifest), header.WithVersion(version))
//
//	type Manifest struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Pages []Entry `json:"pages" yaml:"pages"`
//	}
package header
