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

package header

import (
	"time"
)

// Kind represents the type of a myapp artifact.
type Kind string

// Valid Kind constants for all myapp artifact types.
const (
	KindManPageManifest Kind = "ManPageManifest"
)

// APIVersion is the schema version written into artifact headers.
const APIVersion = "myapp.nvidia.com/v1"

// Metadata keys written by WithVersion and WithDate.
const (
	MetadataVersion = "version"
	MetadataDate    = "date"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindManPageManifest:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithVersion records the producing version. An empty version is left out.
func WithVersion(version string) Option {
	return func(h *Header) {
		if version != "" {
			WithMetadata(MetadataVersion, version)(h)
		}
	}
}

// WithDate records the production date in RFC 3339 form. The date comes from
// the caller rather than the clock so regenerated artifacts stay
// byte-identical; a nil date is left out.
func WithDate(date *time.Time) Option {
	return func(h *Header) {
		if date != nil {
			WithMetadata(MetadataDate, date.UTC().Format(time.RFC3339))(h)
		}
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a new Header instance with the provided functional options.
func New(opts ...Option) *Header {
	h := &Header{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header identifies a serialized artifact. It follows Kubernetes-style
// resource conventions with Kind, APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the artifact.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the artifact.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing how the artifact was produced.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
