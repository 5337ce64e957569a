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
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/myapp/pkg/defaults"
	"github.com/NVIDIA/myapp/pkg/errors"
)

// Format selects the on-disk representation of generated pages.
type Format string

const (
	// FormatMan writes roff pages readable by man(1).
	FormatMan Format = "man"
	// FormatMarkdown writes the Markdown source the roff pages are built from.
	FormatMarkdown Format = "markdown"
)

// dateLayout matches the month-year stamp used by most generated man pages.
const dateLayout = "Jan 2006"

// SupportedFormats returns the accepted values for Format.
func SupportedFormats() []string {
	return []string{string(FormatMan), string(FormatMarkdown)}
}

// ParseFormat validates s as a Format. The empty string selects FormatMan.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatMan:
		return FormatMan, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("invalid format %q, supported values: %s", s, strings.Join(SupportedFormats(), ", ")))
	}
}

// Header is the title block shared by every generated page.
type Header struct {
	// Title overrides the page title. Defaults to the upper-cased page name.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Section is the manual section. Defaults to "1".
	Section string `json:"section" yaml:"section"`
	// Date is printed in the page footer. Nil leaves it empty.
	Date *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	// Source names the software the page documents. Defaults to "<root> <version>".
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Manual names the manual the page belongs to. Defaults to "<Root> Manual".
	Manual string `json:"manual,omitempty" yaml:"manual,omitempty"`
	// Format selects roff or Markdown output. Defaults to FormatMan.
	Format Format `json:"format" yaml:"format"`
}

// withDefaults fills the unset fields of h from root.
func (h Header) withDefaults(root *cli.Command) Header {
	if h.Section == "" {
		h.Section = defaults.ManSection
	}
	if h.Format == "" {
		h.Format = FormatMan
	}
	if h.Source == "" {
		h.Source = strings.TrimSpace(root.Name + " " + root.Version)
	}
	if h.Manual == "" {
		h.Manual = cases.Title(language.English).String(root.Name) + " Manual"
	}
	return h
}

func (h Header) validate() error {
	if h.Format != FormatMan && h.Format != FormatMarkdown {
		return errors.New(errors.ErrCodeInvalidArgument, fmt.Sprintf("invalid format %q", h.Format))
	}
	if strings.ContainsAny(h.Section, "/\\ \t\n") {
		return errors.New(errors.ErrCodeInvalidArgument, fmt.Sprintf("invalid section %q", h.Section))
	}
	return nil
}

// title returns the title for a page, honoring an explicit override.
func (h Header) title(pageName string) string {
	if h.Title != "" {
		return h.Title
	}
	return cases.Upper(language.Und).String(pageName)
}

func (h Header) date() string {
	if h.Date == nil {
		return ""
	}
	return h.Date.UTC().Format(dateLayout)
}
