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
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/errors"
	"github.com/NVIDIA/myapp/pkg/positional"
)

// Page is one rendered manual page.
type Page struct {
	// Name is the page name, e.g. "myapp-config-get".
	Name string `json:"name" yaml:"name"`
	// File is the file name inside the output directory.
	File string `json:"file" yaml:"file"`
	// Command is the space-separated command path.
	Command string `json:"command" yaml:"command"`
	// Content holds the rendered bytes.
	Content []byte `json:"-" yaml:"-"`
}

const pageTemplate = `{{define "flags"}}{{range .}}{{.Spec}}
	{{.Usage}}

{{end}}{{end}}% "{{.Title}}" "{{.Section}}" "{{.Date}}" "{{.Source}}" "{{.Manual}}"
# NAME
{{.Name}} \- {{.Usage}}

# SYNOPSIS
{{.Synopsis}}

# DESCRIPTION
{{.Description}}

{{if .Arguments}}# ARGUMENTS
{{range .Arguments}}**{{.Placeholder}}**
	{{.Usage}}{{if .Required}} (required){{end}}

{{end}}{{end}}{{if .Options}}# OPTIONS
{{template "flags" .Options}}{{end}}{{if .Inherited}}# OPTIONS INHERITED FROM PARENT COMMANDS
{{template "flags" .Inherited}}{{end}}{{if .Commands}}# COMMANDS
{{range .Commands}}**{{.Name}}**
	{{.Usage}}. See {{.Ref}}.

{{end}}{{end}}{{if .Environment}}# ENVIRONMENT
{{range .Environment}}**{{.Name}}**
	Default value for {{.Flag}}.

{{end}}{{end}}{{if .Version}}# VERSION
{{.Version}}

{{end}}{{if .SeeAlso}}# SEE ALSO
{{join .SeeAlso ", "}}
{{end}}`

var pageTmpl = template.Must(template.New("page").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(pageTemplate))

type pageView struct {
	Title       string
	Section     string
	Date        string
	Source      string
	Manual      string
	Name        string
	Usage       string
	Synopsis    string
	Description string
	Arguments   []argView
	Options     []flagView
	Inherited   []flagView
	Commands    []commandView
	Environment []envView
	Version     string
	SeeAlso     []string
}

type argView struct {
	Placeholder string
	Usage       string
	Required    bool
}

type flagView struct {
	Spec  string
	Usage string
	Env   []string
}

type commandView struct {
	Name  string
	Usage string
	Ref   string
}

type envView struct {
	Name string
	Flag string
}

// Render renders every visible node of root in walk order.
func Render(root *cli.Command, h Header) ([]Page, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "command tree is nil")
	}
	h = h.withDefaults(root)
	if err := h.validate(); err != nil {
		return nil, err
	}

	var pages []Page
	err := Walk(root, func(n Node) error {
		content, err := RenderNode(n, h)
		if err != nil {
			return err
		}
		pages = append(pages, Page{
			Name:    n.PageName(),
			File:    FileName(n.Path, h.Section, h.Format),
			Command: n.CommandPath(),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// RenderNode renders a single page. h is used as given; Render fills in its
// defaults first.
func RenderNode(n Node, h Header) ([]byte, error) {
	md, err := renderMarkdown(n, h)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to render page", err,
			map[string]any{"page": n.PageName()})
	}
	if h.Format == FormatMarkdown {
		return md, nil
	}
	return md2man.Render(md), nil
}

func renderMarkdown(n Node, h Header) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, newPageView(n, h)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newPageView(n Node, h Header) pageView {
	cmd := n.Command
	name := n.PageName()

	v := pageView{
		Title:       h.title(name),
		Section:     h.Section,
		Date:        h.date(),
		Source:      h.Source,
		Manual:      h.Manual,
		Name:        name,
		Usage:       strings.TrimSpace(cmd.Usage),
		Description: strings.TrimSpace(cmd.Description),
		Options:     ownFlags(n),
		Inherited:   inheritedFlags(n),
	}
	if v.Description == "" {
		v.Description = v.Usage
	}

	args := positional.Of(cmd)
	for _, a := range args {
		v.Arguments = append(v.Arguments, argView{
			Placeholder: escape(a.Placeholder()),
			Usage:       a.Usage,
			Required:    a.Required,
		})
	}

	children := visibleCommands(cmd)
	for _, sub := range children {
		v.Commands = append(v.Commands, commandView{
			Name:  sub.Name,
			Usage: strings.TrimSuffix(strings.TrimSpace(sub.Usage), "."),
			Ref:   ref(PageName(append(n.Path[:len(n.Path):len(n.Path)], sub.Name)), h.Section),
		})
	}

	v.Synopsis = synopsis(n, len(children) > 0, args)

	seen := make(map[string]bool)
	for _, f := range append(append([]flagView{}, v.Options...), v.Inherited...) {
		for _, env := range f.Env {
			if seen[env] {
				continue
			}
			seen[env] = true
			v.Environment = append(v.Environment, envView{Name: env, Flag: f.longName()})
		}
	}

	if n.Parent() == nil && cmd.Version != "" && !cmd.HideVersion {
		v.Version = cmd.Version
	}

	if len(n.Ancestors) > 0 {
		v.SeeAlso = append(v.SeeAlso, ref(PageName(n.Path[:len(n.Path)-1]), h.Section))
	}
	for _, c := range v.Commands {
		v.SeeAlso = append(v.SeeAlso, c.Ref)
	}

	return v
}

func synopsis(n Node, hasCommands bool, args []positional.Arg) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** [OPTIONS]", n.CommandPath())
	if hasCommands {
		b.WriteString(" COMMAND")
	}
	if len(args) > 0 {
		b.WriteString(" " + escape(positional.Usage(args)))
	}
	return b.String()
}

func ref(page, section string) string {
	return fmt.Sprintf("**%s(%s)**", page, section)
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`<`, `\<`,
	`>`, `\>`,
	`[`, `\[`,
	`]`, `\]`,
)

// escape protects literal text from Markdown interpretation.
func escape(s string) string {
	return mdEscaper.Replace(s)
}
