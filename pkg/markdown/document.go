// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gardener/mdforge/pkg/htmlnode"
	"github.com/gardener/mdforge/pkg/markdown/inline"
	"github.com/hashicorp/go-multierror"
	"github.com/yuin/goldmark/ast"
)

var (
	// ErrEmptyDocument is returned for documents without blocks
	ErrEmptyDocument = errors.New("document has no content")
	// ErrFrontMatter is returned for front matter that is not valid YAML
	ErrFrontMatter = errors.New("invalid front matter")
)

// Document is a markdown document converted into an HTML node tree
type Document struct {
	// Title is the front matter title, or else the text of the first
	// level 1 heading without inline markup
	Title string
	// Meta is the document front matter
	Meta map[string]interface{}
	// Root is the `div` wrapping all document blocks
	Root *htmlnode.Parent
}

// NewDocument converts markdown source into a Document. Every
// top-level block is converted and all failing blocks are reported
// together. A document with any failing block is not converted.
func NewDocument(source []byte) (*Document, error) {
	doc, fm, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrontMatter, err)
	}
	c := &blockConverter{source: source}
	var (
		errs     *multierror.Error
		children []htmlnode.Node
		title    string
		i        int
	)
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		i++
		if h, ok := block.(*ast.Heading); ok && h.Level == 1 && title == "" {
			title = headingTitle(c.text(h))
		}
		nodes, err := c.convert(block)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("block %d: %w", i, err))
			continue
		}
		children = append(children, nodes...)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, ErrEmptyDocument
	}
	root, err := htmlnode.NewParent("div", children, nil)
	if err != nil {
		return nil, err
	}
	if t, ok := fm["title"]; ok && t != nil {
		title = fmt.Sprint(t)
	}
	return &Document{
		Title: title,
		Meta:  fm,
		Root:  root,
	}, nil
}

// headingTitle returns the heading text without inline markup:
// the concatenated texts of its spans
func headingTitle(text string) string {
	spans, err := inline.Parse(text)
	if err != nil {
		return text
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// HTML serializes the document tree
func (d *Document) HTML() (string, error) {
	return d.Root.RenderHTML()
}

// ToHTML converts markdown source into an HTML fragment
func ToHTML(source []byte) (string, error) {
	doc, err := NewDocument(source)
	if err != nil {
		return "", err
	}
	return doc.HTML()
}
