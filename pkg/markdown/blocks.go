// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gardener/mdforge/pkg/htmlnode"
	"github.com/gardener/mdforge/pkg/markdown/inline"
	"github.com/yuin/goldmark/ast"
	"k8s.io/utils/pointer"
)

// blockConverter turns goldmark block nodes into HTML nodes. Only
// the block structure and the raw source lines are taken from the
// goldmark AST, inline content is rendered by package inline.
type blockConverter struct {
	source []byte
}

func (c *blockConverter) convert(n ast.Node) ([]htmlnode.Node, error) {
	switch v := n.(type) {
	case *ast.TextBlock:
		return inline.ToHTMLNodesFromText(c.text(v))
	case *ast.Paragraph:
		return c.inlineParent("p", c.text(v), nil)
	case *ast.Heading:
		return c.inlineParent(fmt.Sprintf("h%d", v.Level), c.text(v), nil)
	case *ast.FencedCodeBlock:
		var attrs *htmlnode.Attributes
		if lang := v.Language(c.source); len(lang) > 0 {
			attrs = htmlnode.NewAttributes("class", "language-"+string(lang))
		}
		return c.code(c.raw(v), attrs)
	case *ast.CodeBlock:
		return c.code(c.raw(v), nil)
	case *ast.Blockquote:
		return c.parent("blockquote", v, nil)
	case *ast.List:
		tag := "ul"
		var attrs *htmlnode.Attributes
		if v.IsOrdered() {
			tag = "ol"
			if v.Start != 1 {
				attrs = htmlnode.NewAttributes("start", strconv.Itoa(v.Start))
			}
		}
		return c.parent(tag, v, attrs)
	case *ast.ListItem:
		return c.parent("li", v, nil)
	case *ast.ThematicBreak:
		return []htmlnode.Node{&htmlnode.Leaf{Tag: "hr", Value: pointer.StringPtr("")}}, nil
	case *ast.HTMLBlock:
		raw := c.raw(v)
		if v.HasClosure() {
			raw += string(v.ClosureLine.Value(c.source))
		}
		return []htmlnode.Node{&htmlnode.Leaf{Value: pointer.StringPtr(raw)}}, nil
	}
	// unsupported blocks keep their text
	return c.inlineParent("p", c.text(n), nil)
}

// text joins the trimmed block lines with a single space
func (c *blockConverter) text(n ast.Node) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if l := strings.TrimSpace(string(seg.Value(c.source))); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}

// raw concatenates the block lines unchanged
func (c *blockConverter) raw(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}

func (c *blockConverter) inlineParent(tag, text string, attrs *htmlnode.Attributes) ([]htmlnode.Node, error) {
	children, err := inline.ToHTMLNodesFromText(text)
	if err != nil {
		return nil, err
	}
	p, err := htmlnode.NewParent(tag, children, attrs)
	if err != nil {
		return nil, err
	}
	return []htmlnode.Node{p}, nil
}

func (c *blockConverter) code(raw string, attrs *htmlnode.Attributes) ([]htmlnode.Node, error) {
	code := &htmlnode.Leaf{Tag: "code", Value: pointer.StringPtr(raw), Attributes: attrs}
	pre, err := htmlnode.NewParent("pre", []htmlnode.Node{code}, nil)
	if err != nil {
		return nil, err
	}
	return []htmlnode.Node{pre}, nil
}

// parent converts the block children of n and wraps them under
// tag. Blocks without children get an empty text child.
func (c *blockConverter) parent(tag string, n ast.Node, attrs *htmlnode.Attributes) ([]htmlnode.Node, error) {
	var children []htmlnode.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		nodes, err := c.convert(child)
		if err != nil {
			return nil, err
		}
		children = append(children, nodes...)
	}
	if len(children) == 0 {
		children = []htmlnode.Node{&htmlnode.Leaf{Value: pointer.StringPtr("")}}
	}
	p, err := htmlnode.NewParent(tag, children, attrs)
	if err != nil {
		return nil, err
	}
	return []htmlnode.Node{p}, nil
}
