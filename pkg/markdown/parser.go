// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	// parser extension for Frontmatter support. Inline content is
	// not taken from goldmark, only the block structure.
	extensions = []goldmark.Extender{
		meta.Meta,
	}
	gmParser = goldmark.New(goldmark.WithExtensions(extensions...))
)

// Parse markdown content into a block AST and its front matter.
// Malformed front matter is an error.
func Parse(source []byte) (ast.Node, map[string]interface{}, error) {
	reader := text.NewReader(source)
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(reader, parser.WithContext(context))
	fm, err := meta.TryGet(context)
	if err != nil {
		return nil, nil, err
	}
	return doc, fm, nil
}
