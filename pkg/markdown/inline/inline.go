// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"github.com/gardener/mdforge/pkg/htmlnode"
	"github.com/gardener/mdforge/pkg/span"
)

// Pass transforms a whole span sequence into a new one
type Pass struct {
	Name string
	Run  func(spans []span.Span) ([]span.Span, error)
}

func delimiterPass(delimiter string, style span.Style) Pass {
	return Pass{
		Name: style.String(),
		Run: func(spans []span.Span) ([]span.Span, error) {
			return SplitDelimiter(spans, delimiter, style)
		},
	}
}

// Passes run in this order. Images and links are extracted first
// so destinations and link text are never split on delimiters.
var Passes = []Pass{
	{
		Name: span.Image.String(),
		Run: func(spans []span.Span) ([]span.Span, error) {
			return SplitImages(spans), nil
		},
	},
	{
		Name: span.Link.String(),
		Run: func(spans []span.Span) ([]span.Span, error) {
			return SplitLinks(spans), nil
		},
	},
	delimiterPass("**", span.Bold),
	delimiterPass("_", span.Italic),
	delimiterPass("`", span.Code),
}

// Parse runs all passes over text
func Parse(text string) ([]span.Span, error) {
	spans := []span.Span{span.New(text, span.Plain)}
	for _, p := range Passes {
		var err error
		if spans, err = p.Run(spans); err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// ToHTMLNodesFromText parses text and converts the spans into nodes
func ToHTMLNodesFromText(text string) ([]htmlnode.Node, error) {
	spans, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return ToHTMLNodes(spans)
}

// RenderInline renders inline markdown text to HTML
func RenderInline(text string) (string, error) {
	nodes, err := ToHTMLNodesFromText(text)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(nodes...)
}
