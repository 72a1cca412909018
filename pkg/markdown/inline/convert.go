// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"fmt"

	"github.com/gardener/mdforge/pkg/htmlnode"
	"github.com/gardener/mdforge/pkg/span"
	"k8s.io/utils/pointer"
)

type converter func(s span.Span) *htmlnode.Leaf

var converters = map[span.Style]converter{
	span.Plain: func(s span.Span) *htmlnode.Leaf {
		return &htmlnode.Leaf{Value: pointer.StringPtr(s.Text)}
	},
	span.Bold: func(s span.Span) *htmlnode.Leaf {
		return &htmlnode.Leaf{Tag: "b", Value: pointer.StringPtr(s.Text)}
	},
	span.Italic: func(s span.Span) *htmlnode.Leaf {
		return &htmlnode.Leaf{Tag: "i", Value: pointer.StringPtr(s.Text)}
	},
	span.Code: func(s span.Span) *htmlnode.Leaf {
		return &htmlnode.Leaf{Tag: "code", Value: pointer.StringPtr(s.Text)}
	},
	span.Link: func(s span.Span) *htmlnode.Leaf {
		return &htmlnode.Leaf{
			Tag:        "a",
			Value:      pointer.StringPtr(s.Text),
			Attributes: htmlnode.NewAttributes("href", s.GetURL()),
		}
	},
	span.Image: func(s span.Span) *htmlnode.Leaf {
		return &htmlnode.Leaf{
			Tag:        "img",
			Value:      pointer.StringPtr(""),
			Attributes: htmlnode.NewAttributes("src", s.GetURL(), "alt", s.Text),
		}
	},
}

// ToHTMLNode converts a span into the leaf node representing
// its style
func ToHTMLNode(s span.Span) (htmlnode.Node, error) {
	convert, ok := converters[s.Style]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStyle, s.Style)
	}
	return convert(s), nil
}

// ToHTMLNodes converts spans in order
func ToHTMLNodes(spans []span.Span) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := ToHTMLNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
