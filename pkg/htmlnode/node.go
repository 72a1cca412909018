// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingValue is returned for leaf nodes without value
	ErrMissingValue = errors.New("leaf node must have a value")
	// ErrMissingTag is returned for parent nodes without tag
	ErrMissingTag = errors.New("parent node must have a tag")
	// ErrEmptyChildren is returned for parent nodes without children
	ErrEmptyChildren = errors.New("parent node must have children")
)

// Node is an element of the HTML document tree
type Node interface {
	// RenderHTML serializes the node and its descendants
	RenderHTML() (string, error)
}

// Render serializes nodes one after another
func Render(nodes ...Node) (string, error) {
	var b strings.Builder
	for i, n := range nodes {
		if n == nil {
			return "", fmt.Errorf("node %d: %w", i, ErrMissingValue)
		}
		html, err := n.RenderHTML()
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	return b.String(), nil
}

// Leaf is a node wrapping a single value
type Leaf struct {
	// Tag is the element name. Empty renders the value as raw text.
	Tag        string
	Value      *string
	Attributes *Attributes
}

// NewLeaf creates Leaf nodes
func NewLeaf(tag string, value *string, attrs *Attributes) (*Leaf, error) {
	if value == nil {
		return nil, ErrMissingValue
	}
	return &Leaf{
		Tag:        tag,
		Value:      value,
		Attributes: attrs,
	}, nil
}

// RenderHTML implements Node#RenderHTML
func (l *Leaf) RenderHTML() (string, error) {
	if l.Value == nil {
		return "", ErrMissingValue
	}
	if l.Tag == "" {
		return *l.Value, nil
	}
	return fmt.Sprintf("<%s%s>%s</%s>", l.Tag, l.Attributes.String(), *l.Value, l.Tag), nil
}

func (l *Leaf) String() string {
	value := "<nil>"
	if l.Value != nil {
		value = *l.Value
	}
	return fmt.Sprintf("LeafNode(%s, %s, %s)", l.Tag, value, strings.TrimSpace(l.Attributes.String()))
}

// Parent is a node wrapping ordered children under a tag
type Parent struct {
	Tag        string
	Children   []Node
	Attributes *Attributes
}

// NewParent creates Parent nodes
func NewParent(tag string, children []Node, attrs *Attributes) (*Parent, error) {
	if tag == "" {
		return nil, ErrMissingTag
	}
	if len(children) == 0 {
		return nil, ErrEmptyChildren
	}
	return &Parent{
		Tag:        tag,
		Children:   children,
		Attributes: attrs,
	}, nil
}

// RenderHTML implements Node#RenderHTML. The tag and children
// are validated again since the tree may be changed after
// construction.
func (p *Parent) RenderHTML() (string, error) {
	if p.Tag == "" {
		return "", ErrMissingTag
	}
	if len(p.Children) == 0 {
		return "", fmt.Errorf("<%s>: %w", p.Tag, ErrEmptyChildren)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<%s%s>", p.Tag, p.Attributes.String())
	for i, child := range p.Children {
		if child == nil {
			return "", fmt.Errorf("<%s> child %d is nil: %w", p.Tag, i, ErrEmptyChildren)
		}
		html, err := child.RenderHTML()
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	fmt.Fprintf(&b, "</%s>", p.Tag)
	return b.String(), nil
}

func (p *Parent) String() string {
	return fmt.Sprintf("ParentNode(%s, children: %d, %s)", p.Tag, len(p.Children), strings.TrimSpace(p.Attributes.String()))
}
