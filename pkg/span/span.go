// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package span

import (
	"fmt"

	"k8s.io/utils/pointer"
)

// Style is the inline style of a Span
type Style int

const (
	// Plain is unstyled text
	Plain Style = iota
	// Bold is text enclosed in `**`
	Bold
	// Italic is text enclosed in `_`
	Italic
	// Code is text enclosed in "`"
	Code
	// Link is a markdown link `[text](url)`
	Link
	// Image is an embedded image `![alt](url)`
	Image
)

var styleNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

// IsValid reports whether s is one of the enumerated styles
func (s Style) IsValid() bool {
	return s >= Plain && s <= Image
}

func (s Style) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

// Span is a piece of text tagged with its inline style and an
// optional destination URL. For images Text is the alt text.
type Span struct {
	Text  string
	Style Style
	URL   *string
}

// New creates a Span without URL
func New(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

// NewWithURL creates a Span referencing url
func NewWithURL(text string, style Style, url string) Span {
	return Span{Text: text, Style: style, URL: pointer.StringPtr(url)}
}

// GetURL returns the span URL or "" if it has none
func (s Span) GetURL() string {
	if s.URL == nil {
		return ""
	}
	return *s.URL
}

// Equal compares text, style and URL. A missing URL is not
// equal to an empty one.
func (s Span) Equal(o Span) bool {
	if s.Text != o.Text || s.Style != o.Style {
		return false
	}
	if s.URL == nil || o.URL == nil {
		return s.URL == nil && o.URL == nil
	}
	return *s.URL == *o.URL
}

func (s Span) String() string {
	url := "<nil>"
	if s.URL != nil {
		url = *s.URL
	}
	return fmt.Sprintf("Span(%s, %s, %s)", s.Text, s.Style, url)
}
