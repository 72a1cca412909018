// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"regexp"

	"github.com/gardener/mdforge/pkg/span"
)

var (
	imageRgx = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	// links are images without the leading `!`, which is checked
	// explicitly by findLinks
	linkRgx = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Reference is the text and destination of a markdown link or
// the alt text and source of an image
type Reference struct {
	Text string
	URL  string
}

type reference struct {
	Reference
	start int
	end   int
}

func newReference(text string, offset int, loc []int) reference {
	return reference{
		Reference: Reference{
			Text: text[offset+loc[2] : offset+loc[3]],
			URL:  text[offset+loc[4] : offset+loc[5]],
		},
		start: offset + loc[0],
		end:   offset + loc[1],
	}
}

func findImages(text string) []reference {
	var refs []reference
	for _, loc := range imageRgx.FindAllStringSubmatchIndex(text, -1) {
		refs = append(refs, newReference(text, 0, loc))
	}
	return refs
}

// findLinks scans for leftmost link matches that are not preceded
// by `!`. A rejected candidate resumes the scan one byte after its
// start so links nested in image alt text are still found.
func findLinks(text string) []reference {
	var refs []reference
	for pos := 0; pos < len(text); {
		loc := linkRgx.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if start > 0 && text[start-1] == '!' {
			pos = start + 1
			continue
		}
		ref := newReference(text, pos, loc)
		refs = append(refs, ref)
		pos = ref.end
	}
	return refs
}

func toReferences(refs []reference) []Reference {
	result := make([]Reference, 0, len(refs))
	for _, r := range refs {
		result = append(result, r.Reference)
	}
	return result
}

// ExtractImages returns the `![alt](url)` references in text in
// document order
func ExtractImages(text string) []Reference {
	return toReferences(findImages(text))
}

// ExtractLinks returns the `[text](url)` references in text in
// document order. Image references are not links.
func ExtractLinks(text string) []Reference {
	return toReferences(findLinks(text))
}

// SplitImages extracts image references from plain spans into
// image spans
func SplitImages(spans []span.Span) []span.Span {
	return splitReferences(spans, findImages, span.Image)
}

// SplitLinks extracts link references from plain spans into
// link spans
func SplitLinks(spans []span.Span) []span.Span {
	return splitReferences(spans, findLinks, span.Link)
}

func splitReferences(spans []span.Span, find func(string) []reference, style span.Style) []span.Span {
	result := make([]span.Span, 0, len(spans))
	for _, s := range spans {
		if s.Style != span.Plain {
			result = append(result, s)
			continue
		}
		refs := find(s.Text)
		if len(refs) == 0 {
			result = append(result, s)
			continue
		}
		var last int
		for _, ref := range refs {
			if before := s.Text[last:ref.start]; before != "" {
				result = append(result, span.New(before, span.Plain))
			}
			result = append(result, span.NewWithURL(ref.Text, style, ref.URL))
			last = ref.end
		}
		if rest := s.Text[last:]; rest != "" {
			result = append(result, span.New(rest, span.Plain))
		}
	}
	return result
}
