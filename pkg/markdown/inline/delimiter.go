// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"fmt"
	"strings"

	"github.com/gardener/mdforge/pkg/span"
)

// SplitDelimiter splits the plain spans in spans on paired
// occurrences of delimiter. Text between a pair becomes a span
// with the given style. Spans of other styles and empty plain
// spans are passed through unchanged. Empty plain text around
// delimiters is never emitted.
func SplitDelimiter(spans []span.Span, delimiter string, style span.Style) ([]span.Span, error) {
	if !style.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStyle, style)
	}
	if delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	result := make([]span.Span, 0, len(spans))
	for _, s := range spans {
		if s.Style != span.Plain || s.Text == "" {
			result = append(result, s)
			continue
		}
		text := s.Text
		for {
			before, rest, found := strings.Cut(text, delimiter)
			if !found {
				break
			}
			inner, after, closed := strings.Cut(rest, delimiter)
			if !closed {
				return nil, fmt.Errorf("%w for %q", ErrUnbalancedDelimiter, delimiter)
			}
			if before != "" {
				result = append(result, span.New(before, span.Plain))
			}
			result = append(result, span.New(inner, style))
			text = after
		}
		if text != "" {
			result = append(result, span.New(text, span.Plain))
		}
	}
	return result, nil
}
