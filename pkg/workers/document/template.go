// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package document

import "bytes"

var (
	titlePlaceholder   = []byte("{{ Title }}")
	contentPlaceholder = []byte("{{ Content }}")
)

// ApplyTemplate substitutes every {{ Title }} and {{ Content }} placeholder
// in tmpl. The substituted values are not scanned for placeholders again.
func ApplyTemplate(tmpl []byte, title, content string) []byte {
	var b bytes.Buffer
	b.Grow(len(tmpl) + len(content))
	for len(tmpl) > 0 {
		t := bytes.Index(tmpl, titlePlaceholder)
		c := bytes.Index(tmpl, contentPlaceholder)
		if t < 0 && c < 0 {
			b.Write(tmpl)
			break
		}
		if c < 0 || (t >= 0 && t < c) {
			b.Write(tmpl[:t])
			b.WriteString(title)
			tmpl = tmpl[t+len(titlePlaceholder):]
			continue
		}
		b.Write(tmpl[:c])
		b.WriteString(content)
		tmpl = tmpl[c+len(contentPlaceholder):]
	}
	return b.Bytes()
}
