// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown_test

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gardener/mdforge/pkg/markdown"
	"github.com/gardener/mdforge/pkg/markdown/inline"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Markdown documents", func() {
	Context("#NewDocument", func() {
		It("takes the title from the front matter", func() {
			doc, err := markdown.NewDocument([]byte("---\ntitle: Hello\nweight: 2\n---\n# Other\n\ntext\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Title).To(Equal("Hello"))
			Expect(doc.Meta).To(HaveKeyWithValue("weight", 2))
			Expect(doc.HTML()).To(Equal("<div><h1>Other</h1><p>text</p></div>"))
		})
		It("takes the title from the first level 1 heading", func() {
			doc, err := markdown.NewDocument([]byte("## Sub\n\n# My _Page_\n\n# Second\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Title).To(Equal("My Page"))
		})
		It("strips inline markup from the heading title", func() {
			doc, err := markdown.NewDocument([]byte("# The **bold** `title` [link](u) ![img](i.png)\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Title).To(Equal("The bold title link img"))
		})
		It("fails for malformed front matter", func() {
			doc, err := markdown.NewDocument([]byte("---\ntitle: [unclosed\n---\n# Heading\n\nbody\n"))
			Expect(doc).To(BeNil())
			Expect(err).To(MatchError(markdown.ErrFrontMatter))
		})
		It("has no title without front matter and heading", func() {
			doc, err := markdown.NewDocument([]byte("just text\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Title).To(BeEmpty())
		})
		It("reports every block with unbalanced delimiters", func() {
			doc, err := markdown.NewDocument([]byte("ok\n\nbad **x\n\nfine\n\nbad `y\n"))
			Expect(doc).To(BeNil())
			Expect(err).To(MatchError(inline.ErrUnbalancedDelimiter))
			Expect(err.Error()).To(ContainSubstring("block 2"))
			Expect(err.Error()).To(ContainSubstring("block 4"))
			Expect(err.Error()).NotTo(ContainSubstring("block 1"))
		})
		It("fails for nested blocks with unbalanced delimiters", func() {
			_, err := markdown.NewDocument([]byte("- ok\n- not _ok\n"))
			Expect(err).To(MatchError(inline.ErrUnbalancedDelimiter))
		})
		It("fails for empty documents", func() {
			_, err := markdown.NewDocument([]byte(""))
			Expect(err).To(MatchError(markdown.ErrEmptyDocument))
			_, err = markdown.NewDocument([]byte("---\ntitle: only front matter\n---\n"))
			Expect(err).To(MatchError(markdown.ErrEmptyDocument))
		})
		It("keeps raw HTML blocks", func() {
			out, err := markdown.ToHTML([]byte("<section class=\"x\">\nhi\n</section>\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("<section class=\"x\">\nhi\n</section>"))
		})
		It("renders empty list items", func() {
			out, err := markdown.ToHTML([]byte("-\n- b\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("<div><ul><li></li><li>b</li></ul></div>"))
		})
	})

	Context("rendered structure", func() {
		var dom *goquery.Document
		BeforeEach(func() {
			source := strings.Join([]string{
				"# Guide",
				"",
				"Read the **docs** at [gardener](https://gardener.cloud).",
				"",
				"- first _item_",
				"- second ![logo](logo.png)",
				"",
				"> a `quote`",
			}, "\n")
			out, err := markdown.ToHTML([]byte(source))
			Expect(err).NotTo(HaveOccurred())
			dom, err = goquery.NewDocumentFromReader(strings.NewReader(out))
			Expect(err).NotTo(HaveOccurred())
		})
		It("nests inline elements in blocks", func() {
			Expect(dom.Find("div > h1").Text()).To(Equal("Guide"))
			Expect(dom.Find("div > p > b").Text()).To(Equal("docs"))
			href, ok := dom.Find("div > p > a").Attr("href")
			Expect(ok).To(BeTrue())
			Expect(href).To(Equal("https://gardener.cloud"))
		})
		It("renders lists", func() {
			items := dom.Find("ul > li")
			Expect(items.Length()).To(Equal(2))
			Expect(items.First().Find("i").Text()).To(Equal("item"))
			src, _ := items.Last().Find("img").Attr("src")
			alt, _ := items.Last().Find("img").Attr("alt")
			Expect(src).To(Equal("logo.png"))
			Expect(alt).To(Equal("logo"))
		})
		It("renders block quotes", func() {
			Expect(dom.Find("blockquote > p > code").Text()).To(Equal("quote"))
		})
	})
})
