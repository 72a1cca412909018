// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package htmlnode_test

import (
	"strings"

	"github.com/gardener/mdforge/pkg/htmlnode"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"golang.org/x/net/html"
	"k8s.io/utils/pointer"
)

func mustLeaf(tag, value string, attrs *htmlnode.Attributes) *htmlnode.Leaf {
	l, err := htmlnode.NewLeaf(tag, pointer.StringPtr(value), attrs)
	Expect(err).NotTo(HaveOccurred())
	return l
}

var _ = Describe("HTML nodes", func() {
	Context("#Leaf", func() {
		It("renders the value verbatim without tag", func() {
			Expect(mustLeaf("", "Text with <special> & characters", nil).RenderHTML()).To(Equal("Text with <special> & characters"))
		})
		It("renders tag and attributes", func() {
			l := mustLeaf("a", "Click", htmlnode.NewAttributes("href", "x.com"))
			Expect(l.RenderHTML()).To(Equal(`<a href="x.com">Click</a>`))
		})
		It("renders an empty value", func() {
			l := mustLeaf("img", "", htmlnode.NewAttributes("src", "u", "alt", "a"))
			Expect(l.RenderHTML()).To(Equal(`<img src="u" alt="a"></img>`))
		})
		It("fails construction without value", func() {
			l, err := htmlnode.NewLeaf("b", nil, nil)
			Expect(err).To(MatchError(htmlnode.ErrMissingValue))
			Expect(l).To(BeNil())
		})
		It("fails rendering when the value is removed after construction", func() {
			l := mustLeaf("b", "x", nil)
			l.Value = nil
			_, err := l.RenderHTML()
			Expect(err).To(MatchError(htmlnode.ErrMissingValue))
		})
		It("has a readable representation", func() {
			l := mustLeaf("a", "Click", htmlnode.NewAttributes("href", "x.com"))
			Expect(l.String()).To(Equal(`LeafNode(a, Click, href="x.com")`))
		})
	})

	Context("#Parent", func() {
		var (
			bold  *htmlnode.Leaf
			plain *htmlnode.Leaf
		)
		BeforeEach(func() {
			bold = mustLeaf("b", "Bold text", nil)
			plain = mustLeaf("", "Normal text", nil)
		})
		It("renders children in order", func() {
			p, err := htmlnode.NewParent("p", []htmlnode.Node{bold, plain}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.RenderHTML()).To(Equal("<p><b>Bold text</b>Normal text</p>"))
		})
		It("renders nested parents", func() {
			inner, err := htmlnode.NewParent("span", []htmlnode.Node{bold}, htmlnode.NewAttributes("class", "x"))
			Expect(err).NotTo(HaveOccurred())
			outer, err := htmlnode.NewParent("div", []htmlnode.Node{plain, inner}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(outer.RenderHTML()).To(Equal(`<div>Normal text<span class="x"><b>Bold text</b></span></div>`))
		})
		It("produces markup that parses back into the same structure", func() {
			link := mustLeaf("a", "Click", htmlnode.NewAttributes("href", "x.com", "target", "_blank"))
			p, err := htmlnode.NewParent("p", []htmlnode.Node{plain, link}, nil)
			Expect(err).NotTo(HaveOccurred())
			out, err := p.RenderHTML()
			Expect(err).NotTo(HaveOccurred())

			nodes, err := html.ParseFragment(strings.NewReader(out), &html.Node{Type: html.ElementNode, Data: "body"})
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes).To(HaveLen(1))
			para := nodes[0]
			Expect(para.Data).To(Equal("p"))
			Expect(para.FirstChild.Type).To(Equal(html.TextNode))
			Expect(para.FirstChild.Data).To(Equal("Normal text"))
			a := para.LastChild
			Expect(a.Data).To(Equal("a"))
			Expect(a.Attr).To(Equal([]html.Attribute{{Key: "href", Val: "x.com"}, {Key: "target", Val: "_blank"}}))
		})
		It("fails construction without tag", func() {
			_, err := htmlnode.NewParent("", []htmlnode.Node{bold}, nil)
			Expect(err).To(MatchError(htmlnode.ErrMissingTag))
		})
		It("fails construction without children", func() {
			_, err := htmlnode.NewParent("p", nil, nil)
			Expect(err).To(MatchError(htmlnode.ErrEmptyChildren))
			_, err = htmlnode.NewParent("p", []htmlnode.Node{}, nil)
			Expect(err).To(MatchError(htmlnode.ErrEmptyChildren))
		})
		It("fails rendering when mutated after construction", func() {
			p, err := htmlnode.NewParent("p", []htmlnode.Node{bold}, nil)
			Expect(err).NotTo(HaveOccurred())
			p.Children = nil
			_, err = p.RenderHTML()
			Expect(err).To(MatchError(htmlnode.ErrEmptyChildren))
			p.Children = []htmlnode.Node{bold}
			p.Tag = ""
			_, err = p.RenderHTML()
			Expect(err).To(MatchError(htmlnode.ErrMissingTag))
		})
		It("fails rendering on nil child", func() {
			p := &htmlnode.Parent{Tag: "p", Children: []htmlnode.Node{bold, nil}}
			_, err := p.RenderHTML()
			Expect(err).To(MatchError(htmlnode.ErrEmptyChildren))
		})
		It("propagates child failures", func() {
			broken := &htmlnode.Leaf{Tag: "b"}
			p := &htmlnode.Parent{Tag: "p", Children: []htmlnode.Node{bold, broken}}
			_, err := p.RenderHTML()
			Expect(err).To(MatchError(htmlnode.ErrMissingValue))
		})
	})

	Context("#Render", func() {
		It("concatenates nodes", func() {
			Expect(htmlnode.Render(mustLeaf("i", "a", nil), mustLeaf("", " b", nil))).To(Equal("<i>a</i> b"))
		})
		It("renders nothing for no nodes", func() {
			Expect(htmlnode.Render()).To(Equal(""))
		})
	})
})
