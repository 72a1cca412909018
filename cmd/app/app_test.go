// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gardener/mdforge/cmd/app"
	"github.com/gardener/mdforge/cmd/configuration"
	"github.com/gardener/mdforge/pkg/markdown/inline"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("mdforge", func() {
	var (
		args []string
		in   string
		out  bytes.Buffer
		err  error
	)
	BeforeEach(func() {
		in = ""
		out.Reset()
	})
	JustBeforeEach(func() {
		cmd := app.NewCommand(context.TODO())
		cmd.SetArgs(args)
		cmd.SetIn(strings.NewReader(in))
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		err = cmd.Execute()
	})

	Describe("inline", func() {
		When("text is given as arguments", func() {
			BeforeEach(func() {
				args = []string{"inline", "**bold**", "and", "[link](https://x.io)"}
			})
			It("renders the joined arguments", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("<b>bold</b> and <a href=\"https://x.io\">link</a>\n"))
			})
		})
		When("text is read from stdin", func() {
			BeforeEach(func() {
				args = []string{"inline"}
				in = "`code` _it_\n"
			})
			It("renders the input without the trailing newline", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("<code>code</code> <i>it</i>\n"))
			})
		})
		When("delimiters are unbalanced", func() {
			BeforeEach(func() {
				args = []string{"inline", "**open"}
			})
			It("fails", func() {
				Expect(err).To(MatchError(inline.ErrUnbalancedDelimiter))
				Expect(out.String()).To(BeEmpty())
			})
		})
	})

	Describe("spans", func() {
		BeforeEach(func() {
			args = []string{"spans", "plain **strong**"}
		})
		It("prints the spans", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring(`"plain "`))
			Expect(out.String()).To(ContainSubstring(`"strong"`))
		})
	})

	Describe("render", func() {
		var (
			tmp  string
			src  string
			dest string
			cfg  string
		)
		BeforeEach(func() {
			tmp = filepath.Join(os.TempDir(), fmt.Sprintf("test%s", uuid.New().String()))
			src = filepath.Join(tmp, "src")
			dest = filepath.Join(tmp, "dest")
			cfg = filepath.Join(tmp, "config")
			Expect(os.MkdirAll(filepath.Join(src, "guides"), os.ModePerm)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(src, "index.md"), []byte("# Home\n\nhello **world**\n"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(src, "guides", "usage.md"), []byte("Use `mdforge`\n"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(src, "notes.txt"), []byte("ignored"), 0644)).To(Succeed())
			Expect(os.Setenv(configuration.MdforgeConfigEnv, cfg)).To(Succeed())
		})
		AfterEach(func() {
			Expect(os.Unsetenv(configuration.MdforgeConfigEnv)).To(Succeed())
			Expect(os.RemoveAll(tmp)).To(Succeed())
		})
		When("rendering to the destination", func() {
			BeforeEach(func() {
				args = []string{"render", "--source", src, "--destination", dest, "--workers", "2"}
			})
			It("writes html files", func() {
				Expect(err).NotTo(HaveOccurred())
				b, readErr := os.ReadFile(filepath.Join(dest, "index.html"))
				Expect(readErr).NotTo(HaveOccurred())
				Expect(string(b)).To(Equal("<div><h1>Home</h1><p>hello <b>world</b></p></div>"))
				b, readErr = os.ReadFile(filepath.Join(dest, "guides", "usage.html"))
				Expect(readErr).NotTo(HaveOccurred())
				Expect(string(b)).To(Equal("<div><p>Use <code>mdforge</code></p></div>"))
				_, readErr = os.Stat(filepath.Join(dest, "notes.html"))
				Expect(os.IsNotExist(readErr)).To(BeTrue())
			})
		})
		When("the configuration file provides the source", func() {
			BeforeEach(func() {
				tmpl := filepath.Join(filepath.Dir(cfg), "page.html")
				Expect(os.WriteFile(tmpl, []byte("<title>{{ Title }}</title>{{ Content }}"), 0644)).To(Succeed())
				Expect(os.WriteFile(cfg, []byte(fmt.Sprintf("source: %s\ntemplate: %s\nworkers: 1\n", src, tmpl)), 0644)).To(Succeed())
				args = []string{"render", "--destination", dest}
			})
			It("uses it", func() {
				Expect(err).NotTo(HaveOccurred())
				b, readErr := os.ReadFile(filepath.Join(dest, "index.html"))
				Expect(readErr).NotTo(HaveOccurred())
				Expect(string(b)).To(Equal("<title>Home</title><div><h1>Home</h1><p>hello <b>world</b></p></div>"))
			})
		})
		When("flags and configuration file conflict", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(cfg, []byte("source: /does/not/exist\n"), 0644)).To(Succeed())
				args = []string{"render", "--source", src, "--destination", dest}
			})
			It("prefers the flags", func() {
				Expect(err).NotTo(HaveOccurred())
				_, statErr := os.Stat(filepath.Join(dest, "index.html"))
				Expect(statErr).NotTo(HaveOccurred())
			})
		})
		When("running dry", func() {
			BeforeEach(func() {
				args = []string{"render", "--source", src, "--destination", "site", "--dry-run"}
			})
			It("lists the files without writing them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring("site\n  guides\n    usage.html ("))
				Expect(out.String()).To(ContainSubstring("  index.html ("))
				_, statErr := os.Stat("site")
				Expect(os.IsNotExist(statErr)).To(BeTrue())
			})
		})
		When("a document fails", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(filepath.Join(src, "broken.md"), []byte("bad _italic\n"), 0644)).To(Succeed())
				args = []string{"render", "--source", src, "--destination", dest}
			})
			It("renders the others and reports the failure", func() {
				Expect(err).To(MatchError(inline.ErrUnbalancedDelimiter))
				Expect(err.Error()).To(ContainSubstring("broken.md"))
				_, statErr := os.Stat(filepath.Join(dest, "index.html"))
				Expect(statErr).NotTo(HaveOccurred())
				_, statErr = os.Stat(filepath.Join(dest, "broken.html"))
				Expect(os.IsNotExist(statErr)).To(BeTrue())
			})
		})
		When("required options are missing", func() {
			BeforeEach(func() {
				args = []string{"render", "--workers", "0"}
			})
			It("reports all of them", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("source is required"))
				Expect(err.Error()).To(ContainSubstring("destination is required"))
				Expect(err.Error()).To(ContainSubstring("workers must be positive"))
			})
		})
	})

	Describe("completion", func() {
		BeforeEach(func() {
			args = []string{"completion", "bash"}
		})
		It("writes the script", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("mdforge"))
		})
	})
})
