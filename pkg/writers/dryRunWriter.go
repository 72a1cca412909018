// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates Writers recording to the same
	// backend but for different roots
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	Writer io.Writer
	files  []*file
	mux    sync.Mutex
	t1     time.Time
}

type file struct {
	path string
	size uint64
}

type writer struct {
	root string
	ext  string
	d    *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root: root,
		d:    d,
	}
}

// GetWriterWithExt creates a dry run writer that replaces the
// file name extensions like FSWriter does
func GetWriterWithExt(d DryRunWriter, root, ext string) Writer {
	w := d.GetWriter(root)
	if _w, ok := w.(*writer); ok {
		_w.ext = ext
	}
	return w
}

func (w *writer) Write(name, path string, content []byte) error {
	if len(content) == 0 {
		return nil
	}
	if len(w.ext) > 0 {
		name = fmt.Sprintf("%s.%s", strings.TrimSuffix(name, filepath.Ext(name)), w.ext)
	}
	f := &file{
		path: strings.TrimPrefix(filepath.ToSlash(filepath.Join(w.root, path, name)), "/"),
		size: uint64(len(content)),
	}
	w.d.mux.Lock()
	defer w.d.mux.Unlock()
	w.d.files = append(w.d.files, f)
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	var b bytes.Buffer
	d.mux.Lock()
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	d.mux.Unlock()

	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.Writer.Write(b.Bytes())
	return err
}

// format prints the files as an indented tree
func format(files []*file, b *bytes.Buffer) {
	all := map[string]struct{}{}
	for _, f := range files {
		dd := strings.Split(f.path, "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if _, ok := all[p]; ok {
				continue
			}
			all[p] = struct{}{}
			b.Write(bytes.Repeat([]byte("  "), i))
			if i == len(dd)-1 {
				b.WriteString(fmt.Sprintf("%s (%s)\n", s, humanize.Bytes(f.size)))
				continue
			}
			b.WriteString(fmt.Sprintf("%s\n", s))
		}
	}
}
