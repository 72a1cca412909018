// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gardener/mdforge/pkg/jobs"
	"github.com/gardener/mdforge/pkg/markdown"
	"github.com/gardener/mdforge/pkg/osfakes/osshim"
	"github.com/gardener/mdforge/pkg/writers"
	"k8s.io/klog/v2"
)

// Worker renders markdown files from a source directory to HTML
type Worker struct {
	// SourceDir is the root the task paths are relative to
	SourceDir string
	// Template is an optional page template, see ApplyTemplate
	Template []byte

	os     osshim.Os
	writer writers.Writer
}

// NewDocumentWorker creates Worker objects
func NewDocumentWorker(sourceDir string, template []byte, os osshim.Os, writer writers.Writer) *Worker {
	return &Worker{
		SourceDir: sourceDir,
		Template:  template,
		os:        os,
		writer:    writer,
	}
}

// Work implements jobs.Worker. A task is the slash separated path of
// a markdown file relative to SourceDir.
func (w *Worker) Work(ctx context.Context, task interface{}) *jobs.WorkerError {
	relPath, ok := task.(string)
	if !ok {
		return jobs.NewWorkerError(fmt.Errorf("incorrect document work task: %T", task), 0)
	}
	if err := w.ProcessFile(ctx, relPath); err != nil {
		return jobs.NewWorkerError(err, 0)
	}
	return nil
}

// ProcessFile reads, renders and writes a single markdown file
func (w *Worker) ProcessFile(ctx context.Context, relPath string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	source := filepath.Join(w.SourceDir, filepath.FromSlash(relPath))
	cnt, err := w.os.ReadFile(source)
	if err != nil {
		if w.os.IsNotExist(err) {
			return fmt.Errorf("document %s not found: %w", relPath, err)
		}
		return fmt.Errorf("reading document %s failed: %w", relPath, err)
	}
	klog.V(6).Infof("rendering %s (%s)", relPath, humanize.Bytes(uint64(len(cnt))))

	doc, err := markdown.NewDocument(cnt)
	if err != nil {
		return fmt.Errorf("rendering document %s failed: %w", relPath, err)
	}
	html, err := doc.HTML()
	if err != nil {
		return fmt.Errorf("rendering document %s failed: %w", relPath, err)
	}
	out := []byte(html)
	if len(w.Template) > 0 {
		out = ApplyTemplate(w.Template, doc.Title, html)
	}

	dir, name := path.Split(relPath)
	if err = w.writer.Write(name, path.Clean("/"+dir)[1:], out); err != nil {
		return fmt.Errorf("writing document %s failed: %w", relPath, err)
	}
	klog.V(6).Infof("rendered %s (%s)", relPath, humanize.Bytes(uint64(len(out))))
	return nil
}
