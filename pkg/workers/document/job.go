// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"fmt"

	"github.com/gardener/mdforge/pkg/jobs"
	"github.com/gardener/mdforge/pkg/osfakes/osshim"
	"k8s.io/klog/v2"
)

// MarkdownExt is the extension of the rendered source files
const MarkdownExt = ".md"

// Renderer renders every markdown file of a source directory
type Renderer struct {
	Worker *Worker
	Job    *jobs.Job
	os     osshim.Os
}

// New creates a Renderer dispatching to at most workerCount workers
func New(workerCount int, failFast bool, worker *Worker, os osshim.Os) *Renderer {
	return &Renderer{
		Worker: worker,
		Job: &jobs.Job{
			ID:         "Document",
			MinWorkers: 1,
			MaxWorkers: workerCount,
			FailFast:   failFast,
			Worker:     worker,
		},
		os: os,
	}
}

// Render lists the markdown files under the worker's source dir and
// renders them in parallel
func (r *Renderer) Render(ctx context.Context) error {
	isDir, err := r.os.IsDir(r.Worker.SourceDir)
	if err != nil {
		return fmt.Errorf("source %s: %w", r.Worker.SourceDir, err)
	}
	if !isDir {
		return fmt.Errorf("source %s is not a directory", r.Worker.SourceDir)
	}
	files, err := r.os.ListFiles(r.Worker.SourceDir, MarkdownExt)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		klog.Warningf("no %s files found in %s", MarkdownExt, r.Worker.SourceDir)
		return nil
	}
	klog.Infof("rendering %d documents from %s", len(files), r.Worker.SourceDir)
	tasks := make([]interface{}, len(files))
	for i, f := range files {
		tasks[i] = f
	}
	return r.Job.Dispatch(ctx, tasks)
}
