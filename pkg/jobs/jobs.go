// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Job dispatches a batch of tasks to parallel workers and waits
// for all of them to complete
type Job struct {
	// ID identifies the job in errors
	ID string
	// MaxWorkers is the maximum number of workers processing a batch of tasks in parallel
	MaxWorkers int
	// MinWorkers is the minimum number of workers processing a batch of tasks in parallel
	MinWorkers int
	// Worker for processing tasks
	Worker Worker
	// FailFast controls the behavior of this Job upon errors. If set to true, it will quit
	// further processing upon the first error that occurs. For fault tolerant applications
	// use false.
	FailFast bool
}

// WorkerError wraps an underlying error struct and adds optional code
// to enrich the context of the error
type WorkerError struct {
	error
	code int
}

// NewWorkerError creates worker errors
func NewWorkerError(err error, code int) *WorkerError {
	return &WorkerError{
		err,
		code,
	}
}

// Code returns the error code
func (we *WorkerError) Code() int {
	return we.code
}

// Unwrap implements the contract for errors.Unwrap
func (we *WorkerError) Unwrap() error {
	return we.error
}

// Is implements the contract for errors.Is (https://golang.org/pkg/errors/#Is)
func (we *WorkerError) Is(target error) bool {
	var _target *WorkerError
	if !errors.As(target, &_target) {
		return false
	}
	if we.code != _target.code {
		return false
	}
	return errors.Is(we.error, _target.error)
}

// Worker declares workers functional interface
type Worker interface {
	// Work processes the task within the given context.
	Work(ctx context.Context, task interface{}) *WorkerError
}

// The WorkerFunc type is an adapter to allow the use of
// ordinary functions as Workers. If f is a function
// with the appropriate signature, WorkerFunc(f) is a
// Worker object that calls f.
type WorkerFunc func(ctx context.Context, task interface{}) *WorkerError

// Work calls f(ctx, Task).
func (f WorkerFunc) Work(ctx context.Context, task interface{}) *WorkerError {
	return f(ctx, task)
}

// Asynchronously feeds tasks to the returned tasks channel staying sensitive to termination
// signals from the provided context. Context terminal signals are registered as errors
// to the error channel.
func (j *Job) allocate(ctx context.Context, tasks []interface{}) (<-chan interface{}, <-chan *WorkerError) {
	msgCh := make(chan interface{})
	errCh := make(chan *WorkerError, 1)
	go func() {
		defer close(msgCh)
		defer close(errCh)
		for _, task := range tasks {
			select {
			case msgCh <- task:
			case <-ctx.Done():
				{
					errCh <- NewWorkerError(ctx.Err(), 0)
					return
				}
			}
		}
	}()
	return msgCh, errCh
}

// Processes asynchronously tasks from the tasks channel until channel is closed or context signals
// termination. The processing delegates to the Worker.Work function implementation registered in this Job.
// A failed task stops the worker only in FailFast mode.
func (j *Job) process(ctx context.Context, taskCh <-chan interface{}) <-chan *WorkerError {
	errCh := make(chan *WorkerError)
	go func() {
		defer close(errCh)
		for {
			select {
			case task, ok := <-taskCh:
				{
					if !ok {
						return
					}
					if err := j.Worker.Work(ctx, task); err != nil {
						select {
						case errCh <- err:
						case <-ctx.Done():
							return
						}
						if j.FailFast {
							return
						}
					}
				}
			case <-ctx.Done():
				{
					return
				}
			}
		}
	}()
	return errCh
}

// Dispatch spawns a set of workers processing in parallel the supplied tasks.
// If the context is cancelled or has timed out, processing halts and workers
// are disposed. With FailFast the first task error cancels the remaining
// processing and is returned, otherwise all task errors are returned
// aggregated once all tasks are processed.
func (j *Job) Dispatch(ctx context.Context, tasks []interface{}) error {
	if j.MaxWorkers < j.MinWorkers {
		return fmt.Errorf("job %s maxWorkers < minWorkers: %d < %d", j.ID, j.MaxWorkers, j.MinWorkers)
	}
	if len(tasks) == 0 {
		return nil
	}
	workersCount := len(tasks)
	if workersCount > j.MaxWorkers {
		workersCount = j.MaxWorkers
	}
	if workersCount < j.MinWorkers {
		workersCount = j.MinWorkers
	}
	if workersCount < 1 {
		return fmt.Errorf("job %s has no workers for %d tasks", j.ID, len(tasks))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var errcList []<-chan *WorkerError
	taskCh, errc := j.allocate(ctx, tasks)
	errcList = append(errcList, errc)
	for i := 0; i < workersCount; i++ {
		errcList = append(errcList, j.process(ctx, taskCh))
	}

	return waitForPipeline(j.FailFast, cancel, errcList...)
}

// merges asynchronously produced errors from multiple error channels into a single channel
func mergeErrors(channels ...<-chan *WorkerError) <-chan *WorkerError {
	var wg sync.WaitGroup
	errCh := make(chan *WorkerError, len(channels))

	// outputF copies values from ch to errCh until ch is closed, then calls wg.Done.
	outputF := func(ch <-chan *WorkerError) {
		for err := range ch {
			errCh <- err
		}
		wg.Done()
	}
	wg.Add(len(channels))
	for _, ch := range channels {
		go outputF(ch)
	}

	// Start a goroutine to close errCh once all the outputF goroutines are
	// done. This must start after the wg.Add call.
	go func() {
		wg.Wait()
		close(errCh)
	}()
	return errCh
}

// waitForPipeline waits for results from all error channels.
// It cancels the pipeline on the first error if failfast is true or
// collects errors and returns an aggregated error at the end.
func waitForPipeline(failFast bool, cancel context.CancelFunc, errChs ...<-chan *WorkerError) error {
	var (
		errs     *multierror.Error
		firstErr *WorkerError
	)
	for err := range mergeErrors(errChs...) {
		if err == nil {
			continue
		}
		if failFast {
			if firstErr == nil {
				firstErr = err
				cancel()
			}
			continue
		}
		errs = multierror.Append(errs, err)
	}
	if firstErr != nil {
		return firstErr
	}
	return errs.ErrorOrNil()
}
