// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel provides a semaphore-bounded worker pool used to run
// checks concurrently without letting a large catalog exhaust resources.
// A Manager limits how many tasks run at once; a Waiter aggregates task
// completion and errors.
package parallel

import (
	"runtime"
	"sync"
)

const (
	minNumWorkers    = 2
	errChannelBuffer = 100
)

// Task is a unit of work submitted to a Manager.
type Task func() error

// Manager runs tasks with bounded concurrency.
type Manager struct {
	wg        *sync.WaitGroup
	semaphore chan struct{}
}

// New creates a Manager executing at most workercount tasks at once. A
// negative count scales with the CPU count.
func New(workercount int) *Manager {
	if workercount < 0 {
		workercount = runtime.NumCPU() * -workercount
	}
	if workercount < minNumWorkers {
		workercount = minNumWorkers
	}

	return &Manager{
		wg:        &sync.WaitGroup{},
		semaphore: make(chan struct{}, workercount),
	}
}

func (p *Manager) acquire() {
	p.semaphore <- struct{}{}
	p.wg.Add(1)
}

func (p *Manager) release() {
	p.wg.Done()
	<-p.semaphore
}

// Run schedules fn on the pool, blocking while the pool is saturated. The
// task's error, if any, is delivered to the waiter.
func (p *Manager) Run(fn Task, waiter *Waiter) {
	waiter.wg.Add(1)
	p.acquire()
	go func() {
		defer waiter.wg.Done()
		defer p.release()

		if err := fn(); err != nil {
			waiter.errch <- err
		}
	}()
}

// Close waits for all submitted tasks to finish.
func (p *Manager) Close() {
	p.wg.Wait()
	close(p.semaphore)
}

// Waiter tracks completion of a batch of tasks and collects their errors.
type Waiter struct {
	wg    sync.WaitGroup
	errch chan error
}

// NewWaiter creates a Waiter for one batch of tasks.
func NewWaiter() *Waiter {
	return &Waiter{
		errch: make(chan error, errChannelBuffer),
	}
}

// Wait blocks until every task submitted against this waiter has finished,
// then closes the error channel.
func (w *Waiter) Wait() {
	w.wg.Wait()
	close(w.errch)
}

// Err returns the read-only channel of task errors.
func (w *Waiter) Err() <-chan error {
	return w.errch
}
