// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package ui hosts the application window as a local web page. A single
// UI goroutine owns the application state; HTTP handlers only post
// closures to it.
package ui

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/0xsoniclabs/distviz/app"
)

// ErrStopped is returned by Do once the loop has terminated.
var ErrStopped = errors.New("ui loop stopped")

type task struct {
	fn   func(*app.State)
	err  error
	done chan struct{}
}

// Loop runs closures against the application state on one goroutine.
type Loop struct {
	state   *app.State
	tasks   chan task
	stopped chan struct{}
}

// NewLoop creates a loop owning state. Run must be called for Do to
// make progress.
func NewLoop(state *app.State) *Loop {
	return &Loop{
		state:   state,
		tasks:   make(chan task),
		stopped: make(chan struct{}),
	}
}

// Run processes closures until ctx is done. It must be called once.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-l.tasks:
			t.err = l.run(t.fn)
			close(t.done)
		}
	}
}

// run executes fn and turns a panic into an error so that a failing
// closure does not take the loop down with it.
func (l *Loop) run(fn func(*app.State)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("ui task panicked: %v", r)
		}
	}()
	fn(l.state)
	return nil
}

// Do runs fn on the UI goroutine and waits for it to finish. A panic in
// fn is reported as an error.
func (l *Loop) Do(ctx context.Context, fn func(*app.State)) error {
	t := task{fn: fn, done: make(chan struct{})}
	select {
	case l.tasks <- t:
	case <-l.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	// once accepted, the task runs to completion on the loop
	<-t.done
	return t.err
}

// State returns the owned state. It may only be used after Run has
// returned.
func (l *Loop) State() *app.State {
	return l.state
}

// Stopped is closed when Run returns.
func (l *Loop) Stopped() <-chan struct{} {
	return l.stopped
}
