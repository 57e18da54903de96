// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync/atomic"

// Queue is the mailbox of a window task: a lock-free FIFO of events
// with any number of producers and a single consumer. Every send
// signals [Queue.Wake], which holds at most one pending signal.
// Once closed, the queue refuses new events, and the consumer
// takes what is left with [Queue.Drain].
// It must be initialized using [Queue.Init] before use.
type Queue struct {
	// head is only used by the consumer; it is the last node taken.
	head *queueNode
	tail atomic.Pointer[queueNode]

	len    atomic.Int64
	closed atomic.Bool
	wake   chan struct{}
}

type queueNode struct {
	next atomic.Pointer[queueNode]
	ev   Event
}

// Init initializes the queue.
func (q *Queue) Init() {
	q.head = &queueNode{}
	q.tail.Store(q.head)
	q.wake = make(chan struct{}, 1)
}

// Send appends ev and wakes the consumer. It returns false if the
// queue is closed, in which case the consumer may never see ev, and
// the sender must answer any reply ev carries itself.
func (q *Queue) Send(ev Event) bool {
	if q.closed.Load() {
		return false
	}
	n := &queueNode{ev: ev}
	q.tail.Swap(n).next.Store(n)
	q.len.Add(1)
	q.signal()
	return !q.closed.Load()
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Wake returns the channel signalled after sends and on close.
func (q *Queue) Wake() <-chan struct{} {
	return q.wake
}

// Next removes and returns the next event, or nil if there is none.
// An event whose send is still in progress is returned by a later call;
// its sender signals [Queue.Wake] when done.
func (q *Queue) Next() Event {
	n := q.head.next.Load()
	if n == nil {
		return nil
	}
	q.head = n
	ev := n.ev
	n.ev = nil
	q.len.Add(-1)
	return ev
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return int(q.len.Load())
}

// Close closes the queue and wakes the consumer. It reports whether
// the queue was open.
func (q *Queue) Close() bool {
	if q.closed.Swap(true) {
		return false
	}
	q.signal()
	return true
}

// Closed returns whether the queue is closed.
func (q *Queue) Closed() bool {
	return q.closed.Load()
}

// Drain removes all queued events, calling fn on each.
func (q *Queue) Drain(fn func(ev Event)) {
	for ev := q.Next(); ev != nil; ev = q.Next() {
		fn(ev)
	}
}
