// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify broadcasts payload-less change signals to subscribers.
//
// Subscribers receive on a channel with a single-slot buffer: several
// signals sent before the subscriber reads collapse into one, and a slow
// subscriber never blocks the sender. Receivers re-read the state they care
// about on every signal.
package notify

import "sync"

// Signal names a kind of change.
type Signal string

// DraftsUpdated is sent after every change of the visible drafts list.
const DraftsUpdated Signal = "drafts_updated"

// Center is a per-account signal hub.
type Center struct {
	mu     sync.Mutex
	nextID int
	subs   map[Signal]map[int]chan struct{}
}

// NewCenter returns an empty Center.
func NewCenter() *Center {
	return &Center{subs: make(map[Signal]map[int]chan struct{})}
}

// Subscribe registers interest in s. The returned func removes the
// subscription and closes the channel.
func (c *Center) Subscribe(s Signal) (<-chan struct{}, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	ch := make(chan struct{}, 1)
	if c.subs[s] == nil {
		c.subs[s] = make(map[int]chan struct{})
	}
	c.subs[s][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs[s], id)
			close(ch)
		})
	}
}

// Post delivers s to every current subscriber without blocking.
func (c *Center) Post(s Signal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ch := range c.subs[s] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// DraftsUpdated implements the drafts store notifier.
func (c *Center) DraftsUpdated() {
	c.Post(DraftsUpdated)
}
