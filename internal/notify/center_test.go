// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func received(ch <-chan struct{}) bool {
	select {
	case _, ok := <-ch:
		return ok
	default:
		return false
	}
}

func TestCenter_PostReachesAllSubscribers(t *testing.T) {
	c := NewCenter()

	a, unsubA := c.Subscribe(DraftsUpdated)
	defer unsubA()
	b, unsubB := c.Subscribe(DraftsUpdated)
	defer unsubB()

	c.DraftsUpdated()

	assert.True(t, received(a))
	assert.True(t, received(b))
}

func TestCenter_SignalsCoalesce(t *testing.T) {
	c := NewCenter()
	ch, unsub := c.Subscribe(DraftsUpdated)
	defer unsub()

	for range 10 {
		c.Post(DraftsUpdated)
	}

	assert.True(t, received(ch))
	assert.False(t, received(ch))
}

func TestCenter_OtherSignalsAreNotDelivered(t *testing.T) {
	c := NewCenter()
	ch, unsub := c.Subscribe(DraftsUpdated)
	defer unsub()

	c.Post(Signal("something_else"))

	assert.False(t, received(ch))
}

func TestCenter_Unsubscribe(t *testing.T) {
	c := NewCenter()
	ch, unsub := c.Subscribe(DraftsUpdated)

	unsub()
	require.NotPanics(t, unsub)
	require.NotPanics(t, c.DraftsUpdated)

	_, ok := <-ch
	assert.False(t, ok, "channel must be closed after unsubscribe")
}

func TestCenter_PostWithoutSubscribers(t *testing.T) {
	assert.NotPanics(t, NewCenter().DraftsUpdated)
}
