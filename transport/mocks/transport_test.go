// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdelfin/robotica/transport"
)

func TestBoundedQueueDropsOnOverflow(t *testing.T) {
	fabric := NewFabric()
	session := fabric.NewSession()

	sub, err := session.DeclareSubscriber("robotica/pubsub/test", 100)
	require.Nil(t, err, fmt.Sprintf("declaring subscriber: %s", err))

	pub, err := session.DeclarePublisher("robotica/pubsub/test")
	require.Nil(t, err, fmt.Sprintf("declaring publisher: %s", err))

	ctx := context.Background()
	for i := 0; i < 150; i++ {
		err := pub.Put(ctx, []byte{byte(i)})
		require.Nil(t, err, fmt.Sprintf("publishing sample %d: %s", i, err))
	}

	// The first 100 samples queue in order; the rest are dropped.
	for i := 0; i < 100; i++ {
		sample, err := sub.Recv(ctx)
		require.Nil(t, err, fmt.Sprintf("receiving sample %d: %s", i, err))
		assert.Equal(t, []byte{byte(i)}, sample.Payload, fmt.Sprintf("expected sample %d in order", i))
	}
	assert.Equal(t, 50, sub.(*subscriber).Dropped(), "expected overflow samples dropped")

	recvCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = sub.Recv(recvCtx)
	assert.Equal(t, context.DeadlineExceeded, err, fmt.Sprintf("expected an empty queue, got %v", err))
}

func TestRecvAfterClose(t *testing.T) {
	fabric := NewFabric()
	session := fabric.NewSession()

	sub, err := session.DeclareSubscriber("robotica/pubsub/test", 10)
	require.Nil(t, err, fmt.Sprintf("declaring subscriber: %s", err))

	pub, err := session.DeclarePublisher("robotica/pubsub/test")
	require.Nil(t, err, fmt.Sprintf("declaring publisher: %s", err))

	ctx := context.Background()
	require.Nil(t, pub.Put(ctx, []byte("queued")), "publishing")
	require.Nil(t, sub.Close(), "closing subscriber")

	// A queued sample survives the close; the next receive reports the
	// closed queue.
	sample, err := sub.Recv(ctx)
	require.Nil(t, err, fmt.Sprintf("draining queued sample: %s", err))
	assert.Equal(t, []byte("queued"), sample.Payload, "expected the queued sample")

	_, err = sub.Recv(ctx)
	assert.Equal(t, transport.ErrClosed, err, fmt.Sprintf("expected closed queue, got %v", err))
}

func TestGetCollectsOneReplyPerQueryable(t *testing.T) {
	fabric := NewFabric()
	serving := fabric.NewSession()
	querying := fabric.NewSession()

	const key = "robotica/node_names"
	for _, name := range []string{"alpha", "beta"} {
		q, err := serving.DeclareQueryable(key)
		require.Nil(t, err, fmt.Sprintf("declaring queryable: %s", err))

		name := name
		go func() {
			for {
				qry, err := q.Recv(context.Background())
				if err != nil {
					return
				}
				_ = qry.Reply(context.Background(), key, []byte(name))
			}
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	replies, err := querying.Get(ctx, key, transport.ConsolidationNone)
	require.Nil(t, err, fmt.Sprintf("issuing get: %s", err))

	var got []string
	for r := range replies {
		require.Nil(t, r.Err, fmt.Sprintf("reply error: %s", r.Err))
		got = append(got, string(r.Payload))
	}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, got, fmt.Sprintf("expected one reply per queryable, got %v", got))

	require.Nil(t, serving.Close(), "closing serving session")
}

func TestGetWithNoQueryables(t *testing.T) {
	fabric := NewFabric()
	session := fabric.NewSession()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	replies, err := session.Get(ctx, "robotica/node_names", transport.ConsolidationNone)
	require.Nil(t, err, fmt.Sprintf("issuing get: %s", err))

	_, ok := <-replies
	assert.False(t, ok, "expected the reply channel closed immediately")
}

func TestSessionCloseReleasesResources(t *testing.T) {
	fabric := NewFabric()
	session := fabric.NewSession()

	sub, err := session.DeclareSubscriber("robotica/pubsub/test", 10)
	require.Nil(t, err, fmt.Sprintf("declaring subscriber: %s", err))
	q, err := session.DeclareQueryable("robotica/node_names")
	require.Nil(t, err, fmt.Sprintf("declaring queryable: %s", err))

	require.Nil(t, session.Close(), "closing session")

	_, err = sub.Recv(context.Background())
	assert.Equal(t, transport.ErrClosed, err, fmt.Sprintf("expected closed subscriber, got %v", err))
	_, err = q.Recv(context.Background())
	assert.Equal(t, transport.ErrClosed, err, fmt.Sprintf("expected closed queryable, got %v", err))
}
