// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

// Package transport defines the seam between the node protocol and the
// underlying location-transparent pub/sub fabric. The fabric offers
// best-effort topic-addressed delivery plus key-addressed request/reply
// endpoints (queryables); everything above it, including wire framing and
// discovery, lives in the robotica packages.
package transport

import (
	"context"

	"github.com/rdelfin/robotica/errors"
)

// ErrClosed is returned from blocking receives once the underlying resource
// has been closed. It is the only expected shutdown path for responders.
var ErrClosed = errors.New("transport resource closed")

// Consolidation controls how replies to a Get are merged before delivery.
type Consolidation int

const (
	// ConsolidationNone delivers every reply independently. Discovery
	// queries use this mode so duplicate node names surface.
	ConsolidationNone Consolidation = iota
	// ConsolidationLatest keeps only the newest reply per key. Backends
	// without server-side consolidation treat it as ConsolidationNone.
	ConsolidationLatest
)

// Sample is a single payload received on a subscribed key.
type Sample struct {
	Key     string
	Payload []byte
}

// Reply is a single response to a Get.
type Reply struct {
	Key     string
	Payload []byte
	// Err carries a reply-level failure from the remote queryable.
	Err error
}

// Publisher sends payloads to one key.
type Publisher interface {
	// Put publishes one payload to the publisher's key.
	Put(ctx context.Context, payload []byte) error

	// Close releases the publisher.
	Close() error
}

// Subscriber consumes payloads published to one key. Implementations queue
// inbound samples in a bounded buffer; the overflow policy is theirs.
type Subscriber interface {
	// Recv blocks until a sample arrives, the context is cancelled, or
	// the subscriber is closed (ErrClosed).
	Recv(ctx context.Context) (Sample, error)

	// Close releases the subscriber and stops further delivery. Whether
	// samples already queued are still returned by Recv depends on the
	// implementation.
	Close() error
}

// Query is a single inbound request observed by a Queryable.
type Query interface {
	// Key returns the key expression the query was addressed to.
	Key() string

	// Reply sends one response value back to the querier.
	Reply(ctx context.Context, key string, payload []byte) error
}

// Queryable serves request/reply endpoints addressed by key.
type Queryable interface {
	// Recv blocks until a query arrives, the context is cancelled, or
	// the queryable is closed (ErrClosed).
	Recv(ctx context.Context) (Query, error)

	// Close releases the queryable.
	Close() error
}

// Session is a connection to the fabric. Implementations must be safe for
// concurrent use; all declared resources are bound to the session and become
// unusable once it is closed.
type Session interface {
	// DeclarePublisher declares a publisher on the given key.
	DeclarePublisher(key string) (Publisher, error)

	// DeclareSubscriber declares a subscriber on the given key with a
	// bounded inbound queue of the given capacity.
	DeclareSubscriber(key string, buffer int) (Subscriber, error)

	// DeclareQueryable declares a request/reply endpoint on the given key.
	DeclareQueryable(key string) (Queryable, error)

	// Get issues a query towards every queryable matching the key and
	// returns a channel of replies. The channel is closed no later than
	// when the context ends; an implementation that knows every queryable
	// has answered may close it earlier.
	Get(ctx context.Context, key string, consolidation Consolidation) (<-chan Reply, error)

	// Close terminates the session and every resource declared on it.
	Close() error
}
