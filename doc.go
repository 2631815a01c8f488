// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

// Package robotica is a client library for a distributed publish/subscribe
// messaging fabric for robotics-style applications.
//
// A process joins the fabric by constructing a Node. Nodes declare typed or
// dynamically-typed topics over which they exchange protobuf-encoded
// messages; every frame carries a self-describing header with the payload's
// type URL and a wall-clock timestamp. Nodes also answer a small set of
// introspection queries, so any participant can enumerate its peers and
// their active channels with ListNodes, ListNodePublishers and
// ListNodeSubscribers.
//
// Typed channels bind a compile-time schema:
//
//	pub, err := robotica.NewPublisher[*types.StringMessage](node, "chatter")
//	...
//	err = pub.Send(ctx, &types.StringMessage{Data: "hello"})
//
// Untyped channels resolve schemas at runtime against the node's descriptor
// pools, which hold the bundled types plus any descriptor-set blobs added
// with AddFileDescriptors. The sender's schema is authoritative: receivers
// validate against it and never negotiate.
//
// Delivery is best-effort: there is no durability, no replay, and no
// ordering across topics. Within a single publisher, frames are written in
// Send order; within a single subscriber, frames are observed in transport
// delivery order with a bounded inbound queue.
package robotica
