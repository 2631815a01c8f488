// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package robotica

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/rdelfin/robotica/descriptors"
	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/protocol"
	"github.com/rdelfin/robotica/transport"
)

// Message is a received frame decoded against a compile-time schema.
type Message[M proto.Message] struct {
	Header  *protocol.Header
	Message M
}

// Subscriber receives messages of one compile-time schema from a topic.
type Subscriber[M proto.Message] struct {
	topic   string
	typeURL string
	sub     transport.Subscriber
	node    *Node

	handle    uuid.UUID
	closeOnce sync.Once
}

// NewSubscriber declares a typed subscriber over the given topic with a
// bounded inbound queue and registers it on the node.
func NewSubscriber[M proto.Message](node *Node, topic string) (*Subscriber[M], error) {
	sub, err := node.session.DeclareSubscriber(topicKey(topic), subscriberQueueLen)
	if err != nil {
		return nil, errors.Wrap(ErrTransport, err)
	}
	handle, err := node.registry.addSubscriber(topic)
	if err != nil {
		if cerr := sub.Close(); cerr != nil {
			node.logger.Warn("failed to release subscriber: " + cerr.Error())
		}
		return nil, err
	}
	return &Subscriber[M]{
		topic:   topic,
		typeURL: typeURL[M](),
		sub:     sub,
		node:    node,
		handle:  handle,
	}, nil
}

// Recv blocks for the next frame and decodes it against M. A frame whose
// header carries a different type URL is consumed and reported as a
// MismatchedTypeError; the subscriber stays usable and the following
// frame is delivered normally.
func (s *Subscriber[M]) Recv(ctx context.Context) (Message[M], error) {
	sample, err := s.sub.Recv(ctx)
	if err != nil {
		return Message[M]{}, err
	}
	header, payload, err := protocol.DecodeFrame(sample.Payload)
	if err != nil {
		return Message[M]{}, err
	}
	if header.TypeUrl != s.typeURL {
		return Message[M]{}, MismatchedTypeError{Expected: s.typeURL, Actual: header.TypeUrl}
	}
	msg := newMessage[M]()
	if err := proto.Unmarshal(payload, msg); err != nil {
		return Message[M]{}, errors.Wrap(ErrProtobufDecode, err)
	}
	return Message[M]{Header: header, Message: msg}, nil
}

// Close deregisters the subscriber and releases its transport resource.
// Whether frames already queued can still be received depends on the
// transport.
func (s *Subscriber[M]) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.node.registry.removeSubscriber(s.topic, s.handle)
		err = s.sub.Close()
	})
	return err
}

// UntypedMessage is a received frame decoded through reflection.
type UntypedMessage struct {
	Header  *protocol.Header
	Message *dynamicpb.Message
}

// UntypedSubscriber receives frames of any schema resolvable in the node's
// descriptor pools.
//
// It keeps a one-slot descriptor cache keyed by type URL: the common case
// of a topic carrying a single type costs one resolution total, while a
// topic whose type changes frame-to-frame costs one resolution per change.
// Recv must not be called concurrently; the cache is confined to the
// receive path.
type UntypedSubscriber struct {
	topic string
	sub   transport.Subscriber
	node  *Node

	pools  *descriptors.Registry
	cached *cachedDescriptor

	handle    uuid.UUID
	closeOnce sync.Once
}

type cachedDescriptor struct {
	typeURL string
	desc    protoreflect.MessageDescriptor
}

// NewUntypedSubscriber declares a dynamically-typed subscriber over the
// given topic with a bounded inbound queue and registers it on the node.
func NewUntypedSubscriber(node *Node, topic string) (*UntypedSubscriber, error) {
	sub, err := node.session.DeclareSubscriber(topicKey(topic), subscriberQueueLen)
	if err != nil {
		return nil, errors.Wrap(ErrTransport, err)
	}
	handle, err := node.registry.addSubscriber(topic)
	if err != nil {
		if cerr := sub.Close(); cerr != nil {
			node.logger.Warn("failed to release subscriber: " + cerr.Error())
		}
		return nil, err
	}
	return &UntypedSubscriber{
		topic:  topic,
		sub:    sub,
		node:   node,
		pools:  node.descriptors,
		handle: handle,
	}, nil
}

// Recv blocks for the next frame, resolves its header's type URL to a
// message descriptor, and decodes the payload dynamically. A frame whose
// type URL resolves in no pool is consumed and reported as an
// InvalidTypeURLError; the subscriber stays usable.
func (s *UntypedSubscriber) Recv(ctx context.Context) (UntypedMessage, error) {
	sample, err := s.sub.Recv(ctx)
	if err != nil {
		return UntypedMessage{}, err
	}
	header, payload, err := protocol.DecodeFrame(sample.Payload)
	if err != nil {
		return UntypedMessage{}, err
	}
	desc, err := s.descriptor(header.TypeUrl)
	if err != nil {
		return UntypedMessage{}, err
	}
	msg := dynamicpb.NewMessage(desc)
	if err := proto.Unmarshal(payload, msg); err != nil {
		return UntypedMessage{}, errors.Wrap(ErrProtobufDecode, err)
	}
	return UntypedMessage{Header: header, Message: msg}, nil
}

// Close deregisters the subscriber and releases its transport resource.
// Whether frames already queued can still be received depends on the
// transport.
func (s *UntypedSubscriber) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.node.registry.removeSubscriber(s.topic, s.handle)
		err = s.sub.Close()
	})
	return err
}

func (s *UntypedSubscriber) descriptor(typeURL string) (protoreflect.MessageDescriptor, error) {
	if s.cached != nil && s.cached.typeURL == typeURL {
		return s.cached.desc, nil
	}
	desc, err := s.pools.Resolve(typeURL)
	if err != nil {
		return nil, err
	}
	s.cached = &cachedDescriptor{typeURL: typeURL, desc: desc}
	return desc, nil
}

// newMessage allocates a fresh M through protobuf reflection.
func newMessage[M proto.Message]() M {
	var m M
	return m.ProtoReflect().New().Interface().(M)
}
