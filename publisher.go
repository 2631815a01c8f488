// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package robotica

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/protocol"
	"github.com/rdelfin/robotica/transport"
)

// Publisher sends messages of one compile-time schema over a topic. The
// type URL written into every header is the schema's, never derived from
// the payload.
type Publisher[M proto.Message] struct {
	topic   string
	typeURL string
	pub     transport.Publisher
	node    *Node

	handle    uuid.UUID
	closeOnce sync.Once
}

// NewPublisher declares a typed publisher over the given topic and
// registers it on the node. A failure in either step leaves no trace.
func NewPublisher[M proto.Message](node *Node, topic string) (*Publisher[M], error) {
	pub, err := node.session.DeclarePublisher(topicKey(topic))
	if err != nil {
		return nil, errors.Wrap(ErrTransport, err)
	}
	handle, err := node.registry.addPublisher(topic)
	if err != nil {
		if cerr := pub.Close(); cerr != nil {
			node.logger.Warn("failed to release publisher: " + cerr.Error())
		}
		return nil, err
	}
	return &Publisher[M]{
		topic:   topic,
		typeURL: typeURL[M](),
		pub:     pub,
		node:    node,
		handle:  handle,
	}, nil
}

// Send frames msg behind a header stamped with the current wall-clock time
// and issues exactly one transport write.
func (p *Publisher[M]) Send(ctx context.Context, msg M) error {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return errors.Wrap(ErrProtobufDecode, err)
	}
	frame, err := protocol.EncodeFrame(p.header(), payload)
	if err != nil {
		return err
	}
	if err := p.pub.Put(ctx, frame); err != nil {
		return errors.Wrap(ErrTransport, err)
	}
	return nil
}

// Close deregisters the publisher and releases its transport resource.
func (p *Publisher[M]) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.node.registry.removePublisher(p.topic, p.handle)
		err = p.pub.Close()
	})
	return err
}

func (p *Publisher[M]) header() *protocol.Header {
	return &protocol.Header{
		MessageTimestamp: timestamppb.Now(),
		TypeUrl:          p.typeURL,
	}
}

// UntypedPublisher sends structured values over a topic, validated against
// a message descriptor resolved once at construction.
type UntypedPublisher struct {
	topic   string
	typeURL string
	desc    protoreflect.MessageDescriptor
	pub     transport.Publisher
	node    *Node

	handle    uuid.UUID
	closeOnce sync.Once
}

// NewUntypedPublisher declares a publisher for the given type URL. The URL
// must resolve in the node's current descriptor pools; on resolution
// failure no transport resource is created.
func NewUntypedPublisher(node *Node, topic, typeURL string) (*UntypedPublisher, error) {
	desc, err := node.descriptors.Resolve(typeURL)
	if err != nil {
		return nil, err
	}
	pub, err := node.session.DeclarePublisher(topicKey(topic))
	if err != nil {
		return nil, errors.Wrap(ErrTransport, err)
	}
	handle, err := node.registry.addPublisher(topic)
	if err != nil {
		if cerr := pub.Close(); cerr != nil {
			node.logger.Warn("failed to release publisher: " + cerr.Error())
		}
		return nil, err
	}
	return &UntypedPublisher{
		topic:   topic,
		typeURL: typeURL,
		desc:    desc,
		pub:     pub,
		node:    node,
		handle:  handle,
	}, nil
}

// Send renders a JSON document through the retained descriptor and frames
// it under the constructor's type URL.
func (p *UntypedPublisher) Send(ctx context.Context, structured []byte) error {
	msg := dynamicpb.NewMessage(p.desc)
	if err := protojson.Unmarshal(structured, msg); err != nil {
		return errors.Wrap(ErrStructuredValue, err)
	}
	payload, err := proto.Marshal(msg)
	if err != nil {
		return errors.Wrap(ErrStructuredValue, err)
	}
	header := &protocol.Header{
		MessageTimestamp: timestamppb.Now(),
		TypeUrl:          p.typeURL,
	}
	frame, err := protocol.EncodeFrame(header, payload)
	if err != nil {
		return err
	}
	if err := p.pub.Put(ctx, frame); err != nil {
		return errors.Wrap(ErrTransport, err)
	}
	return nil
}

// Close deregisters the publisher and releases its transport resource.
func (p *UntypedPublisher) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.node.registry.removePublisher(p.topic, p.handle)
		err = p.pub.Close()
	})
	return err
}

// typeURL returns the canonical type URL of M's schema.
func typeURL[M proto.Message]() string {
	var m M
	return typeURLAuthority + string(m.ProtoReflect().Descriptor().FullName())
}
