// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package robotica

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/protodelim"

	"github.com/rdelfin/robotica/descriptors"
	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/internal/env"
	"github.com/rdelfin/robotica/logger"
	"github.com/rdelfin/robotica/protocol"
	"github.com/rdelfin/robotica/transport"
	natstransport "github.com/rdelfin/robotica/transport/nats"
	"github.com/rdelfin/robotica/types"
)

const (
	// keyNodeNames is the fabric-wide discovery key; every node answers
	// it with its own name.
	keyNodeNames = "robotica/node_names"

	// keyPubsubPrefix namespaces every topic on the transport.
	keyPubsubPrefix = "robotica/pubsub/"

	// subscriberQueueLen bounds every subscriber's inbound queue. The
	// transport decides what happens on overflow.
	subscriberQueueLen = 100

	typeURLAuthority = "type.googleapis.com/"
)

var errResponder = errors.New("introspection responder failed")

// Config carries the environment-derived defaults of node construction: URL
// is dialed when no explicit session is given, and QueryTimeout applies when
// no explicit query timeout is given.
type Config struct {
	URL          string        `env:"ROBOTICA_NATS_URL"      envDefault:"nats://localhost:4222"`
	QueryTimeout time.Duration `env:"ROBOTICA_QUERY_TIMEOUT" envDefault:"1s"`
}

type options struct {
	session      transport.Session
	logger       logger.Logger
	queryTimeout time.Duration
}

// Option configures node construction.
type Option func(*options)

// WithSession uses the given transport session instead of dialing the
// fabric from environment configuration.
func WithSession(s transport.Session) Option {
	return func(o *options) { o.session = s }
}

// WithLogger uses the given logger instead of the process-global one.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithQueryTimeout bounds the reply window of every discovery query.
func WithQueryTimeout(d time.Duration) Option {
	return func(o *options) { o.queryTimeout = d }
}

// Node is a participant in the fabric. It owns a transport session, the
// registry of its live publishers and subscribers, its descriptor pools,
// and the three responder tasks answering introspection queries.
//
// Node names are not required to be unique on the fabric; duplicates are
// legal but make the per-node queries less useful.
type Node struct {
	name         string
	session      transport.Session
	registry     *pubsubRegistry
	descriptors  *descriptors.Registry
	queryTimeout time.Duration
	logger       logger.Logger

	cancel     context.CancelFunc
	group      *errgroup.Group
	queryables []transport.Queryable
}

// New constructs a node and starts its introspection responders. The
// bundled descriptor set is loaded as the first descriptor pool.
func New(name string, opts ...Option) (*Node, error) {
	o := options{logger: logger.Global()}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := env.NewConfig[Config]()
	if err != nil {
		return nil, err
	}
	if o.queryTimeout == 0 {
		o.queryTimeout = cfg.QueryTimeout
	}
	if o.session == nil {
		s, err := natstransport.NewSession(cfg.URL, o.logger)
		if err != nil {
			return nil, err
		}
		o.session = s
	}

	registry, err := descriptors.NewRegistry(types.FileDescriptorSet())
	if err != nil {
		return nil, err
	}

	n := &Node{
		name:         name,
		session:      o.session,
		registry:     newPubsubRegistry(o.logger),
		descriptors:  registry,
		queryTimeout: o.queryTimeout,
		logger:       o.logger,
	}
	if err := n.startResponders(); err != nil {
		if cerr := n.session.Close(); cerr != nil {
			n.logger.Warn("failed to close session: " + cerr.Error())
		}
		return nil, err
	}
	return n, nil
}

// NewWithLogging constructs a node after installing the process-global
// logging backend. A process gets exactly one backend: a second
// logging-enabled constructor fails with ErrLogSetup.
func NewWithLogging(name, logLevel string, opts ...Option) (*Node, error) {
	l, err := logger.Setup(logLevel)
	if err != nil {
		return nil, err
	}
	return New(name, append([]Option{WithLogger(l)}, opts...)...)
}

// AddFileDescriptors appends a descriptor-set blob as a new pool, after the
// bundled one and any previously added blob. On a message-name collision
// the earliest pool wins.
func (n *Node) AddFileDescriptors(blob []byte) error {
	return n.descriptors.Add(blob)
}

// Name returns the node's advertised name.
func (n *Node) Name() string {
	return n.name
}

// ListNodes queries every node on the fabric for its name and returns the
// deduplicated, sorted set. Replies are deliberately not consolidated, so
// nodes sharing a name are each observed (and then collapse in the set).
func (n *Node) ListNodes(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, n.queryTimeout)
	defer cancel()

	replies, err := n.session.Get(ctx, keyNodeNames, transport.ConsolidationNone)
	if err != nil {
		return nil, errors.Wrap(ErrTransport, err)
	}
	seen := make(map[string]struct{})
	for r := range replies {
		if r.Err != nil {
			return nil, errors.Wrap(ErrQueryReply, r.Err)
		}
		seen[string(r.Payload)] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ListNodePublishers returns the active publisher topics advertised by the
// named node. With duplicate node names, every namesake's topics appear.
func (n *Node) ListNodePublishers(ctx context.Context, name string) ([]*protocol.PublisherInfo, error) {
	var infos []*protocol.PublisherInfo
	err := n.queryNode(ctx, nodeKey(name, "publishers"), func(payload []byte) error {
		var list protocol.PublisherList
		if err := protodelim.UnmarshalFrom(bytes.NewReader(payload), &list); err != nil {
			return errors.Wrap(ErrProtobufDecode, err)
		}
		infos = append(infos, list.Publishers...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// ListNodeSubscribers returns the active subscriber topics advertised by
// the named node.
func (n *Node) ListNodeSubscribers(ctx context.Context, name string) ([]*protocol.SubscriberInfo, error) {
	var infos []*protocol.SubscriberInfo
	err := n.queryNode(ctx, nodeKey(name, "subscribers"), func(payload []byte) error {
		var list protocol.SubscriberList
		if err := protodelim.UnmarshalFrom(bytes.NewReader(payload), &list); err != nil {
			return errors.Wrap(ErrProtobufDecode, err)
		}
		infos = append(infos, list.Subscribers...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// Close stops the introspection responders and closes the transport
// session. It reports the first responder failure, if any: responders only
// terminate cleanly on queryable disconnect, so anything else is a bug.
func (n *Node) Close() error {
	n.cancel()
	for _, q := range n.queryables {
		if err := q.Close(); err != nil {
			n.logger.Warn("failed to close queryable: " + err.Error())
		}
	}
	err := n.group.Wait()
	if cerr := n.session.Close(); cerr != nil && err == nil {
		err = errors.Wrap(ErrTransport, cerr)
	}
	return err
}

func (n *Node) queryNode(ctx context.Context, key string, decode func([]byte) error) error {
	ctx, cancel := context.WithTimeout(ctx, n.queryTimeout)
	defer cancel()

	replies, err := n.session.Get(ctx, key, transport.ConsolidationNone)
	if err != nil {
		return errors.Wrap(ErrTransport, err)
	}
	for r := range replies {
		if r.Err != nil {
			return errors.Wrap(ErrQueryReply, r.Err)
		}
		if err := decode(r.Payload); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) startResponders() error {
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)
	n.cancel = cancel
	n.group = group

	for _, r := range []struct {
		key   string
		reply func() ([]byte, error)
	}{
		{keyNodeNames, func() ([]byte, error) { return []byte(n.name), nil }},
		{nodeKey(n.name, "publishers"), n.publishersReply},
		{nodeKey(n.name, "subscribers"), n.subscribersReply},
	} {
		q, err := n.session.DeclareQueryable(r.key)
		if err != nil {
			cancel()
			for _, declared := range n.queryables {
				if cerr := declared.Close(); cerr != nil {
					n.logger.Warn("failed to close queryable: " + cerr.Error())
				}
			}
			return errors.Wrap(ErrTransport, err)
		}
		n.queryables = append(n.queryables, q)

		r := r
		group.Go(func() error {
			return n.respond(ctx, q, r.key, r.reply)
		})
	}
	return nil
}

// respond serves one introspection key until its queryable disconnects.
// Disconnect (or node shutdown) is the only clean exit; any other failure
// escalates through the responder group.
func (n *Node) respond(ctx context.Context, q transport.Queryable, key string, reply func() ([]byte, error)) error {
	for {
		qry, err := q.Recv(ctx)
		if err != nil {
			if errors.Contains(err, transport.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(errResponder, err)
		}
		payload, err := reply()
		if err != nil {
			return errors.Wrap(errResponder, err)
		}
		if err := qry.Reply(ctx, key, payload); err != nil {
			return errors.Wrap(errResponder, err)
		}
	}
}

func (n *Node) publishersReply() ([]byte, error) {
	list := &protocol.PublisherList{}
	for _, topic := range n.registry.publisherTopics() {
		list.Publishers = append(list.Publishers, &protocol.PublisherInfo{Name: topic})
	}
	var buf bytes.Buffer
	if _, err := protodelim.MarshalTo(&buf, list); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) subscribersReply() ([]byte, error) {
	list := &protocol.SubscriberList{}
	for _, topic := range n.registry.subscriberTopics() {
		list.Subscribers = append(list.Subscribers, &protocol.SubscriberInfo{Name: topic})
	}
	var buf bytes.Buffer
	if _, err := protodelim.MarshalTo(&buf, list); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func nodeKey(name, kind string) string {
	return fmt.Sprintf("robotica/node/%s/%s", name, kind)
}

func topicKey(topic string) string {
	return keyPubsubPrefix + topic
}
