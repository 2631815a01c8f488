// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

// Package mocks provides an in-process transport fabric. Sessions opened on
// one Fabric see each other's publishers, subscribers and queryables, so
// multi-node behavior is testable without a broker.
package mocks

import (
	"context"
	"sync"

	"github.com/rdelfin/robotica/transport"
)

const queryQueueLen = 1024

// Fabric is an in-process pub/sub fabric keyed by exact key match.
type Fabric struct {
	mu          sync.Mutex
	subscribers map[string][]*subscriber
	queryables  map[string][]*queryable
}

// NewFabric returns an empty fabric.
func NewFabric() *Fabric {
	return &Fabric{
		subscribers: make(map[string][]*subscriber),
		queryables:  make(map[string][]*queryable),
	}
}

// NewSession opens a session on the fabric.
func (f *Fabric) NewSession() transport.Session {
	return &session{fabric: f}
}

func (f *Fabric) publish(key string, payload []byte) {
	f.mu.Lock()
	subs := append([]*subscriber(nil), f.subscribers[key]...)
	f.mu.Unlock()

	for _, s := range subs {
		s.deliver(transport.Sample{Key: key, Payload: payload})
	}
}

func (f *Fabric) drop(key string, s *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribers[key] = without(f.subscribers[key], s)
}

func (f *Fabric) dropQueryable(key string, q *queryable) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queryables[key] = without(f.queryables[key], q)
}

func without[T comparable](items []T, item T) []T {
	out := items[:0]
	for _, it := range items {
		if it != item {
			out = append(out, it)
		}
	}
	return out
}

var _ transport.Session = (*session)(nil)

type session struct {
	fabric *Fabric

	mu    sync.Mutex
	owned []interface{ Close() error }
}

func (s *session) DeclarePublisher(key string) (transport.Publisher, error) {
	return &publisher{fabric: s.fabric, key: key}, nil
}

func (s *session) DeclareSubscriber(key string, buffer int) (transport.Subscriber, error) {
	sub := &subscriber{
		fabric:  s.fabric,
		key:     key,
		samples: make(chan transport.Sample, buffer),
		done:    make(chan struct{}),
	}
	s.fabric.mu.Lock()
	s.fabric.subscribers[key] = append(s.fabric.subscribers[key], sub)
	s.fabric.mu.Unlock()
	s.own(sub)
	return sub, nil
}

func (s *session) DeclareQueryable(key string) (transport.Queryable, error) {
	q := &queryable{
		fabric:  s.fabric,
		key:     key,
		queries: make(chan *query, queryQueueLen),
		done:    make(chan struct{}),
	}
	s.fabric.mu.Lock()
	s.fabric.queryables[key] = append(s.fabric.queryables[key], q)
	s.fabric.mu.Unlock()
	s.own(q)
	return q, nil
}

// Get delivers the query to every live queryable on the key. The reply
// channel closes once each of them has answered, or when the context ends,
// whichever comes first.
func (s *session) Get(ctx context.Context, key string, _ transport.Consolidation) (<-chan transport.Reply, error) {
	s.fabric.mu.Lock()
	qs := append([]*queryable(nil), s.fabric.queryables[key]...)
	s.fabric.mu.Unlock()

	sink := &replySink{ch: make(chan transport.Reply, len(qs))}
	var wg sync.WaitGroup
	for _, q := range qs {
		qry := &query{key: key, sink: sink, wg: &wg}
		wg.Add(1)
		if !q.deliver(qry) {
			wg.Done()
		}
	}
	go func() {
		answered := make(chan struct{})
		go func() {
			wg.Wait()
			close(answered)
		}()
		select {
		case <-answered:
		case <-ctx.Done():
		}
		sink.close()
	}()
	return sink.ch, nil
}

func (s *session) Close() error {
	s.mu.Lock()
	owned := s.owned
	s.owned = nil
	s.mu.Unlock()

	for _, res := range owned {
		res.Close()
	}
	return nil
}

func (s *session) own(res interface{ Close() error }) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owned = append(s.owned, res)
}

var _ transport.Publisher = (*publisher)(nil)

type publisher struct {
	fabric *Fabric
	key    string
}

func (p *publisher) Put(_ context.Context, payload []byte) error {
	p.fabric.publish(p.key, payload)
	return nil
}

func (p *publisher) Close() error {
	return nil
}

var _ transport.Subscriber = (*subscriber)(nil)

type subscriber struct {
	fabric  *Fabric
	key     string
	samples chan transport.Sample

	closeOnce sync.Once
	done      chan struct{}

	mu      sync.Mutex
	dropped int
}

// deliver enqueues a sample, dropping it when the bounded queue is full.
func (s *subscriber) deliver(sample transport.Sample) {
	select {
	case s.samples <- sample:
	default:
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
	}
}

// Dropped reports how many samples overflowed the bounded queue.
func (s *subscriber) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *subscriber) Recv(ctx context.Context) (transport.Sample, error) {
	// Drain queued samples even after Close; delivery stops, queued
	// frames do not vanish mid-recv.
	select {
	case sample := <-s.samples:
		return sample, nil
	default:
	}
	select {
	case <-s.done:
		return transport.Sample{}, transport.ErrClosed
	case <-ctx.Done():
		return transport.Sample{}, ctx.Err()
	case sample := <-s.samples:
		return sample, nil
	}
}

func (s *subscriber) Close() error {
	s.closeOnce.Do(func() {
		s.fabric.drop(s.key, s)
		close(s.done)
	})
	return nil
}

var _ transport.Queryable = (*queryable)(nil)

type queryable struct {
	fabric  *Fabric
	key     string
	queries chan *query

	closeOnce sync.Once
	done      chan struct{}
}

func (q *queryable) deliver(qry *query) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	select {
	case q.queries <- qry:
		return true
	default:
		return false
	}
}

func (q *queryable) Recv(ctx context.Context) (transport.Query, error) {
	select {
	case <-q.done:
		return nil, transport.ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	case qry := <-q.queries:
		return qry, nil
	}
}

func (q *queryable) Close() error {
	q.closeOnce.Do(func() {
		q.fabric.dropQueryable(q.key, q)
		close(q.done)
	})
	return nil
}

// replySink serializes reply sends against channel close, so a responder
// answering after the query deadline cannot hit a closed channel. The
// channel is buffered for one reply per queried endpoint, so sends under
// the lock never block.
type replySink struct {
	mu     sync.Mutex
	ch     chan transport.Reply
	closed bool
}

func (rs *replySink) send(r transport.Reply) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if !rs.closed {
		rs.ch <- r
	}
}

func (rs *replySink) close() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if !rs.closed {
		rs.closed = true
		close(rs.ch)
	}
}

var _ transport.Query = (*query)(nil)

type query struct {
	key  string
	sink *replySink

	replyOnce sync.Once
	wg        *sync.WaitGroup
}

func (q *query) Key() string {
	return q.key
}

func (q *query) Reply(_ context.Context, key string, payload []byte) error {
	q.replyOnce.Do(func() {
		q.sink.send(transport.Reply{Key: key, Payload: payload})
		q.wg.Done()
	})
	return nil
}
