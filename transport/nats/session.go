// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

// Package nats provides a NATS-backed transport session. Keys are mapped to
// NATS subjects by replacing every "/" with the subject separator ".", so
// the fabric key "robotica/pubsub/imu" becomes the subject
// "robotica.pubsub.imu".
package nats

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	broker "github.com/nats-io/nats.go"

	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/logger"
	"github.com/rdelfin/robotica/transport"
)

const (
	// keyHeader carries the reply key of a queryable response.
	keyHeader = "Robotica-Key"

	maxConnectElapsed = 30 * time.Second
)

var (
	errConnect      = errors.New("failed to connect to NATS")
	errSubscribe    = errors.New("failed to subscribe to NATS subject")
	errPublish      = errors.New("failed to publish to NATS")
	errRequest      = errors.New("failed to issue NATS request")
	errSessionClose = errors.New("session already closed")
)

var _ transport.Session = (*session)(nil)

type session struct {
	conn   *broker.Conn
	logger logger.Logger
}

// NewSession connects to the NATS fabric at the given URL, retrying with
// exponential backoff for up to 30 seconds.
func NewSession(url string, log logger.Logger) (transport.Session, error) {
	var conn *broker.Conn
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxConnectElapsed
	err := backoff.Retry(func() error {
		var err error
		conn, err = broker.Connect(url)
		if err != nil {
			log.Warn("NATS connect attempt failed: " + err.Error())
		}
		return err
	}, bo)
	if err != nil {
		return nil, errors.Wrap(errConnect, err)
	}

	return &session{conn: conn, logger: log}, nil
}

func (s *session) DeclarePublisher(key string) (transport.Publisher, error) {
	return &publisher{conn: s.conn, subject: subject(key)}, nil
}

func (s *session) DeclareSubscriber(key string, buffer int) (transport.Subscriber, error) {
	msgs := make(chan *broker.Msg, buffer)
	sub, err := s.conn.ChanSubscribe(subject(key), msgs)
	if err != nil {
		return nil, errors.Wrap(errSubscribe, err)
	}
	return &subscriber{sub: sub, msgs: msgs, done: make(chan struct{})}, nil
}

func (s *session) DeclareQueryable(key string) (transport.Queryable, error) {
	msgs := make(chan *broker.Msg, queryableBuffer)
	sub, err := s.conn.ChanSubscribe(subject(key), msgs)
	if err != nil {
		return nil, errors.Wrap(errSubscribe, err)
	}
	return &queryable{conn: s.conn, sub: sub, msgs: msgs, done: make(chan struct{})}, nil
}

// Get fans a request out to every queryable on the key and forwards replies
// until the context ends. NATS cannot consolidate replies server-side, so
// every consolidation mode behaves as ConsolidationNone here.
func (s *session) Get(ctx context.Context, key string, _ transport.Consolidation) (<-chan transport.Reply, error) {
	inbox := broker.NewInbox()
	msgs := make(chan *broker.Msg, queryableBuffer)
	sub, err := s.conn.ChanSubscribe(inbox, msgs)
	if err != nil {
		return nil, errors.Wrap(errRequest, err)
	}
	if err := s.conn.PublishRequest(subject(key), inbox, nil); err != nil {
		if uerr := sub.Unsubscribe(); uerr != nil {
			s.logger.Warn("failed to drop reply inbox: " + uerr.Error())
		}
		return nil, errors.Wrap(errRequest, err)
	}

	replies := make(chan transport.Reply)
	go func() {
		defer close(replies)
		defer func() {
			if err := sub.Unsubscribe(); err != nil {
				s.logger.Warn("failed to drop reply inbox: " + err.Error())
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case m := <-msgs:
				r := transport.Reply{Key: m.Header.Get(keyHeader), Payload: m.Data}
				select {
				case replies <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return replies, nil
}

func (s *session) Close() error {
	if s.conn.IsClosed() {
		return errSessionClose
	}
	s.conn.Close()
	return nil
}

func subject(key string) string {
	return strings.ReplaceAll(key, "/", ".")
}
