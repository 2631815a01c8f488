// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package nats

import (
	"context"
	"sync"

	broker "github.com/nats-io/nats.go"

	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/transport"
)

// queryableBuffer bounds inbound queries and replies. Introspection queries
// are small and sporadic; the bound only guards against a wedged responder.
const queryableBuffer = 64

var errNoReplySubject = errors.New("query carries no reply subject")

var (
	_ transport.Queryable = (*queryable)(nil)
	_ transport.Query     = (*query)(nil)
)

type queryable struct {
	conn *broker.Conn
	sub  *broker.Subscription
	msgs chan *broker.Msg

	closeOnce sync.Once
	done      chan struct{}
}

func (q *queryable) Recv(ctx context.Context) (transport.Query, error) {
	select {
	case <-q.done:
		return nil, transport.ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	case m := <-q.msgs:
		return &query{conn: q.conn, msg: m}, nil
	}
}

func (q *queryable) Close() error {
	var err error
	q.closeOnce.Do(func() {
		err = q.sub.Unsubscribe()
		close(q.done)
	})
	return err
}

type query struct {
	conn *broker.Conn
	msg  *broker.Msg
}

func (q *query) Key() string {
	return key(q.msg.Subject)
}

func (q *query) Reply(_ context.Context, replyKey string, payload []byte) error {
	if q.msg.Reply == "" {
		return errNoReplySubject
	}
	m := &broker.Msg{
		Subject: q.msg.Reply,
		Data:    payload,
		Header:  broker.Header{keyHeader: []string{replyKey}},
	}
	if err := q.conn.PublishMsg(m); err != nil {
		return errors.Wrap(errPublish, err)
	}
	return nil
}
