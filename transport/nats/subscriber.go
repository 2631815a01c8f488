// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package nats

import (
	"context"
	"strings"
	"sync"

	broker "github.com/nats-io/nats.go"

	"github.com/rdelfin/robotica/transport"
)

var _ transport.Subscriber = (*subscriber)(nil)

// subscriber consumes one subject through a bounded channel. When the
// channel is full the NATS client drops inbound messages and flags the
// subscription as a slow consumer; that is the transport's overflow policy.
type subscriber struct {
	sub  *broker.Subscription
	msgs chan *broker.Msg

	closeOnce sync.Once
	done      chan struct{}
}

func (s *subscriber) Recv(ctx context.Context) (transport.Sample, error) {
	select {
	case <-s.done:
		return transport.Sample{}, transport.ErrClosed
	case <-ctx.Done():
		return transport.Sample{}, ctx.Err()
	case m := <-s.msgs:
		return transport.Sample{Key: key(m.Subject), Payload: m.Data}, nil
	}
}

func (s *subscriber) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.sub.Unsubscribe()
		close(s.done)
	})
	return err
}

func key(subject string) string {
	return strings.ReplaceAll(subject, ".", "/")
}
