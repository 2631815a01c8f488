// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package nats

import (
	"context"

	broker "github.com/nats-io/nats.go"

	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/transport"
)

var _ transport.Publisher = (*publisher)(nil)

type publisher struct {
	conn    *broker.Conn
	subject string
}

func (p *publisher) Put(_ context.Context, payload []byte) error {
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return errors.Wrap(errPublish, err)
	}
	return nil
}

func (p *publisher) Close() error {
	return nil
}
