// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package robotica

import (
	"fmt"

	"github.com/rdelfin/robotica/descriptors"
	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/logger"
	"github.com/rdelfin/robotica/protocol"
	"github.com/rdelfin/robotica/transport"
)

var (
	// ErrTransport indicates a failed transport call. Not retried.
	ErrTransport = errors.New("transport operation failed")

	// ErrQueryReply indicates a discovery reply that carried an error.
	ErrQueryReply = errors.New("query reply carried an error")

	// ErrQueueClosed is returned once a subscriber's inbound queue has
	// been closed. Terminal for that handle.
	ErrQueueClosed = transport.ErrClosed

	// ErrProtobufDecode indicates a malformed header or payload. The
	// subscriber remains usable.
	ErrProtobufDecode = protocol.ErrProtobufDecode

	// ErrDescriptorRead indicates an invalid descriptor-set blob.
	ErrDescriptorRead = descriptors.ErrDescriptorRead

	// ErrStructuredValue indicates a structured value rejected by the
	// publisher's message descriptor.
	ErrStructuredValue = errors.New("structured value does not match descriptor")

	// ErrLogSetup indicates the process-global logger is already
	// installed.
	ErrLogSetup = logger.ErrLogSetup
)

// InvalidTypeURLError reports a type URL missing its authority separator or
// a message name no descriptor pool resolves.
type InvalidTypeURLError = descriptors.InvalidTypeURLError

// MismatchedTypeError reports a frame whose header type URL differs from a
// typed subscriber's expectation. The frame is consumed; the subscriber
// remains usable.
type MismatchedTypeError struct {
	Expected string
	Actual   string
}

func (e MismatchedTypeError) Error() string {
	return fmt.Sprintf("subscriber expected message of type %q, but received message of type %q", e.Expected, e.Actual)
}
