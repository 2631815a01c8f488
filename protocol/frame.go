// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

// Package protocol holds the node protocol wire types and the frame codec.
//
// A frame is a single transport payload carrying two length-delimited
// protobuf messages: the Header, then the user payload. Both use standard
// varint length prefixes, so the payload boundary is self-describing.
package protocol

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"

	"github.com/rdelfin/robotica/errors"
)

// ErrProtobufDecode indicates a truncated or malformed frame.
var ErrProtobufDecode = errors.New("failed to decode protobuf")

var errFrameTruncated = errors.New("frame shorter than its length prefix")

// EncodeFrame renders a header and an already-encoded payload into one
// transport payload.
func EncodeFrame(header *Header, payload []byte) ([]byte, error) {
	hdr, err := proto.Marshal(header)
	if err != nil {
		return nil, errors.Wrap(ErrProtobufDecode, err)
	}
	buf := protowire.AppendVarint(make([]byte, 0, len(hdr)+len(payload)+8), uint64(len(hdr)))
	buf = append(buf, hdr...)
	buf = protowire.AppendVarint(buf, uint64(len(payload)))
	buf = append(buf, payload...)
	return buf, nil
}

// DecodeFrame splits one transport payload into its header and a bounded
// payload slice. Both varint prefixes are consumed here so that the typed
// and the reflection decode paths receive the same already-bounded bytes.
func DecodeFrame(buf []byte) (*Header, []byte, error) {
	hdr, rest, err := consumeDelimited(buf)
	if err != nil {
		return nil, nil, err
	}
	var header Header
	if err := proto.Unmarshal(hdr, &header); err != nil {
		return nil, nil, errors.Wrap(ErrProtobufDecode, err)
	}
	payload, _, err := consumeDelimited(rest)
	if err != nil {
		return nil, nil, err
	}
	return &header, payload, nil
}

func consumeDelimited(buf []byte) (msg, rest []byte, err error) {
	n, m := protowire.ConsumeVarint(buf)
	if m < 0 {
		return nil, nil, errors.Wrap(ErrProtobufDecode, protowire.ParseError(m))
	}
	buf = buf[m:]
	if n > uint64(len(buf)) {
		return nil, nil, errors.Wrap(ErrProtobufDecode, errFrameTruncated)
	}
	return buf[:n], buf[n:], nil
}
