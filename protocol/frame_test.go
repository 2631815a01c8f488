// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package protocol_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/protocol"
	"github.com/rdelfin/robotica/types"
)

const stringMessageURL = "type.googleapis.com/robotica.StringMessage"

func TestFrameRoundTrip(t *testing.T) {
	cases := []struct {
		desc    string
		typeURL string
		payload proto.Message
	}{
		{
			desc:    "string payload",
			typeURL: stringMessageURL,
			payload: &types.StringMessage{Data: "hello 0"},
		},
		{
			desc:    "empty payload",
			typeURL: stringMessageURL,
			payload: &types.StringMessage{},
		},
		{
			desc:    "int payload",
			typeURL: "type.googleapis.com/robotica.IntMessage",
			payload: &types.IntMessage{Data: -42},
		},
	}

	for _, tc := range cases {
		payload, err := proto.Marshal(tc.payload)
		require.Nil(t, err, fmt.Sprintf("%s: marshalling payload: %s", tc.desc, err))

		header := &protocol.Header{
			MessageTimestamp: timestamppb.Now(),
			TypeUrl:          tc.typeURL,
		}
		frame, err := protocol.EncodeFrame(header, payload)
		require.Nil(t, err, fmt.Sprintf("%s: encoding frame: %s", tc.desc, err))

		gotHeader, gotPayload, err := protocol.DecodeFrame(frame)
		require.Nil(t, err, fmt.Sprintf("%s: decoding frame: %s", tc.desc, err))
		assert.Equal(t, tc.typeURL, gotHeader.GetTypeUrl(), fmt.Sprintf("%s: expected type URL %s got %s", tc.desc, tc.typeURL, gotHeader.GetTypeUrl()))
		assert.True(t, gotHeader.GetMessageTimestamp().IsValid(), fmt.Sprintf("%s: expected a valid timestamp", tc.desc))
		assert.Equal(t, payload, gotPayload, fmt.Sprintf("%s: expected payload %v got %v", tc.desc, payload, gotPayload))

		decoded := tc.payload.ProtoReflect().New().Interface()
		err = proto.Unmarshal(gotPayload, decoded)
		require.Nil(t, err, fmt.Sprintf("%s: decoding payload: %s", tc.desc, err))
		assert.True(t, proto.Equal(tc.payload, decoded), fmt.Sprintf("%s: expected message %v got %v", tc.desc, tc.payload, decoded))
	}
}

func TestDecodeFrameMalformed(t *testing.T) {
	header := &protocol.Header{MessageTimestamp: timestamppb.Now(), TypeUrl: stringMessageURL}
	frame, err := protocol.EncodeFrame(header, []byte("payload"))
	require.Nil(t, err, fmt.Sprintf("encoding frame: %s", err))

	cases := []struct {
		desc  string
		frame []byte
	}{
		{desc: "empty frame", frame: []byte{}},
		{desc: "header length prefix without header", frame: []byte{0x10}},
		{desc: "truncated header", frame: frame[:4]},
		{desc: "frame cut before payload", frame: frame[:len(frame)-8]},
		{desc: "garbage header bytes", frame: []byte{0x04, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tc := range cases {
		_, _, err := protocol.DecodeFrame(tc.frame)
		assert.True(t, errors.Contains(err, protocol.ErrProtobufDecode), fmt.Sprintf("%s: expected decode error, got %v", tc.desc, err))
	}
}

func TestDecodeFrameBoundsPayload(t *testing.T) {
	// The payload slice must stop at its length prefix even when the
	// buffer carries trailing bytes.
	header := &protocol.Header{MessageTimestamp: timestamppb.Now(), TypeUrl: stringMessageURL}
	frame, err := protocol.EncodeFrame(header, []byte{1, 2, 3})
	require.Nil(t, err, fmt.Sprintf("encoding frame: %s", err))

	_, payload, err := protocol.DecodeFrame(append(frame, 0xde, 0xad))
	require.Nil(t, err, fmt.Sprintf("decoding frame: %s", err))
	assert.Equal(t, []byte{1, 2, 3}, payload, fmt.Sprintf("expected bounded payload, got %v", payload))
}
