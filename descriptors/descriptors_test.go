// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package descriptors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/rdelfin/robotica/descriptors"
	"github.com/rdelfin/robotica/errors"
	"github.com/rdelfin/robotica/types"
)

// blobWithMessage builds a descriptor-set blob declaring a single message
// with one string field, under the given proto package and file name.
func blobWithMessage(t *testing.T, file, pkg, message, field string) []byte {
	t.Helper()
	fds := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{
				Name:    proto.String(file),
				Package: proto.String(pkg),
				Syntax:  proto.String("proto3"),
				MessageType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String(message),
						Field: []*descriptorpb.FieldDescriptorProto{
							{
								Name:     proto.String(field),
								Number:   proto.Int32(1),
								Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
								Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
								JsonName: proto.String(field),
							},
						},
					},
				},
			},
		},
	}
	blob, err := proto.Marshal(fds)
	require.Nil(t, err, fmt.Sprintf("marshalling descriptor set: %s", err))
	return blob
}

func TestResolve(t *testing.T) {
	registry, err := descriptors.NewRegistry(types.FileDescriptorSet())
	require.Nil(t, err, fmt.Sprintf("building registry: %s", err))

	cases := []struct {
		desc    string
		typeURL string
		err     error
	}{
		{
			desc:    "resolve bundled message",
			typeURL: "type.googleapis.com/robotica.StringMessage",
			err:     nil,
		},
		{
			desc:    "resolve bundled message under another authority",
			typeURL: "example.org/robotica.IntMessage",
			err:     nil,
		},
		{
			desc:    "type URL without separator",
			typeURL: "robotica.StringMessage",
			err:     descriptors.InvalidTypeURLError("robotica.StringMessage"),
		},
		{
			desc:    "unknown message name",
			typeURL: "type.googleapis.com/robotica.Missing",
			err:     descriptors.InvalidTypeURLError("robotica.Missing"),
		},
	}

	for _, tc := range cases {
		md, err := registry.Resolve(tc.typeURL)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected error %v got %v", tc.desc, tc.err, err))
		if tc.err == nil {
			assert.NotNil(t, md, fmt.Sprintf("%s: expected a descriptor", tc.desc))
		}
	}
}

func TestRegistryRejectsBadBlob(t *testing.T) {
	_, err := descriptors.NewRegistry([]byte("not a descriptor set"))
	assert.True(t, errors.Contains(err, descriptors.ErrDescriptorRead), fmt.Sprintf("expected descriptor read error, got %v", err))
}

func TestResolveSearchesPoolsInOrder(t *testing.T) {
	// Two pools declare robotica.test.Collide with different field names;
	// the earliest pool must win.
	first := blobWithMessage(t, "first.proto", "robotica.test", "Collide", "from_first")
	second := blobWithMessage(t, "second.proto", "robotica.test", "Collide", "from_second")

	registry, err := descriptors.NewRegistry(first, second)
	require.Nil(t, err, fmt.Sprintf("building registry: %s", err))

	md, err := registry.Resolve("type.googleapis.com/robotica.test.Collide")
	require.Nil(t, err, fmt.Sprintf("resolving: %s", err))
	assert.NotNil(t, md.Fields().ByName("from_first"), "expected the first pool's schema to win")
	assert.Nil(t, md.Fields().ByName("from_second"), "expected the second pool's schema to lose")
}

func TestAddAppendsAfterExistingPools(t *testing.T) {
	registry, err := descriptors.NewRegistry(types.FileDescriptorSet())
	require.Nil(t, err, fmt.Sprintf("building registry: %s", err))

	// A user blob redefining a bundled name must lose to the bundled pool.
	shadow := blobWithMessage(t, "shadow.proto", "robotica", "StringMessage", "shadowed")
	err = registry.Add(shadow)
	require.Nil(t, err, fmt.Sprintf("adding blob: %s", err))

	md, err := registry.Resolve("type.googleapis.com/robotica.StringMessage")
	require.Nil(t, err, fmt.Sprintf("resolving: %s", err))
	assert.NotNil(t, md.Fields().ByName("data"), "expected the bundled schema to win on collision")

	// A new name from the user blob still resolves.
	fresh := blobWithMessage(t, "fresh.proto", "robotica.test", "Fresh", "value")
	err = registry.Add(fresh)
	require.Nil(t, err, fmt.Sprintf("adding blob: %s", err))
	_, err = registry.Resolve("type.googleapis.com/robotica.test.Fresh")
	assert.Nil(t, err, fmt.Sprintf("resolving added message: %s", err))
}

func TestMessageName(t *testing.T) {
	cases := []struct {
		desc    string
		typeURL string
		name    string
		err     error
	}{
		{
			desc:    "canonical URL",
			typeURL: "type.googleapis.com/robotica.StringMessage",
			name:    "robotica.StringMessage",
		},
		{
			desc:    "empty authority",
			typeURL: "/robotica.StringMessage",
			name:    "robotica.StringMessage",
		},
		{
			desc:    "missing separator",
			typeURL: "robotica.StringMessage",
			err:     descriptors.InvalidTypeURLError("robotica.StringMessage"),
		},
	}

	for _, tc := range cases {
		name, err := descriptors.MessageName(tc.typeURL)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected error %v got %v", tc.desc, tc.err, err))
		assert.Equal(t, tc.name, string(name), fmt.Sprintf("%s: expected name %q got %q", tc.desc, tc.name, name))
	}
}
