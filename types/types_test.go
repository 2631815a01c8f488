// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/rdelfin/robotica/types"
)

func TestFileDescriptorSetCarriesBundledTypes(t *testing.T) {
	blob := types.FileDescriptorSet()
	require.NotEmpty(t, blob, "expected a non-empty descriptor set")

	var fds descriptorpb.FileDescriptorSet
	err := proto.Unmarshal(blob, &fds)
	require.Nil(t, err, fmt.Sprintf("unmarshalling descriptor set: %s", err))
	require.Len(t, fds.File, 1, "expected a single descriptor file")

	names := make([]string, 0, 2)
	for _, m := range fds.File[0].GetMessageType() {
		names = append(names, m.GetName())
	}
	assert.ElementsMatch(t, []string{"StringMessage", "IntMessage"}, names, fmt.Sprintf("expected the bundled messages, got %v", names))
	assert.Equal(t, "robotica", fds.File[0].GetPackage(), "expected the robotica package")
}

func TestFileDescriptorSetIsStable(t *testing.T) {
	assert.Equal(t, types.FileDescriptorSet(), types.FileDescriptorSet(), "expected a stable blob")
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "robotica.StringMessage", string((&types.StringMessage{}).ProtoReflect().Descriptor().FullName()), "expected the canonical string message name")
	assert.Equal(t, "robotica.IntMessage", string((&types.IntMessage{}).ProtoReflect().Descriptor().FullName()), "expected the canonical int message name")
}
