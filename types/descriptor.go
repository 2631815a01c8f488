// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/descriptorpb"
)

var (
	fdsOnce  sync.Once
	fdsBytes []byte
)

// FileDescriptorSet returns the encoded descriptor set of the bundled message
// types. Every node loads it as its first descriptor pool, so the bundled
// types resolve without any user-supplied descriptors.
func FileDescriptorSet() []byte {
	fdsOnce.Do(func() {
		fds := &descriptorpb.FileDescriptorSet{
			File: []*descriptorpb.FileDescriptorProto{
				protodesc.ToFileDescriptorProto(File_robotica_types_proto),
			},
		}
		b, err := proto.Marshal(fds)
		if err != nil {
			// The set is derived from this package's own generated
			// descriptor, so marshalling cannot fail.
			panic(err)
		}
		fdsBytes = b
	})
	return fdsBytes
}
