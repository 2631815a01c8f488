// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

// Package descriptors resolves type URLs against ordered pools of protobuf
// message descriptors parsed from file-descriptor-set blobs.
package descriptors

import (
	"fmt"
	"strings"
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/rdelfin/robotica/errors"
)

// ErrDescriptorRead indicates an invalid file-descriptor-set blob.
var ErrDescriptorRead = errors.New("failed to read file descriptor set")

// InvalidTypeURLError reports a type URL without an authority separator, or
// a message name that no pool resolves.
type InvalidTypeURLError string

func (e InvalidTypeURLError) Error() string {
	return fmt.Sprintf("invalid type URL %q", string(e))
}

// Registry is an ordered list of descriptor pools. Resolution searches
// pools in insertion order and returns the first hit, so on a name
// collision the earliest pool wins. Pools are immutable once parsed.
type Registry struct {
	mu    sync.RWMutex
	pools []*protoregistry.Files
}

// NewRegistry parses each blob into a pool, preserving order.
func NewRegistry(blobs ...[]byte) (*Registry, error) {
	r := &Registry{}
	for _, blob := range blobs {
		if err := r.Add(blob); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add parses one file-descriptor-set blob and appends it after every
// existing pool.
func (r *Registry) Add(blob []byte) error {
	var fds descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(blob, &fds); err != nil {
		return errors.Wrap(ErrDescriptorRead, err)
	}
	pool, err := protodesc.NewFiles(&fds)
	if err != nil {
		return errors.Wrap(ErrDescriptorRead, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools = append(r.pools, pool)
	return nil
}

// Resolve returns the message descriptor for the given type URL.
//
// Resolution is by fully-qualified message name only: two schemas sharing a
// name silently collide, as they do under the protobuf type-URL convention.
func (r *Registry) Resolve(typeURL string) (protoreflect.MessageDescriptor, error) {
	name, err := MessageName(typeURL)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, pool := range r.pools {
		d, err := pool.FindDescriptorByName(name)
		if err != nil {
			continue
		}
		if md, ok := d.(protoreflect.MessageDescriptor); ok {
			return md, nil
		}
	}
	return nil, InvalidTypeURLError(name)
}

// MessageName splits the fully-qualified message name off a type URL of the
// form "<authority>/<fully.qualified.MessageName>".
func MessageName(typeURL string) (protoreflect.FullName, error) {
	_, name, ok := strings.Cut(typeURL, "/")
	if !ok {
		return "", InvalidTypeURLError(typeURL)
	}
	return protoreflect.FullName(name), nil
}
