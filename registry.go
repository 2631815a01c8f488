// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package robotica

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gofrs/uuid"

	"github.com/rdelfin/robotica/logger"
)

// pubsubRegistry tracks the topics with live publisher and subscriber
// handles on a node. Each handle owns a unique ID, so two live handles for
// the same topic keep it listed until both are closed.
//
// The registry is the node's only mutable shared state. Every operation,
// including the snapshots taken by introspection responders, runs under one
// mutex held for O(1) or O(topics) work, so handle teardown never suspends.
type pubsubRegistry struct {
	mu          sync.Mutex
	logger      logger.Logger
	publishers  map[string]map[uuid.UUID]struct{}
	subscribers map[string]map[uuid.UUID]struct{}
}

func newPubsubRegistry(log logger.Logger) *pubsubRegistry {
	return &pubsubRegistry{
		logger:      log,
		publishers:  make(map[string]map[uuid.UUID]struct{}),
		subscribers: make(map[string]map[uuid.UUID]struct{}),
	}
}

func (r *pubsubRegistry) addPublisher(topic string) (uuid.UUID, error) {
	return r.add(r.publishers, topic)
}

func (r *pubsubRegistry) removePublisher(topic string, handle uuid.UUID) {
	r.remove(r.publishers, "publisher", topic, handle)
}

func (r *pubsubRegistry) addSubscriber(topic string) (uuid.UUID, error) {
	return r.add(r.subscribers, topic)
}

func (r *pubsubRegistry) removeSubscriber(topic string, handle uuid.UUID) {
	r.remove(r.subscribers, "subscriber", topic, handle)
}

func (r *pubsubRegistry) publisherTopics() []string {
	return r.topics(r.publishers)
}

func (r *pubsubRegistry) subscriberTopics() []string {
	return r.topics(r.subscribers)
}

func (r *pubsubRegistry) add(entries map[string]map[uuid.UUID]struct{}, topic string) (uuid.UUID, error) {
	handle, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	handles, ok := entries[topic]
	if !ok {
		handles = make(map[uuid.UUID]struct{})
		entries[topic] = handles
	}
	handles[handle] = struct{}{}
	return handle, nil
}

// remove drops one handle. Removing an absent handle is a logic error in
// the caller; it is logged and otherwise ignored.
func (r *pubsubRegistry) remove(entries map[string]map[uuid.UUID]struct{}, kind, topic string, handle uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	handles, ok := entries[topic]
	if !ok {
		r.logger.Warn(fmt.Sprintf("removing %s for unknown topic %q", kind, topic))
		return
	}
	if _, ok := handles[handle]; !ok {
		r.logger.Warn(fmt.Sprintf("removing unknown %s handle for topic %q", kind, topic))
		return
	}
	delete(handles, handle)
	if len(handles) == 0 {
		delete(entries, topic)
	}
}

func (r *pubsubRegistry) topics(entries map[string]map[uuid.UUID]struct{}) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	topics := make([]string, 0, len(entries))
	for topic := range entries {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}
