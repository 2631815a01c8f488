// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdelfin/robotica/logger"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	cases := []struct {
		desc  string
		level string
		err   error
	}{
		{desc: "debug level", level: "debug", err: nil},
		{desc: "info level", level: "info", err: nil},
		{desc: "warn level", level: "warn", err: nil},
		{desc: "error level", level: "error", err: nil},
		{desc: "empty level defaults", level: "", err: nil},
		{desc: "unknown level", level: "loud", err: logger.ErrInvalidLogLevel},
	}

	for _, tc := range cases {
		_, err := logger.New(&bytes.Buffer{}, tc.level)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected error %v got %v", tc.desc, tc.err, err))
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(&buf, "warn")
	require.Nil(t, err, fmt.Sprintf("creating logger: %s", err))

	l.Debug("quiet")
	l.Info("quiet")
	l.Warn("loud warning")
	l.Error("loud error")

	var entries []map[string]interface{}
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]interface{}
		require.Nil(t, dec.Decode(&entry), "decoding log entry")
		entries = append(entries, entry)
	}
	require.Len(t, entries, 2, fmt.Sprintf("expected the filtered entries, got %v", entries))
	assert.Equal(t, "warn", entries[0]["level"], "expected the warning first")
	assert.Equal(t, "loud warning", entries[0]["message"], "expected the warning message")
	assert.Equal(t, "error", entries[1]["level"], "expected the error second")
}

func TestSetupInstallsExactlyOnce(t *testing.T) {
	l, err := logger.Setup("info")
	require.Nil(t, err, fmt.Sprintf("installing global logger: %s", err))
	require.NotNil(t, l, "expected a logger")
	assert.Equal(t, l, logger.Global(), "expected the installed logger back")

	_, err = logger.Setup("debug")
	assert.Equal(t, logger.ErrLogSetup, err, fmt.Sprintf("expected second install to fail, got %v", err))
}
