// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"os"
	"sync"

	"github.com/rdelfin/robotica/errors"
)

// ErrLogSetup indicates that a process-global logger is already installed.
var ErrLogSetup = errors.New("logging backend already installed")

var (
	globalMu  sync.Mutex
	global    Logger
	installed bool
)

// Setup installs a process-global logger writing JSON to stderr. A process
// gets exactly one global logger; a second call fails with ErrLogSetup no
// matter what configuration it carries.
func Setup(levelText string) (Logger, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if installed {
		return nil, ErrLogSetup
	}
	l, err := New(os.Stderr, levelText)
	if err != nil {
		return nil, err
	}
	global = l
	installed = true
	return l, nil
}

// Global returns the installed process-global logger, or a no-op logger when
// Setup has not run.
func Global() Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		return NewMock()
	}
	return global
}
