// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	stderr "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdelfin/robotica/errors"
)

var (
	err0 = errors.New("0")
	err1 = errors.New("1")
	err2 = errors.New("2")
)

func TestWrap(t *testing.T) {
	cases := []struct {
		desc    string
		wrapper error
		wrapped error
		contain error
	}{
		{desc: "wrap error with error", wrapper: err1, wrapped: err0, contain: err0},
		{desc: "wrap error with nil", wrapper: err1, wrapped: nil, contain: nil},
		{desc: "wrap two levels", wrapper: err2, wrapped: errors.Wrap(err1, err0), contain: err0},
		{desc: "wrap native error", wrapper: err1, wrapped: stderr.New("native"), contain: stderr.New("native")},
	}

	for _, tc := range cases {
		err := errors.Wrap(tc.wrapper, tc.wrapped)
		if tc.contain != nil {
			assert.True(t, errors.Contains(err, tc.contain), fmt.Sprintf("%s: expected %v to contain %v", tc.desc, err, tc.contain))
		}
		assert.True(t, errors.Contains(err, tc.wrapper), fmt.Sprintf("%s: expected %v to contain its wrapper", tc.desc, err))
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		desc      string
		container error
		contained error
		contains  bool
	}{
		{desc: "nil contains nil", container: nil, contained: nil, contains: true},
		{desc: "nil contains error", container: nil, contained: err0, contains: false},
		{desc: "error contains itself", container: err0, contained: err0, contains: true},
		{desc: "unrelated errors", container: err0, contained: err1, contains: false},
		{desc: "deep wrap", container: errors.Wrap(err2, errors.Wrap(err1, err0)), contained: err0, contains: true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.contains, errors.Contains(tc.container, tc.contained), fmt.Sprintf("%s: expected %v", tc.desc, tc.contains))
	}
}

func TestUnwrapInteropsWithStdlib(t *testing.T) {
	wrapped := errors.Wrap(err1, err0)
	assert.True(t, stderr.Is(wrapped, wrapped), "expected identity")
	assert.NotNil(t, stderr.Unwrap(wrapped), "expected an unwrappable chain")
}
