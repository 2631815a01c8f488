// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"github.com/caarlos0/env/v7"
)

// Options is a subset of env parsing knobs exposed to callers.
type Options struct {
	// Environment keys and values that will be accessible to the process
	Environment map[string]string

	// TagName specifies another tagname to use rather than the default env
	TagName string

	// RequiredIfNoDef automatically sets all env as required if they do not declare 'envDefault'
	RequiredIfNoDef bool

	// Prefix define a prefix for each key
	Prefix string
}

// Parse parses environment variables into v based on `env` tags.
func Parse(v interface{}, opts ...Options) error {
	altOpts := []env.Options{}

	for _, opt := range opts {
		altOpts = append(altOpts, env.Options{
			Environment:     opt.Environment,
			TagName:         opt.TagName,
			RequiredIfNoDef: opt.RequiredIfNoDef,
			Prefix:          opt.Prefix,
		})
	}

	return env.Parse(v, altOpts...)
}
