// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package valid

import (
	"log/slog"
)

// Option configures a Device during construction.
//
// Example:
//
//	// Plain facade over the default backend
//	dev, err := valid.New(backend)
//
//	// With shader prevalidation and a dedicated logger
//	dev, err := valid.New(backend,
//	    valid.WithWGSLValidation(),
//	    valid.WithLogger(slog.Default()))
type Option func(*deviceOptions)

// deviceOptions holds optional configuration for Device construction.
type deviceOptions struct {
	logger         *slog.Logger
	wgslValidation bool
}

// defaultOptions returns the default device options.
func defaultOptions() deviceOptions {
	return deviceOptions{
		logger: nil, // falls back to rhi.Logger()
	}
}

// WithLogger routes this device's log output to l instead of the package
// logger configured through rhi.SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *deviceOptions) {
		o.logger = l
	}
}

// WithWGSLValidation compiles WGSL shader sources with naga before pipeline
// creation reaches the backend. Bytecode that starts with the SPIR-V magic
// number is passed through untouched. Rejected sources fail the create with
// an rhi.ErrInvalidArgument-classed error.
func WithWGSLValidation() Option {
	return func(o *deviceOptions) {
		o.wgslValidation = true
	}
}
