// Copyright 2025 Axon ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package hooks

import "github.com/axon-ml/axon/internal/hooks"

// Interface is the capability contract generic runtime code uses to reach an
// accelerator backend: one-time Init, presence and platform probes, the
// singleton allocator and default generator, and a full synchronization
// barrier.
type Interface = hooks.Interface

type (
	// BackendID identifies an optional accelerator backend.
	BackendID = hooks.BackendID
	// Factory constructs a backend's hook implementation.
	Factory = hooks.Factory
	// Registry maps backend identifiers to hook factories.
	Registry = hooks.Registry

	// Allocator hands out device memory for a backend.
	Allocator = hooks.Allocator
	// Allocation is a single block of device memory leased from an Allocator.
	Allocation = hooks.Allocation
	// AllocatorStats reports cumulative allocator activity.
	AllocatorStats = hooks.AllocatorStats
	// Generator is a backend's default random number source.
	Generator = hooks.Generator
)

// Backend identifiers.
const (
	None   = hooks.None
	WebGPU = hooks.WebGPU
)

// ErrBackendUnavailable is returned by sentinel resources when no
// accelerator backend is present for the queried identifier.
var ErrBackendUnavailable = hooks.ErrBackendUnavailable

// Unusable sentinels returned by the no-op implementation in place of real
// resources.
var (
	UnusableAllocator = hooks.UnusableAllocator
	UnusableGenerator = hooks.UnusableGenerator
)

// NewRegistry returns an empty registry, independent of the process-wide
// default. Intended for tests.
func NewRegistry() *Registry {
	return hooks.NewRegistry()
}

// Default returns the process-wide registry backend packages register into.
func Default() *Registry {
	return hooks.Default()
}

// Register installs factory for id in the process-wide registry. Called by
// backend packages from init; registering an identifier twice panics.
func Register(id BackendID, factory Factory) {
	hooks.Register(id, factory)
}

// Get returns the hook implementation bound to id in the process-wide
// registry. Always succeeds: identifiers with no registered backend get a
// no-op implementation whose Available reports false.
func Get(id BackendID) Interface {
	return hooks.Get(id)
}
