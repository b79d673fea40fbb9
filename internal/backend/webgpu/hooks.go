// Package webgpu implements the accelerator hooks for the WebGPU backend.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
//
// Importing this package registers the backend under hooks.WebGPU. The
// device itself opens lazily, on first allocator or synchronize use.
package webgpu

import (
	"sync"

	"github.com/axon-ml/axon/internal/hooks"
	"github.com/axon-ml/axon/internal/telemetry"
)

// usageMarker is recorded once per process, on first Init.
const usageMarker = "axon.init.webgpu"

// Hooks implements hooks.Interface for the WebGPU backend.
type Hooks struct {
	initOnce sync.Once
}

// Compile-time check that Hooks implements the hook contract.
var _ hooks.Interface = (*Hooks)(nil)

func init() {
	hooks.Register(hooks.WebGPU, func() hooks.Interface { return &Hooks{} })
}

// Init records the usage marker the first time it runs. Device and queue
// bring-up happens lazily on first resource use, so Init on a host without
// a GPU is a no-op, never a failure.
func (h *Hooks) Init() {
	h.initOnce.Do(func() {
		telemetry.LogOnce(usageMarker)
	})
}

// Available reports whether a WebGPU adapter can be acquired on this host.
func (h *Hooks) Available() bool {
	return IsAvailable()
}

// PlatformSupported reports whether the host OS is new enough for the
// graphics API wgpu-native rides on here (Vulkan/Metal/D3D12).
func (h *Hooks) PlatformSupported() bool {
	return platformSupported()
}

// Allocator returns the singleton device allocator. Calling it when
// Available reports false is a programming error and aborts.
func (h *Hooks) Allocator() hooks.Allocator {
	d, err := sharedDevice()
	if err != nil {
		panic("webgpu: Allocator: " + err.Error())
	}
	return d.alloc
}

// DefaultGenerator returns the backend's singleton default random generator.
// The generator carries no device state, so it is usable even before the
// device opens.
func (h *Hooks) DefaultGenerator() hooks.Generator {
	return defaultGenerator()
}

// Synchronize blocks until every command previously submitted to the device
// queue has completed. Calling it when Available reports false is a
// programming error and aborts.
func (h *Hooks) Synchronize() {
	d, err := sharedDevice()
	if err != nil {
		panic("webgpu: Synchronize: " + err.Error())
	}
	if err := d.synchronize(); err != nil {
		panic("webgpu: Synchronize: " + err.Error())
	}
}
