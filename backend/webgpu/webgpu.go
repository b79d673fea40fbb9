// Copyright 2025 Axon ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU accelerator backend for the hook
// mechanism.
//
// WebGPU is a cross-platform graphics and compute API that works on:
//   - Windows (via Dawn/D3D12)
//   - macOS (via Dawn/Metal)
//   - Linux (via Dawn/Vulkan)
//
// Importing this package registers the backend under hooks.WebGPU. Most
// programs import it blank and reach it through the registry:
//
//	import (
//	    "github.com/axon-ml/axon/hooks"
//
//	    _ "github.com/axon-ml/axon/backend/webgpu"
//	)
//
//	func main() {
//	    h := hooks.Get(hooks.WebGPU)
//	    if h.Available() && h.PlatformSupported() {
//	        h.Init()
//	    }
//	}
package webgpu

import (
	"github.com/axon-ml/axon/hooks"
	internalwebgpu "github.com/axon-ml/axon/internal/backend/webgpu"
)

// Hooks is the WebGPU implementation of the accelerator hook contract.
type Hooks = internalwebgpu.Hooks

// Compile-time check that Hooks implements hooks.Interface.
var _ hooks.Interface = (*Hooks)(nil)

// IsAvailable checks if WebGPU is available on the current system.
//
// This function attempts to acquire a WebGPU adapter to verify that a
// compatible GPU and drivers are present. It's useful for graceful fallback
// when GPU is not available, and is what the registered hook's Available
// method answers with.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}

// AdapterDescription returns a human-readable description of the adapter the
// backend runs on, or an empty string when the backend is absent. Unlike
// IsAvailable, this opens the shared device.
func AdapterDescription() string {
	return internalwebgpu.AdapterDescription()
}
