// Copyright 2025 Axon ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hooks lets runtime code reach an optional accelerator backend
// without depending on its concrete implementation.
//
// # Overview
//
// A backend package registers a hook factory for its identifier when it is
// imported. Runtime code looks the implementation up by identifier and calls
// through the Interface; when no backend is linked in, the lookup returns a
// no-op implementation whose probes report the backend as absent. Callers
// therefore never branch on a missing case - they always hold a valid
// Interface value.
//
// # Basic Usage
//
//	import (
//	    "github.com/axon-ml/axon/hooks"
//
//	    _ "github.com/axon-ml/axon/backend/webgpu" // registers the backend
//	)
//
//	func main() {
//	    h := hooks.Get(hooks.WebGPU)
//	    if h.Available() && h.PlatformSupported() {
//	        h.Init()
//	        alloc := h.Allocator()
//	        // ... issue device work ...
//	        h.Synchronize()
//	    }
//	}
//
// Probes are total and never fail; resource accessors and Synchronize assume
// the backend is present and abort otherwise. Gate feature use on both
// Available and PlatformSupported, not either alone.
package hooks
