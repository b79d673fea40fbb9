// Package hooks defines the contract between the Axon runtime core and an
// optional accelerator backend. Runtime code never depends on a concrete
// backend package; it asks the registry for the hook implementation bound to
// a BackendID and calls through the Interface. When no backend is linked in,
// a no-op implementation answers instead, reporting the backend as absent.
package hooks

import "errors"

// BackendID identifies an optional accelerator backend.
type BackendID int

const (
	// None is the implicit "no accelerator" identifier.
	None BackendID = iota
	// WebGPU is the cross-platform GPU compute backend.
	WebGPU
)

// String returns the backend name.
func (id BackendID) String() string {
	switch id {
	case None:
		return "none"
	case WebGPU:
		return "webgpu"
	default:
		return "unknown"
	}
}

// ErrBackendUnavailable is returned by sentinel resources when no accelerator
// backend is present for the queried identifier.
var ErrBackendUnavailable = errors.New("hooks: accelerator backend not available")

// Allocation is a single block of device memory leased from an Allocator.
// Release returns the block to the allocator; the block must not be used
// afterwards.
type Allocation interface {
	Size() uint64 // Size of the block in bytes.
	Release()     // Return the block to the allocator.
}

// AllocatorStats reports cumulative allocator activity.
type AllocatorStats struct {
	Allocated  uint64 // Blocks handed out since process start.
	Released   uint64 // Blocks returned.
	PoolHits   uint64 // Allocations served from the reuse pool.
	PoolMisses uint64 // Allocations that required fresh device memory.
	Pooled     int    // Blocks currently held for reuse.
}

// Allocator hands out device memory for a backend. The allocator itself is a
// process-wide singleton owned by the backend subsystem; callers borrow the
// reference and never close it.
type Allocator interface {
	// Allocate leases a block of at least size bytes.
	Allocate(size uint64) (Allocation, error)
	// Stats reports cumulative allocator activity.
	Stats() AllocatorStats
}

// Generator is a backend's default random number source. Exactly one default
// generator exists per process; DefaultGenerator returns it by reference and
// never constructs a fresh one per call.
type Generator interface {
	Seed() uint64        // Current seed.
	SetSeed(seed uint64) // Reseed; the stream restarts deterministically.
	Uint64() uint64      // Next draw.
	Float64() float64    // Next draw in [0, 1).
}

// Interface is the capability contract generic runtime code uses to reach an
// accelerator backend without knowing which one (if any) is installed.
//
// Probes (Available, PlatformSupported) are total: they never fail and report
// absence as false. Device presence cannot change at runtime, so callers may
// cache probe results for the process lifetime. The resource accessors and
// Synchronize assume presence; calling them when Available reports false is a
// programming error and terminates the call path rather than returning a
// silently wrong value. Feature use must be gated on Available AND
// PlatformSupported, not either alone.
type Interface interface {
	// Init performs one-time backend setup and records a usage marker the
	// first time it runs. Callers invoke it at most once per process; on an
	// absent backend it is a no-op, never a failure.
	Init()

	// Available reports whether the backend's device class is present and
	// usable on this host. Pure query, no side effects.
	Available() bool

	// PlatformSupported reports whether the host OS meets the minimum
	// version this backend requires. Independent of Available: hardware can
	// be present on a host that is too old.
	PlatformSupported() bool

	// Allocator returns the backend's singleton device allocator.
	Allocator() Allocator

	// DefaultGenerator returns the backend's singleton default random
	// generator, by reference.
	DefaultGenerator() Generator

	// Synchronize blocks the calling thread until every unit of work
	// previously issued to the backend has completed. A full barrier with no
	// timeout; bounded waits belong to layers above this one.
	Synchronize()
}

// Factory constructs a backend's hook implementation. Called at most once per
// identifier per process, on first lookup.
type Factory func() Interface
