package webgpu

import (
	"fmt"
	"sync"

	"github.com/axon-ml/axon/internal/hooks"
	"github.com/go-webgpu/webgpu/wgpu"
)

// Size classes for buffer reuse. Released buffers are pooled per class and
// handed back out for later allocations of the same class.
const (
	classSmall = iota // < 4KB
	classMedium
	classLarge
	numClasses
)

const (
	smallLimit  = 4 * 1024    // 4KB
	mediumLimit = 1024 * 1024 // 1MB

	// maxPooledPerClass caps how many released buffers each class retains.
	maxPooledPerClass = 100
)

func sizeClass(size uint64) int {
	if size < smallLimit {
		return classSmall
	}
	if size < mediumLimit {
		return classMedium
	}
	return classLarge
}

// leaseUsage covers compute bindings plus both copy directions, so a pooled
// buffer is reusable for any lease.
const leaseUsage = wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst

// Buffer is one device memory block leased from the Allocator. Implements
// hooks.Allocation. Ownership stays with the allocator: Release returns the
// block to the pool rather than destroying it.
type Buffer struct {
	buf   *wgpu.Buffer
	size  uint64
	owner *Allocator
}

// Size returns the block size in bytes. May exceed the requested size when
// the lease was served from the pool.
func (b *Buffer) Size() uint64 {
	return b.size
}

// Raw exposes the underlying wgpu buffer for compute paths.
func (b *Buffer) Raw() *wgpu.Buffer {
	return b.buf
}

// Release returns the block to the allocator. The block must not be used
// afterwards.
func (b *Buffer) Release() {
	b.owner.release(b)
}

// Allocator leases pooled GPU buffers for the backend. Implements
// hooks.Allocator. One allocator exists per process, owned by the shared
// device state; callers borrow the reference and never close it.
type Allocator struct {
	device *wgpu.Device

	mu    sync.Mutex
	pools [numClasses][]*Buffer

	allocated uint64
	released  uint64
	hits      uint64
	misses    uint64
}

func newAllocator(device *wgpu.Device) *Allocator {
	return &Allocator{device: device}
}

// Allocate leases a block of at least size bytes, reusing a pooled buffer
// of the same class when one is large enough.
func (a *Allocator) Allocate(size uint64) (hooks.Allocation, error) {
	if size == 0 {
		return nil, fmt.Errorf("webgpu: zero-sized allocation")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.allocated++
	class := sizeClass(size)
	for i, b := range a.pools[class] {
		if b.size >= size {
			a.pools[class] = append(a.pools[class][:i], a.pools[class][i+1:]...)
			a.hits++
			return b, nil
		}
	}

	a.misses++
	buf := a.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: leaseUsage,
		Size:  size,
	})
	return &Buffer{buf: buf, size: size, owner: a}, nil
}

// release returns b to its size-class pool, destroying it when the pool is
// full.
func (a *Allocator) release(b *Buffer) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.released++
	class := sizeClass(b.size)
	if len(a.pools[class]) >= maxPooledPerClass {
		b.buf.Release()
		return
	}
	a.pools[class] = append(a.pools[class], b)
}

// Stats reports cumulative allocator activity.
func (a *Allocator) Stats() hooks.AllocatorStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	pooled := 0
	for class := range a.pools {
		pooled += len(a.pools[class])
	}
	return hooks.AllocatorStats{
		Allocated:  a.allocated,
		Released:   a.released,
		PoolHits:   a.hits,
		PoolMisses: a.misses,
		Pooled:     pooled,
	}
}

// Compile-time check that Allocator implements the allocator contract.
var _ hooks.Allocator = (*Allocator)(nil)
