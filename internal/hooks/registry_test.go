package hooks_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axon-ml/axon/internal/hooks"
)

// fakeHooks is a minimal in-memory backend for registry tests.
type fakeHooks struct {
	available  bool
	platformOK bool
	inits      int
	syncs      int
}

func (f *fakeHooks) Init() { f.inits++ }

func (f *fakeHooks) Available() bool { return f.available }

func (f *fakeHooks) PlatformSupported() bool { return f.platformOK }

func (f *fakeHooks) Allocator() hooks.Allocator { return hooks.UnusableAllocator }

func (f *fakeHooks) DefaultGenerator() hooks.Generator { return hooks.UnusableGenerator }

func (f *fakeHooks) Synchronize() { f.syncs++ }

func TestGetUnregisteredReturnsNoop(t *testing.T) {
	r := hooks.NewRegistry()

	h := r.Get(hooks.WebGPU)
	require.NotNil(t, h)
	assert.False(t, h.Available())
	assert.False(t, h.PlatformSupported())
	assert.Equal(t, hooks.UnusableAllocator, h.Allocator())
	assert.Equal(t, hooks.UnusableGenerator, h.DefaultGenerator())

	// Probes and Init stay safe to call repeatedly on an absent backend.
	assert.NotPanics(t, func() {
		h.Init()
		h.Init()
		_ = h.Available()
		_ = h.PlatformSupported()
	})
}

func TestNoopSynchronizePanics(t *testing.T) {
	r := hooks.NewRegistry()
	h := r.Get(hooks.WebGPU)

	assert.PanicsWithValue(t,
		"hooks: Synchronize called without a webgpu backend; gate on Available()",
		h.Synchronize)
}

func TestGetReturnsSingleton(t *testing.T) {
	r := hooks.NewRegistry()

	constructions := 0
	r.Register(hooks.WebGPU, func() hooks.Interface {
		constructions++
		return &fakeHooks{available: true, platformOK: true}
	})

	a := r.Get(hooks.WebGPU)
	b := r.Get(hooks.WebGPU)
	require.Same(t, a, b)
	assert.Equal(t, 1, constructions)
	assert.True(t, a.Available())
}

func TestGetConstructsLazilyAndOnce(t *testing.T) {
	r := hooks.NewRegistry()

	constructions := 0
	r.Register(hooks.WebGPU, func() hooks.Interface {
		constructions++
		return &fakeHooks{}
	})
	require.Equal(t, 0, constructions, "factory must not run before first lookup")

	var wg sync.WaitGroup
	results := make([]hooks.Interface, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Get(hooks.WebGPU)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, constructions)
	for _, h := range results {
		assert.Same(t, results[0], h)
	}
}

func TestDoubleRegisterPanics(t *testing.T) {
	r := hooks.NewRegistry()
	factory := func() hooks.Interface { return &fakeHooks{} }

	r.Register(hooks.WebGPU, factory)
	assert.Panics(t, func() {
		r.Register(hooks.WebGPU, factory)
	})
}

func TestNilFactoryPanics(t *testing.T) {
	r := hooks.NewRegistry()
	assert.Panics(t, func() {
		r.Register(hooks.WebGPU, nil)
	})
}

func TestRegistered(t *testing.T) {
	r := hooks.NewRegistry()
	assert.False(t, r.Registered(hooks.WebGPU))

	r.Register(hooks.WebGPU, func() hooks.Interface { return &fakeHooks{} })
	assert.True(t, r.Registered(hooks.WebGPU))
	assert.False(t, r.Registered(hooks.None))
}

// A host can be too old for the backend even with hardware present; the two
// probes answer independently and callers gate on both.
func TestPlatformProbeIndependentOfAvailability(t *testing.T) {
	r := hooks.NewRegistry()
	r.Register(hooks.WebGPU, func() hooks.Interface {
		return &fakeHooks{available: true, platformOK: false}
	})

	h := r.Get(hooks.WebGPU)
	assert.True(t, h.Available())
	assert.False(t, h.PlatformSupported())
	assert.False(t, h.Available() && h.PlatformSupported())
}

func TestBackendIDString(t *testing.T) {
	assert.Equal(t, "none", hooks.None.String())
	assert.Equal(t, "webgpu", hooks.WebGPU.String())
	assert.Equal(t, "unknown", hooks.BackendID(99).String())
}

func TestDefaultRegistryFallback(t *testing.T) {
	// Nothing registers into the default registry in this package's tests,
	// so lookups fall through to the no-op implementation.
	h := hooks.Get(hooks.WebGPU)
	assert.False(t, h.Available())
	require.Same(t, hooks.Default(), hooks.Default())
}
