package hooks

// Unusable sentinels returned by the no-op hooks in place of real resources.
// Comparable singletons: callers can test identity against these to detect
// the absent-backend case without a separate probe.
var (
	UnusableAllocator Allocator = unusableAllocator{}
	UnusableGenerator Generator = unusableGenerator{}
)

// noopHooks answers for identifiers with no registered backend. All probes
// report absence; resource accessors return the unusable sentinels.
type noopHooks struct {
	id BackendID
}

func (noopHooks) Init() {}

func (noopHooks) Available() bool { return false }

func (noopHooks) PlatformSupported() bool { return false }

func (noopHooks) Allocator() Allocator { return UnusableAllocator }

func (noopHooks) DefaultGenerator() Generator { return UnusableGenerator }

func (h noopHooks) Synchronize() {
	panic("hooks: Synchronize called without a " + h.id.String() + " backend; gate on Available()")
}

type unusableAllocator struct{}

func (unusableAllocator) Allocate(uint64) (Allocation, error) { return nil, ErrBackendUnavailable }

func (unusableAllocator) Stats() AllocatorStats { return AllocatorStats{} }

type unusableGenerator struct{}

func (unusableGenerator) Seed() uint64 { return 0 }

func (unusableGenerator) SetSeed(uint64) {
	panic("hooks: SetSeed called without an accelerator backend; gate on Available()")
}

func (unusableGenerator) Uint64() uint64 {
	panic("hooks: Uint64 called without an accelerator backend; gate on Available()")
}

func (unusableGenerator) Float64() float64 {
	panic("hooks: Float64 called without an accelerator backend; gate on Available()")
}
