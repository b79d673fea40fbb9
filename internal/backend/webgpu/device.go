package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// deviceState is the process-wide WebGPU device, opened once and shared by
// the allocator and the synchronize path. It lives until process teardown;
// nothing releases it during normal operation.
type deviceState struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	info     wgpu.AdapterInfoGo

	alloc *Allocator
}

var (
	deviceOnce sync.Once
	device     *deviceState
	deviceErr  error
)

// sharedDevice opens the device on first call and returns the same state
// (or the same error) for the rest of the process.
func sharedDevice() (*deviceState, error) {
	deviceOnce.Do(func() {
		device, deviceErr = openDevice()
	})
	return device, deviceErr
}

func openDevice() (d *deviceState, err error) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			d = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, _ := wgpu.CreateInstance(nil)

	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}
	infoPtr, _ := adapter.GetInfo()
	var info wgpu.AdapterInfoGo
	if infoPtr != nil {
		info = *infoPtr
	}

	dev, devErr := adapter.RequestDevice(nil)
	if devErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", devErr)
	}

	queue := dev.GetQueue()
	if queue == nil {
		dev.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	d = &deviceState{
		instance: instance,
		adapter:  adapter,
		device:   dev,
		queue:    queue,
		info:     info,
	}
	d.alloc = newAllocator(dev)
	return d, nil
}

// barrierBytes is the size of the throwaway copy used as a queue barrier.
const barrierBytes = 4

// synchronize drains the device queue. The binding exposes no explicit wait
// primitive, but mapping a staging buffer blocks until all work submitted
// before it has completed, so a tiny copy round-trip serves as a full
// barrier.
func (d *deviceState) synchronize() error {
	src := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageCopySrc,
		Size:  barrierBytes,
	})
	defer src.Release()

	staging := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  barrierBytes,
	})
	defer staging.Release()

	encoder := d.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, barrierBytes)
	d.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(d.device, wgpu.MapModeRead, 0, barrierBytes); err != nil {
		return fmt.Errorf("barrier map failed: %w", err)
	}
	staging.Unmap()
	return nil
}

// IsAvailable checks if WebGPU is available on this system. Pure probe: it
// acquires and immediately releases an adapter without touching the shared
// device state.
func IsAvailable() (available bool) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance, _ := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// AdapterDescription returns a human-readable description of the adapter the
// shared device runs on, or an empty string when the backend is absent.
func AdapterDescription() string {
	d, err := sharedDevice()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", d.info.Device, d.info.Vendor)
}
