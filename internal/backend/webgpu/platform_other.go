//go:build !linux && !darwin && !windows

package webgpu

// No supported graphics API on this platform.
func platformSupported() bool {
	return false
}
