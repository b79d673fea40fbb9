//go:build linux

package webgpu

import "golang.org/x/sys/unix"

// platformSupported reports whether the kernel is new enough for the Vulkan
// drivers wgpu-native uses on Linux.
func platformSupported() bool {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return false
	}
	return releaseAtLeast(unix.ByteSliceToString(uts.Release[:]), minLinuxKernelMajor, minLinuxKernelMinor)
}
