//go:build darwin

package webgpu

import "golang.org/x/sys/unix"

// platformSupported reports whether the host runs darwin 22 (macOS 13) or
// newer, the floor for the Metal path wgpu-native targets.
func platformSupported() bool {
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return false
	}
	return releaseAtLeast(release, minDarwinMajor, 0)
}
