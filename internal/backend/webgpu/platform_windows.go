//go:build windows

package webgpu

import "golang.org/x/sys/windows"

// platformSupported reports whether the host runs Windows 10 or newer, the
// floor for the D3D12 path wgpu-native targets.
func platformSupported() bool {
	major, _, _ := windows.RtlGetNtVersionNumbers()
	return int(major) >= minWindowsMajor
}
