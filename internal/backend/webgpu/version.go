package webgpu

import "strconv"

// Minimum OS floors for the graphics APIs wgpu-native is implemented on.
// A host can fail these checks even when adapter hardware is nominally
// present, so the platform probe stays independent of the device probe.
const (
	minLinuxKernelMajor = 4 // Vulkan-era kernels
	minLinuxKernelMinor = 4
	minDarwinMajor      = 22 // darwin 22 == macOS 13
	minWindowsMajor     = 10 // D3D12
)

// releaseAtLeast parses a dotted release string such as "5.15.0-91-generic"
// or "22.1.0" and reports whether it is at least major.minor. Unparseable
// releases report false.
func releaseAtLeast(release string, major, minor int) bool {
	gotMajor, rest, ok := leadingInt(release)
	if !ok {
		return false
	}
	if gotMajor != major {
		return gotMajor > major
	}
	if len(rest) == 0 || rest[0] != '.' {
		return minor == 0
	}
	gotMinor, _, ok := leadingInt(rest[1:])
	if !ok {
		return false
	}
	return gotMinor >= minor
}

// leadingInt consumes the leading decimal digits of s.
func leadingInt(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, false
	}
	return n, s[i:], true
}
