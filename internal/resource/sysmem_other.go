//go:build !linux

package resource

// PhysicalMemory is not detected on this platform.
func PhysicalMemory() uint64 { return 0 }
