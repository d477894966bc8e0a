//go:build linux

package resource

import "golang.org/x/sys/unix"

// PhysicalMemory reports total RAM in bytes, or 0 if it cannot be read.
func PhysicalMemory() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	return uint64(info.Totalram) * uint64(info.Unit)
}
