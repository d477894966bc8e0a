// Package version carries the release identifiers printed by -v.
package version

// Name is the program label used in the matrix header and diagnostics.
const Name = "cgmlst-dists"

// Version may be overridden at build time with -ldflags "-X".
var Version = "0.4.0"
