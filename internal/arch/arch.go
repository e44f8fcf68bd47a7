package arch

import (
	"runtime"
)

// Canonical names used in platform package names.
const (
	Darwin  = "darwin"
	Linux   = "linux"
	Windows = "windows"

	ARM64 = "arm64"
	X64   = "x64"
)

// Platform holds the raw identifiers reported by the host.
type Platform struct {
	OS   string
	Arch string
}

var platformMap = map[string]string{
	"darwin":  Darwin,
	"linux":   Linux,
	"windows": Windows,
	"win32":   Windows,
}

var archMap = map[string]string{
	"arm64": ARM64,
	"amd64": X64,
	"x64":   X64,
}

func Detect() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// String renders the raw identifiers as "<os>-<arch>".
func (p Platform) String() string {
	return p.OS + "-" + p.Arch
}

// Canonical returns the canonical OS and architecture names. ok is false
// when either identifier has no entry.
func (p Platform) Canonical() (os, cpu string, ok bool) {
	os, osOK := platformMap[p.OS]
	cpu, cpuOK := archMap[p.Arch]
	if !osOK || !cpuOK {
		return "", "", false
	}
	return os, cpu, true
}
