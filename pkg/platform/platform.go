// Package platform locates the directory of executables bundled for the
// running operating system.
//
// Bundled tools live under <root>/bin/<tag>/ where tag is the Go GOOS value
// of the host, except on CentOS 7 (and Alibaba Cloud Linux kernels built for
// it), which get their own "centos7" directory.
package platform

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Tag identifies a platform-specific binary directory
type Tag string

// Known platform tags
const (
	Linux   Tag = "linux"
	Darwin  Tag = "darwin"
	Windows Tag = "windows"
	CentOS7 Tag = "centos7"
)

// BinDir is the directory under the project root holding per-platform binaries
const BinDir = "bin"

const (
	centOSPattern = "centos"
	aliOS7Pattern = "alios7"
	centOSRelease = 7
)

// leadingFloat matches the numeric prefix a lenient float parser accepts,
// e.g. "7.9" out of "7.9.2009 (Core)".
var leadingFloat = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// DetectTag decides the tag for a Linux host from its distribution name,
// release version and kernel version.
//
// The result is CentOS7 when the distribution name contains "centos"
// (any case) or the kernel version contains "alios7", and the release
// truncates to major version 7. Every other combination is Linux.
func DetectTag(distro, release, kernel string) Tag {
	matchesFamily := strings.Contains(strings.ToLower(distro), centOSPattern) ||
		strings.Contains(kernel, aliOS7Pattern)
	if !matchesFamily {
		return Linux
	}

	major, ok := majorRelease(release)
	if !ok || major != centOSRelease {
		return Linux
	}
	return CentOS7
}

// majorRelease parses the leading number of a release string and truncates
// it toward zero. ok is false when no number can be read.
func majorRelease(release string) (int, bool) {
	prefix := leadingFloat.FindString(strings.TrimSpace(release))
	if prefix == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Trunc(f)), true
}
