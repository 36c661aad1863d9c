package platform

import (
	"context"

	"github.com/shirou/gopsutil/v3/host"
)

// OSInfo is the subset of host introspection the locator needs
type OSInfo struct {
	Distro  string
	Release string
	Kernel  string
}

// InfoProvider answers OS/distribution queries. Tests substitute a fake.
type InfoProvider interface {
	OSInfo(ctx context.Context) (OSInfo, error)
}

// HostInfo queries the live system through gopsutil.
type HostInfo struct{}

// OSInfo implements InfoProvider. Errors from gopsutil are returned as is.
func (HostInfo) OSInfo(ctx context.Context) (OSInfo, error) {
	stat, err := host.InfoWithContext(ctx)
	if err != nil {
		return OSInfo{}, err
	}
	return OSInfo{
		Distro:  stat.Platform,
		Release: stat.PlatformVersion,
		Kernel:  stat.KernelVersion,
	}, nil
}
