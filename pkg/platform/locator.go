package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hashicorp/go-hclog"
)

// Locator resolves bundled binary paths below a project root.
type Locator struct {
	// Root is the project root containing the bin directory
	Root string
	// GOOS overrides runtime.GOOS when set
	GOOS string
	// Info answers distribution queries on Linux; defaults to HostInfo
	Info InfoProvider
	// Logger defaults to a null logger
	Logger hclog.Logger
}

// NewLocator creates a Locator for the running system.
func NewLocator(root string, logger hclog.Logger) *Locator {
	return &Locator{
		Root:   root,
		GOOS:   runtime.GOOS,
		Info:   HostInfo{},
		Logger: logger,
	}
}

func (l *Locator) goos() string {
	if l.GOOS != "" {
		return l.GOOS
	}
	return runtime.GOOS
}

func (l *Locator) info() InfoProvider {
	if l.Info != nil {
		return l.Info
	}
	return HostInfo{}
}

func (l *Locator) logger() hclog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return hclog.NewNullLogger()
}

// Tag returns the platform tag of the host. Only Linux hosts are queried for
// distribution details; a failed query is returned unmodified.
func (l *Locator) Tag(ctx context.Context) (Tag, error) {
	tag := Tag(l.goos())
	if tag != Linux {
		return tag, nil
	}

	info, err := l.info().OSInfo(ctx)
	if err != nil {
		return "", err
	}

	tag = DetectTag(info.Distro, info.Release, info.Kernel)
	l.logger().Debug("🔍 Detected linux distribution",
		"distro", info.Distro, "release", info.Release, "kernel", info.Kernel, "tag", tag)
	return tag, nil
}

// BinaryDirectory returns <Root>/bin/<tag> for the host.
func (l *Locator) BinaryDirectory(ctx context.Context) (string, error) {
	tag, err := l.Tag(ctx)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(l.Root, BinDir, string(tag))
	l.logger().Debug("📂 Resolved binary directory", "path", dir)
	return dir, nil
}

// Executable returns the path of the named bundled tool, adding the .exe
// suffix on Windows. The file must exist and must not be a directory.
func (l *Locator) Executable(ctx context.Context, name string) (string, error) {
	dir, err := l.BinaryDirectory(ctx)
	if err != nil {
		return "", err
	}

	if l.goos() == string(Windows) && filepath.Ext(name) == "" {
		name += ".exe"
	}
	path := filepath.Join(dir, name)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, path)
	}
	return path, nil
}

// BinaryDirectory resolves the binary directory below root for the running
// system.
func BinaryDirectory(ctx context.Context, root string) (string, error) {
	return NewLocator(root, nil).BinaryDirectory(ctx)
}
