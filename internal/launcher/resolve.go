package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"micromachine.dev/launcher/internal/arch"
	"micromachine.dev/launcher/internal/ui"
)

const (
	PackageScope = "@micromachine.dev"
	BinaryName   = "micromachine"
)

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrBinaryNotFound      = errors.New("binary not found")
)

// PackageFinder locates the root directory of an installed package.
type PackageFinder interface {
	PackageRoot(name string) (root string, found bool, err error)
}

// Target is a resolved platform binary.
type Target struct {
	Package string
	Binary  string
	Root    string
	Path    string
}

type UnsupportedPlatformError struct {
	Platform arch.Platform
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf(ui.MsgUnsupportedPlatform, e.Platform)
}

func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }

type BinaryNotFoundError struct {
	Platform arch.Platform
	Package  string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf(ui.MsgBinaryNotFound, e.Platform, e.Package)
}

func (e *BinaryNotFoundError) Unwrap() error { return ErrBinaryNotFound }

// PackageName returns the platform package for canonical OS and CPU names.
func PackageName(goos, cpu string) string {
	return fmt.Sprintf("%s/cli-%s-%s", PackageScope, goos, cpu)
}

// BinaryFile returns the executable name inside a package for a canonical OS name.
func BinaryFile(goos string) string {
	if goos == arch.Windows {
		return BinaryName + ".exe"
	}
	return BinaryName
}

// Resolve maps p to its platform package and returns the binary inside it.
// Unsupported platforms fail before finder is consulted.
func Resolve(p arch.Platform, finder PackageFinder) (*Target, error) {
	goos, cpu, ok := p.Canonical()
	if !ok {
		return nil, &UnsupportedPlatformError{Platform: p}
	}

	t := &Target{
		Package: PackageName(goos, cpu),
		Binary:  BinaryFile(goos),
	}
	notFound := &BinaryNotFoundError{Platform: p, Package: t.Package}

	root, found, err := finder.PackageRoot(t.Package)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", t.Package, err)
	}
	if !found {
		ui.Debug("package ", t.Package, " not installed")
		return nil, notFound
	}

	t.Root = root
	t.Path, err = filepath.Abs(filepath.Join(root, "bin", t.Binary))
	if err != nil {
		return nil, fmt.Errorf("abs binary path: %w", err)
	}
	if _, err := os.Stat(t.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ui.Debug("binary ", t.Path, " missing")
			return nil, notFound
		}
		return nil, fmt.Errorf("stat %s: %w", t.Path, err)
	}
	return t, nil
}
