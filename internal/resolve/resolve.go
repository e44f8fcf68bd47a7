// Package resolve locates installed platform packages on disk.
//
// It stands in for Node's require.resolve with an explicit search: the
// node_modules ancestors of each start directory, then the configured
// install root, then a PATH-like list of package folders.
package resolve

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/tidwall/jsonc"

	"micromachine.dev/launcher/internal/config"
	"micromachine.dev/launcher/internal/ui"
)

const (
	nodeModules  = "node_modules"
	manifestName = "package.json"
)

type Search struct {
	// Start directories are walked upward, probing <dir>/node_modules/<name>.
	Start []string
	// Locate, when set, is called once, the first time candidates are
	// built, and the directory it returns is appended to Start.
	Locate func() (string, error)
	// InstallRoot is probed as <root>/<name> and <root>/node_modules/<name>.
	InstallRoot string
	// Folders are probed as <folder>/<name>, in order.
	Folders []string

	located bool
}

// FromConfig builds the search used by the launcher. locate reports the
// directory holding the running executable; nil skips the upward walk.
func FromConfig(cfg *config.Config, locate func() (string, error)) *Search {
	s := &Search{InstallRoot: cfg.InstallRoot, Locate: locate}
	s.Folders = append(s.Folders, cfg.SearchPath...)
	s.Folders = append(s.Folders, cfg.GlobalFolders()...)
	return s
}

// ExecutableDir returns the real directory of the running executable.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Candidates lists every directory PackageRoot would probe for name, in order.
func (s *Search) Candidates(name string) []string {
	s.locate()
	rel := filepath.FromSlash(name)
	var out []string
	for _, start := range s.Start {
		dir, err := filepath.Abs(start)
		if err != nil {
			dir = start
		}
		for {
			if filepath.Base(dir) != nodeModules {
				out = append(out, filepath.Join(dir, nodeModules, rel))
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	if s.InstallRoot != "" {
		out = append(out,
			filepath.Join(s.InstallRoot, rel),
			filepath.Join(s.InstallRoot, nodeModules, rel),
		)
	}
	for _, folder := range s.Folders {
		out = append(out, filepath.Join(folder, rel))
	}
	return out
}

func (s *Search) locate() {
	if s.located || s.Locate == nil {
		return
	}
	s.located = true
	dir, err := s.Locate()
	if err != nil {
		ui.Warn(err)
		return
	}
	s.Start = append(s.Start, dir)
}

// PackageRoot returns the first candidate directory whose manifest names the
// package. found is false with a nil error when nothing matched.
func (s *Search) PackageRoot(name string) (root string, found bool, err error) {
	for _, dir := range s.Candidates(name) {
		m, err := readManifest(filepath.Join(dir, manifestName))
		if notFound(err) {
			continue
		}
		if errors.Is(err, fs.ErrPermission) {
			ui.Debug("skipping ", dir, ": ", err)
			continue
		}
		if err != nil {
			return "", false, err
		}
		if m.Name != name {
			ui.Debug("skipping ", dir, ": manifest names ", m.Name)
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", false, fmt.Errorf("abs %s: %w", dir, err)
		}
		ui.Debug("resolved ", name, "@", m.Version, " to ", abs)
		return abs, true, nil
	}
	return "", false, nil
}

// notFound treats a missing path, or a path running through a regular file,
// as an absent candidate.
func notFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

type manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

var readFile = os.ReadFile

func readManifest(path string) (*manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
