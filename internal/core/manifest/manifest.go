// Package manifest reads aikit.toml template-package manifests and
// installs their artifacts into a project tree.
//
// A package is a directory (usually {name}-{version}) holding an
// aikit.toml plus template sources. The manifest maps glob patterns over
// the package contents to project-relative destination directories.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest filename looked for at a package root.
const FileName = "aikit.toml"

// PackageInfo identifies a template package.
type PackageInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Manifest is a parsed aikit.toml. Artifacts maps a glob pattern
// (relative to the package root, forward slashes) to the destination
// directory relative to the project root, e.g. "newton/**" -> ".newton".
type Manifest struct {
	Package   PackageInfo       `toml:"package"`
	Artifacts map[string]string `toml:"artifacts"`
}

// Parse decodes and validates manifest TOML. Package name and version
// are both required; artifacts may be empty.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("parsing manifest: package.name is required")
	}
	if m.Package.Version == "" {
		return nil, fmt.Errorf("parsing manifest: package.version is required")
	}
	return &m, nil
}

// Load reads and parses the aikit.toml at a package root.
func Load(packageRoot string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(packageRoot, FileName))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}
