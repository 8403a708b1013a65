package manifest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrPackageNotFound is returned by PackageRoot when the expected
// {name}-{version} directory does not exist.
var ErrPackageNotFound = errors.New("package not found")

// PackageRoot resolves the directory holding a package's aikit.toml and
// sources. The base is {packagesDir}/{name}-{version}; when the manifest
// is not at the base but the base has exactly one child directory that
// carries it (zipball extraction layout), that child is the root.
func PackageRoot(packagesDir, name, version string) (string, error) {
	base := filepath.Join(packagesDir, fmt.Sprintf("%s-%s", name, version))

	if _, err := os.Stat(base); err != nil {
		if os.IsNotExist(err) {
			return "", ErrPackageNotFound
		}
		return "", fmt.Errorf("checking package directory: %w", err)
	}

	if _, err := os.Stat(filepath.Join(base, FileName)); err == nil {
		return base, nil
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("reading package directory: %w", err)
	}
	var children []string
	for _, e := range entries {
		if e.IsDir() {
			children = append(children, filepath.Join(base, e.Name()))
		}
	}
	if len(children) == 1 {
		if _, err := os.Stat(filepath.Join(children[0], FileName)); err == nil {
			return children[0], nil
		}
	}

	return base, nil
}

// CopyArtifacts copies every file under packageRoot matching a mapping
// pattern into the mapped destination under projectRoot, preserving
// sub-paths past the pattern's static prefix. Parent directories are
// created as needed; existing files are overwritten.
func CopyArtifacts(packageRoot, projectRoot string, mappings map[string]string) error {
	for pattern, dest := range mappings {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob pattern %q", pattern)
		}
		prefix := patternPrefix(pattern)
		destDir := filepath.Join(projectRoot, strings.TrimSuffix(dest, "/"))

		err := filepath.WalkDir(packageRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(packageRoot, path)
			if err != nil {
				return err
			}
			// Patterns always use forward slashes, even on Windows.
			relSlash := filepath.ToSlash(rel)
			ok, err := doublestar.Match(pattern, relSlash)
			if err != nil || !ok {
				return err
			}

			subpath := stripPrefix(relSlash, prefix)
			if subpath == "" {
				// Literal pattern matched a single file exactly.
				subpath = d.Name()
			}
			destFile := filepath.Join(destDir, filepath.FromSlash(subpath))
			if err := os.MkdirAll(filepath.Dir(destFile), 0o755); err != nil {
				return fmt.Errorf("creating destination directory: %w", err)
			}
			return copyFile(path, destFile)
		})
		if err != nil {
			return fmt.Errorf("copying artifacts for pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// Install resolves a package root under packagesDir and copies the
// manifest's artifact mappings into projectRoot.
func Install(packagesDir, name, version, projectRoot string) (*Manifest, error) {
	root, err := PackageRoot(packagesDir, name, version)
	if err != nil {
		return nil, err
	}
	m, err := Load(root)
	if err != nil {
		return nil, err
	}
	if err := CopyArtifacts(root, projectRoot, m.Artifacts); err != nil {
		return nil, err
	}
	return m, nil
}

// InstallDir installs a package directly from its root directory,
// bypassing {name}-{version} resolution. Used for local template dirs.
func InstallDir(packageRoot, projectRoot string) (*Manifest, error) {
	m, err := Load(packageRoot)
	if err != nil {
		return nil, err
	}
	if err := CopyArtifacts(packageRoot, projectRoot, m.Artifacts); err != nil {
		return nil, err
	}
	return m, nil
}

// patternPrefix returns the static part of a glob pattern before the
// first wildcard: "newton/**" -> "newton", "templates/*.md" ->
// "templates", "plain/path" -> "plain/path".
func patternPrefix(pattern string) string {
	if i := strings.Index(pattern, "**"); i >= 0 {
		return strings.TrimSuffix(pattern[:i], "/")
	}
	if i := strings.Index(pattern, "*"); i >= 0 {
		return strings.TrimSuffix(pattern[:i], "/")
	}
	return strings.TrimSuffix(pattern, "/")
}

// stripPrefix removes prefix from rel path-component-wise. A prefix
// that ends mid-component is not a match: stripping "new" from
// "newton/file.md" keeps the full path rather than yielding
// "ton/file.md".
func stripPrefix(rel, prefix string) string {
	if prefix == "" {
		return rel
	}
	if rel == prefix {
		return ""
	}
	if strings.HasPrefix(rel, prefix+"/") {
		return rel[len(prefix)+1:]
	}
	return rel
}

// copyFile copies a single file, preserving the source mode.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer func() { _ = dstFile.Close() }()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
