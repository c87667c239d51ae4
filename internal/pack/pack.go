// Package pack locates and sanity-checks packaged extension artifacts.
package pack

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	packageManifest = "package.json"
	buildsDir       = "builds"
	manifestEntry   = "manifest.json"
)

// Artifact describes a packaged extension ZIP ready for upload.
type Artifact struct {
	Path    string
	Name    string
	Version string
}

// projectManifest carries the package.json fields the naming convention
// depends on.
type projectManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Locate resolves the artifact path deterministically from the project's
// package.json: builds/<name>-v<version>.zip under root.
func Locate(root string) (Artifact, error) {
	data, err := os.ReadFile(filepath.Join(root, packageManifest))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Artifact{}, fmt.Errorf("%s not found in %s; run from the project root or pass --zip", packageManifest, root)
		}
		return Artifact{}, fmt.Errorf("read %s: %w", packageManifest, err)
	}

	var m projectManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Artifact{}, fmt.Errorf("parse %s: %w", packageManifest, err)
	}
	if m.Name == "" || m.Version == "" {
		return Artifact{}, fmt.Errorf("%s must declare both name and version", packageManifest)
	}

	zipPath := filepath.Join(root, buildsDir, fmt.Sprintf("%s-v%s.zip", m.Name, m.Version))
	if _, err := os.Stat(zipPath); err != nil {
		return Artifact{}, fmt.Errorf("package %s not found; build it first", zipPath)
	}

	return Artifact{Path: zipPath, Name: m.Name, Version: m.Version}, nil
}

// FromPath wraps an explicitly supplied ZIP path, verifying it exists.
func FromPath(path string) (Artifact, error) {
	if _, err := os.Stat(path); err != nil {
		return Artifact{}, fmt.Errorf("package %s not found", path)
	}
	return Artifact{Path: path}, nil
}

// Inspect opens the artifact and confirms it looks like an extension package
// (a manifest.json entry at the archive root). It catches obviously broken
// builds before any bytes hit the network.
func Inspect(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open package %s: %w", filepath.Base(path), err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == manifestEntry {
			return nil
		}
	}
	return fmt.Errorf("package %s has no %s entry", filepath.Base(path), manifestEntry)
}
