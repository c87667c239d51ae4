package pack_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourorg/cwsctl/internal/pack"
)

func writeZip(t *testing.T, path string, entries ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}

	zw := zip.NewWriter(f)
	for _, name := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte("{}")); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close zip file: %v", err)
	}
}

func writeProject(t *testing.T, name, version string) string {
	t.Helper()

	root := t.TempDir()
	manifest := `{"name":"` + name + `","version":"` + version + `"}`
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(manifest), 0o600); err != nil {
		t.Fatalf("write package.json: %v", err)
	}
	return root
}

func TestLocateFindsVersionedArtifact(t *testing.T) {
	root := writeProject(t, "demo-ext", "1.2.3")
	zipPath := filepath.Join(root, "builds", "demo-ext-v1.2.3.zip")
	writeZip(t, zipPath, "manifest.json")

	art, err := pack.Locate(root)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if art.Path != zipPath {
		t.Fatalf("Path = %q, want %q", art.Path, zipPath)
	}
	if art.Name != "demo-ext" || art.Version != "1.2.3" {
		t.Fatalf("unexpected artifact metadata: %+v", art)
	}
}

func TestLocateWithoutPackageJSON(t *testing.T) {
	_, err := pack.Locate(t.TempDir())
	if err == nil {
		t.Fatalf("expected error without package.json")
	}
	if !strings.Contains(err.Error(), "package.json") {
		t.Fatalf("error %q should mention package.json", err)
	}
}

func TestLocateMissingBuild(t *testing.T) {
	root := writeProject(t, "demo-ext", "2.0.0")

	_, err := pack.Locate(root)
	if err == nil {
		t.Fatalf("expected error for missing build")
	}
	if !strings.Contains(err.Error(), "demo-ext-v2.0.0.zip") {
		t.Fatalf("error %q should name the expected package", err)
	}
}

func TestLocateRejectsIncompleteManifest(t *testing.T) {
	root := writeProject(t, "demo-ext", "")

	if _, err := pack.Locate(root); err == nil {
		t.Fatalf("expected error when version is missing")
	}
}

func TestFromPathMissingFile(t *testing.T) {
	if _, err := pack.FromPath(filepath.Join(t.TempDir(), "nope.zip")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestInspectAcceptsExtensionPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ext.zip")
	writeZip(t, path, "manifest.json", "background.js")

	if err := pack.Inspect(path); err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
}

func TestInspectRejectsMissingManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ext.zip")
	writeZip(t, path, "background.js")

	err := pack.Inspect(path)
	if err == nil {
		t.Fatalf("expected error for package without manifest.json")
	}
	if !strings.Contains(err.Error(), "manifest.json") {
		t.Fatalf("error %q should mention manifest.json", err)
	}
}

func TestInspectRejectsNonZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ext.zip")
	if err := os.WriteFile(path, []byte("not a zip"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := pack.Inspect(path); err == nil {
		t.Fatalf("expected error for corrupt archive")
	}
}
