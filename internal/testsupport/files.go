package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteRawFile writes a raw extract into the config's raw directory and
// returns the full path.
func WriteRawFile(t testing.TB, rawDir, name, contents string) string {
	t.Helper()

	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rawDir, err)
	}
	path := filepath.Join(rawDir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
