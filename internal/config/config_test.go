package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDataDir_RuntimeOverride(t *testing.T) {
	tmpDir := t.TempDir()
	SetRuntimeDataDir(tmpDir)
	defer SetRuntimeDataDir("")

	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir: %v", err)
	}
	if dir != tmpDir {
		t.Errorf("data dir = %q, want %q", dir, tmpDir)
	}
}

func TestGetDataDir_EnvFallback(t *testing.T) {
	tmpDir := t.TempDir()
	SetRuntimeDataDir("")
	t.Setenv(envDataDir, tmpDir)

	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir: %v", err)
	}
	if dir != tmpDir {
		t.Errorf("data dir = %q, want %q", dir, tmpDir)
	}
}

func TestGetDataDir_CreatesDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "data")
	SetRuntimeDataDir(target)
	defer SetRuntimeDataDir("")

	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestGetDBPath(t *testing.T) {
	tmpDir := t.TempDir()
	SetRuntimeDataDir(tmpDir)
	defer SetRuntimeDataDir("")

	path, err := GetDBPath()
	if err != nil {
		t.Fatalf("GetDBPath: %v", err)
	}
	if path != filepath.Join(tmpDir, dbFileName) {
		t.Errorf("db path = %q", path)
	}
}

func TestGetLogDir(t *testing.T) {
	tmpDir := t.TempDir()
	SetRuntimeDataDir(tmpDir)
	defer SetRuntimeDataDir("")

	path, err := GetLogDir()
	if err != nil {
		t.Fatalf("GetLogDir: %v", err)
	}
	if path != filepath.Join(tmpDir, "logs") {
		t.Errorf("log dir = %q", path)
	}
}

func TestRuntimePort(t *testing.T) {
	defer SetRuntimePort(8000)

	SetRuntimePort(9090)
	if GetRuntimePort() != 9090 {
		t.Errorf("port = %d, want 9090", GetRuntimePort())
	}

	// Non-positive values are ignored.
	SetRuntimePort(0)
	if GetRuntimePort() != 9090 {
		t.Errorf("port = %d after SetRuntimePort(0)", GetRuntimePort())
	}
}
