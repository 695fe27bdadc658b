package app

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/accordion/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Filter = "department == 'Fruit'"
	cfg.ReloadEvery = 5 * time.Second

	err := applyOverrides(&cfg, Options{
		DataPath: filepath.Join(dir, "catalog.yaml"),
		Filter:   "  title != 'Kiwi'  ",
	})
	if err != nil {
		t.Fatalf("applyOverrides returned error: %v", err)
	}
	if cfg.DataPath != filepath.Join(dir, "catalog.yaml") {
		t.Fatalf("DataPath = %q", cfg.DataPath)
	}
	if cfg.Filter != "title != 'Kiwi'" {
		t.Fatalf("Filter = %q, want trimmed override", cfg.Filter)
	}
	if cfg.ReloadEvery != 5*time.Second {
		t.Fatalf("ReloadEvery = %v, want config value kept", cfg.ReloadEvery)
	}
}

func TestOpenLog_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "accordion.log")
	closeLog, err := openLog(path)
	if err != nil {
		t.Fatalf("openLog returned error: %v", err)
	}
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	closeLog()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
