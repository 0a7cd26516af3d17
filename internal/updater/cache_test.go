package updater

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCacheMissing(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache != nil {
		t.Errorf("expected nil cache for missing file, got %+v", cache)
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	dir := t.TempDir()

	saved := &VersionCache{
		LatestVersion:   "1.2.0",
		CurrentVersion:  "1.0.0",
		CheckedAt:       time.Now().Truncate(time.Second),
		UpdateAvailable: true,
	}
	if err := SaveCache(dir, saved); err != nil {
		t.Fatalf("SaveCache() error: %v", err)
	}

	loaded, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache() error: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadCache() returned nil")
	}
	if loaded.LatestVersion != saved.LatestVersion {
		t.Errorf("LatestVersion = %q, want %q", loaded.LatestVersion, saved.LatestVersion)
	}
	if !loaded.UpdateAvailable {
		t.Error("UpdateAvailable should round-trip as true")
	}
}

func TestLoadCacheCorrupt(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, cacheFileName), []byte("not json"), 0644)

	_, err := LoadCache(dir)
	if err == nil {
		t.Fatal("expected error for corrupt cache")
	}
}

func TestCacheStale(t *testing.T) {
	var missing *VersionCache
	if !missing.Stale(DefaultCacheMaxAge) {
		t.Error("nil cache should be stale")
	}

	fresh := &VersionCache{CheckedAt: time.Now()}
	if fresh.Stale(DefaultCacheMaxAge) {
		t.Error("fresh cache should not be stale")
	}

	old := &VersionCache{CheckedAt: time.Now().Add(-48 * time.Hour)}
	if !old.Stale(DefaultCacheMaxAge) {
		t.Error("48h old cache should be stale")
	}
}
