package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// setupTestCache creates a temporary cache directory for testing
func setupTestCache(t *testing.T) (string, func()) {
	tmpDir, err := os.MkdirTemp("", "gosyncquotes-cache-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// Override XDG_CACHE_HOME for testing
	oldCacheHome := os.Getenv("XDG_CACHE_HOME")
	os.Setenv("XDG_CACHE_HOME", tmpDir)

	cleanup := func() {
		os.Setenv("XDG_CACHE_HOME", oldCacheHome)
		os.RemoveAll(tmpDir)
	}

	return tmpDir, cleanup
}

func TestGetCacheDir(t *testing.T) {
	tmpDir, cleanup := setupTestCache(t)
	defer cleanup()

	dir, err := GetCacheDir()
	if err != nil {
		t.Fatalf("GetCacheDir() failed: %v", err)
	}

	expected := filepath.Join(tmpDir, "gosyncquotes")
	if dir != expected {
		t.Errorf("GetCacheDir() = %q, want %q", dir, expected)
	}

	// Verify directory was created
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Cache directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Cache path is not a directory")
	}
}

func TestGetCacheFile(t *testing.T) {
	tmpDir, cleanup := setupTestCache(t)
	defer cleanup()

	file, err := GetCacheFile()
	if err != nil {
		t.Fatalf("GetCacheFile() failed: %v", err)
	}

	expected := filepath.Join(tmpDir, "gosyncquotes", "categories.json")
	if file != expected {
		t.Errorf("GetCacheFile() = %q, want %q", file, expected)
	}
}

func TestSaveAndLoadCategories(t *testing.T) {
	_, cleanup := setupTestCache(t)
	defer cleanup()

	err := SaveCategories([]string{"Wisdom", "Life", "Motivation"})
	if err != nil {
		t.Fatalf("SaveCategories() failed: %v", err)
	}

	loaded, err := LoadCategories()
	if err != nil {
		t.Fatalf("LoadCategories() failed: %v", err)
	}

	expected := []string{"Life", "Motivation", "Wisdom"}
	if !reflect.DeepEqual(loaded, expected) {
		t.Errorf("LoadCategories() = %v, want %v (sorted)", loaded, expected)
	}
}

func TestSaveCategoriesDeduplicates(t *testing.T) {
	_, cleanup := setupTestCache(t)
	defer cleanup()

	err := SaveCategories([]string{"Life", "Life", "", "Wisdom", "Life"})
	if err != nil {
		t.Fatalf("SaveCategories() failed: %v", err)
	}

	loaded, err := LoadCategories()
	if err != nil {
		t.Fatalf("LoadCategories() failed: %v", err)
	}

	expected := []string{"Life", "Wisdom"}
	if !reflect.DeepEqual(loaded, expected) {
		t.Errorf("LoadCategories() = %v, want %v", loaded, expected)
	}
}

func TestSaveCategoriesRecordsTimestamp(t *testing.T) {
	_, cleanup := setupTestCache(t)
	defer cleanup()

	before := time.Now().Unix()
	if err := SaveCategories([]string{"Life"}); err != nil {
		t.Fatalf("SaveCategories() failed: %v", err)
	}

	cacheFile, err := GetCacheFile()
	if err != nil {
		t.Fatalf("GetCacheFile() failed: %v", err)
	}
	data, err := os.ReadFile(cacheFile)
	if err != nil {
		t.Fatalf("Failed to read cache file: %v", err)
	}

	var cached CachedData
	if err := json.Unmarshal(data, &cached); err != nil {
		t.Fatalf("Cache file is not valid JSON: %v", err)
	}
	if cached.Timestamp < before {
		t.Errorf("Timestamp = %d, want >= %d", cached.Timestamp, before)
	}
}

func TestLoadCategoriesMissingFile(t *testing.T) {
	_, cleanup := setupTestCache(t)
	defer cleanup()

	_, err := LoadCategories()
	if err == nil {
		t.Error("LoadCategories() should fail when no cache file exists")
	}
}

func TestLoadCategoriesCorruptFile(t *testing.T) {
	_, cleanup := setupTestCache(t)
	defer cleanup()

	cacheFile, err := GetCacheFile()
	if err != nil {
		t.Fatalf("GetCacheFile() failed: %v", err)
	}
	if err := os.WriteFile(cacheFile, []byte("not json{"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt cache: %v", err)
	}

	if _, err := LoadCategories(); err == nil {
		t.Error("LoadCategories() should fail on a corrupt cache file")
	}
}

func TestLoadCategoriesOrEmpty(t *testing.T) {
	_, cleanup := setupTestCache(t)
	defer cleanup()

	// Missing cache degrades to no suggestions
	if got := LoadCategoriesOrEmpty(); len(got) != 0 {
		t.Errorf("LoadCategoriesOrEmpty() = %v, want empty", got)
	}

	if err := SaveCategories([]string{"Life"}); err != nil {
		t.Fatalf("SaveCategories() failed: %v", err)
	}
	if got := LoadCategoriesOrEmpty(); len(got) != 1 || got[0] != "Life" {
		t.Errorf("LoadCategoriesOrEmpty() = %v, want [Life]", got)
	}
}
