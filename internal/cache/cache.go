package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// The category cache exists for shell completion: completing a category
// must not open the local store, which another gosyncquotes process may be
// holding. Commands refresh the cache after touching the quote set; the
// completion path only ever reads it.

// CachedData represents the structure of cached category names
type CachedData struct {
	Categories []string `json:"categories"`
	Timestamp  int64    `json:"timestamp"`
}

// GetCacheDir returns the XDG-compliant cache directory path
func GetCacheDir() (string, error) {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		cacheDir = filepath.Join(home, ".cache")
	}
	cacheDir = filepath.Join(cacheDir, "gosyncquotes")
	return cacheDir, os.MkdirAll(cacheDir, 0755)
}

// GetCacheFile returns the full path to the category cache file
func GetCacheFile() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "categories.json"), nil
}

// LoadCategories loads category names from the cache file
func LoadCategories() ([]string, error) {
	cacheFile, err := GetCacheFile()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, err
	}

	var cached CachedData
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	return cached.Categories, nil
}

// SaveCategories saves category names to the cache file with timestamp.
// Names are deduplicated and sorted so completion output is stable.
func SaveCategories(categories []string) error {
	cacheFile, err := GetCacheFile()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(categories))
	unique := make([]string, 0, len(categories))
	for _, name := range categories {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}
	sort.Strings(unique)

	cached := CachedData{
		Categories: unique,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cacheFile, data, 0644)
}

// LoadCategoriesOrEmpty loads cached category names, returning an empty
// slice instead of an error. Completion degrades to no suggestions when the
// cache is missing or unreadable.
func LoadCategoriesOrEmpty() []string {
	categories, err := LoadCategories()
	if err != nil {
		return nil
	}
	return categories
}
