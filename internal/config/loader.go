package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSceneNotFound is returned when no file or embedded default exists for
// a scene id.
var ErrSceneNotFound = errors.New("scene not found")

// LoadScene loads a scene configuration.
// Search order: customPath -> ~/.raycaster/scenes/<id>.yaml -> ./scenes/<id>.yaml -> embedded default
func LoadScene(id, customPath string) (SceneConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	filename := id + ".yaml"

	// Try user scene directory
	if dir := UserSceneDir(); dir != "" {
		if cfg, err := LoadFile(filepath.Join(dir, filename)); err == nil {
			return cfg, nil
		}
	}

	// Try local scenes directory
	if cfg, err := LoadFile(filepath.Join("scenes", filename)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	data, ok := embedded[id]
	if !ok {
		return SceneConfig{}, fmt.Errorf("%w: %s", ErrSceneNotFound, id)
	}
	cfg, err := Parse(data)
	if err != nil {
		if id == "classic" {
			return DefaultSceneConfig(), nil // Fallback to hardcoded if embed fails
		}
		return SceneConfig{}, err
	}
	return cfg, nil
}

// LoadFile reads and parses one scene file. A missing id is taken from
// the file name.
func LoadFile(path string) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	if cfg.ID == "" {
		cfg.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes scene YAML.
func Parse(data []byte) (SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a scene as YAML.
func Marshal(cfg SceneConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Discover scans dirs for *.yaml and *.yml scene files. Unreadable or
// malformed files are skipped. Results are sorted by id; when two
// directories define the same id, the earlier directory wins.
func Discover(dirs ...string) ([]SceneConfig, error) {
	seen := make(map[string]bool)
	var scenes []SceneConfig

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading scene directory %s: %w", dir, err)
		}

		for _, e := range entries {
			if e.IsDir() || !isSceneFile(e.Name()) {
				continue
			}
			cfg, err := LoadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue // Skip invalid files
			}
			if seen[cfg.ID] {
				continue
			}
			seen[cfg.ID] = true
			scenes = append(scenes, cfg)
		}
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// SearchDirs returns the directories scanned for user scenes, in priority
// order.
func SearchDirs() []string {
	var dirs []string
	if dir := UserSceneDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	return append(dirs, "scenes")
}

// UserSceneDir returns ~/.raycaster/scenes, or empty if home is unavailable.
func UserSceneDir() string {
	home := HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "scenes")
}

// HomeDir returns ~/.raycaster, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".raycaster")
}

func isSceneFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
