// Package scenes registers the built-in scenes and any scene files found
// in the user's scene directories.
package scenes

import (
	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/explore"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
)

func init() {
	registry.Register("classic", "Classic", func() (registry.Game, error) {
		cfg, err := config.LoadScene("classic", "")
		if err != nil {
			return nil, err
		}
		return fromConfig(cfg)
	})
	registry.Register("maze", "Maze", func() (registry.Game, error) {
		return fromConfig(MazeConfig(MazeSize, MazeSize, MazeSeed))
	})
}

// FromFile builds a session from a scene file, bypassing the registry.
func FromFile(path string) (registry.Game, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return fromConfig(cfg)
}

// RegisterUser registers every scene file found in dirs whose id is not
// already taken. It returns the ids that were added.
func RegisterUser(dirs ...string) ([]string, error) {
	found, err := config.Discover(dirs...)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, cfg := range found {
		if registry.Exists(cfg.ID) {
			continue
		}
		title := cfg.Title
		if title == "" {
			title = cfg.ID
		}
		registry.Register(cfg.ID, title, func() (registry.Game, error) {
			return fromConfig(cfg)
		})
		added = append(added, cfg.ID)
	}
	return added, nil
}

func fromConfig(cfg config.SceneConfig) (registry.Game, error) {
	s, err := config.Build(cfg)
	if err != nil {
		return nil, err
	}
	return explore.New(s), nil
}
