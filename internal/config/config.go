// Package config provides YAML-based scene loading for the raycaster.
package config

// SceneConfig is the on-disk description of a scene.
type SceneConfig struct {
	ID         string         `yaml:"id"`
	Title      string         `yaml:"title"`
	Screen     ScreenConfig   `yaml:"screen"`
	Camera     CameraConfig   `yaml:"camera"`
	FOVDegrees float64        `yaml:"fov_degrees,omitempty"` // Used when camera.plane is omitted
	Motion     MotionConfig   `yaml:"motion"`
	Colors     ColorsConfig   `yaml:"colors"`
	Textures   TexturesConfig `yaml:"textures"`
	Render     RenderConfig   `yaml:"render"`
	Map        MapRows        `yaml:"map"`

	// Dir is the directory the file was read from; texture paths are
	// resolved against it. Empty for embedded scenes.
	Dir string `yaml:"-"`
}

// ScreenConfig is the preferred frame size for window and headless output.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Point is a 2D position or vector in cell units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// CameraConfig is the start state. Plane may be omitted.
type CameraConfig struct {
	Position  Point  `yaml:"position"`
	Direction Point  `yaml:"direction"`
	Plane     *Point `yaml:"plane,omitempty"`
}

// MotionConfig holds per-tick speeds at the 60 Hz reference rate.
type MotionConfig struct {
	MoveSpeed float64 `yaml:"move_speed"` // Cells per tick
	RotSpeed  float64 `yaml:"rot_speed"`  // Radians per tick
}

// ColorsConfig holds background colors as "#rrggbb".
type ColorsConfig struct {
	Sky   string `yaml:"sky"`
	Floor string `yaml:"floor"`
}

// TexturesConfig selects the wall textures. Files take precedence over
// procedural names; with neither, the classic procedural set is used.
type TexturesConfig struct {
	Size       int      `yaml:"size"`
	Procedural []string `yaml:"procedural,omitempty"`
	Files      []string `yaml:"files,omitempty"`
}

// RenderConfig selects the column fill mode.
type RenderConfig struct {
	Mode string `yaml:"mode"` // "textured" (default) or "flat"
}
