package raycast

import (
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// ReferenceTick is the frame duration the per-tick speeds are tuned for.
const ReferenceTick = time.Second / 60

// Default per-tick speeds.
const (
	DefaultMoveSpeed = 0.1
	DefaultRotSpeed  = 0.08
)

// Motion holds per-tick movement and rotation speeds.
type Motion struct {
	MoveSpeed float64 // cells per tick
	RotSpeed  float64 // radians per tick
}

// DefaultMotion returns the reference speeds.
func DefaultMotion() Motion {
	return Motion{MoveSpeed: DefaultMoveSpeed, RotSpeed: DefaultRotSpeed}
}

// Scaled returns the speeds for a frame lasting dt instead of ReferenceTick.
func (m Motion) Scaled(dt time.Duration) Motion {
	if dt <= 0 {
		return Motion{}
	}
	k := float64(dt) / float64(ReferenceTick)
	return Motion{MoveSpeed: m.MoveSpeed * k, RotSpeed: m.RotSpeed * k}
}

// Validate checks that a move step stays below one cell so movement cannot
// tunnel through a single-cell wall.
func (m Motion) Validate() error {
	if m.MoveSpeed < 0 || m.MoveSpeed >= 1 || isBad(m.MoveSpeed) {
		return invalid(CodeBadMotion, "move speed %.3f must be in [0, 1)", m.MoveSpeed)
	}
	if m.RotSpeed < 0 || isBad(m.RotSpeed) {
		return invalid(CodeBadMotion, "rotation speed %.3f must be non-negative", m.RotSpeed)
	}
	return nil
}

// Step applies one frame of intents to the camera: forward, backward, then
// turn left (positive angle) and turn right (negative angle). Opposite
// intents in the same frame cancel out.
//
// Step must complete before the frame that reads cam is rendered.
func Step(cam *Camera, g *Grid, in core.Intents, m Motion) {
	if in.Forward {
		cam.Move(g, m.MoveSpeed)
	}
	if in.Backward {
		cam.Move(g, -m.MoveSpeed)
	}
	if in.TurnLeft {
		cam.Rotate(m.RotSpeed)
	}
	if in.TurnRight {
		cam.Rotate(-m.RotSpeed)
	}
}
