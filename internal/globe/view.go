package globe

import (
	"fmt"
	"math"
	"time"
)

// Interaction tuning.
const (
	DragSensitivity = 0.35 // degrees per pixel
	BoostFactor     = 1.8  // sensitivity multiplier while the modifier key is held

	MinPitch = -89.0
	MaxPitch = 89.0

	MinZoom       = 0.9
	MaxZoom       = 2.2
	ZoomOutFactor = 0.95
	ZoomInFactor  = 1.05

	ResumeDelay  = 1500 * time.Millisecond
	TickInterval = 30 * time.Millisecond

	DefaultSpeed = 0.06 // yaw degrees per tick
	RetroSpeed   = 0.12
)

// Initial view of a freshly mounted globe.
const (
	InitialYaw   = -20.0
	InitialPitch = -15.0
	InitialZoom  = 1.15
)

// MapBackdropURL is the world geometry document the client renders behind the pins.
const MapBackdropURL = "https://cdn.jsdelivr.net/npm/world-atlas@2/countries-110m.json"

// State is the interaction state of the globe.
type State int

const (
	StateAutoRotating State = iota
	StatePaused
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateAutoRotating:
		return "auto_rotating"
	case StatePaused:
		return "paused"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText renders the state by name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name written by MarshalText.
func (s *State) UnmarshalText(b []byte) error {
	for _, candidate := range []State{StateAutoRotating, StatePaused, StateDragging} {
		if candidate.String() == string(b) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("globe: unknown state %q", b)
}

// Rotation is the globe orientation in degrees. Pitch stays within
// [MinPitch, MaxPitch]; yaw is unbounded and only normalized for rendering.
type Rotation struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

// Normalized returns the rotation with yaw folded into (-180, 180].
func (r Rotation) Normalized() Rotation {
	yaw := math.Mod(r.Yaw, 360)
	if yaw > 180 {
		yaw -= 360
	} else if yaw <= -180 {
		yaw += 360
	}
	r.Yaw = yaw
	return r
}

// View is a snapshot of everything the renderer needs besides the markers.
type View struct {
	Rotation Rotation `json:"rotation"`
	Zoom     float64  `json:"zoom"`
	State    State    `json:"state"`
	Retro    bool     `json:"retro"`
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
