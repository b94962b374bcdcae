// Package anim implements keyframe clip data, track sampling, and per-entity
// playback for property animation.
package anim

// Interpolation selects how values between two keyframes are computed.
type Interpolation int

const (
	// InterpolationLinear blends linearly between keyframes.
	InterpolationLinear Interpolation = iota
	// InterpolationStep holds the previous keyframe value until the next one.
	InterpolationStep
	// InterpolationCubicSpline blends along a cubic Hermite spline using
	// per-keyframe tangents.
	InterpolationCubicSpline
)

// String returns the interpolation mode name.
func (i Interpolation) String() string {
	switch i {
	case InterpolationStep:
		return "step"
	case InterpolationCubicSpline:
		return "cubicspline"
	default:
		return "linear"
	}
}

// TargetKind identifies which property a track drives.
type TargetKind int

const (
	// TargetPosition drives the transform position.
	TargetPosition TargetKind = iota
	// TargetRotation drives the transform rotation (euler degrees).
	TargetRotation
	// TargetScale drives the transform scale.
	TargetScale
	// TargetCustomFloat drives an arbitrary float field on a named component.
	TargetCustomFloat
)

// TrackTarget describes the destination of a track's sampled values.
// Component and Field are only meaningful for TargetCustomFloat.
type TrackTarget struct {
	Kind      TargetKind
	Component string
	Field     string
}

// Keyframe is one sample on a track: a value at a point in time.
type Keyframe struct {
	// Time in seconds from clip start.
	Time float64
	// Value holds position xyz, rotation euler degrees, scale xyz,
	// or [v, 0, 0] for scalar tracks.
	Value [3]float32
	// InTangent is the incoming tangent for cubic spline interpolation.
	InTangent *[3]float32
	// OutTangent is the outgoing tangent for cubic spline interpolation.
	OutTangent *[3]float32
}

// Track is a single animated property: keyframes sorted ascending by time.
type Track struct {
	Target        TrackTarget
	Interpolation Interpolation
	Keyframes     []Keyframe
}

// Event fires at a specific time during playback, consumed by game logic.
type Event struct {
	Time float64
	Name string
}

// Clip is a named, time-bounded collection of tracks and events.
type Clip struct {
	Name     string
	Duration float64
	Tracks   []Track
	Events   []Event
}
