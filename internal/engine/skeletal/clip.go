// Package skeletal implements joint-track sampling, pose blending, and
// hierarchical bone-matrix composition for skinned animation.
package skeletal

import "github.com/Faultbox/rigkit/internal/engine/anim"

// JointProperty identifies which part of a joint's local TRS a track animates.
type JointProperty int

const (
	// PropertyTranslation animates the joint's local translation.
	PropertyTranslation JointProperty = iota
	// PropertyRotation animates the joint's local rotation (quaternion xyzw).
	PropertyRotation
	// PropertyScale animates the joint's local scale.
	PropertyScale
)

// String returns the property name.
func (p JointProperty) String() string {
	switch p {
	case PropertyRotation:
		return "rotation"
	case PropertyScale:
		return "scale"
	default:
		return "translation"
	}
}

// JointKeyframe is one sample on a joint track.
// Value carries 3 components for translation/scale, 4 (xyzw) for rotation.
// Rotation values are expected normalized at write time.
type JointKeyframe struct {
	Time  float64
	Value []float32
}

// JointTrack animates one property of one joint.
type JointTrack struct {
	JointIndex    int
	Property      JointProperty
	Interpolation anim.Interpolation
	Keyframes     []JointKeyframe
}

// Clip is a named skeletal animation: per-joint keyframe tracks over a
// bounded duration.
type Clip struct {
	Name     string
	Duration float64
	Tracks   []JointTrack
}
