package skeletal

import (
	"sort"

	"github.com/Faultbox/rigkit/internal/engine/anim"
	"github.com/Faultbox/rigkit/pkg/math"
)

// SampleJointTrack evaluates a joint track at the given time.
//
// Returns 3 components for translation/scale tracks and 4 (xyzw) for
// rotation tracks. Rotation interpolates by slerp; vector components lerp.
// Sampling clamps outside the keyframe range and never extrapolates.
//
// CubicSpline joint tracks degrade to Linear: the importer delivers plain
// values without the in/out tangents a true Hermite blend needs.
func SampleJointTrack(track *JointTrack, time float64) []float32 {
	keyframes := track.Keyframes
	isRotation := track.Property == PropertyRotation

	if len(keyframes) == 0 {
		if isRotation {
			return math.QuatIdentity().Slice()
		}
		return []float32{0, 0, 0}
	}

	if time <= keyframes[0].Time {
		return keyframes[0].Value
	}

	last := &keyframes[len(keyframes)-1]
	if time >= last.Time {
		return last.Value
	}

	idx := sort.Search(len(keyframes), func(i int) bool {
		return keyframes[i].Time >= time
	})
	if keyframes[idx].Time == time {
		return keyframes[idx].Value
	}

	prev := &keyframes[idx-1]
	next := &keyframes[idx]

	span := next.Time - prev.Time
	if span <= 0 {
		return prev.Value
	}
	t := float32((time - prev.Time) / span)

	if track.Interpolation == anim.InterpolationStep {
		return prev.Value
	}

	if isRotation {
		q := math.QuatFromSlice(prev.Value).Slerp(math.QuatFromSlice(next.Value), t)
		return q.Slice()
	}
	return lerpSlice(prev.Value, next.Value, t, 3)
}

// SampleClipInto samples every track of a clip at the given time and writes
// the results into the matching joints of poses. Tracks whose joint index
// falls outside the pose array are skipped.
func SampleClipInto(clip *Clip, time float64, poses []JointPose) {
	for i := range clip.Tracks {
		track := &clip.Tracks[i]
		if track.JointIndex < 0 || track.JointIndex >= len(poses) {
			continue
		}
		value := SampleJointTrack(track, time)

		switch track.Property {
		case PropertyTranslation:
			if len(value) >= 3 {
				poses[track.JointIndex].Translation = math.Vec3{X: value[0], Y: value[1], Z: value[2]}
			}
		case PropertyRotation:
			if len(value) >= 4 {
				poses[track.JointIndex].Rotation = math.Quat{X: value[0], Y: value[1], Z: value[2], W: value[3]}
			}
		case PropertyScale:
			if len(value) >= 3 {
				poses[track.JointIndex].Scale = math.Vec3{X: value[0], Y: value[1], Z: value[2]}
			}
		}
	}
}

// lerpSlice is component-wise linear interpolation over count components.
// Missing components read as zero.
func lerpSlice(a, b []float32, t float32, count int) []float32 {
	out := make([]float32, count)
	for i := 0; i < count; i++ {
		var av, bv float32
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = av + (bv-av)*t
	}
	return out
}
