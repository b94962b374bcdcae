package skeletal

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rigkit/internal/engine/anim"
	"github.com/Faultbox/rigkit/pkg/math"
)

func TestSampleJointTrack_EmptyRotationReturnsIdentity(t *testing.T) {
	track := &JointTrack{Property: PropertyRotation, Interpolation: anim.InterpolationLinear}
	v := SampleJointTrack(track, 0.5)
	require.Equal(t, []float32{0, 0, 0, 1}, v)
}

func TestSampleJointTrack_EmptyVectorReturnsZero(t *testing.T) {
	track := &JointTrack{Property: PropertyTranslation, Interpolation: anim.InterpolationLinear}
	require.Equal(t, []float32{0, 0, 0}, SampleJointTrack(track, 0.5))
}

func TestSampleJointTrack_TranslationLinear(t *testing.T) {
	track := &JointTrack{
		Property:      PropertyTranslation,
		Interpolation: anim.InterpolationLinear,
		Keyframes: []JointKeyframe{
			{Time: 0.0, Value: []float32{0, 0, 0}},
			{Time: 2.0, Value: []float32{4, 6, 8}},
		},
	}
	v := SampleJointTrack(track, 1.0)
	require.InDelta(t, 2.0, v[0], 1e-4)
	require.InDelta(t, 3.0, v[1], 1e-4)
	require.InDelta(t, 4.0, v[2], 1e-4)
}

func TestSampleJointTrack_RotationSlerpsAndStaysUnit(t *testing.T) {
	track := &JointTrack{
		Property:      PropertyRotation,
		Interpolation: anim.InterpolationLinear,
		Keyframes: []JointKeyframe{
			{Time: 0.0, Value: []float32{0, 0, 0, 1}},
			{Time: 1.0, Value: math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(stdmath.Pi/2)).Slice()},
		},
	}

	v := SampleJointTrack(track, 0.5)
	require.Len(t, v, 4)

	q := math.QuatFromSlice(v)
	require.InDelta(t, 1.0, float64(q.Length()), 1e-5)

	expected := math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(stdmath.Pi/4))
	require.InDelta(t, expected.Y, q.Y, 1e-4)
	require.InDelta(t, expected.W, q.W, 1e-4)
}

func TestSampleJointTrack_ClampsAtBounds(t *testing.T) {
	track := &JointTrack{
		Property:      PropertyScale,
		Interpolation: anim.InterpolationLinear,
		Keyframes: []JointKeyframe{
			{Time: 1.0, Value: []float32{2, 2, 2}},
			{Time: 2.0, Value: []float32{4, 4, 4}},
		},
	}
	require.Equal(t, []float32{2, 2, 2}, SampleJointTrack(track, 0.0))
	require.Equal(t, []float32{4, 4, 4}, SampleJointTrack(track, 10.0))
}

func TestSampleJointTrack_StepHoldsPrevious(t *testing.T) {
	track := &JointTrack{
		Property:      PropertyTranslation,
		Interpolation: anim.InterpolationStep,
		Keyframes: []JointKeyframe{
			{Time: 0.0, Value: []float32{1, 2, 3}},
			{Time: 1.0, Value: []float32{4, 5, 6}},
		},
	}
	require.Equal(t, []float32{1, 2, 3}, SampleJointTrack(track, 0.5))
}

func TestSampleJointTrack_CubicSplineFallsBackToLinear(t *testing.T) {
	track := &JointTrack{
		Property:      PropertyTranslation,
		Interpolation: anim.InterpolationCubicSpline,
		Keyframes: []JointKeyframe{
			{Time: 0.0, Value: []float32{0, 0, 0}},
			{Time: 2.0, Value: []float32{8, 0, 0}},
		},
	}
	v := SampleJointTrack(track, 1.0)
	require.InDelta(t, 4.0, v[0], 1e-4)
}

func TestSampleClipInto(t *testing.T) {
	clip := &Clip{
		Name:     "wave",
		Duration: 1.0,
		Tracks: []JointTrack{
			{
				JointIndex:    0,
				Property:      PropertyTranslation,
				Interpolation: anim.InterpolationLinear,
				Keyframes: []JointKeyframe{
					{Time: 0.0, Value: []float32{0, 0, 0}},
					{Time: 1.0, Value: []float32{2, 0, 0}},
				},
			},
			{
				JointIndex:    1,
				Property:      PropertyRotation,
				Interpolation: anim.InterpolationLinear,
				Keyframes: []JointKeyframe{
					{Time: 0.0, Value: []float32{0, 0, 0, 1}},
				},
			},
			{
				// Out-of-range joint index: skipped without touching poses
				JointIndex:    7,
				Property:      PropertyScale,
				Interpolation: anim.InterpolationLinear,
				Keyframes: []JointKeyframe{
					{Time: 0.0, Value: []float32{9, 9, 9}},
				},
			},
		},
	}

	poses := []JointPose{IdentityPose(), IdentityPose()}
	SampleClipInto(clip, 0.5, poses)

	require.InDelta(t, 1.0, poses[0].Translation.X, 1e-4)
	require.Equal(t, math.QuatIdentity(), poses[1].Rotation)
}
