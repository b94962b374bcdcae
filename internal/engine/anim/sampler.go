package anim

import "sort"

// SampleTrack evaluates a track at the given time.
//
// Sampling clamps: before the first keyframe it returns the first value,
// after the last keyframe the last value. In between, the surrounding pair
// is located by binary search and blended per the track's interpolation mode.
func SampleTrack(track *Track, time float64) [3]float32 {
	keyframes := track.Keyframes

	if len(keyframes) == 0 {
		return [3]float32{}
	}

	if time <= keyframes[0].Time {
		return keyframes[0].Value
	}

	last := &keyframes[len(keyframes)-1]
	if time >= last.Time {
		return last.Value
	}

	// Insertion index: time lies between keyframes[idx-1] and keyframes[idx]
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

	switch track.Interpolation {
	case InterpolationStep:
		return prev.Value
	case InterpolationCubicSpline:
		var outTan, inTan [3]float32
		if prev.OutTangent != nil {
			outTan = *prev.OutTangent
		}
		if next.InTangent != nil {
			inTan = *next.InTangent
		}
		return cubicHermite(prev.Value, outTan, next.Value, inTan, float32(span), t)
	default:
		return lerpArray(prev.Value, next.Value, t)
	}
}

// lerpArray is component-wise linear interpolation between two [3]float32.
func lerpArray(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// cubicHermite evaluates a cubic Hermite spline segment.
//
// p0/m0 are the start value and outgoing tangent, p1/m1 the end value and
// incoming tangent. Tangents are scaled by the interval span dt before
// blending, t is the normalized [0..1] parameter.
func cubicHermite(p0, m0, p1, m1 [3]float32, dt, t float32) [3]float32 {
	t2 := t * t
	t3 := t2 * t

	// Hermite basis functions
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	var result [3]float32
	for i := 0; i < 3; i++ {
		result[i] = h00*p0[i] + h10*(m0[i]*dt) + h01*p1[i] + h11*(m1[i]*dt)
	}
	return result
}
