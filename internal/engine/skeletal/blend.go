package skeletal

import "github.com/Faultbox/rigkit/pkg/math"

// referenceScaleEpsilon floors the reference scale in additive blends so a
// zero reference component cannot divide by zero.
const referenceScaleEpsilon = 1e-10

// BlendPoses crossfades two full pose arrays into out.
//
// Translation and scale lerp component-wise; rotation slerps. A weight of
// 0 yields a, 1 yields b; the weight is clamped to [0, 1]. Mismatched array
// lengths blend over the shortest of the three.
func BlendPoses(a, b []JointPose, weight float32, out []JointPose) {
	count := min(len(a), len(b), len(out))
	w := clamp01(weight)

	for i := 0; i < count; i++ {
		out[i].Translation = a[i].Translation.Lerp(b[i].Translation, w)
		out[i].Scale = a[i].Scale.Lerp(b[i].Scale, w)
		out[i].Rotation = a[i].Rotation.Slerp(b[i].Rotation, w)
	}
}

// AdditiveBlend layers the delta between additive and reference onto base,
// scaled by weight, writing into out.
//
// Translation adds the weighted difference. Scale multiplies by a weighted
// ratio so a zero reference scale stays safe. Rotation isolates the
// rotational difference from the reference (conj(reference) * additive),
// slerps it from identity by weight, and composes it onto the base — partial
// weights then layer the delta without double-applying the base rotation.
func AdditiveBlend(base, additive, reference []JointPose, weight float32, out []JointPose) {
	count := min(len(base), len(additive), len(reference), len(out))
	w := clamp01(weight)

	for i := 0; i < count; i++ {
		delta := additive[i].Translation.Sub(reference[i].Translation)
		out[i].Translation = base[i].Translation.Add(delta.Scale(w))

		out[i].Scale = base[i].Scale.MulComponents(math.Vec3{
			X: 1 + (additive[i].Scale.X/max(reference[i].Scale.X, referenceScaleEpsilon)-1)*w,
			Y: 1 + (additive[i].Scale.Y/max(reference[i].Scale.Y, referenceScaleEpsilon)-1)*w,
			Z: 1 + (additive[i].Scale.Z/max(reference[i].Scale.Z, referenceScaleEpsilon)-1)*w,
		})

		deltaRot := reference[i].Rotation.Conjugate().Mul(additive[i].Rotation)
		weighted := math.QuatIdentity().Slerp(deltaRot, w)
		out[i].Rotation = base[i].Rotation.Mul(weighted).Normalize()
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
