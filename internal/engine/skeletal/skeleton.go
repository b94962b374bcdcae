package skeletal

import (
	"fmt"

	"github.com/Faultbox/rigkit/pkg/math"
)

// RootJoint marks a joint with no parent.
const RootJoint = -1

// JointPose is one joint's local-space transform (translation, rotation, scale).
type JointPose struct {
	Translation math.Vec3
	Rotation    math.Quat // xyzw
	Scale       math.Vec3
}

// IdentityPose returns the rest local pose: zero translation, identity
// rotation, unit scale.
func IdentityPose() JointPose {
	return JointPose{
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3One(),
	}
}

// Joint describes one joint of a rig at construction time.
type Joint struct {
	Name string
	// Parent is the index of the parent joint, or RootJoint.
	Parent int
	// InverseBind converts the joint's animated global transform into the
	// delta expected by skinning.
	InverseBind math.Mat4
}

// Skeleton is a runtime rig instance: the joint hierarchy, per-joint local
// poses written by animation, and the derived skinning matrices.
//
// The bone matrix pipeline:
//  1. Animation writes into LocalPoses (per-joint TRS)
//  2. ComputeBoneMatrices walks the hierarchy root-to-leaf
//  3. global[i] = global[parent[i]] * trs(LocalPoses[i])
//  4. BoneMatrices[i] = global[i] * inverseBind[i], handed to the consumer
type Skeleton struct {
	JointNames []string
	// Parents holds the parent index per joint, RootJoint for roots.
	// Joints are in topological order: every parent precedes its children.
	Parents      []int
	InverseBind  []math.Mat4
	LocalPoses   []JointPose
	BoneMatrices []math.Mat4

	globals []math.Mat4
}

// NewSkeleton builds a skeleton from joint definitions.
//
// The joint array must be topologically ordered (each parent index smaller
// than its child's index); the single-pass matrix composition depends on it,
// so malformed hierarchies are rejected here instead of silently producing
// wrong matrices later.
func NewSkeleton(joints []Joint) (*Skeleton, error) {
	count := len(joints)
	s := &Skeleton{
		JointNames:   make([]string, count),
		Parents:      make([]int, count),
		InverseBind:  make([]math.Mat4, count),
		LocalPoses:   make([]JointPose, count),
		BoneMatrices: make([]math.Mat4, count),
		globals:      make([]math.Mat4, count),
	}

	for i, j := range joints {
		if j.Parent != RootJoint && (j.Parent < 0 || j.Parent >= i) {
			return nil, fmt.Errorf("joint %d (%q): parent %d must precede it in the joint array", i, j.Name, j.Parent)
		}
		s.JointNames[i] = j.Name
		s.Parents[i] = j.Parent
		s.InverseBind[i] = j.InverseBind
		s.LocalPoses[i] = IdentityPose()
		s.BoneMatrices[i] = math.Identity()
	}

	return s, nil
}

// JointCount returns the number of joints in the rig.
func (s *Skeleton) JointCount() int {
	return len(s.JointNames)
}

// ResetPoses restores every local pose to the identity rest pose.
func (s *Skeleton) ResetPoses() {
	for i := range s.LocalPoses {
		s.LocalPoses[i] = IdentityPose()
	}
}

// ComputeBoneMatrices derives the final skinning matrices from the current
// local poses in a single forward pass. Topological joint order guarantees a
// parent's global transform is ready before any of its children.
func (s *Skeleton) ComputeBoneMatrices() {
	for i := range s.LocalPoses {
		local := math.FromTRS(s.LocalPoses[i].Translation, s.LocalPoses[i].Rotation, s.LocalPoses[i].Scale)

		if parent := s.Parents[i]; parent != RootJoint {
			s.globals[i] = s.globals[parent].Mul(local)
		} else {
			s.globals[i] = local
		}

		s.BoneMatrices[i] = s.globals[i].Mul(s.InverseBind[i])
	}
}
