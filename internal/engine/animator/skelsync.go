package animator

import (
	stdmath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/rigkit/internal/engine/ecs"
	"github.com/Faultbox/rigkit/internal/engine/skeletal"
	"github.com/Faultbox/rigkit/pkg/math"
)

// SkeletalPlayback is one entity's skeletal clip playback, including an
// optional in-flight crossfade and an optional additive layer.
type SkeletalPlayback struct {
	ClipName string
	Time     float64
	Speed    float64
	Looping  bool
	Playing  bool

	// BlendTarget names the clip being crossfaded into; empty means no
	// blend is running. The target clip plays from its own time zero.
	BlendTarget   string
	BlendDuration float32
	BlendElapsed  float32

	// AdditiveClip names a delta clip layered on top of the final pose at
	// AdditiveWeight; empty disables the layer.
	AdditiveClip   string
	AdditiveWeight float32
}

// NewSkeletalPlayback creates a skeletal playback at time zero with no
// blend in flight.
func NewSkeletalPlayback(clipName string, speed float64, looping, playing bool) *SkeletalPlayback {
	return &SkeletalPlayback{
		ClipName:      clipName,
		Speed:         speed,
		Looping:       looping,
		Playing:       playing,
		BlendDuration: DefaultBlendDuration,
	}
}

// Blending reports whether a crossfade is in flight.
func (p *SkeletalPlayback) Blending() bool {
	return p.BlendTarget != "" && p.BlendDuration > 0
}

// clearBlend aborts or completes the crossfade.
func (p *SkeletalPlayback) clearBlend() {
	p.BlendTarget = ""
	p.BlendElapsed = 0
}

// SkeletalSync owns the skeletal clip registry and per-entity skeleton and
// playback state, and drives sampling, crossfades, additive layering, and
// bone-matrix computation each tick.
type SkeletalSync struct {
	clips     map[string]*skeletal.Clip
	skeletons map[ecs.EntityID]*skeletal.Skeleton
	states    map[ecs.EntityID]*SkeletalPlayback

	// scratch pose buffers, reused across entities within a tick
	scratchCurrent  []skeletal.JointPose
	scratchTarget   []skeletal.JointPose
	scratchAdditive []skeletal.JointPose
	scratchRef      []skeletal.JointPose

	log *zap.Logger
}

// NewSkeletalSync returns an empty skeletal sync. A nil logger disables
// logging.
func NewSkeletalSync(log *zap.Logger) *SkeletalSync {
	if log == nil {
		log = zap.NewNop()
	}
	return &SkeletalSync{
		clips:     make(map[string]*skeletal.Clip),
		skeletons: make(map[ecs.EntityID]*skeletal.Skeleton),
		states:    make(map[ecs.EntityID]*SkeletalPlayback),
		log:       log,
	}
}

// AddClip registers a skeletal clip, overwriting same-name clips.
func (ss *SkeletalSync) AddClip(clip *skeletal.Clip) {
	ss.clips[clip.Name] = clip
}

// HasClip reports whether a skeletal clip is registered.
func (ss *SkeletalSync) HasClip(name string) bool {
	_, ok := ss.clips[name]
	return ok
}

// ClipCount returns the number of registered skeletal clips.
func (ss *SkeletalSync) ClipCount() int {
	return len(ss.clips)
}

// AddSkeleton attaches a skeleton to an entity.
func (ss *SkeletalSync) AddSkeleton(id ecs.EntityID, s *skeletal.Skeleton) {
	ss.skeletons[id] = s
}

// HasSkeleton reports whether an entity has a skeleton attached.
func (ss *SkeletalSync) HasSkeleton(id ecs.EntityID) bool {
	_, ok := ss.skeletons[id]
	return ok
}

// State returns an entity's skeletal playback, or nil if untracked.
func (ss *SkeletalSync) State(id ecs.EntityID) *SkeletalPlayback {
	return ss.states[id]
}

// ActiveCount returns the number of tracked skeletal entities.
func (ss *SkeletalSync) ActiveCount() int {
	return len(ss.states)
}

// BoneMatrices returns the last-computed skinning matrices for an entity,
// or nil if it has no skeleton. The slice is owned by the skeleton; treat
// it as read-only.
func (ss *SkeletalSync) BoneMatrices(id ecs.EntityID) []math.Mat4 {
	s, ok := ss.skeletons[id]
	if !ok {
		return nil
	}
	return s.BoneMatrices
}

// AllBoneMatrices visits every tracked entity with computed bone matrices.
func (ss *SkeletalSync) AllBoneMatrices(fn func(id ecs.EntityID, matrices []math.Mat4)) {
	for id, s := range ss.skeletons {
		if _, tracked := ss.states[id]; tracked {
			fn(id, s.BoneMatrices)
		}
	}
}

// Clear drops all skeletal clips, skeletons, and playback states.
func (ss *SkeletalSync) Clear() {
	ss.clips = make(map[string]*skeletal.Clip)
	ss.skeletons = make(map[ecs.EntityID]*skeletal.Skeleton)
	ss.states = make(map[ecs.EntityID]*SkeletalPlayback)
}

// SyncFromWorld scans for entities carrying animator + skeleton components
// with a skeleton attached. New entities get a playback state; existing
// ones pick up crossfade and additive-layer requests from the component
// store.
func (ss *SkeletalSync) SyncFromWorld(world *ecs.World) {
	for _, entity := range world.AllEntities() {
		components := world.Components(entity.ID)
		if components == nil {
			continue
		}
		animator := components.Get("animator")
		if animator == nil || !components.Has("skeleton") {
			continue
		}
		if !ss.HasSkeleton(entity.ID) {
			continue
		}

		if state, tracked := ss.states[entity.ID]; tracked {
			ss.applyComponentChanges(state, animator)
			continue
		}

		clipName := animator.Get("clip").StringOr("")
		if clipName == "" || !ss.HasClip(clipName) {
			continue
		}

		speed := animator.Get("speed").FloatOr(DefaultSpeed)
		looping := animator.Get("loop").BoolOr(DefaultLooping)
		autoplay := animator.Get("autoplay").BoolOr(false)
		playing := animator.Get("playing").BoolOr(false) || autoplay

		state := NewSkeletalPlayback(clipName, speed, looping, playing)
		state.BlendTarget = animator.Get("blend_target").StringOr("")
		state.BlendDuration = float32(animator.Get("blend_duration").FloatOr(DefaultBlendDuration))
		state.AdditiveClip = animator.Get("additive_clip").StringOr("")
		state.AdditiveWeight = float32(animator.Get("additive_weight").FloatOr(0))

		ss.states[entity.ID] = state
		ss.log.Debug("tracking skeletal animator",
			zap.String("entity", entity.Name),
			zap.String("clip", clipName))
	}
}

// applyComponentChanges picks up new crossfade targets and additive-layer
// settings written to the animator component after discovery.
func (ss *SkeletalSync) applyComponentChanges(state *SkeletalPlayback, animator ecs.Component) {
	blendTarget := animator.Get("blend_target").StringOr("")
	if blendTarget != "" && blendTarget != state.BlendTarget && ss.HasClip(blendTarget) {
		state.BlendTarget = blendTarget
		state.BlendDuration = float32(animator.Get("blend_duration").FloatOr(DefaultBlendDuration))
		state.BlendElapsed = 0
	}

	state.AdditiveClip = animator.Get("additive_clip").StringOr(state.AdditiveClip)
	if w, ok := animator.Get("additive_weight").AsFloat(); ok {
		state.AdditiveWeight = float32(w)
	}
}

// AdvanceAndCompute advances every skeletal playback by dt, samples poses,
// applies any crossfade and additive layer, and recomputes bone matrices.
// Entities whose clip or skeleton went missing are skipped this tick.
func (ss *SkeletalSync) AdvanceAndCompute(dt float64) {
	for entityID, state := range ss.states {
		clip := ss.clips[state.ClipName]
		if clip == nil {
			continue
		}
		skel := ss.skeletons[entityID]
		if skel == nil {
			continue
		}

		ss.advanceTime(state, clip, dt)

		skeletal.SampleClipInto(clip, state.Time, skel.LocalPoses)

		if state.Blending() {
			ss.applyCrossfade(state, skel, dt)
		}

		if state.AdditiveClip != "" && state.AdditiveWeight > 0 {
			ss.applyAdditiveLayer(state, skel)
		}

		skel.ComputeBoneMatrices()
	}
}

// advanceTime moves the playback clock, wrapping or clamping at the clip
// bounds exactly like property playback.
func (ss *SkeletalSync) advanceTime(state *SkeletalPlayback, clip *skeletal.Clip, dt float64) {
	if !state.Playing {
		return
	}

	state.Time += dt * state.Speed

	if state.Looping {
		if clip.Duration > 0 {
			if state.Time >= clip.Duration {
				state.Time = stdmath.Mod(state.Time, clip.Duration)
			} else if state.Time < 0 {
				state.Time = clip.Duration - stdmath.Mod(-state.Time, clip.Duration)
			}
		}
	} else if state.Time >= clip.Duration {
		state.Time = clip.Duration
		state.Playing = false
	} else if state.Time < 0 {
		state.Time = 0
		state.Playing = false
	}
}

// applyCrossfade blends the current pose toward the blend target clip and
// completes the transition once the blend weight saturates. The target clip
// runs on its own timeline starting at zero; it does not inherit the source
// clip's time. An unregistered target aborts the blend.
func (ss *SkeletalSync) applyCrossfade(state *SkeletalPlayback, skel *skeletal.Skeleton, dt float64) {
	targetClip := ss.clips[state.BlendTarget]
	if targetClip == nil {
		ss.log.Debug("crossfade target missing, aborting blend",
			zap.String("target", state.BlendTarget))
		state.clearBlend()
		return
	}

	state.BlendElapsed += float32(dt)
	weight := state.BlendElapsed / state.BlendDuration
	if weight > 1 {
		weight = 1
	}

	count := skel.JointCount()
	current := resizePoses(&ss.scratchCurrent, count)
	target := resizePoses(&ss.scratchTarget, count)
	copy(current, skel.LocalPoses)
	copy(target, skel.LocalPoses)

	targetTime := float64(state.BlendElapsed) * state.Speed
	skeletal.SampleClipInto(targetClip, targetTime, target)

	skeletal.BlendPoses(current, target, weight, skel.LocalPoses)

	if weight >= 1 {
		state.ClipName = state.BlendTarget
		state.Time = targetTime
		state.clearBlend()
	}
}

// applyAdditiveLayer layers the additive clip's delta from its own first
// frame onto the already-composed pose. An unregistered clip disables the
// layer.
func (ss *SkeletalSync) applyAdditiveLayer(state *SkeletalPlayback, skel *skeletal.Skeleton) {
	clip := ss.clips[state.AdditiveClip]
	if clip == nil {
		ss.log.Debug("additive clip missing, disabling layer",
			zap.String("clip", state.AdditiveClip))
		state.AdditiveClip = ""
		return
	}

	additiveTime := state.Time
	if clip.Duration > 0 {
		additiveTime = stdmath.Mod(state.Time, clip.Duration)
		if additiveTime < 0 {
			additiveTime += clip.Duration
		}
	}

	count := skel.JointCount()
	base := resizePoses(&ss.scratchCurrent, count)
	additive := resizePoses(&ss.scratchAdditive, count)
	reference := resizePoses(&ss.scratchRef, count)
	copy(base, skel.LocalPoses)

	fillIdentity(additive)
	fillIdentity(reference)
	skeletal.SampleClipInto(clip, additiveTime, additive)
	skeletal.SampleClipInto(clip, 0, reference)

	skeletal.AdditiveBlend(base, additive, reference, state.AdditiveWeight, skel.LocalPoses)
}

// resizePoses grows a scratch buffer to count poses and returns it.
func resizePoses(buf *[]skeletal.JointPose, count int) []skeletal.JointPose {
	if cap(*buf) < count {
		*buf = make([]skeletal.JointPose, count)
	}
	*buf = (*buf)[:count]
	return *buf
}

func fillIdentity(poses []skeletal.JointPose) {
	for i := range poses {
		poses[i] = skeletal.IdentityPose()
	}
}
