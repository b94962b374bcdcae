// Package animator drives per-entity animation playback: it discovers
// animated entities in the ecs world, advances their playback each tick,
// writes sampled values back to components, and computes skinning matrices
// for skeleton-bearing entities.
package animator

import (
	"go.uber.org/zap"

	"github.com/Faultbox/rigkit/internal/engine/anim"
	"github.com/Faultbox/rigkit/internal/engine/ecs"
)

// Animator component defaults.
const (
	DefaultSpeed         = 1.0
	DefaultLooping       = true
	DefaultBlendDuration = 0.3
)

// FiredEvent is a clip event that fired for a specific entity this tick.
type FiredEvent struct {
	Entity ecs.EntityID
	Event  anim.Event
}

// PropertySync manages property-track playback states per entity and
// bridges them to the loosely typed animator/transform components.
type PropertySync struct {
	states map[ecs.EntityID]*anim.PlaybackState
	log    *zap.Logger
}

// NewPropertySync returns an empty property sync. A nil logger disables
// logging.
func NewPropertySync(log *zap.Logger) *PropertySync {
	if log == nil {
		log = zap.NewNop()
	}
	return &PropertySync{
		states: make(map[ecs.EntityID]*anim.PlaybackState),
		log:    log,
	}
}

// State returns an entity's playback state, or nil if untracked.
func (ps *PropertySync) State(id ecs.EntityID) *anim.PlaybackState {
	return ps.states[id]
}

// ActiveCount returns the number of tracked entities.
func (ps *PropertySync) ActiveCount() int {
	return len(ps.states)
}

// Clear drops all playback states, for scene transitions.
func (ps *PropertySync) Clear() {
	ps.states = make(map[ecs.EntityID]*anim.PlaybackState)
}

// SyncFromWorld scans the world for entities carrying an animator component
// whose clip is registered, and creates playback states for new ones.
// Component fields default at the boundary: speed=1, loop=true,
// autoplay=false.
func (ps *PropertySync) SyncFromWorld(world *ecs.World, registry *anim.Registry) {
	for _, entity := range world.AllEntities() {
		if _, tracked := ps.states[entity.ID]; tracked {
			continue
		}

		components := world.Components(entity.ID)
		if components == nil {
			continue
		}
		animator := components.Get("animator")
		if animator == nil {
			continue
		}

		clipName := animator.Get("clip").StringOr("")
		if clipName == "" || !registry.HasClip(clipName) {
			continue
		}

		speed := animator.Get("speed").FloatOr(DefaultSpeed)
		looping := animator.Get("loop").BoolOr(DefaultLooping)
		autoplay := animator.Get("autoplay").BoolOr(false)
		playing := animator.Get("playing").BoolOr(false) || autoplay

		ps.states[entity.ID] = anim.NewPlaybackState(clipName, speed, looping, playing)
		ps.log.Debug("tracking property animator",
			zap.String("entity", entity.Name),
			zap.String("clip", clipName))
	}
}

// AdvanceAndWrite advances every playback by dt and writes sampled values
// back to the owning entity's components. Missing clips or despawned
// entities are skipped silently for this tick. Returns all events fired.
func (ps *PropertySync) AdvanceAndWrite(world *ecs.World, registry *anim.Registry, dt float64) []FiredEvent {
	var fired []FiredEvent

	for entityID, state := range ps.states {
		clip := registry.Clip(state.ClipName)
		if clip == nil {
			continue
		}

		result := anim.Advance(state, clip, dt)

		components := world.Components(entityID)
		if components == nil {
			continue
		}

		for i := range clip.Tracks {
			if i >= len(result.Samples) {
				break
			}
			writeSample(components, &clip.Tracks[i].Target, result.Samples[i])
		}

		for _, ev := range result.Events {
			fired = append(fired, FiredEvent{Entity: entityID, Event: ev})
		}
	}

	return fired
}

// writeSample routes one sampled value to its destination component field.
func writeSample(components *ecs.Components, target *anim.TrackTarget, value [3]float32) {
	switch target.Kind {
	case anim.TargetPosition:
		components.SetField("transform", "position", vecValue(value))
	case anim.TargetRotation:
		components.SetField("transform", "rotation", vecValue(value))
	case anim.TargetScale:
		components.SetField("transform", "scale", vecValue(value))
	case anim.TargetCustomFloat:
		components.SetField(target.Component, target.Field, ecs.Float(float64(value[0])))
	}
}

func vecValue(v [3]float32) ecs.Value {
	return ecs.Floats([]float64{float64(v[0]), float64(v[1]), float64(v[2])})
}
