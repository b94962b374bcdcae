package animator

import (
	"go.uber.org/zap"

	"github.com/Faultbox/rigkit/internal/engine/anim"
	"github.com/Faultbox/rigkit/internal/engine/ecs"
)

// System is the top-level animation subsystem: the property clip registry,
// property playback sync, and skeletal playback sync, driven once per
// simulation tick.
//
// The whole system is single-threaded and synchronous. Each entity's state
// is mutated only from Update; iteration order across entities never
// affects results.
type System struct {
	Registry *anim.Registry
	Props    *PropertySync
	Skeletal *SkeletalSync

	log *zap.Logger
}

// NewSystem builds an animation system. A nil logger disables logging.
func NewSystem(log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	return &System{
		Registry: anim.NewRegistry(),
		Props:    NewPropertySync(log),
		Skeletal: NewSkeletalSync(log),
		log:      log,
	}
}

// Initialize runs discovery once and logs what the system found.
func (s *System) Initialize(world *ecs.World) {
	s.Props.SyncFromWorld(world, s.Registry)
	s.Skeletal.SyncFromWorld(world)
	s.log.Info("animation system initialized",
		zap.Int("property_clips", s.Registry.ClipCount()),
		zap.Int("skeletal_clips", s.Skeletal.ClipCount()),
		zap.Int("property_entities", s.Props.ActiveCount()),
		zap.Int("skeletal_entities", s.Skeletal.ActiveCount()))
}

// Update runs one simulation tick: discover newly eligible entities, then
// advance and write back every tracked entity by dt seconds. Returns the
// property-clip events fired this tick.
func (s *System) Update(world *ecs.World, dt float64) []FiredEvent {
	s.Props.SyncFromWorld(world, s.Registry)
	fired := s.Props.AdvanceAndWrite(world, s.Registry, dt)

	s.Skeletal.SyncFromWorld(world)
	s.Skeletal.AdvanceAndCompute(dt)

	return fired
}

// Clear resets all per-entity animation state for a scene transition.
// The property clip registry survives; clips are reloadable assets.
func (s *System) Clear() {
	s.Props.Clear()
	s.Skeletal.Clear()
}
