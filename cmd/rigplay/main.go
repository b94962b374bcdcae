// Package main is a headless animation playground: it builds a small scene
// with a property-animated entity and a skinned entity, then steps the
// animation system on a fixed timestep and logs what happens.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/rigkit/internal/config"
	"github.com/Faultbox/rigkit/internal/engine/anim"
	"github.com/Faultbox/rigkit/internal/engine/animator"
	"github.com/Faultbox/rigkit/internal/engine/ecs"
	"github.com/Faultbox/rigkit/internal/engine/skeletal"
	"github.com/Faultbox/rigkit/internal/logger"
	"github.com/Faultbox/rigkit/pkg/math"
)

const defaultTicks = 300

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Info("=== rigplay ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Log.Error("rigplay error", zap.Error(err))
		os.Exit(1)
	}

	logger.Log.Info("rigplay finished")
}

func run(cfg *config.Config) error {
	world := ecs.NewWorld()
	system := animator.NewSystem(logger.Log)

	system.Registry.AddClip(bobClip())
	system.Skeletal.AddClip(walkClip())
	system.Skeletal.AddClip(runClip())
	system.Skeletal.AddClip(breatheClip())

	if err := spawnBobber(world); err != nil {
		return err
	}
	heroID, err := spawnHero(world, system.Skeletal)
	if err != nil {
		return err
	}

	system.Initialize(world)

	ticks := cfg.Playback.MaxTicks
	if ticks <= 0 {
		ticks = defaultTicks
	}
	dt := cfg.Playback.FixedTimestep

	for tick := 0; tick < ticks; tick++ {
		// Halfway through, ask the hero to crossfade from walk into run.
		if tick == ticks/2 {
			requestCrossfade(world, heroID, "run", cfg.Animation.DefaultBlendDuration)
			logger.Log.Info("requested crossfade", zap.String("target", "run"), zap.Int("tick", tick))
		}

		fired := system.Update(world, dt)
		for _, f := range fired {
			logger.Log.Info("animation event",
				zap.String("event", f.Event.Name),
				zap.Float64("clip_time", f.Event.Time),
				zap.Int("tick", tick))
		}
	}

	logFinalState(world, system, heroID)
	return nil
}

// bobClip moves the transform up 4 units over 2 seconds and fires an event
// at the halfway mark.
func bobClip() *anim.Clip {
	return &anim.Clip{
		Name:     "bob",
		Duration: 2.0,
		Tracks: []anim.Track{
			{
				Target:        anim.TrackTarget{Kind: anim.TargetPosition},
				Interpolation: anim.InterpolationLinear,
				Keyframes: []anim.Keyframe{
					{Time: 0, Value: [3]float32{0, 0, 0}},
					{Time: 2, Value: [3]float32{0, 4, 0}},
				},
			},
			{
				Target:        anim.TrackTarget{Kind: anim.TargetCustomFloat, Component: "glow", Field: "intensity"},
				Interpolation: anim.InterpolationLinear,
				Keyframes: []anim.Keyframe{
					{Time: 0, Value: [3]float32{0, 0, 0}},
					{Time: 2, Value: [3]float32{1, 0, 0}},
				},
			},
		},
		Events: []anim.Event{
			{Time: 1.0, Name: "halfway"},
		},
	}
}

// walkClip swings the spine joint forward and back over one second.
func walkClip() *skeletal.Clip {
	return &skeletal.Clip{
		Name:     "walk",
		Duration: 1.0,
		Tracks: []skeletal.JointTrack{
			{
				JointIndex:    1,
				Property:      skeletal.PropertyTranslation,
				Interpolation: anim.InterpolationLinear,
				Keyframes: []skeletal.JointKeyframe{
					{Time: 0, Value: []float32{0, 1, 0}},
					{Time: 0.5, Value: []float32{0, 1, 0.3}},
					{Time: 1, Value: []float32{0, 1, 0}},
				},
			},
		},
	}
}

// runClip is the faster, wider version of walk.
func runClip() *skeletal.Clip {
	return &skeletal.Clip{
		Name:     "run",
		Duration: 0.6,
		Tracks: []skeletal.JointTrack{
			{
				JointIndex:    1,
				Property:      skeletal.PropertyTranslation,
				Interpolation: anim.InterpolationLinear,
				Keyframes: []skeletal.JointKeyframe{
					{Time: 0, Value: []float32{0, 1, 0}},
					{Time: 0.3, Value: []float32{0, 1, 0.8}},
					{Time: 0.6, Value: []float32{0, 1, 0}},
				},
			},
		},
	}
}

// breatheClip is an additive layer: a gentle scale pulse on the spine.
func breatheClip() *skeletal.Clip {
	return &skeletal.Clip{
		Name:     "breathe",
		Duration: 3.0,
		Tracks: []skeletal.JointTrack{
			{
				JointIndex:    1,
				Property:      skeletal.PropertyScale,
				Interpolation: anim.InterpolationLinear,
				Keyframes: []skeletal.JointKeyframe{
					{Time: 0, Value: []float32{1, 1, 1}},
					{Time: 1.5, Value: []float32{1.05, 1.05, 1.05}},
					{Time: 3, Value: []float32{1, 1, 1}},
				},
			},
		},
	}
}

// heroSkeleton is a two-joint chain: root with a spine child.
func heroSkeleton() (*skeletal.Skeleton, error) {
	return skeletal.NewSkeleton([]skeletal.Joint{
		{Name: "root", Parent: skeletal.RootJoint, InverseBind: math.Identity()},
		{Name: "spine", Parent: 0, InverseBind: math.Translate(0, -1, 0)},
	})
}

func spawnBobber(world *ecs.World) error {
	id, err := world.Spawn("bobber")
	if err != nil {
		return err
	}
	components := world.Components(id)
	components.Set("transform", ecs.Component{
		"position": ecs.Floats([]float64{0, 0, 0}),
	})
	components.Set("animator", ecs.Component{
		"clip":     ecs.String("bob"),
		"autoplay": ecs.Bool(true),
		"loop":     ecs.Bool(true),
	})
	return nil
}

func spawnHero(world *ecs.World, skeletalSync *animator.SkeletalSync) (ecs.EntityID, error) {
	id, err := world.Spawn("hero")
	if err != nil {
		return ecs.EntityID{}, err
	}

	skel, err := heroSkeleton()
	if err != nil {
		return ecs.EntityID{}, err
	}
	skeletalSync.AddSkeleton(id, skel)

	components := world.Components(id)
	components.Set("skeleton", ecs.Component{
		"rig": ecs.String("hero"),
	})
	components.Set("animator", ecs.Component{
		"clip":            ecs.String("walk"),
		"autoplay":        ecs.Bool(true),
		"loop":            ecs.Bool(true),
		"additive_clip":   ecs.String("breathe"),
		"additive_weight": ecs.Float(0.5),
	})
	return id, nil
}

// requestCrossfade writes a blend request into the entity's animator
// component; the next sync picks it up.
func requestCrossfade(world *ecs.World, id ecs.EntityID, target string, duration float64) {
	components := world.Components(id)
	components.SetField("animator", "blend_target", ecs.String(target))
	components.SetField("animator", "blend_duration", ecs.Float(duration))
}

func logFinalState(world *ecs.World, system *animator.System, heroID ecs.EntityID) {
	if bobberID, ok := world.Lookup("bobber"); ok {
		pos, _ := world.Components(bobberID).GetField("transform", "position").AsFloats()
		glow, _ := world.Components(bobberID).GetField("glow", "intensity").AsFloat()
		logger.Log.Info("bobber final state",
			zap.Float64s("position", pos),
			zap.Float64("glow", glow))
	}

	if state := system.Skeletal.State(heroID); state != nil {
		logger.Log.Info("hero final playback",
			zap.String("clip", state.ClipName),
			zap.Float64("time", state.Time),
			zap.Bool("blending", state.Blending()))
	}

	for i, m := range system.Skeletal.BoneMatrices(heroID) {
		t := m.Translation()
		logger.Sugar.Infof("hero bone %d: offset (%.3f, %.3f, %.3f)", i, t.X, t.Y, t.Z)
	}
}
