package animator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rigkit/internal/engine/anim"
	"github.com/Faultbox/rigkit/internal/engine/ecs"
)

func bobClip() *anim.Clip {
	return &anim.Clip{
		Name:     "bob",
		Duration: 2.0,
		Tracks: []anim.Track{{
			Target:        anim.TrackTarget{Kind: anim.TargetPosition},
			Interpolation: anim.InterpolationLinear,
			Keyframes: []anim.Keyframe{
				{Time: 0.0, Value: [3]float32{0, 0, 0}},
				{Time: 2.0, Value: [3]float32{0, 4, 0}},
			},
		}},
		Events: []anim.Event{{Time: 1.0, Name: "halfway"}},
	}
}

func spawnAnimated(t *testing.T, world *ecs.World, name, clip string, fields map[string]ecs.Value) ecs.EntityID {
	t.Helper()
	id, err := world.Spawn(name)
	require.NoError(t, err)

	c := world.Components(id)
	c.SetField("animator", "clip", ecs.String(clip))
	for field, v := range fields {
		c.SetField("animator", field, v)
	}
	return id
}

func TestPropertySync_DiscoversEntitiesWithDefaults(t *testing.T) {
	world := ecs.NewWorld()
	registry := anim.NewRegistry()
	registry.AddClip(bobClip())
	ps := NewPropertySync(nil)

	id := spawnAnimated(t, world, "hero", "bob", nil)
	ps.SyncFromWorld(world, registry)

	require.Equal(t, 1, ps.ActiveCount())
	state := ps.State(id)
	require.NotNil(t, state)
	require.Equal(t, DefaultSpeed, state.Speed)
	require.True(t, state.Looping)
	require.False(t, state.Playing)
}

func TestPropertySync_AutoplayStartsPlayback(t *testing.T) {
	world := ecs.NewWorld()
	registry := anim.NewRegistry()
	registry.AddClip(bobClip())
	ps := NewPropertySync(nil)

	id := spawnAnimated(t, world, "hero", "bob", map[string]ecs.Value{
		"autoplay": ecs.Bool(true),
		"loop":     ecs.Bool(false),
		"speed":    ecs.Float(2.0),
	})
	ps.SyncFromWorld(world, registry)

	state := ps.State(id)
	require.True(t, state.Playing)
	require.False(t, state.Looping)
	require.Equal(t, 2.0, state.Speed)
}

func TestPropertySync_IgnoresUnknownClipAndPlainEntities(t *testing.T) {
	world := ecs.NewWorld()
	registry := anim.NewRegistry()
	ps := NewPropertySync(nil)

	spawnAnimated(t, world, "ghost", "unregistered", nil)
	_, err := world.Spawn("crate")
	require.NoError(t, err)

	ps.SyncFromWorld(world, registry)
	require.Zero(t, ps.ActiveCount())
}

func TestPropertySync_WritesTransformAndFiresEvents(t *testing.T) {
	world := ecs.NewWorld()
	registry := anim.NewRegistry()
	registry.AddClip(bobClip())
	ps := NewPropertySync(nil)

	id := spawnAnimated(t, world, "hero", "bob", map[string]ecs.Value{
		"autoplay": ecs.Bool(true),
	})
	ps.SyncFromWorld(world, registry)

	fired := ps.AdvanceAndWrite(world, registry, 1.0)

	pos, ok := world.Components(id).GetField("transform", "position").AsFloats()
	require.True(t, ok)
	require.InDelta(t, 0.0, pos[0], 1e-4)
	require.InDelta(t, 2.0, pos[1], 1e-4)

	require.Len(t, fired, 1)
	require.Equal(t, id, fired[0].Entity)
	require.Equal(t, "halfway", fired[0].Event.Name)

	// No refire without another crossing
	fired = ps.AdvanceAndWrite(world, registry, 0.1)
	require.Empty(t, fired)
}

func TestPropertySync_CustomFloatTarget(t *testing.T) {
	world := ecs.NewWorld()
	registry := anim.NewRegistry()
	registry.AddClip(&anim.Clip{
		Name:     "dim",
		Duration: 1.0,
		Tracks: []anim.Track{{
			Target: anim.TrackTarget{
				Kind:      anim.TargetCustomFloat,
				Component: "light",
				Field:     "intensity",
			},
			Interpolation: anim.InterpolationLinear,
			Keyframes: []anim.Keyframe{
				{Time: 0.0, Value: [3]float32{1, 0, 0}},
				{Time: 1.0, Value: [3]float32{0, 0, 0}},
			},
		}},
	})
	ps := NewPropertySync(nil)

	id := spawnAnimated(t, world, "lamp", "dim", map[string]ecs.Value{
		"autoplay": ecs.Bool(true),
		"loop":     ecs.Bool(false),
	})
	ps.SyncFromWorld(world, registry)
	ps.AdvanceAndWrite(world, registry, 0.5)

	intensity, ok := world.Components(id).GetField("light", "intensity").AsFloat()
	require.True(t, ok)
	require.InDelta(t, 0.5, intensity, 1e-4)
}

func TestPropertySync_MissingClipSkipsSilently(t *testing.T) {
	world := ecs.NewWorld()
	registry := anim.NewRegistry()
	registry.AddClip(bobClip())
	ps := NewPropertySync(nil)

	spawnAnimated(t, world, "hero", "bob", map[string]ecs.Value{"autoplay": ecs.Bool(true)})
	ps.SyncFromWorld(world, registry)

	// Clip disappears after discovery (scene clear)
	registry.Clear()
	fired := ps.AdvanceAndWrite(world, registry, 1.0)
	require.Empty(t, fired)
}

func TestPropertySync_Clear(t *testing.T) {
	world := ecs.NewWorld()
	registry := anim.NewRegistry()
	registry.AddClip(bobClip())
	ps := NewPropertySync(nil)

	spawnAnimated(t, world, "hero", "bob", nil)
	ps.SyncFromWorld(world, registry)
	require.Equal(t, 1, ps.ActiveCount())

	ps.Clear()
	require.Zero(t, ps.ActiveCount())
}
