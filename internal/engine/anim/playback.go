package anim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// PlaybackState tracks one entity's playback of a single clip.
type PlaybackState struct {
	// ClipName names the clip being played.
	ClipName string
	// Time is the current playback position in seconds.
	Time float64
	// Speed is the playback rate multiplier. Negative plays in reverse.
	Speed float64
	// Looping wraps Time back into [0, duration) at the clip bounds.
	Looping bool
	// Playing gates time advancement. A paused state still samples.
	Playing bool

	// Keys of events already fired this loop pass. Cleared on loop wrap so
	// events re-fire every iteration.
	fired map[uint64]struct{}
}

// NewPlaybackState creates a playback state at time zero.
func NewPlaybackState(clipName string, speed float64, looping, playing bool) *PlaybackState {
	return &PlaybackState{
		ClipName: clipName,
		Speed:    speed,
		Looping:  looping,
		Playing:  playing,
		fired:    make(map[uint64]struct{}),
	}
}

// eventKey derives a stable dedup key for an event from its name and the
// exact bit pattern of its time. Approximate float comparison would risk
// double-firing or never-firing; the raw bits make the key exact.
func eventKey(ev *Event) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(ev.Time))

	d := xxhash.New()
	_, _ = d.WriteString(ev.Name)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// resetFired clears the fired-event set for a new loop pass.
func (s *PlaybackState) resetFired() {
	if len(s.fired) > 0 {
		s.fired = make(map[uint64]struct{})
	}
}

// AdvanceResult carries the output of one playback advance.
type AdvanceResult struct {
	// Samples holds one value per track in the clip, in track order.
	Samples [][3]float32
	// Events fired during this advance, at most once per loop pass each.
	Events []Event
}

// Advance moves a playback state forward by dt seconds against its clip and
// returns the sampled track values plus any newly fired events.
//
// Looping wraps time on both bounds (overshoot and reverse-play undershoot)
// and re-arms events on every wrap. Non-looping playback clamps to
// [0, duration] and stops at the bound. A paused state does not advance but
// still samples, so held poses keep rendering.
func Advance(state *PlaybackState, clip *Clip, dt float64) AdvanceResult {
	if !state.Playing {
		return AdvanceResult{Samples: sampleAll(clip, state.Time)}
	}

	state.Time += dt * state.Speed

	if state.Looping {
		if clip.Duration > 0 {
			if state.Time >= clip.Duration {
				state.Time = math.Mod(state.Time, clip.Duration)
				state.resetFired()
			} else if state.Time < 0 {
				state.Time = clip.Duration - math.Mod(-state.Time, clip.Duration)
				state.resetFired()
			}
		}
	} else if state.Time >= clip.Duration {
		state.Time = clip.Duration
		state.Playing = false
	} else if state.Time < 0 {
		state.Time = 0
		state.Playing = false
	}

	result := AdvanceResult{Samples: sampleAll(clip, state.Time)}

	for i := range clip.Events {
		ev := &clip.Events[i]
		if ev.Time > state.Time {
			continue
		}
		key := eventKey(ev)
		if _, done := state.fired[key]; done {
			continue
		}
		state.fired[key] = struct{}{}
		result.Events = append(result.Events, *ev)
	}

	return result
}

func sampleAll(clip *Clip, time float64) [][3]float32 {
	samples := make([][3]float32, len(clip.Tracks))
	for i := range clip.Tracks {
		samples[i] = SampleTrack(&clip.Tracks[i], time)
	}
	return samples
}
