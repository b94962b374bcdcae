package anim

// Registry holds loaded animation clips by name.
//
// Clips are registered once at load time and shared read-only across all
// playback states that reference them. The registry is owned by the
// animation subsystem; there is no global instance.
type Registry struct {
	clips map[string]*Clip
}

// NewRegistry returns an empty clip registry.
func NewRegistry() *Registry {
	return &Registry{clips: make(map[string]*Clip)}
}

// AddClip registers a clip, overwriting any existing clip with the same name.
func (r *Registry) AddClip(clip *Clip) {
	r.clips[clip.Name] = clip
}

// Clip looks up a clip by name. Returns nil if not registered.
func (r *Registry) Clip(name string) *Clip {
	return r.clips[name]
}

// HasClip reports whether a clip is registered under the given name.
func (r *Registry) HasClip(name string) bool {
	_, ok := r.clips[name]
	return ok
}

// ClipCount returns the number of registered clips.
func (r *Registry) ClipCount() int {
	return len(r.clips)
}

// Clear drops all registered clips.
func (r *Registry) Clear() {
	r.clips = make(map[string]*Clip)
}
