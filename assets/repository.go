package assets

import (
	"sort"

	"github.com/automoto/streetbrawl/config"
)

// AnimationSet holds the clips of one character kind. A nil set is valid and
// resolves every key to the default pose.
type AnimationSet struct {
	Name  string
	clips map[string]config.AnimationDef
}

// Lookup returns the clip for key. ok is false when the character has no
// such clip and should fall back to its default pose.
func (s *AnimationSet) Lookup(key string) (config.AnimationDef, bool) {
	if s == nil {
		return config.AnimationDef{}, false
	}
	d, ok := s.clips[key]
	return d, ok
}

// Frames returns the clip length of key, or 0 without data.
func (s *AnimationSet) Frames(key string) int {
	d, ok := s.Lookup(key)
	if !ok {
		return 0
	}
	return d.Frames()
}

// Keys lists the clip keys in sorted order.
func (s *AnimationSet) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.clips))
	for k := range s.clips {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Repository owns animation data for every character kind. Characters get a
// borrowed *AnimationSet at construction and never load anything themselves.
type Repository struct {
	sets map[string]*AnimationSet
}

// NewRepository builds a repository from clip tables keyed by character.
func NewRepository(defs map[string]map[string]config.AnimationDef) *Repository {
	r := &Repository{sets: make(map[string]*AnimationSet, len(defs))}
	for name, clips := range defs {
		copied := make(map[string]config.AnimationDef, len(clips))
		for k, d := range clips {
			copied[k] = d
		}
		r.sets[name] = &AnimationSet{Name: name, clips: copied}
	}
	return r
}

// DefaultRepository uses the built-in clip tables.
func DefaultRepository() *Repository {
	return NewRepository(config.CharacterAnimations)
}

// Set returns the clips of a character kind, or nil for the default pose.
func (r *Repository) Set(name string) *AnimationSet {
	if r == nil {
		return nil
	}
	return r.sets[name]
}
