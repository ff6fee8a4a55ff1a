// Package store provides the raw key-value sources the plugin configuration
// is read from (gerrit.config, project.config, YAML files, Kubernetes
// ConfigMaps, environment variables) and the typed view the resolver reads
// through.
package store

import (
	"slices"
	"strings"
)

// Source is a read-only raw key lookup.
type Source interface {
	// Lookup returns the raw value for key and whether it is set.
	Lookup(key string) (string, bool)
	// Keys lists the keys that are set.
	Keys() []string
}

// Map is an in-memory Source. Keys are case-sensitive.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys implements Source. The result is sorted.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// section is a Source with git-config key semantics: names are matched
// case-insensitively and the last assignment wins.
type section struct {
	values map[string]string
	keys   []string
}

func newSection() *section {
	return &section{values: make(map[string]string)}
}

func (s *section) set(key, value string) {
	lower := strings.ToLower(key)
	if _, exists := s.values[lower]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[lower] = value
}

// Lookup implements Source.
func (s *section) Lookup(key string) (string, bool) {
	v, ok := s.values[strings.ToLower(key)]
	return v, ok
}

// Keys implements Source. Keys are returned in first-seen order.
func (s *section) Keys() []string {
	return slices.Clone(s.keys)
}

type layered []Source

// Layer stacks sources; a key set in a later source overrides earlier ones.
// Nil sources are skipped.
func Layer(sources ...Source) Source {
	var l layered
	for _, s := range sources {
		if s != nil {
			l = append(l, s)
		}
	}
	return l
}

// Lookup implements Source.
func (l layered) Lookup(key string) (string, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if v, ok := l[i].Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Keys implements Source. Keys differing only in case are reported once,
// in the order first seen from the bottom layer up, spelled as the topmost
// layer that sets them.
func (l layered) Keys() []string {
	index := make(map[string]int)
	var keys []string
	for _, s := range l {
		for _, k := range s.Keys() {
			lower := strings.ToLower(k)
			if i, ok := index[lower]; ok {
				keys[i] = k
				continue
			}
			index[lower] = len(keys)
			keys = append(keys, k)
		}
	}
	return keys
}
