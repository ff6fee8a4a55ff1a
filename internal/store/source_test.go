package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	m := Map{"user": "me", "appSlug": "code-server"}

	v, ok := m.Lookup("user")
	assert.True(t, ok)
	assert.Equal(t, "me", v)

	_, ok = m.Lookup("User")
	assert.False(t, ok, "Map keys are case-sensitive")

	assert.Equal(t, []string{"appSlug", "user"}, m.Keys())
}

func TestSection_CaseInsensitive(t *testing.T) {
	s := newSection()
	s.set("serverUrl", "https://a.example.com")
	s.set("SERVERURL", "https://b.example.com")

	v, ok := s.Lookup("serverurl")
	assert.True(t, ok)
	assert.Equal(t, "https://b.example.com", v, "last assignment wins")
	assert.Equal(t, []string{"serverUrl"}, s.Keys())
}

func TestLayer(t *testing.T) {
	base := Map{"user": "me", "autostart": "true"}
	override := Map{"user": "ci", "appSlug": "vscode"}

	l := Layer(base, nil, override)

	v, ok := l.Lookup("user")
	assert.True(t, ok)
	assert.Equal(t, "ci", v)

	v, ok = l.Lookup("autostart")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = l.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"autostart", "user", "appSlug"}, l.Keys())
}

func TestLayer_KeysFoldCase(t *testing.T) {
	base := newSection()
	base.set("ServerUrl", "https://a.example.com")
	override := Map{"serverUrl": "https://b.example.com"}

	l := Layer(base, override)

	keys := l.Keys()
	assert.Equal(t, []string{"serverUrl"}, keys)
	v, ok := l.Lookup(keys[0])
	assert.True(t, ok)
	assert.Equal(t, "https://b.example.com", v)
}

func TestLayer_Empty(t *testing.T) {
	l := Layer()
	_, ok := l.Lookup("user")
	assert.False(t, ok)
	assert.Empty(t, l.Keys())
}
