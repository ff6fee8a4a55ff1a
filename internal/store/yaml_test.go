package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	doc := `
serverUrl: https://coder.example.com
autostart: false
ttlMs: 0x10
historyLimit: 25
organization: ~
alternateNameTemplates:
  - "{repo}-{change}"
  - "{repo}-{change}-{patchset}"
templateMappingsJson:
  - repo: team/*
    templateId: t1
    richParams:
      - name: REPO
        from: repo
`
	src, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	v := NewValues(src)
	assert.Equal(t, "https://coder.example.com", v.GetStringDefault("serverUrl", ""))
	assert.False(t, v.GetBool("autostart", true))
	assert.Equal(t, 25, v.GetInt("historyLimit", 10))
	assert.Equal(t, "0x10", v.GetStringDefault("ttlMs", ""), "scalars keep their literal text")

	_, ok := v.GetString("organization")
	assert.False(t, ok, "null is unset")

	assert.JSONEq(t, `["{repo}-{change}","{repo}-{change}-{patchset}"]`, v.GetStringDefault("alternateNameTemplates", ""))
	assert.JSONEq(t,
		`[{"repo":"team/*","templateId":"t1","richParams":[{"name":"REPO","from":"repo"}]}]`,
		v.GetStringDefault("templateMappingsJson", ""))
}

func TestParseYAML_Empty(t *testing.T) {
	src, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, src.Keys())

	src, err = ParseYAML([]byte("# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, src.Keys())
}

func TestParseYAML_NotAMapping(t *testing.T) {
	_, err := ParseYAML([]byte("- a\n- b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")

	_, err = ParseYAML([]byte("key: [unclosed\n"))
	assert.Error(t, err)
}

func TestParseYAML_Alias(t *testing.T) {
	doc := `
base: &slug code-server
appSlug: *slug
`
	src, err := ParseYAML([]byte(doc))
	require.NoError(t, err)
	v, ok := src.Lookup("appSlug")
	assert.True(t, ok)
	assert.Equal(t, "code-server", v)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coder-workspace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: ci\n"), 0o644))

	src, err := LoadYAML(path)
	require.NoError(t, err)
	v, ok := src.Lookup("user")
	assert.True(t, ok)
	assert.Equal(t, "ci", v)

	_, err = LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
