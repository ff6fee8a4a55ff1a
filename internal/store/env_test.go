package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKeyToConfigKey(t *testing.T) {
	tests := map[string]string{
		"SERVER_URL":             "serverUrl",
		"USER":                   "user",
		"TEMPLATE_MAPPINGS_JSON": "templateMappingsJson",
		"TTL_MS":                 "ttlMs",
		"API_KEY__":              "apiKey",
		"":                       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKeyToConfigKey(in), in)
	}
}

func TestWithEnv(t *testing.T) {
	t.Setenv("CODERWS_TEST_SERVER_URL", "https://env.example.com")
	t.Setenv("CODERWS_TEST_AUTOSTART", "false")

	base := Map{"serverUrl": "https://file.example.com", "user": "ci"}
	src, err := WithEnv(base, "CODERWS_TEST_")
	require.NoError(t, err)

	v := NewValues(src)
	assert.Equal(t, "https://env.example.com", v.GetStringDefault("serverUrl", ""))
	assert.Equal(t, "ci", v.GetStringDefault("user", ""))
	assert.False(t, v.GetBool("autostart", true))
	assert.Contains(t, src.Keys(), "autostart")
}

func TestLoadEnv_NoMatches(t *testing.T) {
	src, err := LoadEnv("CODERWS_UNSET_PREFIX_")
	require.NoError(t, err)
	assert.Empty(t, src.Keys())
}
