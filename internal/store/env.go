package store

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the prefix of environment variables that override
// plugin keys.
const DefaultEnvPrefix = "CODER_WORKSPACE_"

// envSource is a Source backed by a koanf instance.
type envSource struct {
	k *koanf.Koanf
}

// LoadEnv reads environment variables starting with prefix. The rest of the
// name is converted to a camelCase key, so CODER_WORKSPACE_SERVER_URL
// becomes serverUrl.
func LoadEnv(prefix string) (Source, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key string, value string) (string, any) {
			return envKeyToConfigKey(strings.TrimPrefix(key, prefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return envSource{k: k}, nil
}

// WithEnv layers environment overrides on top of base.
func WithEnv(base Source, prefix string) (Source, error) {
	overrides, err := LoadEnv(prefix)
	if err != nil {
		return nil, err
	}
	return Layer(base, overrides), nil
}

// Lookup implements Source.
func (e envSource) Lookup(key string) (string, bool) {
	if !e.k.Exists(key) {
		return "", false
	}
	return e.k.String(key), true
}

// Keys implements Source.
func (e envSource) Keys() []string {
	return e.k.Keys()
}

// envKeyToConfigKey turns SNAKE_CASE into camelCase. It returns "" for an
// empty name, which makes koanf skip the variable.
func envKeyToConfigKey(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.ToLower(name), "_") {
		if part == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
