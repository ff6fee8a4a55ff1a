// Package cli implements the coderws subcommands on top of the store,
// config and client packages.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nauticalab/coder-workspace/internal/k8s"
	"github.com/nauticalab/coder-workspace/internal/logger"
	"github.com/nauticalab/coder-workspace/internal/store"
)

// SourceOptions selects where raw plugin keys are read from. Sources are
// layered in field order; later ones override earlier ones.
type SourceOptions struct {
	// ConfigPath is a gerrit.config file.
	ConfigPath string
	// Plugin is the [plugin "<name>"] section to read.
	Plugin string
	// ProjectRepo is a git repository whose refs/meta/config holds project.config.
	ProjectRepo string
	// ConfigMap is "namespace/name" or "name".
	ConfigMap string
	// YAMLPath is a flat YAML key-value file.
	YAMLPath string
	// EnvPrefix enables environment overrides when non-empty.
	EnvPrefix string

	// ConfigMapClient overrides the Kubernetes client; nil builds one from kubeconfig.
	ConfigMapClient store.ConfigMapGetter
}

// BuildSource loads and layers every configured source.
func BuildSource(ctx context.Context, opts SourceOptions) (store.Source, error) {
	plugin := opts.Plugin
	if plugin == "" {
		plugin = store.DefaultPluginName
	}

	var layers []store.Source

	if opts.ConfigPath != "" {
		src, err := store.LoadGitConfig(opts.ConfigPath, plugin)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded gerrit config", "path", opts.ConfigPath, "keys", len(src.Keys()))
		layers = append(layers, src)
	}

	if opts.ProjectRepo != "" {
		src, err := store.LoadProjectConfig(opts.ProjectRepo, plugin)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded project config", "repo", opts.ProjectRepo, "keys", len(src.Keys()))
		layers = append(layers, src)
	}

	if opts.ConfigMap != "" {
		namespace, name := splitConfigMapRef(opts.ConfigMap)
		getter := opts.ConfigMapClient
		if getter == nil {
			client, err := k8s.NewClient()
			if err != nil {
				return nil, fmt.Errorf("failed to create k8s client: %w", err)
			}
			getter = client
		}
		src, err := store.LoadConfigMap(ctx, getter, namespace, name, plugin)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded configmap", "namespace", namespace, "name", name, "keys", len(src.Keys()))
		layers = append(layers, src)
	}

	if opts.YAMLPath != "" {
		src, err := store.LoadYAML(opts.YAMLPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded YAML config", "path", opts.YAMLPath, "keys", len(src.Keys()))
		layers = append(layers, src)
	}

	src := store.Layer(layers...)
	if opts.EnvPrefix != "" {
		withEnv, err := store.WithEnv(src, opts.EnvPrefix)
		if err != nil {
			return nil, err
		}
		src = withEnv
	}
	return src, nil
}

// WatchPaths lists the local files BuildSource reads.
func (o SourceOptions) WatchPaths() []string {
	var paths []string
	if o.ConfigPath != "" {
		paths = append(paths, o.ConfigPath)
	}
	if o.YAMLPath != "" {
		paths = append(paths, o.YAMLPath)
	}
	return paths
}

// splitConfigMapRef splits "namespace/name". A bare name uses the default
// namespace.
func splitConfigMapRef(ref string) (string, string) {
	if ns, name, ok := strings.Cut(ref, "/"); ok {
		return ns, name
	}
	return "", ref
}
