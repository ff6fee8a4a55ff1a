package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/nauticalab/coder-workspace/internal/git"
)

// DefaultPluginName is the gerrit.config subsection holding the settings.
const DefaultPluginName = "coder-workspace"

// ParseGitConfig reads the [plugin "<plugin>"] section of a git-config
// formatted document. A document without that section yields an empty
// source.
func ParseGitConfig(r io.Reader, plugin string) (Source, error) {
	cfg := format.New()
	if err := format.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode git config: %w", err)
	}

	s := newSection()
	if !cfg.HasSection("plugin") {
		return s, nil
	}
	plugins := cfg.Section("plugin")
	if !plugins.HasSubsection(plugin) {
		return s, nil
	}
	for _, opt := range plugins.Subsection(plugin).Options {
		s.set(opt.Key, opt.Value)
	}
	return s, nil
}

// LoadGitConfig loads the plugin section from a gerrit.config file.
// If the file doesn't exist, it returns an empty source without error.
func LoadGitConfig(path, plugin string) (Source, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return newSection(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	src, err := ParseGitConfig(bytes.NewReader(data), plugin)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return src, nil
}

// LoadProjectConfig loads the plugin section from project.config on the
// refs/meta/config branch of the repository at repoPath. A repository
// without that branch or file yields an empty source.
func LoadProjectConfig(repoPath, plugin string) (Source, error) {
	data, err := git.ReadMetaConfig(repoPath, git.ProjectConfigFile)
	if errors.Is(err, git.ErrMetaConfigNotFound) {
		return newSection(), nil
	}
	if err != nil {
		return nil, err
	}

	src, err := ParseGitConfig(bytes.NewReader(data), plugin)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s in %s: %w", git.ProjectConfigFile, repoPath, err)
	}
	return src, nil
}
