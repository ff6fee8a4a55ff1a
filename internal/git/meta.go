// Package git reads Gerrit project configuration stored on the
// refs/meta/config branch of a repository.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// MetaConfigRef is the branch Gerrit keeps per-project settings on.
const MetaConfigRef = plumbing.ReferenceName("refs/meta/config")

// ProjectConfigFile is the file on MetaConfigRef holding plugin sections.
const ProjectConfigFile = "project.config"

// ErrMetaConfigNotFound is returned when the repository has no
// refs/meta/config branch or the branch lacks the requested file.
var ErrMetaConfigNotFound = errors.New("meta config not found")

// ReadMetaConfig returns the contents of file at the tip of refs/meta/config.
// Both bare and non-bare repositories are supported.
func ReadMetaConfig(repoPath, file string) ([]byte, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", repoPath, err)
	}

	ref, err := repo.Reference(MetaConfigRef, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, fmt.Errorf("%w: %q has no %s", ErrMetaConfigNotFound, repoPath, MetaConfigRef)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s in %q: %w", MetaConfigRef, repoPath, err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", ref.Hash(), err)
	}

	f, err := commit.File(file)
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, fmt.Errorf("%w: %s not found on %s", ErrMetaConfigNotFound, file, MetaConfigRef)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	contents, err := f.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return []byte(contents), nil
}
