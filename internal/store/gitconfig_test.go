package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/nauticalab/coder-workspace/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gerritConfig = `[gerrit]
	basePath = git
	canonicalWebUrl = https://review.example.com/
[plugin "coder-workspace"]
	serverUrl = https://coder.example.com
	user = ci
	autostart
	ttlMs = 4k
	richParams = REPO:repo,BRANCH:branch
	templateMappingsJson = "[{\"repo\":\"team/*\",\"templateId\":\"t1\"}]"
[plugin "other"]
	serverUrl = https://other.example.com
`

func TestParseGitConfig(t *testing.T) {
	src, err := ParseGitConfig(strings.NewReader(gerritConfig), DefaultPluginName)
	require.NoError(t, err)

	v := NewValues(src)
	s, ok := v.GetString("serverUrl")
	assert.True(t, ok)
	assert.Equal(t, "https://coder.example.com", s)
	assert.Equal(t, "ci", v.GetStringDefault("user", "me"))
	assert.True(t, v.GetBool("autostart", false), "valueless key reads as true")
	assert.Equal(t, int64(4096), v.GetLong("ttlMs", 0))
	assert.Equal(t, "REPO:repo,BRANCH:branch", v.GetStringDefault("richParams", ""))
	assert.Equal(t, `[{"repo":"team/*","templateId":"t1"}]`, v.GetStringDefault("templateMappingsJson", ""))
	assert.Len(t, src.Keys(), 6)

	_, ok = v.GetString("basePath")
	assert.False(t, ok, "keys from other sections must not leak")
}

func TestParseGitConfig_NoSection(t *testing.T) {
	src, err := ParseGitConfig(strings.NewReader("[gerrit]\n\tbasePath = git\n"), DefaultPluginName)
	require.NoError(t, err)
	assert.Empty(t, src.Keys())

	src, err = ParseGitConfig(strings.NewReader("[plugin \"other\"]\n\tuser = x\n"), DefaultPluginName)
	require.NoError(t, err)
	assert.Empty(t, src.Keys())
}

func TestParseGitConfig_Malformed(t *testing.T) {
	_, err := ParseGitConfig(strings.NewReader("[plugin \"coder-workspace\"\n\tuser = x\n"), DefaultPluginName)
	assert.Error(t, err)
}

func TestLoadGitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gerrit.config")
	require.NoError(t, os.WriteFile(path, []byte(gerritConfig), 0o644))

	src, err := LoadGitConfig(path, DefaultPluginName)
	require.NoError(t, err)
	v, ok := src.Lookup("user")
	assert.True(t, ok)
	assert.Equal(t, "ci", v)
}

func TestLoadGitConfig_MissingFile(t *testing.T) {
	src, err := LoadGitConfig(filepath.Join(t.TempDir(), "gerrit.config"), DefaultPluginName)
	require.NoError(t, err)
	assert.Empty(t, src.Keys())
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, true)
	require.NoError(t, err)
	commitMetaConfig(t, repo, "[plugin \"coder-workspace\"]\n\tappSlug = vscode\n")

	src, err := LoadProjectConfig(dir, DefaultPluginName)
	require.NoError(t, err)
	v, ok := src.Lookup("appSlug")
	assert.True(t, ok)
	assert.Equal(t, "vscode", v)
}

func TestLoadProjectConfig_NoMetaConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, true)
	require.NoError(t, err)

	src, err := LoadProjectConfig(dir, DefaultPluginName)
	require.NoError(t, err)
	assert.Empty(t, src.Keys())
}

func TestLoadProjectConfig_NotARepository(t *testing.T) {
	_, err := LoadProjectConfig(t.TempDir(), DefaultPluginName)
	assert.Error(t, err)
}

// commitMetaConfig points refs/meta/config at a commit holding project.config.
func commitMetaConfig(t *testing.T, repo *gogit.Repository, contents string) {
	t.Helper()

	blob := repo.Storer.NewEncodedObject()
	blob.SetType(plumbing.BlobObject)
	w, err := blob.Writer()
	require.NoError(t, err)
	_, err = w.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	blobHash, err := repo.Storer.SetEncodedObject(blob)
	require.NoError(t, err)

	tree := &object.Tree{Entries: []object.TreeEntry{
		{Name: git.ProjectConfigFile, Mode: filemode.Regular, Hash: blobHash},
	}}
	treeObj := repo.Storer.NewEncodedObject()
	require.NoError(t, tree.Encode(treeObj))
	treeHash, err := repo.Storer.SetEncodedObject(treeObj)
	require.NoError(t, err)

	sig := object.Signature{Name: "Administrator", Email: "admin@example.com", When: time.Unix(1700000000, 0)}
	commit := &object.Commit{Author: sig, Committer: sig, Message: "Configure coder-workspace\n", TreeHash: treeHash}
	commitObj := repo.Storer.NewEncodedObject()
	require.NoError(t, commit.Encode(commitObj))
	commitHash, err := repo.Storer.SetEncodedObject(commitObj)
	require.NoError(t, err)

	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(git.MetaConfigRef, commitHash)))
}
