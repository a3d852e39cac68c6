package generator

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscdk/fs"
	"tscdk/template"
)

func TestNewProjectWritesFiles(t *testing.T) {
	mem := afero.NewMemMapFs()

	res, err := NewProject(mem, "my-app", scenarioConfig(), template.Embedded(), Options{})
	require.NoError(t, err)
	assert.Equal(t, paths(res.Files), res.Written)

	for _, f := range res.Files {
		got, err := afero.ReadFile(mem, filepath.Join("my-app", filepath.FromSlash(f.Path)))
		require.NoError(t, err, f.Path)
		assert.Equal(t, f.Content, string(got), f.Path)
	}

	ok, err := afero.DirExists(mem, filepath.Join("my-app", "lib"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewProjectDryRun(t *testing.T) {
	mem := afero.NewMemMapFs()

	res, err := NewProject(mem, "my-app", scenarioConfig(), template.Embedded(), Options{DryRun: true})
	require.NoError(t, err)
	assert.Len(t, res.Files, 12)
	assert.Empty(t, res.Written)

	exists, err := afero.Exists(mem, "my-app")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewProjectNonEmptyTarget(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "my-app/notes.txt", []byte("keep"), 0o644))

	_, err := NewProject(mem, "my-app", scenarioConfig(), template.Embedded(), Options{})
	assert.ErrorIs(t, err, fs.ErrTargetNotEmpty)

	res, err := NewProject(mem, "my-app", scenarioConfig(), template.Embedded(), Options{Force: true})
	require.NoError(t, err)
	assert.Len(t, res.Written, 12)

	notes, err := afero.ReadFile(mem, "my-app/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(notes))
}

func TestNewProjectNothingWrittenOnResolveError(t *testing.T) {
	_, catalog := memCatalog(t, "package.json")
	out := afero.NewMemMapFs()

	res, err := NewProject(out, "my-app", scenarioConfig(), catalog, Options{})
	assert.ErrorIs(t, err, template.ErrTemplateMissing)
	assert.Nil(t, res)

	exists, err := afero.Exists(out, "my-app")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewProjectSinkError(t *testing.T) {
	ro := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := NewProject(ro, "my-app", scenarioConfig(), template.Embedded(), Options{})
	assert.ErrorIs(t, err, fs.ErrSinkWrite)
}
