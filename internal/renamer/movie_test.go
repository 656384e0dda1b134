package renamer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieDirectory(t *testing.T) {
	root := t.TempDir()
	item := filepath.Join(root, "Movie.Title.2020.1080p.BluRay")
	writeFile(t, filepath.Join(item, "Movie.Title.2020.1080p.mkv"))
	writeFile(t, filepath.Join(item, "info.txt"))

	r := New(nil, Options{})
	outcomes := r.Movie(item, "Movie Title", 2020)

	folder := filepath.Join(root, "Movie Title (2020)")
	assert.DirExists(t, folder)
	assert.FileExists(t, filepath.Join(folder, "Movie Title (2020) [1080p].mkv"))
	// Excluded extension stays behind under its original name
	assert.FileExists(t, filepath.Join(folder, "info.txt"))
	assert.NoDirExists(t, item)

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.True(t, o.Applied)
		assert.NoError(t, o.Err)
	}
}

func TestMovieSingleFile(t *testing.T) {
	root := t.TempDir()
	item := filepath.Join(root, "Movie.Title.2020.1080p.mkv")
	writeFile(t, item)

	r := New(nil, Options{})
	outcomes := r.Movie(item, "Movie Title", 2020)

	assert.FileExists(t, filepath.Join(root, "Movie Title (2020)", "Movie Title (2020) [1080p].mkv"))
	assert.NoFileExists(t, item)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Applied)
}

func TestMovieSingleFileNoResolution(t *testing.T) {
	root := t.TempDir()
	item := filepath.Join(root, "Movie.Title.2020.mkv")
	writeFile(t, item)

	r := New(nil, Options{})
	r.Movie(item, "Movie Title", 2020)

	assert.FileExists(t, filepath.Join(root, "Movie Title (2020)", "Movie Title (2020).mkv"))
}

func TestMovieDirectoryResolutionFromParent(t *testing.T) {
	root := t.TempDir()
	// No marker in the filename, but the pack folder above the item has one
	item := filepath.Join(root, "Pack.2160p", "Movie.Title.2020")
	writeFile(t, filepath.Join(item, "movie.mkv"))

	r := New(nil, Options{})
	r.Movie(item, "Movie Title", 2020)

	assert.FileExists(t, filepath.Join(root, "Pack.2160p", "Movie Title (2020)", "Movie Title (2020) [2160p].mkv"))
}

func TestMovieSanitizesName(t *testing.T) {
	root := t.TempDir()
	item := filepath.Join(root, "movie.mkv")
	writeFile(t, item)

	r := New(nil, Options{})
	r.Movie(item, "Movie: Which One?", 2020)

	assert.FileExists(t, filepath.Join(root, "Movie - Which One (2020)", "Movie - Which One (2020).mkv"))
}

func TestMovieValidatePlansWithoutTouching(t *testing.T) {
	root := t.TempDir()
	item := filepath.Join(root, "Movie.Title.2020.1080p.BluRay")
	writeFile(t, filepath.Join(item, "Movie.Title.2020.1080p.mkv"))
	before := listTree(t, root)

	r := New(nil, Options{Validate: true})
	outcomes := r.Movie(item, "Movie Title", 2020)

	assert.Equal(t, before, listTree(t, root))
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.False(t, o.Applied)
		assert.NoError(t, o.Err)
	}
	assert.Equal(t, "Movie Title (2020)", filepath.Base(outcomes[0].To))
	assert.Equal(t, "Movie Title (2020) [1080p].mkv", filepath.Base(outcomes[1].To))
}

func TestMovieValidatePlansSameNamesAsRealRun(t *testing.T) {
	build := func() (string, string) {
		root := t.TempDir()
		item := filepath.Join(root, "Movie.Title.2020.1080p")
		writeFile(t, filepath.Join(item, "Movie.Title.2020.1080p.mkv"))
		return root, item
	}

	_, dryItem := build()
	dry := New(nil, Options{Validate: true}).Movie(dryItem, "Movie Title", 2020)

	_, realItem := build()
	applied := New(nil, Options{}).Movie(realItem, "Movie Title", 2020)

	require.Equal(t, len(dry), len(applied))
	for i := range dry {
		assert.Equal(t, filepath.Base(applied[i].To), filepath.Base(dry[i].To))
	}
}

func TestMovieExistingDestinationFolderSkipsRename(t *testing.T) {
	root := t.TempDir()
	item := filepath.Join(root, "Movie.Title.2020")
	writeFile(t, filepath.Join(item, "movie.mkv"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Movie Title (2020)"), 0755))

	r := New(nil, Options{})
	outcomes := r.Movie(item, "Movie Title", 2020)

	// No folder rename outcome is produced for the pre-existing target
	for _, o := range outcomes {
		assert.NotEqual(t, item, o.From)
	}
	assert.DirExists(t, item)
}

func TestMovieAlreadyCanonicalIsStable(t *testing.T) {
	root := t.TempDir()
	item := filepath.Join(root, "Movie Title (2020)")
	writeFile(t, filepath.Join(item, "Movie Title (2020) [1080p].mkv"))

	r := New(nil, Options{})
	r.Movie(item, "Movie Title", 2020)

	assert.FileExists(t, filepath.Join(item, "Movie Title (2020) [1080p].mkv"))
	entries, err := os.ReadDir(item)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
