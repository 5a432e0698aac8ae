package library

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-gallery/api/apitype"
)

func createFiles(t *testing.T, dir string, names ...string) {
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("not really an image"), 0644))
	}
}

func fileNames(imageFiles []*apitype.ImageFile) []string {
	var names []string
	for _, imageFile := range imageFiles {
		names = append(names, imageFile.FileName())
	}
	return names
}

func newDefaultLibrary(t *testing.T) *Library {
	sut, err := NewLibrary(nil)
	require.NoError(t, err)
	return sut
}

func TestListImages_FiltersAndKeepsOrder(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	createFiles(t, dir, "a.jpg", "b.jpg", "notes.txt")
	sut := newDefaultLibrary(t)

	images, err := sut.ListImages(dir)

	a.Nil(err)
	a.Equal([]string{"a.jpg", "b.jpg"}, fileNames(images))
	a.Equal(filepath.Join(dir, "a.jpg"), images[0].Path())
	a.Equal(dir, images[0].Directory())
}

func TestListImages_CaseInsensitiveExtension(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	createFiles(t, dir, "b.jpg", "A.JPG", "c.Jpg", "d.jpeg", "e.png", "jpg")
	sut := newDefaultLibrary(t)

	images, err := sut.ListImages(dir)

	a.Nil(err)
	a.Equal([]string{"A.JPG", "b.jpg", "c.Jpg"}, fileNames(images))
	for _, imageFile := range images {
		a.True(strings.HasSuffix(strings.ToLower(imageFile.FileName()), ".jpg"))
		info, err := os.Stat(imageFile.Path())
		a.Nil(err)
		a.True(info.Mode().IsRegular())
	}
}

func TestListImages_SkipsDirectories(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	createFiles(t, dir, "real.jpg")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.jpg"), 0755))
	sut := newDefaultLibrary(t)

	images, err := sut.ListImages(dir)

	a.Nil(err)
	a.Equal([]string{"real.jpg"}, fileNames(images))
}

func TestListImages_FollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	a := assert.New(t)
	dir := t.TempDir()
	createFiles(t, dir, "target.jpg")
	require.NoError(t, os.Symlink(filepath.Join(dir, "target.jpg"), filepath.Join(dir, "link.jpg")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.jpg"), filepath.Join(dir, "broken.jpg")))
	sut := newDefaultLibrary(t)

	images, err := sut.ListImages(dir)

	a.Nil(err)
	a.Equal([]string{"link.jpg", "target.jpg"}, fileNames(images))
}

func TestListImages_EmptyResults(t *testing.T) {
	sut := newDefaultLibrary(t)

	t.Run("Empty directory", func(t *testing.T) {
		a := assert.New(t)

		images, err := sut.ListImages(t.TempDir())

		a.Nil(err)
		a.Empty(images)
	})
	t.Run("Only other files", func(t *testing.T) {
		a := assert.New(t)
		dir := t.TempDir()
		createFiles(t, dir, "notes.txt", "photo.png", "archive.jpg.zip")

		images, err := sut.ListImages(dir)

		a.Nil(err)
		a.Empty(images)
	})
	t.Run("Missing directory", func(t *testing.T) {
		a := assert.New(t)

		images, err := sut.ListImages(filepath.Join(t.TempDir(), "does-not-exist"))

		a.Nil(err)
		a.NotNil(images)
		a.Empty(images)
	})
	t.Run("Path is a file", func(t *testing.T) {
		a := assert.New(t)
		dir := t.TempDir()
		createFiles(t, dir, "a.jpg")

		images, err := sut.ListImages(filepath.Join(dir, "a.jpg"))

		a.Nil(err)
		a.Empty(images)
	})
}

func TestNewLibrary_Patterns(t *testing.T) {
	t.Run("Multiple patterns", func(t *testing.T) {
		a := assert.New(t)
		dir := t.TempDir()
		createFiles(t, dir, "a.jpg", "b.JPEG", "c.png")
		sut, err := NewLibrary([]string{"*.jpg", "*.JPEG"})
		require.NoError(t, err)

		images, err := sut.ListImages(dir)

		a.Nil(err)
		a.Equal([]string{"a.jpg", "b.JPEG"}, fileNames(images))
	})
	t.Run("Invalid pattern", func(t *testing.T) {
		a := assert.New(t)

		sut, err := NewLibrary([]string{"[*.jpg"})

		a.NotNil(err)
		a.Nil(sut)
	})
	t.Run("Defaults", func(t *testing.T) {
		a := assert.New(t)

		sut := newDefaultLibrary(t)

		a.True(sut.IsSupported("photo.JPG"))
		a.False(sut.IsSupported("photo.jpeg"))
	})
}
