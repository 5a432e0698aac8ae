package apitype

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 255, A: 255}

func markedImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(0, 0, red)
	return img
}

func TestExifRotateImage(t *testing.T) {
	tests := []struct {
		name        string
		orientation uint8
		size        image.Point
		marker      image.Point
	}{
		{name: "Unchanged", orientation: 1, size: image.Pt(4, 2), marker: image.Pt(0, 0)},
		{name: "Mirrored", orientation: 2, size: image.Pt(4, 2), marker: image.Pt(3, 0)},
		{name: "Upside down", orientation: 3, size: image.Pt(4, 2), marker: image.Pt(3, 1)},
		{name: "Flipped", orientation: 4, size: image.Pt(4, 2), marker: image.Pt(0, 1)},
		{name: "Rotated right", orientation: 6, size: image.Pt(2, 4), marker: image.Pt(1, 0)},
		{name: "Rotated left", orientation: 8, size: image.Pt(2, 4), marker: image.Pt(0, 3)},
		{name: "Unknown", orientation: 42, size: image.Pt(4, 2), marker: image.Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)

			rotated := ExifRotateImage(markedImage(), tt.orientation)

			a.Equal(tt.size, rotated.Bounds().Size())
			r, _, _, _ := rotated.At(tt.marker.X, tt.marker.Y).RGBA()
			a.Equal(uint32(0xffff), r)
		})
	}
}

func TestLoadExifData(t *testing.T) {
	t.Run("No EXIF", func(t *testing.T) {
		a := assert.New(t)
		dir := t.TempDir()
		file, err := os.Create(filepath.Join(dir, "plain.jpg"))
		require.NoError(t, err)
		require.NoError(t, jpeg.Encode(file, markedImage(), nil))
		require.NoError(t, file.Close())

		data, err := LoadExifData(NewImageFile(dir, "plain.jpg"))

		a.NotNil(err)
		a.Equal(uint8(1), data.Orientation())
	})
	t.Run("Missing file", func(t *testing.T) {
		a := assert.New(t)

		data, err := LoadExifData(NewImageFile(t.TempDir(), "missing.jpg"))

		a.NotNil(err)
		a.Equal(uint8(1), data.Orientation())
	})
	t.Run("Nil data", func(t *testing.T) {
		a := assert.New(t)
		var data *ExifData

		a.Equal(uint8(1), data.Orientation())
	})
}
