package apitype

import (
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"vincit.fi/image-gallery/common/logger"
)

const exifUnchangedOrientation = 1

type ExifData struct {
	orientation uint8
}

func NewInvalidExifData() *ExifData {
	return &ExifData{
		orientation: exifUnchangedOrientation,
	}
}

func (s *ExifData) Orientation() uint8 {
	if s != nil {
		return s.orientation
	} else {
		return exifUnchangedOrientation
	}
}

// LoadExifData reads the orientation of the image. Images
// without EXIF are common so the returned data is always usable, even when
// an error is returned alongside it.
func LoadExifData(imageFile *ImageFile) (*ExifData, error) {
	fileForExif, err := os.Open(imageFile.Path())
	if err != nil {
		return NewInvalidExifData(), err
	}
	defer fileForExif.Close()

	decodedExif, err := exif.Decode(fileForExif)
	if err != nil {
		return NewInvalidExifData(), err
	}

	data := NewInvalidExifData()
	if tag, err := decodedExif.Get(exif.Orientation); err != nil {
		logger.Trace.Printf("No orientation for '%s': %s", imageFile.FileName(), err)
	} else if orientation, err := tag.Int(0); err != nil {
		logger.Warn.Printf("Could not resolve orientation for '%s': %s", imageFile.FileName(), err)
	} else if orientation >= 1 && orientation <= 8 {
		data.orientation = uint8(orientation)
	}
	return data, nil
}

// ExifRotateImage turns the decoded pixels upright according to the EXIF
// orientation value (1-8).
func ExifRotateImage(loadedImage image.Image, orientation uint8) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(loadedImage)
	case 3:
		return imaging.Rotate180(loadedImage)
	case 4:
		return imaging.FlipV(loadedImage)
	case 5:
		return imaging.Transpose(loadedImage)
	case 6:
		return imaging.Rotate270(loadedImage)
	case 7:
		return imaging.Transverse(loadedImage)
	case 8:
		return imaging.Rotate90(loadedImage)
	default:
		return loadedImage
	}
}
