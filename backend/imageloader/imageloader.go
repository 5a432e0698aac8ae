package imageloader

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

var (
	ErrInvalidImage = errors.New("invalid image file")
	ErrInvalidSize  = errors.New("invalid target size")
)

// ImageLoader decodes images synchronously on every call. Nothing is kept
// between calls.
type ImageLoader struct {
	api.ImageLoader
}

func NewImageLoader() api.ImageLoader {
	return &ImageLoader{}
}

func (s *ImageLoader) LoadExifData(imageFile *apitype.ImageFile) (*apitype.ExifData, error) {
	return apitype.LoadExifData(imageFile)
}

func (s *ImageLoader) LoadThumbnail(imageFile *apitype.ImageFile, size apitype.Size) (*image.RGBA, error) {
	if !size.IsValid() {
		return nil, ErrInvalidSize
	}
	startTime := time.Now()

	full, err := s.loadImageWithExifCorrection(imageFile, &size)
	if err != nil {
		return nil, err
	}
	thumbnail := resize.Resize(uint(size.Width()), uint(size.Height()), full, resize.Bilinear)

	logger.Trace.Printf("'%s': Thumbnail loaded in %s", imageFile.FileName(), time.Since(startTime))
	return toRgba(thumbnail), nil
}

func (s *ImageLoader) LoadFitted(imageFile *apitype.ImageFile, size apitype.Size) (*image.RGBA, error) {
	if !size.IsValid() {
		return nil, ErrInvalidSize
	}
	startTime := time.Now()

	full, err := s.loadImageWithExifCorrection(imageFile, &size)
	if err != nil {
		return nil, err
	}
	newSize := apitype.SizeFromRectangle(full.Bounds()).ScaledToFit(size)
	if !newSize.IsValid() {
		return nil, fmt.Errorf("'%s' cannot be scaled to %s", imageFile.FileName(), size)
	}
	fitted := imaging.Resize(full, newSize.Width(), newSize.Height(), imaging.Linear)

	logger.Trace.Printf("'%s': Fitted image loaded in %s", imageFile.FileName(), time.Since(startTime))
	return toRgba(fitted), nil
}

func (s *ImageLoader) loadImageWithExifCorrection(imageFile *apitype.ImageFile, size *apitype.Size) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, ErrInvalidImage
	}

	loadedImage, err := decodeFile(imageFile.Path(), size)
	if err != nil {
		return nil, fmt.Errorf("could not decode '%s': %w", imageFile.FileName(), err)
	}

	exifData, err := s.LoadExifData(imageFile)
	if err != nil {
		logger.Trace.Printf("No EXIF data for '%s': %s", imageFile.FileName(), err)
	}
	return apitype.ExifRotateImage(loadedImage, exifData.Orientation()), nil
}

// Textures are uploaded from *image.RGBA so everything is converted to it.
func toRgba(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
