package apitype

import (
	"fmt"
	"image"
)

type Size struct {
	width  int
	height int
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) IsValid() bool {
	return s.width > 0 && s.height > 0
}

func (s Size) String() string {
	return fmt.Sprintf("Size{%dx%d}", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// ScaleToFit returns the largest size with the source aspect ratio that fits
// inside the target size.
func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	if sourceWidth <= 0 || sourceHeight <= 0 {
		return 0, 0
	}
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}

// ScaledToFit is ScaleToFit for Size values.
func (s Size) ScaledToFit(target Size) Size {
	w, h := ScaleToFit(s.width, s.height, target.width, target.height)
	return SizeOf(w, h)
}
