package widget

import (
	"image"

	"github.com/AllenDang/giu"
	"vincit.fi/image-gallery/api/apitype"
)

// FittedImageWidget shows an already fitted image centered in a box of a
// fixed size. Without a texture the box outline and the message are drawn.
type FittedImageWidget struct {
	texture *giu.Texture
	image   apitype.Size
	box     apitype.Size
	message string
}

func FittedImage(texture *giu.Texture, imageSize apitype.Size, box apitype.Size) *FittedImageWidget {
	return &FittedImageWidget{
		texture: texture,
		image:   imageSize,
		box:     box,
	}
}

// Message is shown in place of a missing texture.
func (s *FittedImageWidget) Message(message string) *FittedImageWidget {
	s.message = message
	return s
}

func (s *FittedImageWidget) Build() {
	regionWidth, _ := giu.GetAvailableRegion()
	boxOffsetX := 0
	if free := int(regionWidth) - s.box.Width(); free > 0 {
		boxOffsetX = free / 2
	}

	pos := giu.GetCursorScreenPos()
	boxMin := pos.Add(image.Pt(boxOffsetX, 0))
	boxMax := boxMin.Add(image.Pt(s.box.Width(), s.box.Height()))
	canvas := giu.GetCanvas()

	if s.texture != nil && s.image.IsValid() {
		offset := image.Pt((s.box.Width()-s.image.Width())/2, (s.box.Height()-s.image.Height())/2)
		start := boxMin.Add(offset)
		end := start.Add(image.Pt(s.image.Width(), s.image.Height()))
		canvas.AddImage(s.texture, start, end)
	} else {
		drawPlaceholder(canvas, image.Rectangle{Min: boxMin, Max: boxMax}, s.message)
	}

	giu.Dummy(float32(boxOffsetX+s.box.Width()), float32(s.box.Height())).Build()
}
