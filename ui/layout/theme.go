package layout

import (
	"image/color"

	"vincit.fi/image-gallery/api/apitype"
)

const (
	defaultColumns      = 3
	defaultThumbnail    = 150
	defaultSpacing      = 10
	defaultLabelSpacing = 5
	defaultLabelHeight  = 16
)

// Theme holds every visual attribute of the gallery and the viewer.
type Theme struct {
	Title        string
	Columns      int
	Thumbnail    apitype.Size
	Spacing      int
	LabelSpacing int
	LabelHeight  int

	FullImage     apitype.Size
	GalleryWindow apitype.Size
	ViewerWindow  apitype.Size
	ButtonSize    apitype.Size

	Background color.RGBA
	LabelColor color.RGBA
	HoverColor color.RGBA
}

func DefaultTheme() Theme {
	return Theme{
		Title:         "My Image Gallery",
		Columns:       defaultColumns,
		Thumbnail:     apitype.SizeOf(defaultThumbnail, defaultThumbnail),
		Spacing:       defaultSpacing,
		LabelSpacing:  defaultLabelSpacing,
		LabelHeight:   defaultLabelHeight,
		FullImage:     apitype.SizeOf(400, 300),
		GalleryWindow: apitype.SizeOf(800, 600),
		ViewerWindow:  apitype.SizeOf(700, 500),
		ButtonSize:    apitype.SizeOf(100, 30),
		Background:    color.RGBA{R: 0xF4, G: 0xF4, B: 0xF4, A: 0xFF},
		LabelColor:    color.RGBA{A: 0xFF},
		HoverColor:    color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x40},
	}
}

func (s Theme) Grid() Grid {
	return Grid{
		Columns:      s.Columns,
		CellWidth:    s.Thumbnail.Width(),
		ThumbHeight:  s.Thumbnail.Height(),
		LabelSpacing: s.LabelSpacing,
		LabelHeight:  s.LabelHeight,
		Spacing:      s.Spacing,
	}
}
