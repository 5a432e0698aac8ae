package widget

import (
	"image"
	"image/color"

	"github.com/AllenDang/giu"
	"vincit.fi/image-gallery/ui/layout"
)

var (
	placeholderColor     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	placeholderTextColor = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// GridItem is one gallery cell. Texture is nil while the thumbnail is
// loading or when it could not be decoded.
type GridItem struct {
	Texture *giu.Texture
	Label   string
	Loading bool
	Failed  bool
}

func (s GridItem) placeholderText() string {
	if s.Failed {
		return "Not available"
	} else if s.Loading {
		return "Loading..."
	}
	return ""
}

// ImageGridWidget draws the gallery cells on the window canvas and resolves
// clicks to cell indexes using the grid geometry.
type ImageGridWidget struct {
	grid       layout.Grid
	items      []GridItem
	labelColor color.RGBA
	hoverColor color.RGBA
	onClick    func(index int)
}

func ImageGrid(grid layout.Grid, items []GridItem, onClick func(index int)) *ImageGridWidget {
	return &ImageGridWidget{
		grid:       grid,
		items:      items,
		labelColor: color.RGBA{A: 255},
		hoverColor: color.RGBA{R: 255, G: 255, B: 255, A: 64},
		onClick:    onClick,
	}
}

func (s *ImageGridWidget) Colors(label color.RGBA, hover color.RGBA) *ImageGridWidget {
	s.labelColor = label
	s.hoverColor = hover
	return s
}

func (s *ImageGridWidget) Build() {
	count := len(s.items)
	regionWidth, _ := giu.GetAvailableRegion()
	offset := s.grid.Offset(int(regionWidth), count)
	origin := giu.GetCursorScreenPos().Add(offset)

	canvas := giu.GetCanvas()
	mousePos := giu.GetMousePos()
	hovered, isHovered := hitCell(s.grid, mousePos.Sub(origin), count, giu.IsWindowHovered(0))

	for i, item := range s.items {
		thumbnail := s.grid.ThumbnailRect(i).Add(origin)
		if item.Texture != nil {
			canvas.AddImage(item.Texture, thumbnail.Min, thumbnail.Max)
		} else {
			drawPlaceholder(canvas, thumbnail, item.placeholderText())
		}
		if isHovered && hovered == i {
			canvas.AddRectFilled(thumbnail.Min, thumbnail.Max, s.hoverColor, 0, giu.DrawFlagsNone)
		}

		labelArea := s.grid.LabelRect(i).Add(origin)
		textWidth, _ := giu.CalcTextSize(item.Label)
		labelX := labelArea.Min.X
		if free := labelArea.Dx() - int(textWidth); free > 0 {
			labelX += free / 2
		}
		canvas.AddText(image.Pt(labelX, labelArea.Min.Y), s.labelColor, item.Label)
	}

	content := s.grid.ContentSize(count)
	giu.Dummy(float32(content.X+offset.X), float32(content.Y)).Build()

	if isHovered {
		giu.SetMouseCursor(giu.MouseCursorHand)
		if giu.IsMouseClicked(giu.MouseButtonLeft) && s.onClick != nil {
			s.onClick(hovered)
		}
	}
}

func drawPlaceholder(canvas *giu.Canvas, area image.Rectangle, text string) {
	canvas.AddRect(area.Min, area.Max, placeholderColor, 0, giu.DrawFlagsNone, 1)
	if text == "" {
		return
	}
	textWidth, textHeight := giu.CalcTextSize(text)
	pos := image.Pt(
		area.Min.X+(area.Dx()-int(textWidth))/2,
		area.Min.Y+(area.Dy()-int(textHeight))/2,
	)
	canvas.AddText(pos, placeholderTextColor, text)
}

// hitCell resolves the cell under point. Popups and the parts of the grid
// scrolled out of view belong to other windows, so a point is only a hit
// while the grid's own window is hovered.
func hitCell(grid layout.Grid, point image.Point, count int, windowHovered bool) (int, bool) {
	if !windowHovered {
		return -1, false
	}
	return grid.IndexAt(point, count)
}
