package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 150x150 thumbnails, label 5 below and 16 high, 10 between cells:
// cells are 150x171 and repeat every 160 horizontally and 181 vertically.
func newGrid() Grid {
	return DefaultTheme().Grid()
}

func TestGrid_Position(t *testing.T) {
	a := assert.New(t)
	grid := newGrid()

	tests := []struct {
		index, row, column int
	}{
		{index: 0, row: 0, column: 0},
		{index: 1, row: 0, column: 1},
		{index: 2, row: 0, column: 2},
		{index: 3, row: 1, column: 0},
		{index: 7, row: 2, column: 1},
	}
	for _, tt := range tests {
		row, column := grid.Position(tt.index)
		a.Equal(tt.row, row, "row of %d", tt.index)
		a.Equal(tt.column, column, "column of %d", tt.index)
	}
}

func TestGrid_Rows(t *testing.T) {
	a := assert.New(t)
	grid := newGrid()

	a.Equal(0, grid.Rows(0))
	a.Equal(1, grid.Rows(1))
	a.Equal(1, grid.Rows(3))
	a.Equal(2, grid.Rows(4))
	a.Equal(3, grid.Rows(9))
}

func TestGrid_Rects(t *testing.T) {
	a := assert.New(t)
	grid := newGrid()

	a.Equal(171, grid.CellHeight())
	a.Equal(image.Rect(0, 0, 150, 171), grid.CellRect(0))
	a.Equal(image.Rect(160, 181, 310, 352), grid.CellRect(4))
	a.Equal(image.Rect(160, 181, 310, 331), grid.ThumbnailRect(4))
	a.Equal(image.Rect(160, 336, 310, 352), grid.LabelRect(4))
}

func TestGrid_ContentSize(t *testing.T) {
	a := assert.New(t)
	grid := newGrid()

	a.Equal(image.Point{}, grid.ContentSize(0))
	a.Equal(image.Pt(150, 171), grid.ContentSize(1))
	a.Equal(image.Pt(310, 171), grid.ContentSize(2))
	a.Equal(image.Pt(470, 171), grid.ContentSize(3))
	a.Equal(image.Pt(470, 352), grid.ContentSize(4))
}

func TestGrid_Offset(t *testing.T) {
	a := assert.New(t)
	grid := newGrid()

	a.Equal(image.Pt(165, 0), grid.Offset(800, 3))
	a.Equal(image.Point{}, grid.Offset(400, 3))
	a.Equal(image.Pt(400, 0), grid.Offset(800, 0))
}

func TestGrid_IndexAt(t *testing.T) {
	grid := newGrid()
	const count = 5

	tests := []struct {
		name  string
		point image.Point
		index int
		hit   bool
	}{
		{name: "First thumbnail", point: image.Pt(0, 0), index: 0, hit: true},
		{name: "Inside first thumbnail", point: image.Pt(149, 149), index: 0, hit: true},
		{name: "Second column", point: image.Pt(200, 10), index: 1, hit: true},
		{name: "Second row", point: image.Pt(170, 190), index: 4, hit: true},
		{name: "Label", point: image.Pt(10, 160), index: -1, hit: false},
		{name: "Gap between columns", point: image.Pt(155, 10), index: -1, hit: false},
		{name: "Gap between rows", point: image.Pt(10, 175), index: -1, hit: false},
		{name: "Past the last image", point: image.Pt(330, 190), index: -1, hit: false},
		{name: "Right of the grid", point: image.Pt(500, 10), index: -1, hit: false},
		{name: "Negative", point: image.Pt(-1, 10), index: -1, hit: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)

			index, hit := grid.IndexAt(tt.point, count)

			a.Equal(tt.hit, hit)
			a.Equal(tt.index, index)
		})
	}
}

func TestGrid_IndexAtEveryCell(t *testing.T) {
	a := assert.New(t)
	grid := newGrid()
	const count = 8

	for i := 0; i < count; i++ {
		rect := grid.ThumbnailRect(i)
		center := rect.Min.Add(rect.Size().Div(2))

		index, hit := grid.IndexAt(center, count)

		a.True(hit)
		a.Equal(i, index)
	}
}

func TestGrid_InvalidColumns(t *testing.T) {
	a := assert.New(t)
	grid := newGrid()
	grid.Columns = 0

	row, column := grid.Position(2)

	a.Equal(2, row)
	a.Equal(0, column)
}
