package layout

import (
	"image"
)

// Grid places gallery cells row-major: index i is at row i / Columns and
// column i % Columns. Each cell is a thumbnail with its label below it.
// Coordinates are relative to the top left corner of the grid content.
type Grid struct {
	Columns      int
	CellWidth    int
	ThumbHeight  int
	LabelSpacing int
	LabelHeight  int
	Spacing      int
}

func (s Grid) CellHeight() int {
	return s.ThumbHeight + s.LabelSpacing + s.LabelHeight
}

func (s Grid) columns() int {
	if s.Columns < 1 {
		return 1
	}
	return s.Columns
}

func (s Grid) strideX() int {
	return s.CellWidth + s.Spacing
}

func (s Grid) strideY() int {
	return s.CellHeight() + s.Spacing
}

// Position returns the row and column of the cell at index.
func (s Grid) Position(index int) (row int, column int) {
	return index / s.columns(), index % s.columns()
}

func (s Grid) Rows(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + s.columns() - 1) / s.columns()
}

func (s Grid) CellRect(index int) image.Rectangle {
	row, column := s.Position(index)
	min := image.Pt(column*s.strideX(), row*s.strideY())
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(s.CellWidth, s.CellHeight()))}
}

func (s Grid) ThumbnailRect(index int) image.Rectangle {
	cell := s.CellRect(index)
	return image.Rectangle{Min: cell.Min, Max: image.Pt(cell.Max.X, cell.Min.Y+s.ThumbHeight)}
}

// LabelRect is the area below the thumbnail reserved for the image name.
func (s Grid) LabelRect(index int) image.Rectangle {
	cell := s.CellRect(index)
	top := cell.Min.Y + s.ThumbHeight + s.LabelSpacing
	return image.Rect(cell.Min.X, top, cell.Max.X, top+s.LabelHeight)
}

// ContentSize is the size needed to show count cells without clipping.
func (s Grid) ContentSize(count int) image.Point {
	if count <= 0 {
		return image.Point{}
	}
	columns := s.columns()
	if count < columns {
		columns = count
	}
	rows := s.Rows(count)
	return image.Pt(
		columns*s.CellWidth+(columns-1)*s.Spacing,
		rows*s.CellHeight()+(rows-1)*s.Spacing,
	)
}

// Offset centers the grid horizontally in the available width.
func (s Grid) Offset(availableWidth int, count int) image.Point {
	free := availableWidth - s.ContentSize(count).X
	if free <= 0 {
		return image.Point{}
	}
	return image.Pt(free/2, 0)
}

// IndexAt resolves a point to the index of the thumbnail under it. Points in
// the gaps between cells, on labels or past the last image hit nothing.
func (s Grid) IndexAt(point image.Point, count int) (int, bool) {
	if point.X < 0 || point.Y < 0 || s.strideX() <= 0 || s.strideY() <= 0 {
		return -1, false
	}

	column := point.X / s.strideX()
	row := point.Y / s.strideY()
	if column >= s.columns() {
		return -1, false
	}

	index := row*s.columns() + column
	if index >= count {
		return -1, false
	}
	if !point.In(s.ThumbnailRect(index)) {
		return -1, false
	}
	return index, true
}
