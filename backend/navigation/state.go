package navigation

import (
	"errors"
	"fmt"

	"vincit.fi/image-gallery/api/apitype"
)

var ErrIndexOutOfRange = errors.New("image index out of range")

// State is the viewer state: the active view and the index of the image
// last selected. The index is kept while the gallery is shown but it is only
// meaningful in the full image view, where 0 <= index < total always holds.
type State struct {
	view  apitype.View
	index int
}

func Initial() State {
	return State{view: apitype.Gallery, index: 0}
}

func (s State) View() apitype.View {
	return s.view
}

func (s State) Index() int {
	return s.index
}

func (s State) IsFullImage() bool {
	return s.view == apitype.FullImage
}

func (s State) String() string {
	if s.IsFullImage() {
		return fmt.Sprintf("FullImage(%d)", s.index)
	}
	return "Gallery"
}

// Select opens the full image view at index. An index outside the gallery
// leaves the state unchanged.
func (s State) Select(index int, total int) (State, error) {
	if index < 0 || index >= total {
		return s, fmt.Errorf("select %d of %d: %w", index, total, ErrIndexOutOfRange)
	}
	return State{view: apitype.FullImage, index: index}, nil
}

func (s State) Back() State {
	return State{view: apitype.Gallery, index: s.index}
}

func (s State) Next(total int) State {
	return s.moveWithOffset(1, total)
}

func (s State) Previous(total int) State {
	return s.moveWithOffset(-1, total)
}

// moveWithOffset clamps the new index to the gallery. Nothing moves while
// the gallery is shown.
func (s State) moveWithOffset(offset int, total int) State {
	if !s.IsFullImage() || total <= 0 {
		return s
	}

	index := s.index + offset
	if index >= total {
		index = total - 1
	}
	if index < 0 {
		index = 0
	}
	return State{view: s.view, index: index}
}
