package api

import (
	"vincit.fi/image-gallery/api/apitype"
)

// Navigator owns the viewer state. Next, Previous and Back report whether
// the state changed; a clamped move is not a change.
type Navigator interface {
	Select(index int) error
	Back() bool
	Next() bool
	Previous() bool

	View() apitype.View
	Index() int
	Current() *apitype.ImageFile
	Images() []*apitype.ImageFile
	Total() int
}
