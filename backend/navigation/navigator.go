package navigation

import (
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

// Navigator is the single owner of the viewer state for one gallery. It is
// not safe for concurrent use; all calls come from the UI loop.
type Navigator struct {
	images    []*apitype.ImageFile
	state     State
	listeners []ChangeListener

	api.Navigator
}

// ChangeListener is called after the state has changed. current is nil when
// the gallery is shown.
type ChangeListener func(state State, current *apitype.ImageFile)

func NewNavigator(images []*apitype.ImageFile) *Navigator {
	imagesCopy := make([]*apitype.ImageFile, len(images))
	copy(imagesCopy, images)
	return &Navigator{
		images: imagesCopy,
		state:  Initial(),
	}
}

func (s *Navigator) OnChange(listener ChangeListener) {
	s.listeners = append(s.listeners, listener)
}

func (s *Navigator) State() State {
	return s.state
}

func (s *Navigator) View() apitype.View {
	return s.state.View()
}

func (s *Navigator) Index() int {
	return s.state.Index()
}

func (s *Navigator) Total() int {
	return len(s.images)
}

// Images returns the gallery. The slice must not be modified.
func (s *Navigator) Images() []*apitype.ImageFile {
	return s.images
}

// Current returns the image shown in the full image view, or nil while the
// gallery is shown.
func (s *Navigator) Current() *apitype.ImageFile {
	if !s.state.IsFullImage() {
		return nil
	}
	return s.images[s.state.Index()]
}

func (s *Navigator) Select(index int) error {
	newState, err := s.state.Select(index, len(s.images))
	if err != nil {
		logger.Warn.Printf("Ignoring selection: %s", err)
		return err
	}
	s.apply(newState)
	return nil
}

func (s *Navigator) Back() bool {
	return s.apply(s.state.Back())
}

func (s *Navigator) Next() bool {
	return s.apply(s.state.Next(len(s.images)))
}

func (s *Navigator) Previous() bool {
	return s.apply(s.state.Previous(len(s.images)))
}

func (s *Navigator) apply(newState State) bool {
	if newState == s.state {
		return false
	}
	logger.Debug.Printf("Viewer state %s -> %s", s.state, newState)
	s.state = newState
	current := s.Current()
	for _, listener := range s.listeners {
		listener(newState, current)
	}
	return true
}
