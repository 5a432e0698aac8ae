package giu

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/AllenDang/giu"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/backend/navigation"
	"vincit.fi/image-gallery/common/logger"
	"vincit.fi/image-gallery/ui/giu/internal"
	"vincit.fi/image-gallery/ui/giu/widget"
	"vincit.fi/image-gallery/ui/layout"
)

type Ui struct {
	win         *giu.MasterWindow
	theme       layout.Theme
	grid        layout.Grid
	directory   string
	navigator   *navigation.Navigator
	imageLoader api.ImageLoader

	thumbnails  []*internal.TextureSlot
	fullImage   *internal.TextureSlot
	currentView apitype.View
	errors      []string

	api.Gui
}

func NewUi(theme layout.Theme, directory string, navigator *navigation.Navigator, imageLoader api.ImageLoader) api.Gui {
	gui := &Ui{
		win: giu.NewMasterWindow(theme.Title,
			theme.GalleryWindow.Width(), theme.GalleryWindow.Height(), 0),
		theme:       theme,
		grid:        theme.Grid(),
		directory:   directory,
		navigator:   navigator,
		imageLoader: imageLoader,
		fullImage:   internal.NewTextureSlot(),
		currentView: apitype.Gallery,
	}
	gui.win.SetBgColor(theme.Background)
	navigator.OnChange(gui.onStateChanged)
	return gui
}

func (s *Ui) Run() {
	s.loadThumbnails()
	s.win.Run(s.loop)
}

func (s *Ui) loadThumbnails() {
	images := s.navigator.Images()
	logger.Info.Printf("Loading %d thumbnails from '%s'", len(images), s.directory)
	startTime := time.Now()

	s.thumbnails = make([]*internal.TextureSlot, len(images))
	for i, imageFile := range images {
		slot := internal.NewTextureSlot()
		s.thumbnails[i] = slot

		thumbnail, err := s.imageLoader.LoadThumbnail(imageFile, s.theme.Thumbnail)
		if err != nil {
			s.showError(fmt.Sprintf("Could not load thumbnail of '%s'", imageFile.FileName()), err)
			slot.Fail(imageFile)
			continue
		}
		slot.Load(imageFile, thumbnail)
	}

	logger.Debug.Printf("Thumbnails loaded in %s", time.Since(startTime))
}

func (s *Ui) onStateChanged(state navigation.State, current *apitype.ImageFile) {
	if state.IsFullImage() {
		s.loadFullImage(current)
	}

	if state.View() != s.currentView {
		s.currentView = state.View()
		windowSize := s.theme.GalleryWindow
		if state.IsFullImage() {
			windowSize = s.theme.ViewerWindow
		}
		logger.Debug.Printf("Switching to %s view, window %s", state.View(), windowSize)
		s.win.SetSize(windowSize.Width(), windowSize.Height())
	}
}

func (s *Ui) loadFullImage(imageFile *apitype.ImageFile) {
	fitted, err := s.imageLoader.LoadFitted(imageFile, s.theme.FullImage)
	if err != nil {
		s.showError(fmt.Sprintf("Could not load image '%s'", imageFile.FileName()), err)
		s.fullImage.Fail(imageFile)
		return
	}
	s.fullImage.Load(imageFile, fitted)
}

func (s *Ui) showError(message string, err error) {
	logger.Error.Printf("%s: %s", message, err)
	s.errors = append(s.errors, message)
}

func (s *Ui) loop() {
	renderStart := time.Now()

	var widgets []giu.Widget
	if s.navigator.View() == apitype.FullImage {
		widgets = s.fullImageLayout()
	} else {
		widgets = s.galleryLayout()
	}
	widgets = append(widgets, giu.PrepareMsgbox())

	giu.SingleWindow().Layout(widgets...)

	if len(s.errors) > 0 {
		giu.Msgbox("Error", strings.Join(s.errors, "\n"))
		s.errors = nil
	}

	renderTime := time.Since(renderStart)
	if renderTime >= 10*time.Millisecond {
		logger.Debug.Printf("Rendered UI in %s", renderTime)
	} else if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Rendered UI in %s", renderTime)
	}

	s.handleKeyPress()
}

func (s *Ui) galleryLayout() []giu.Widget {
	images := s.navigator.Images()
	if len(images) == 0 {
		return []giu.Widget{
			giu.Label(fmt.Sprintf("No images found in %s", s.directory)),
		}
	}

	items := make([]widget.GridItem, len(images))
	for i, imageFile := range images {
		slot := s.thumbnails[i]
		items[i] = widget.GridItem{
			Texture: slot.Texture(),
			Label:   imageFile.FileName(),
			Loading: slot.IsLoading(),
			Failed:  slot.IsFailed(),
		}
	}

	return []giu.Widget{
		giu.Child().
			Border(false).
			Layout(
				widget.ImageGrid(s.grid, items, s.selectImage).
					Colors(s.theme.LabelColor, s.theme.HoverColor),
			),
	}
}

const buttonGap = 8

func (s *Ui) fullImageLayout() []giu.Widget {
	current := s.navigator.Current()
	status := fmt.Sprintf("%s (%d / %d)", current.FileName(), s.navigator.Index()+1, s.navigator.Total())

	texture := s.fullImage.Texture()
	if s.fullImage.ImageFile() != current {
		texture = nil
	}

	return []giu.Widget{
		giu.Label(status),
		widget.FittedImage(texture, s.fullImage.Size(), s.theme.FullImage).
			Message(slotMessage(s.fullImage, current)),
		giu.Custom(s.buildButtonRow),
	}
}

// buildButtonRow places the buttons centered at the bottom of the window.
func (s *Ui) buildButtonRow() {
	buttonWidth := s.theme.ButtonSize.Width()
	buttonHeight := s.theme.ButtonSize.Height()
	buttons := []*giu.ButtonWidget{
		giu.Button("Back").OnClick(s.back),
		giu.Button("Previous").OnClick(s.previous),
		giu.Button("Next").OnClick(s.next),
	}

	regionWidth, regionHeight := giu.GetAvailableRegion()
	start := giu.GetCursorPos().Add(buttonRowOffset(
		image.Pt(int(regionWidth), int(regionHeight)), len(buttons), s.theme.ButtonSize))

	for i, button := range buttons {
		giu.SetCursorPos(start.Add(image.Pt(i*(buttonWidth+buttonGap), 0)))
		button.Size(float32(buttonWidth), float32(buttonHeight)).Build()
	}
}

// buttonRowOffset centers a row of count buttons horizontally and puts it
// at the bottom of region.
func buttonRowOffset(region image.Point, count int, buttonSize apitype.Size) image.Point {
	rowWidth := count*buttonSize.Width() + (count-1)*buttonGap
	var offset image.Point
	if free := region.Y - buttonSize.Height() - 4; free > 0 {
		offset.Y = free
	}
	if free := region.X - rowWidth; free > 0 {
		offset.X = free / 2
	}
	return offset
}

// slotMessage describes a slot that has no texture for imageFile yet.
func slotMessage(slot *internal.TextureSlot, imageFile *apitype.ImageFile) string {
	switch {
	case slot.ImageFile() != imageFile:
		return "Loading..."
	case slot.IsFailed():
		return "Could not load image"
	case slot.IsLoading():
		return "Loading..."
	}
	return ""
}

func (s *Ui) selectImage(index int) {
	logger.Debug.Printf("Clicked image at index %d", index)
	if err := s.navigator.Select(index); err != nil {
		logger.Error.Print(err)
	}
}

func (s *Ui) back() {
	s.navigator.Back()
}

func (s *Ui) previous() {
	if !s.navigator.Previous() {
		logger.Trace.Printf("Already at the first image")
	}
}

func (s *Ui) next() {
	if !s.navigator.Next() {
		logger.Trace.Printf("Already at the last image")
	}
}

func (s *Ui) handleKeyPress() {
	if s.navigator.View() != apitype.FullImage {
		return
	}

	if giu.IsKeyPressed(giu.KeyLeft) {
		logger.Debug.Printf("Previous")
		s.previous()
	}
	if giu.IsKeyPressed(giu.KeyRight) {
		logger.Debug.Printf("Next")
		s.next()
	}
	if giu.IsKeyPressed(giu.KeyEscape) || giu.IsKeyPressed(giu.KeyBackspace) {
		logger.Debug.Printf("Back to gallery")
		s.back()
	}
}
