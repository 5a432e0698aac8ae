package apitype

// View is the screen the window is currently showing. Exactly one is active.
type View uint8

const (
	Gallery View = iota
	FullImage
)

func (s View) String() string {
	switch s {
	case Gallery:
		return "Gallery"
	case FullImage:
		return "FullImage"
	}
	return "Unknown"
}
