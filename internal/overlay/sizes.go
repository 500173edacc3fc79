package overlay

// SizeHidden removes the overlay entirely rather than resizing it.
const SizeHidden = "hide"

// DefaultSize is used when the configured size is missing or unknown.
const DefaultSize = "l"

// Dimensions describes one overlay size preset. Width covers the rate text
// only; the adjust buttons add extra columns on sizes that show them.
type Dimensions struct {
	Width    int32
	Height   int32
	FontSize int32
	Buttons  bool
}

// buttonExtraWidth is the combined width of the two rate-adjust columns.
const buttonExtraWidth = 45

var dimensions = map[string]Dimensions{
	"s":   {Width: 80, Height: 25, FontSize: 10},
	"m":   {Width: 120, Height: 40, FontSize: 16, Buttons: true},
	"l":   {Width: 160, Height: 55, FontSize: 20, Buttons: true},
	"xl":  {Width: 200, Height: 70, FontSize: 24, Buttons: true},
	"xxl": {Width: 250, Height: 85, FontSize: 28, Buttons: true},
}

// DimensionsFor returns the preset for a size name, falling back to the
// default for unknown names. SizeHidden has no dimensions; callers are
// expected to remove the overlay instead of asking.
func DimensionsFor(name string) Dimensions {
	if d, ok := dimensions[name]; ok {
		return d
	}

	return dimensions[DefaultSize]
}

// WindowWidth is the full window width including button columns.
func (d Dimensions) WindowWidth() int32 {
	if d.Buttons {
		return d.Width + buttonExtraWidth
	}

	return d.Width
}
