package carousel

import "fmt"

// DefaultTitle is used in alt text when no title is supplied.
const DefaultTitle = "Project"

// Frame is the view model for one render of a carousel. It carries no
// behavior; the intents attached to each affordance are handed back to
// Controller.Dispatch by whichever presentation layer draws the frame.
type Frame struct {
	// Empty frames render nothing at all.
	Empty bool

	Image      Image
	Prev       Affordance
	Next       Affordance
	Indicators []Indicator

	// Enter and Leave are the pointer intents of the carousel surface.
	Enter Intent
	Leave Intent

	Paused bool
}

// Image is the currently selected picture.
type Image struct {
	Src string
	Alt string
}

// Affordance is a labeled control emitting one intent.
type Affordance struct {
	Label  string
	Intent Intent
}

// Indicator is the per-image position marker.
type Indicator struct {
	Index  int
	Label  string
	Active bool
	Intent Intent
}

// Render builds the frame for images at state s. It is pure: the same inputs
// always give the same frame.
func Render(images []string, title string, s Snapshot) Frame {
	if len(images) == 0 {
		return Frame{Empty: true}
	}

	indicators := make([]Indicator, len(images))
	for i := range images {
		indicators[i] = Indicator{
			Index:  i,
			Label:  fmt.Sprintf("Go to image %d", i+1),
			Active: i == s.Index,
			Intent: Jump(i),
		}
	}

	return Frame{
		Image: Image{
			Src: images[s.Index],
			Alt: AltText(title, s.Index),
		},
		Prev:       Affordance{Label: "Previous image", Intent: Prev},
		Next:       Affordance{Label: "Next image", Intent: Next},
		Indicators: indicators,
		Enter:      Pause,
		Leave:      Resume,
		Paused:     s.Paused,
	}
}

// AltText is the accessible label of image index (0-based) for title.
func AltText(title string, index int) string {
	if title == "" {
		title = DefaultTitle
	}
	return fmt.Sprintf("%s screenshot %d", title, index+1)
}
