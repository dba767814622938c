package carousel

// State is the controller's position in the play/pause state machine.
type State int

const (
	// StateEmpty is terminal: no images, nothing rendered, no timer.
	StateEmpty State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of the controller state handed to views.
type Snapshot struct {
	Index  int
	Paused bool
	State  State
}

// IntentKind names a request to change carousel state.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentNext
	IntentPrev
	IntentJump
	IntentPause
	IntentResume
)

func (k IntentKind) String() string {
	switch k {
	case IntentNext:
		return "next"
	case IntentPrev:
		return "prev"
	case IntentJump:
		return "jump"
	case IntentPause:
		return "pause"
	case IntentResume:
		return "resume"
	default:
		return "none"
	}
}

// ParseIntentKind is the inverse of IntentKind.String.
func ParseIntentKind(s string) (IntentKind, bool) {
	for k := IntentNext; k <= IntentResume; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return IntentNone, false
}

// Intent is what views relay back to the controller. Index is only
// meaningful for IntentJump.
type Intent struct {
	Kind  IntentKind
	Index int
}

// Next, Prev, Pause, Resume and Jump build intents.
var (
	Next   = Intent{Kind: IntentNext}
	Prev   = Intent{Kind: IntentPrev}
	Pause  = Intent{Kind: IntentPause}
	Resume = Intent{Kind: IntentResume}
)

// Jump returns the intent for selecting image i.
func Jump(i int) Intent {
	return Intent{Kind: IntentJump, Index: i}
}
