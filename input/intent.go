package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentBegin      // Enter, Space, left click
	IntentToggleMute // m
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentBegin:      "begin",
	IntentToggleMute: "toggle_mute",
	IntentQuit:       "quit",
	IntentResize:     "resize",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a resolved user action
type Intent struct {
	Type IntentType

	// Width and Height are the new cell size for IntentResize
	Width, Height int
}
