package input

import "github.com/gdamore/tcell/v2"

// Machine turns tcell events into intents.
// It is not safe for concurrent use; feed it from the single event goroutine.
type Machine struct {
	// lastButtons is the mouse state of the previous event, so a held
	// button only produces one click
	lastButtons tcell.ButtonMask
}

// NewMachine creates an input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process resolves ev, returning nil for events with no meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		// Some terminals report Ctrl+C as a modified rune
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return &Intent{Type: IntentQuit}
		}
		if t, ok := runeTable[ev.Rune()]; ok {
			return &Intent{Type: t}
		}
		return nil
	}
	if t, ok := keyTable[ev.Key()]; ok {
		return &Intent{Type: t}
	}
	return nil
}

// processMouse reports a click on the press edge of the primary button
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.lastButtons&tcell.Button1 == 0
	m.lastButtons = buttons
	if pressed {
		return &Intent{Type: IntentBegin}
	}
	return nil
}
