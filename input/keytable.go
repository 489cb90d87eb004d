package input

import "github.com/gdamore/tcell/v2"

// keyTable maps special keys to intents
var keyTable = map[tcell.Key]IntentType{
	tcell.KeyEnter:  IntentBegin,
	tcell.KeyEscape: IntentQuit,
	tcell.KeyCtrlC:  IntentQuit,
}

// runeTable maps printable keys to intents
var runeTable = map[rune]IntentType{
	' ': IntentBegin,
	'm': IntentToggleMute,
	'M': IntentToggleMute,
	'q': IntentQuit,
	'Q': IntentQuit,
}
