package matcha

import "strings"

// KeyMsg contains information about a keypress. KeyMsgs are always sent to
// the program's Update function. There are a couple of general patterns you
// could use to check for keypresses:
//
//	switch msg := msg.(type) {
//	case KeyMsg:
//	    switch msg.String() {
//	    case "enter":
//	        fmt.Println("you pressed enter!")
//	    }
//	}
//
//	switch msg := msg.(type) {
//	case KeyMsg:
//	    switch msg.Type {
//	    case KeyEnter:
//	        fmt.Println("you pressed enter!")
//	    case KeyRunes:
//	        switch string(msg.Runes) {
//	        case "a":
//	            fmt.Println("you pressed a!")
//	        }
//	    }
//	}
//
// Key.Runes always contains at least one character when Type is KeyRunes and
// Paste is false, so it's safe to index Runes[0] in that case. An empty
// bracketed paste yields a KeyRunes message with Paste set and no runes.
type KeyMsg Key

// String returns a friendly string representation for a key message. It's
// safe (and encouraged) for use in key comparison.
func (k KeyMsg) String() string { return Key(k).String() }

// Key contains information about a keypress or a paste.
type Key struct {
	Type  KeyType
	Runes []rune
	Alt   bool
	Shift bool
	Ctrl  bool
	Paste bool
}

// String returns a friendly string representation for a key, e.g. "ctrl+a",
// "alt+enter", or the literal rune for printable keys.
func (k Key) String() string {
	var buf strings.Builder
	if k.Ctrl {
		buf.WriteString("ctrl+")
	}
	if k.Alt {
		buf.WriteString("alt+")
	}
	if k.Shift && k.Type != KeyRunes {
		buf.WriteString("shift+")
	}
	if k.Type == KeyRunes {
		if k.Paste {
			// Pasted text is enclosed in brackets so that a literal string
			// compare against a keybinding never matches pasted content.
			buf.WriteByte('[')
		}
		buf.WriteString(string(k.Runes))
		if k.Paste {
			buf.WriteByte(']')
		}
		return buf.String()
	}
	if s, ok := keyNames[k.Type]; ok {
		buf.WriteString(s)
		return buf.String()
	}
	return ""
}

// KeyType indicates the kind of key pressed, such as KeyEnter or KeyCtrlC.
// Any other key is reported as KeyRunes; use Key.Runes or Key.String to
// recover the actual text.
type KeyType int

func (k KeyType) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return ""
}

// C0 control codes. Named explicitly (rather than via iota) since their
// values are fixed by the ASCII table.
//
// See also: https://en.wikipedia.org/wiki/C0_and_C1_control_codes
const (
	keyNUL KeyType = 0
	keySOH KeyType = 1
	keySTX KeyType = 2
	keyETX KeyType = 3
	keyEOT KeyType = 4
	keyENQ KeyType = 5
	keyACK KeyType = 6
	keyBEL KeyType = 7
	keyBS  KeyType = 8
	keyHT  KeyType = 9
	keyLF  KeyType = 10
	keyVT  KeyType = 11
	keyFF  KeyType = 12
	keyCR  KeyType = 13
	keySO  KeyType = 14
	keySI  KeyType = 15
	keyDLE KeyType = 16
	keyDC1 KeyType = 17
	keyDC2 KeyType = 18
	keyDC3 KeyType = 19
	keyDC4 KeyType = 20
	keyNAK KeyType = 21
	keySYN KeyType = 22
	keyETB KeyType = 23
	keyCAN KeyType = 24
	keyEM  KeyType = 25
	keySUB KeyType = 26
	keyESC KeyType = 27
	keyFS  KeyType = 28
	keyGS  KeyType = 29
	keyRS  KeyType = 30
	keyUS  KeyType = 31
	keyDEL KeyType = 127
)

// Control key aliases, and friendly names for the handful of keys that get
// dedicated names rather than "ctrl+<letter>".
const (
	KeyNull      KeyType = keyNUL
	KeyBreak     KeyType = keyETX
	KeyEnter     KeyType = keyCR
	KeyBackspace KeyType = keyDEL
	KeyTab       KeyType = keyHT
	KeyEsc       KeyType = keyESC
	KeyEscape    KeyType = keyESC
	KeySpace     KeyType = 32

	KeyCtrlAt           KeyType = keyNUL
	KeyCtrlA            KeyType = keySOH
	KeyCtrlB            KeyType = keySTX
	KeyCtrlC            KeyType = keyETX
	KeyCtrlD            KeyType = keyEOT
	KeyCtrlE            KeyType = keyENQ
	KeyCtrlF            KeyType = keyACK
	KeyCtrlG            KeyType = keyBEL
	KeyCtrlH            KeyType = keyBS
	KeyCtrlI            KeyType = keyHT
	KeyCtrlJ            KeyType = keyLF
	KeyCtrlK            KeyType = keyVT
	KeyCtrlL            KeyType = keyFF
	KeyCtrlM            KeyType = keyCR
	KeyCtrlN            KeyType = keySO
	KeyCtrlO            KeyType = keySI
	KeyCtrlP            KeyType = keyDLE
	KeyCtrlQ            KeyType = keyDC1
	KeyCtrlR            KeyType = keyDC2
	KeyCtrlS            KeyType = keyDC3
	KeyCtrlT            KeyType = keyDC4
	KeyCtrlU            KeyType = keyNAK
	KeyCtrlV            KeyType = keySYN
	KeyCtrlW            KeyType = keyETB
	KeyCtrlX            KeyType = keyCAN
	KeyCtrlY            KeyType = keyEM
	KeyCtrlZ            KeyType = keySUB
	KeyCtrlOpenBracket  KeyType = keyESC
	KeyCtrlBackslash    KeyType = keyFS
	KeyCtrlCloseBracket KeyType = keyGS
	KeyCtrlCaret        KeyType = keyRS
	KeyCtrlUnderscore   KeyType = keyUS
	KeyCtrlQuestionMark KeyType = keyDEL
)

// Keys reported only via escape sequences: cursor movement, editing keys,
// and function keys. Negative so they never collide with a C0 code or a
// printable rune cast to KeyType.
const (
	KeyRunes KeyType = -(iota + 1)
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyShiftTab
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
)

var keyNames = map[KeyType]string{
	keyNUL: "ctrl+@",
	keySOH: "ctrl+a",
	keySTX: "ctrl+b",
	keyETX: "ctrl+c",
	keyEOT: "ctrl+d",
	keyENQ: "ctrl+e",
	keyACK: "ctrl+f",
	keyBEL: "ctrl+g",
	keyBS:  "ctrl+h",
	keyHT:  "tab",
	keyLF:  "ctrl+j",
	keyVT:  "ctrl+k",
	keyFF:  "ctrl+l",
	keyCR:  "enter",
	keySO:  "ctrl+n",
	keySI:  "ctrl+o",
	keyDLE: "ctrl+p",
	keyDC1: "ctrl+q",
	keyDC2: "ctrl+r",
	keyDC3: "ctrl+s",
	keyDC4: "ctrl+t",
	keyNAK: "ctrl+u",
	keySYN: "ctrl+v",
	keyETB: "ctrl+w",
	keyCAN: "ctrl+x",
	keyEM:  "ctrl+y",
	keySUB: "ctrl+z",
	keyESC: "esc",
	keyFS:  "ctrl+\\",
	keyGS:  "ctrl+]",
	keyRS:  "ctrl+^",
	keyUS:  "ctrl+_",
	keyDEL: "backspace",

	KeySpace: " ",

	KeyRunes:     "runes",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyShiftTab:  "shift+tab",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
	KeyF13:       "f13",
	KeyF14:       "f14",
	KeyF15:       "f15",
	KeyF16:       "f16",
	KeyF17:       "f17",
	KeyF18:       "f18",
	KeyF19:       "f19",
	KeyF20:       "f20",
}
