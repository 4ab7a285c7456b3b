package matcha

// keySequences maps complete escape sequences recognized by the baseline
// xterm terminal profile to the Key they decode to. Sequences with a
// modifier parameter (the "1;m" CSI form) are not listed here; decodeCSI
// decodes them via cursorLetter and applyXtermModifier, following the
// xterm modifier encoding:
//
//	2 = shift, 3 = alt, 4 = shift+alt, 5 = ctrl, 6 = shift+ctrl,
//	7 = alt+ctrl, 8 = shift+alt+ctrl
var keySequences = map[string]Key{
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1bOA":  {Type: KeyUp},
	"\x1bOB":  {Type: KeyDown},
	"\x1bOC":  {Type: KeyRight},
	"\x1bOD":  {Type: KeyLeft},
	"\x1bOH":  {Type: KeyHome},
	"\x1bOF":  {Type: KeyEnd},
	"\x1bOP":  {Type: KeyF1},
	"\x1bOQ":  {Type: KeyF2},
	"\x1bOR":  {Type: KeyF3},
	"\x1bOS":  {Type: KeyF4},
	"\x1b[Z":  {Type: KeyShiftTab},
	"\x1b[2~": {Type: KeyInsert},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[5~": {Type: KeyPgUp},
	"\x1b[6~": {Type: KeyPgDown},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[4~": {Type: KeyEnd},

	// Legacy VT220 function keys.
	"\x1b[11~": {Type: KeyF1},
	"\x1b[12~": {Type: KeyF2},
	"\x1b[13~": {Type: KeyF3},
	"\x1b[14~": {Type: KeyF4},
	"\x1b[15~": {Type: KeyF5},
	"\x1b[17~": {Type: KeyF6},
	"\x1b[18~": {Type: KeyF7},
	"\x1b[19~": {Type: KeyF8},
	"\x1b[20~": {Type: KeyF9},
	"\x1b[21~": {Type: KeyF10},
	"\x1b[23~": {Type: KeyF11},
	"\x1b[24~": {Type: KeyF12},
}

// cursorLetter maps the final byte of a CSI cursor/home/end sequence to the
// base key, used when decoding the modifier-encoded "CSI 1 ; m <letter>"
// form.
var cursorLetter = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'Z': KeyShiftTab,
}

// tildeKey maps the numeric parameter of a "CSI n ~" sequence to its key.
var tildeKey = map[int]KeyType{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPgUp,
	6:  KeyPgDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
	25: KeyF13,
	26: KeyF14,
	28: KeyF15,
	29: KeyF16,
	31: KeyF17,
	32: KeyF18,
	33: KeyF19,
	34: KeyF20,
}

// applyXtermModifier decodes the xterm modifier parameter (2-8) used in CSI
// "1;m<letter>" and "n;m~" sequences onto a Key.
func applyXtermModifier(k *Key, mod int) {
	switch mod {
	case 2:
		k.Shift = true
	case 3:
		k.Alt = true
	case 4:
		k.Shift, k.Alt = true, true
	case 5:
		k.Ctrl = true
	case 6:
		k.Shift, k.Ctrl = true, true
	case 7:
		k.Alt, k.Ctrl = true, true
	case 8:
		k.Shift, k.Alt, k.Ctrl = true, true, true
	}
}
