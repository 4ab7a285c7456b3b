package matcha

import "unicode/utf8"

// ANSI control bytes the parser cares about directly.
const (
	ansiESC byte = 0x1b
	ansiBEL byte = 0x07
	ansiCAN byte = 0x18
	ansiSUB byte = 0x1a
)

// parserState names a state in the incremental input parser's pushdown
// automaton. The parser must survive a sequence split across arbitrary
// read boundaries.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateSS3
	stateOSC
	stateDCS
	statePasteBody
	stateX10Mouse
)

// bracketedPasteStart/End delimit a bracketed paste block (xterm
// "2004" mode): ESC [ 2 0 0 ~  ...  ESC [ 2 0 1 ~
const (
	bracketedPasteStart = "\x1b[200~"
	bracketedPasteEnd   = "\x1b[201~"
)

// inputParser incrementally decodes a raw input byte stream into Msg
// values. Unlike a one-shot "parse this whole buffer" function, it
// retains state between Feed calls so a multi-byte escape sequence split
// across two reads decodes correctly once the remaining bytes arrive. A
// UTF-8 rune is only assembled when all its bytes arrive in one Feed
// call; a rune split across calls is emitted as one KeyRunes message per
// byte.
type inputParser struct {
	state parserState

	// buf accumulates the bytes of the sequence currently being
	// recognized (including the leading ESC, if any).
	buf []byte

	// pasteBuf accumulates the body of a bracketed paste in progress.
	pasteBuf []byte

	// escDeadlinePending is not set by the parser. A pending bare ESC is
	// recognized from state and buf instead (stateEscape with only the
	// ESC buffered); the driver checks that (see driver.go), resolves it
	// with a short timeout and calls Timeout to flush a standalone
	// Escape key.
	escDeadlinePending bool
}

// newInputParser returns a parser ready to consume a fresh byte stream.
func newInputParser() *inputParser {
	return &inputParser{}
}

// Feed consumes a chunk of bytes read from the terminal and returns any
// complete Msg values it produced. Bytes belonging to an incomplete
// sequence are retained internally and completed by a later Feed call.
func (p *inputParser) Feed(chunk []byte) []Msg {
	var msgs []Msg
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		if msg, consumed := p.step(b, chunk[i:]); consumed > 0 {
			if msg != nil {
				msgs = append(msgs, msg)
			}
			i += consumed - 1
			continue
		}
	}
	return msgs
}

// Timeout is called by the driver when a bare ESC has been buffered for
// longer than the escape-sequence grace period without a follow-up
// byte arriving. It flushes the pending ESC as a standalone Escape key.
func (p *inputParser) Timeout() Msg {
	if p.state != stateEscape || len(p.buf) != 1 {
		return nil
	}
	p.reset()
	return KeyMsg{Type: KeyEscape}
}

func (p *inputParser) reset() {
	p.state = stateGround
	p.buf = nil
}

// step consumes the single byte at rest[0] (equal to b), possibly also
// looking ahead into rest to recognize and consume a full sequence in
// one call. It returns the produced message (nil if more bytes are
// needed, or if the byte was consumed but yielded no event) and how
// many bytes of rest were consumed; 0 means "need more input".
func (p *inputParser) step(b byte, rest []byte) (Msg, int) {
	switch p.state {
	case stateGround:
		return p.stepGround(b, rest)
	case stateEscape:
		return p.stepEscape(b, rest)
	case stateCSI:
		return p.stepCSI(b)
	case stateSS3:
		return p.stepSS3(b)
	case stateOSC:
		return p.stepOSC(b)
	case stateDCS:
		return p.stepDCS(b)
	case statePasteBody:
		return p.stepPasteBody(rest)
	case stateX10Mouse:
		return p.stepX10Mouse(b)
	}
	p.reset()
	return nil, 1
}

func (p *inputParser) stepGround(b byte, rest []byte) (Msg, int) {
	switch {
	case b == ansiESC:
		p.state = stateEscape
		p.buf = []byte{b}
		return nil, 1
	case b == 0x00:
		return KeyMsg{Type: KeyCtrlAt}, 1
	case b == '\r':
		return KeyMsg{Type: KeyEnter}, 1
	case b == '\n':
		return KeyMsg{Type: KeyEnter}, 1
	case b == 0x7f:
		return KeyMsg{Type: KeyBackspace}, 1
	case b < 0x20:
		return KeyMsg{Type: KeyType(b)}, 1
	case b < 0x80:
		return KeyMsg{Type: KeyRunes, Runes: []rune{rune(b)}}, 1
	default:
		// Possible multi-byte UTF-8 rune.
		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError && size <= 1 {
			if len(rest) < utf8.UTFMax {
				// Possibly a rune cut off at the end of the chunk; it is
				// not buffered, so the byte is emitted on its own.
				return KeyMsg{Type: KeyRunes, Runes: []rune{rune(b)}}, 1
			}
			return KeyMsg{Type: KeyRunes, Runes: []rune{rune(b)}}, 1
		}
		return KeyMsg{Type: KeyRunes, Runes: []rune{r}}, size
	}
}

func (p *inputParser) stepEscape(b byte, rest []byte) (Msg, int) {
	if len(p.buf) == 1 {
		switch b {
		case '[':
			p.buf = append(p.buf, b)
			p.state = stateCSI
			return nil, 1
		case 'O':
			p.buf = append(p.buf, b)
			p.state = stateSS3
			return nil, 1
		case ']':
			p.buf = append(p.buf, b)
			p.state = stateOSC
			return nil, 1
		case 'P':
			p.buf = append(p.buf, b)
			p.state = stateDCS
			return nil, 1
		case ansiESC:
			// Double ESC: treat the first as standalone and restart.
			p.reset()
			p.state = stateEscape
			p.buf = []byte{b}
			return KeyMsg{Type: KeyEscape}, 1
		default:
			// alt+<rune>
			p.reset()
			if b < 0x20 || b == 0x7f {
				return KeyMsg{Type: KeyType(b), Alt: true}, 1
			}
			r, size := utf8.DecodeRune(rest)
			if r == utf8.RuneError {
				return KeyMsg{Type: KeyRunes, Runes: []rune{rune(b)}, Alt: true}, 1
			}
			return KeyMsg{Type: KeyRunes, Runes: []rune{r}, Alt: true}, size
		}
	}
	p.reset()
	return nil, 1
}

// stepCSI accumulates bytes of a CSI sequence (ESC [ params intermediates
// final) until it sees a final byte in 0x40-0x7e, then decodes it.
func (p *inputParser) stepCSI(b byte) (Msg, int) {
	if len(p.buf) == 2 && b == 'M' {
		// Legacy X10 mouse report: ESC [ M Cb Cx Cy. Its three payload
		// bytes are raw, unframed data, not CSI parameters, so they
		// must be consumed verbatim rather than run through the
		// generic final-byte logic below, which would otherwise treat
		// this very 'M' (it falls in 0x40-0x7e) as terminating an
		// empty CSI sequence and misparse the payload bytes as their
		// own keys.
		p.buf = append(p.buf, b)
		p.state = stateX10Mouse
		return nil, 1
	}

	p.buf = append(p.buf, b)
	if b < 0x40 || b > 0x7e {
		// still within parameter/intermediate bytes
		return nil, 1
	}
	seq := string(p.buf)
	p.reset()

	if seq == bracketedPasteStart {
		p.state = statePasteBody
		p.pasteBuf = p.pasteBuf[:0]
		return nil, 1
	}

	if k, ok := keySequences[seq]; ok {
		return KeyMsg(k), 1
	}

	if msg, ok := decodeCSI(seq, b); ok {
		return msg, 1
	}

	return nil, 1
}

// stepX10Mouse collects the three raw payload bytes following an
// "ESC [ M" header and decodes the resulting 6-byte report.
func (p *inputParser) stepX10Mouse(b byte) (Msg, int) {
	p.buf = append(p.buf, b)
	if len(p.buf) < 6 {
		return nil, 1
	}
	seq := p.buf
	p.reset()
	if m, ok := parseX10MouseEvent(seq); ok {
		return MouseMsg(m), 1
	}
	return nil, 1
}

func (p *inputParser) stepSS3(b byte) (Msg, int) {
	p.buf = append(p.buf, b)
	if len(p.buf) < 3 {
		return nil, 1
	}
	seq := string(p.buf)
	p.reset()
	if k, ok := keySequences[seq]; ok {
		return KeyMsg(k), 1
	}
	return nil, 1
}

// stepOSC accumulates an OSC string until its ST (ESC \) or BEL
// terminator. OSC bodies (window title queries, etc.) are consumed and
// discarded; matcha has no operation that currently needs their content.
func (p *inputParser) stepOSC(b byte) (Msg, int) {
	p.buf = append(p.buf, b)
	if b == ansiBEL {
		p.reset()
		return nil, 1
	}
	n := len(p.buf)
	if n >= 2 && p.buf[n-2] == ansiESC && b == '\\' {
		p.reset()
		return nil, 1
	}
	return nil, 1
}

func (p *inputParser) stepDCS(b byte) (Msg, int) {
	p.buf = append(p.buf, b)
	n := len(p.buf)
	if n >= 2 && p.buf[n-2] == ansiESC && b == '\\' {
		p.reset()
		return nil, 1
	}
	return nil, 1
}

// stepPasteBody scans rest for the bracketed-paste terminator, consuming
// as much plain text as is available in one call so large pastes don't
// cost one step per byte.
func (p *inputParser) stepPasteBody(rest []byte) (Msg, int) {
	for i := range rest {
		p.pasteBuf = append(p.pasteBuf, rest[i])
		if len(p.pasteBuf) >= len(bracketedPasteEnd) {
			tail := p.pasteBuf[len(p.pasteBuf)-len(bracketedPasteEnd):]
			if string(tail) == bracketedPasteEnd {
				text := p.pasteBuf[:len(p.pasteBuf)-len(bracketedPasteEnd)]
				runes := []rune(string(text))
				p.state = stateGround
				p.pasteBuf = nil
				return KeyMsg{Type: KeyRunes, Runes: runes, Paste: true}, i + 1
			}
		}
	}
	return nil, len(rest)
}

// decodeCSI decodes a CSI sequence that isn't a literal key in
// keySequences: SGR mouse reports, focus events, the modifier-encoded
// cursor-key and tilde forms, and resize/other reports matcha ignores.
// Legacy X10 mouse reports are decoded earlier, in stepCSI/stepX10Mouse,
// since their payload bytes aren't CSI parameters at all.
func decodeCSI(seq string, final byte) (Msg, bool) {
	if _, ok := cursorLetter[final]; ok {
		// "CSI 1 ; mod <letter>": a cursor/home/end key with an xterm
		// modifier parameter. The unmodified form ("CSI <letter>")
		// never reaches here, since it's matched as a literal in
		// keySequences before decodeCSI is called.
		params, ok := splitParams(seq[2 : len(seq)-1])
		if ok && len(params) >= 2 {
			if k, modOK := decodeModifiedCursor(params, final); modOK {
				return KeyMsg(k), true
			}
		}
		return nil, false
	}

	switch {
	case final == 'I':
		return FocusMsg{}, true
	case final == 'O':
		return BlurMsg{}, true
	case len(seq) >= 3 && seq[2] == '<':
		// SGR mouse: ESC [ < Cb ; Cx ; Cy M/m
		params, ok := splitParams(seq[3 : len(seq)-1])
		if !ok {
			return nil, false
		}
		if m, ok := parseSGRMouseEvent(params, final); ok {
			return MouseMsg(m), true
		}
		return nil, false
	case final == '~':
		params, ok := splitParams(seq[2 : len(seq)-1])
		if !ok || len(params) == 0 {
			return nil, false
		}
		kt, known := tildeKey[params[0]]
		if !known {
			return nil, false
		}
		k := Key{Type: kt}
		if len(params) >= 2 {
			applyXtermModifier(&k, params[1])
		}
		return KeyMsg(k), true
	}
	return nil, false
}

// decodeModifiedCursor decodes "CSI 1 ; mod <letter>" cursor-key forms.
func decodeModifiedCursor(params []int, final byte) (Key, bool) {
	kt, ok := cursorLetter[final]
	if !ok {
		return Key{}, false
	}
	k := Key{Type: kt}
	if len(params) >= 2 {
		applyXtermModifier(&k, params[1])
	}
	return k, true
}

// splitParams parses a semicolon-separated list of decimal parameters,
// e.g. "1;5" -> [1, 5]. An empty field decodes to 0 (xterm's default).
func splitParams(s string) ([]int, bool) {
	if s == "" {
		return nil, true
	}
	var out []int
	n := 0
	have := false
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ';' {
			out = append(out, n)
			n = 0
			have = false
			continue
		}
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		n = n*10 + int(c-'0')
		have = true
		_ = have
	}
	return out, true
}

// FocusMsg is sent when the terminal gains focus, if focus reporting
// has been enabled via WithReportFocus.
type FocusMsg struct{}

// BlurMsg is sent when the terminal loses focus.
type BlurMsg struct{}
