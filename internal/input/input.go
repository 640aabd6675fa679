package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	// Held keys (net steering)
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Commands, set only on the frame the key arrived
	Quit    bool
	Toggle  bool // Escape or P
	Restart bool
	Help    bool
	Start   bool // Space or Enter

	// Mouse is the last pointer report received this frame.
	Mouse Mouse

	Pressed []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Escape sequence cut off at the end of the last read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	inp := s.parse(buf, time.Now())
	if closed {
		inp.Quit = true
	}
	return inp
}

// ResetKeyInput forgets all held keys, so a key held across a restart does
// not keep steering the new game.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// parse decodes buf, updates held-key timestamps and builds the frame input.
// An escape sequence cut off at the end of buf is held back until the next
// call; if nothing follows it by then, it is decoded as is.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	flush := false
	if len(s.pending) > 0 {
		if len(buf) == 0 {
			flush = true
		}
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	inp := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if !flush && incompleteEscape(buf[i:]) {
				s.pending = append([]byte(nil), buf[i:]...)
				break
			}
			n := s.parseEscape(buf[i:], now, &inp)
			i += n - 1
			continue
		}

		applyByte(&s.state, &inp, b, now)
	}

	inp.Left = now.Sub(s.state.left) < keyHoldDuration
	inp.Right = now.Sub(s.state.right) < keyHoldDuration
	inp.Up = now.Sub(s.state.up) < keyHoldDuration
	inp.Down = now.Sub(s.state.down) < keyHoldDuration

	return inp
}

// maxEscapeLen bounds how long an unterminated sequence is waited on.
const maxEscapeLen = 32

// incompleteEscape reports whether data starts with an escape sequence whose
// remaining bytes have not arrived yet.
func incompleteEscape(data []byte) bool {
	if len(data) >= maxEscapeLen {
		return false
	}
	if len(data) == 1 {
		return true
	}
	switch data[1] {
	case 'O':
		return len(data) < 3
	case '[':
		for i := 2; i < len(data); i++ {
			if data[i] >= 0x40 && data[i] <= 0x7e {
				return false
			}
		}
		return true
	}
	return false
}

// parseEscape decodes an escape sequence at the start of data and returns
// the number of bytes consumed (at least 1). A lone ESC is the pause key.
func (s *Stream) parseEscape(data []byte, now time.Time, inp *Input) int {
	if len(data) < 2 || (data[1] != '[' && data[1] != 'O') {
		inp.Toggle = true
		return 1
	}
	if len(data) < 3 {
		// Truncated sequence: drop it rather than misreading it as Escape.
		return len(data)
	}

	if data[1] == '[' && data[2] == '<' {
		if n, m, ok := parseSGRMouse(data); ok {
			inp.Mouse = m
			return n
		}
		return skipCSI(data)
	}

	// CSI or SS3 arrow keys: ESC [ A or ESC O A
	switch data[2] {
	case 'A':
		s.state.up = now
		return 3
	case 'B':
		s.state.down = now
		return 3
	case 'C':
		s.state.right = now
		return 3
	case 'D':
		s.state.left = now
		return 3
	}

	if data[1] == 'O' {
		return 3
	}
	return skipCSI(data)
}

// skipCSI returns the length of the CSI sequence at the start of data,
// up to and including its final byte.
func skipCSI(data []byte) int {
	for i := 2; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			return i + 1
		}
	}
	return len(data)
}

// applyByte updates held-key timestamps and frame commands for a single byte.
func applyByte(state *keyState, inp *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		inp.Quit = true
	case 'p', 'P':
		inp.Toggle = true
	case 'r', 'R':
		inp.Restart = true
	case 'h', 'H', '?':
		inp.Help = true
	case ' ', '\n', '\r':
		inp.Start = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	}
}
