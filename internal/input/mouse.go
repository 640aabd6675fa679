package input

// Mouse is a pointer position report in 0-based terminal cells.
type Mouse struct {
	Col, Row int
	OK       bool // A report arrived this frame
	Pressed  bool // Left button down (press or drag)
}

// parseSGRMouse parses an SGR mouse report: ESC [ < Btn ; X ; Y (M|m).
// Returns the bytes consumed and the decoded report.
func parseSGRMouse(data []byte) (int, Mouse, bool) {
	// Minimum: ESC [ < 0 ; 1 ; 1 M
	if len(data) < 9 {
		return 0, Mouse{}, false
	}

	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) || (data[end] != 'M' && data[end] != 'm') {
		return 0, Mouse{}, false
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok || x < 1 || y < 1 {
		return 0, Mouse{}, false
	}

	m := Mouse{Col: x - 1, Row: y - 1, OK: true}
	// Bits 0-1: button (0=left), bit 6: wheel. 'm' is a release.
	if data[end] == 'M' && btn&64 == 0 && btn&0x03 == 0 {
		m.Pressed = true
	}
	return end + 1, m, true
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y" format.
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0
	digits := 0

	for _, b := range data {
		switch {
		case b == ';':
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			digits = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return btn, x, val, true
}
