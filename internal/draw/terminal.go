package draw

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// TermSizeFunc reports the terminal's size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc asks the local TTY on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Mode is a terminal mode with the sequences that switch it on and off.
type Mode struct {
	enter, leave string
}

var (
	// CursorHidden hides the text cursor while the pond is drawn.
	CursorHidden = Mode{enter: "\033[?25l", leave: "\033[?25h"}
	// MouseTracking reports pointer motion without a held button, using
	// SGR extended coordinates.
	MouseTracking = Mode{enter: "\033[?1003h\033[?1006h", leave: "\033[?1006l\033[?1003l"}
)

// Enter switches m on.
func (m Mode) Enter(w io.Writer) { io.WriteString(w, m.enter) }

// Leave switches m off.
func (m Mode) Leave(w io.Writer) { io.WriteString(w, m.leave) }

// ClearScreen erases the screen and homes the cursor.
func ClearScreen(w io.Writer) { io.WriteString(w, "\033[H\033[2J") }

// ResetStyle drops every SGR attribute.
func ResetStyle(w io.Writer) { io.WriteString(w, "\033[0m") }

// writeChunks sends data to w at most maxChunkSize bytes per write.
func writeChunks(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// ChunkWriter collects one frame of overlay text (HUD, menus, score
// particles) and sends it in chunks on Flush. Positions are 1-based within
// the render area; the area's offset on the real screen is added for you.
type ChunkWriter struct {
	frame   bytes.Buffer
	out     *bufio.Writer
	scratch [20]byte
	col     int // Offset of the render area
	row     int
}

var _ io.Writer = (*ChunkWriter)(nil)

// NewChunkWriter returns a ChunkWriter for w with the render area placed
// at the given offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	cw := &ChunkWriter{out: bufio.NewWriterSize(w, 8192)}
	cw.SetOffset(offsetCol, offsetRow)
	return cw
}

// SetOffset moves the render area, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.col, cw.row = offsetCol, offsetRow
}

// MoveCursor queues a cursor jump to (col, row) of the render area.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	b := append(cw.scratch[:0], '\033', '[')
	b = strconv.AppendInt(b, int64(row+cw.row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col+cw.col), 10)
	cw.frame.Write(append(b, 'H'))
}

// Write queues p verbatim. Canvas.Render writes through this.
func (cw *ChunkWriter) Write(p []byte) (int, error) { return cw.frame.Write(p) }

// WriteString queues s verbatim.
func (cw *ChunkWriter) WriteString(s string) { cw.frame.WriteString(s) }

// WriteAt queues s starting at (col, row) of the render area.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.frame.WriteString(s)
}

// Flush sends everything queued since the last Flush.
func (cw *ChunkWriter) Flush() error {
	defer cw.frame.Reset()
	if err := writeChunks(cw.out, cw.frame.Bytes()); err != nil {
		return err
	}
	return cw.out.Flush()
}
