// Package client runs one player's game on a terminal: it pumps frames,
// feeds keyboard and mouse input to the player's session and draws it.
package client

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/fishnet/internal/draw"
	"github.com/tomz197/fishnet/internal/input"
	"github.com/tomz197/fishnet/internal/loop"
	"github.com/tomz197/fishnet/internal/loop/config"
	"github.com/tomz197/fishnet/internal/loop/server"
	"github.com/tomz197/fishnet/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	session      *loop.Session
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	styles       styles
	reader       *bufio.Reader
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Tuning       *config.Tuning    // Defaults to config.DefaultTuning()
	Logger       *log.Logger       // Defaults to log.Default()
	Rand         object.RandSource // Defaults to a time-seeded generator

	// Handle is a registration the caller already holds. When nil the
	// client registers itself with the server.
	Handle *server.ClientHandle
}

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	tuning := config.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("user", opts.Username)

	handle := opts.Handle
	if handle == nil {
		handle = gs.RegisterClient(opts.Username)
	}
	state := NewClientState()
	state.termSizeFunc = termSizeFunc

	c := &Client{
		server:       gs,
		handle:       handle,
		state:        state,
		reader:       r,
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}

	sessionOpts := []loop.Option{loop.WithObserver(c.logEvent)}
	if opts.Rand != nil {
		sessionOpts = append(sessionOpts, loop.WithRand(opts.Rand))
	}
	c.session = loop.NewSession(tuning, sessionOpts...)

	// The writer is usually an SSH channel, not a TTY, so colour support
	// cannot be detected from it.
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI256)
	c.styles = newStyles(renderer)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	c.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, tuning.PlayWidth, tuning.PlayHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter = draw.NewChunkWriter(w, offsetCol, offsetRow)

	return c
}

// Run starts the client loop. Blocks until the client disconnects or server stops.
func (c *Client) Run() error {
	draw.CursorHidden.Enter(c.writer)
	draw.MouseTracking.Enter(c.writer)
	defer draw.CursorHidden.Leave(c.writer)
	defer draw.MouseTracking.Leave(c.writer)
	draw.ClearScreen(c.writer)

	c.logger.Info("client connected")
	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// Process input
		c.processInput()

		// Check for server events
		c.processServerEvents()

		// Handle screen resize
		c.updateScreen()

		// Handle game state
		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.updatePlayingState()
		case GameStateHelp:
			c.updateHelpState()
		case GameStateShutdown:
			c.updateShutdownState()
		}

		// Draw frame
		if err := c.drawFrame(); err != nil {
			c.server.UnregisterClient(c.handle.ID)
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	// Unregister from server
	c.server.UnregisterClient(c.handle.ID)
	c.logger.Info("client disconnected", "score", c.session.Score())

	draw.ResetStyle(c.writer)
	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads this frame's input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.session.Pause()
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.ForceRedraw()
	}

	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateStartState handles the title screen.
func (c *Client) updateStartState() {
	if c.state.Input.Start {
		input.ResetKeyInput(c.inputStream)
		c.session.Restart()
		c.state.GameState = GameStatePlaying
	}
}

// updatePlayingState applies this frame's commands, steers the net and
// advances the session by one frame.
func (c *Client) updatePlayingState() {
	inp := c.state.Input

	switch {
	case inp.Help:
		c.openHelp()
		return
	case inp.Restart, inp.Start && c.session.Ended():
		input.ResetKeyInput(c.inputStream)
		c.session.Restart()
	case inp.Toggle:
		c.session.Toggle()
	}

	// The net ignores the player while the game is paused or over.
	if !c.session.Paused() && !c.session.Ended() {
		width, height := c.session.PlayArea()
		x, y := netTarget(c.session.Catcher(), inp, c.canvas.TerminalToLogical, width, height)
		c.session.SetCatcherPosition(x, y)
	}

	c.session.Tick()
}

// openHelp shows the help overlay and pauses the game.
func (c *Client) openHelp() {
	c.session.Pause()
	c.state.GameState = GameStateHelp
}

// updateHelpState waits for the help overlay to be dismissed. Particles
// keep fading behind it.
func (c *Client) updateHelpState() {
	inp := c.state.Input
	if inp.Help || inp.Toggle || inp.Start {
		// Closing help always resumes; a finished game stays over.
		c.session.Resume()
		c.state.GameState = GameStatePlaying
	}
	c.session.Tick()
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
	c.session.Tick()
}

// netTarget returns where the net's top-left corner goes this frame. The
// net centres on the pointer when it is over the pond; held movement keys
// then nudge it. The net's centre never leaves the pond.
func netTarget(net object.Catcher, inp input.Input, toLogical func(col, row int) (float64, float64, bool), width, height float64) (x, y float64) {
	x, y = net.X, net.Y

	if inp.Mouse.OK {
		if px, py, ok := toLogical(inp.Mouse.Col, inp.Mouse.Row); ok {
			x = px - net.Width/2
			y = py - net.Height/2
		}
	}

	if inp.Left {
		x -= config.NetKeyStep
	}
	if inp.Right {
		x += config.NetKeyStep
	}
	if inp.Up {
		y -= config.NetKeyStep
	}
	if inp.Down {
		y += config.NetKeyStep
	}

	x = clamp(x, -net.Width/2, width-net.Width/2)
	y = clamp(y, -net.Height/2, height-net.Height/2)
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// logEvent reports session events to the client's logger.
func (c *Client) logEvent(ev loop.Event) {
	switch ev.Type {
	case loop.EventCatch:
		c.logger.Debug("fish caught", "kind", ev.Kind, "value", ev.Value, "score", ev.Score)
	case loop.EventMiss:
		c.logger.Debug("fish missed", "kind", ev.Kind, "lives", ev.Lives)
	case loop.EventGameOver:
		c.logger.Info("game over", "score", ev.Score)
	case loop.EventRestart:
		c.logger.Debug("game restarted")
	}
}
