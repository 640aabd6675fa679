package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/fishnet/internal/draw"
	"github.com/tomz197/fishnet/internal/loop/config"
	"github.com/tomz197/fishnet/internal/object"
)

// styles holds the lipgloss styles for text drawn over the canvas.
type styles struct {
	plain     lipgloss.Style
	heart     lipgloss.Style
	lostHeart lipgloss.Style
	score     lipgloss.Style
	label     lipgloss.Style
	title     lipgloss.Style
	warn      lipgloss.Style
	tiers     [3]lipgloss.Style // Indexed by object.Tier
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		plain:     r.NewStyle(),
		heart:     r.NewStyle().Foreground(lipgloss.Color("#ff4d6d")),
		lostHeart: r.NewStyle().Foreground(lipgloss.Color("#5c5c5c")),
		score:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		label:     r.NewStyle().Foreground(lipgloss.Color("#4facfe")),
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		warn:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")),
		tiers: [3]lipgloss.Style{
			object.TierDefault: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
			object.TierBlue:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4facfe")),
			object.TierGold:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")),
		},
	}
}

// tier returns the text style for a score tier.
func (s styles) tier(t object.Tier) lipgloss.Style {
	if int(t) < 0 || int(t) >= len(s.tiers) {
		return s.tiers[object.TierDefault]
	}
	return s.tiers[t]
}

// moods pairs the fisher's portrait with the score that unlocks it,
// best first.
var moods = []struct {
	minScore int
	face     string
	label    string
}{
	{config.MoodEcstatic, `\(^O^)/`, "ecstatic"},
	{config.MoodThrilled, "(^o^)", "thrilled"},
	{config.MoodExcited, "(^_^)", "excited"},
	{0, "(-_-)", "patient"},
}

// moodFor returns the fisher's portrait for a score.
func moodFor(score int) (face, label string) {
	for _, m := range moods {
		if score >= m.minScore {
			return m.face, m.label
		}
	}
	last := moods[len(moods)-1]
	return last.face, last.label
}

// fishLook is how a kind of fish is drawn.
type fishLook struct {
	body     draw.Ink
	fin      draw.Ink
	tail     float64 // Tail length as a fraction of the sprite size
	whiskers bool
}

var fishLooks = map[object.Kind]fishLook{
	object.Carp:      {body: draw.InkOrange, fin: draw.InkGold, tail: 0.30},
	object.Grasscarp: {body: draw.InkGreen, fin: draw.InkOlive, tail: 0.30},
	object.Catfish:   {body: draw.InkBrown, fin: draw.InkTan, tail: 0.25, whiskers: true},
	object.Beta:      {body: draw.InkMagenta, fin: draw.InkViolet, tail: 0.40},
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[0m\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	c.drawPond()

	if c.state.GameState != GameStateStart {
		c.drawFish(c.session.Fish(), c.session.FishSize())
		if c.state.GameState == GameStatePlaying && !c.session.Paused() && !c.session.Ended() {
			c.drawNet(c.session.Catcher())
		}
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	// Draw UI overlay
	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawPond draws the reeds in the side margins fish never fall through.
func (c *Client) drawPond() {
	width, height := c.session.PlayArea()
	left, right := c.session.Margins()
	for i, frac := range []float64{0.25, 0.5, 0.75} {
		top := height * (0.35 + 0.15*float64(i%2))
		if left > 0 {
			x := left * frac
			c.canvas.DrawLine(draw.Point{X: x, Y: height}, draw.Point{X: x, Y: top}, draw.InkOlive)
		}
		if right > 0 {
			x := width - right*frac
			c.canvas.DrawLine(draw.Point{X: x, Y: height}, draw.Point{X: x, Y: top + height*0.1}, draw.InkOlive)
		}
	}
}

// drawFish draws a fish sprite with its top-left corner at the fish's position.
func (c *Client) drawFish(f object.Fish, size float64) {
	look, ok := fishLooks[f.Kind]
	if !ok {
		look = fishLooks[object.Carp]
	}
	x, y, s := f.X, f.Y, size

	// Tail
	tail := look.tail * s
	c.canvas.DrawPolygon([]draw.Point{
		{X: x + 0.40*s, Y: y + 0.50*s},
		{X: x + 0.40*s - tail, Y: y + 0.50*s - tail*0.8},
		{X: x + 0.40*s - tail, Y: y + 0.50*s + tail*0.8},
	}, look.fin, true)

	// Body
	c.canvas.FillEllipse(x+0.35*s, y+0.30*s, 0.60*s, 0.40*s, look.body)

	// Dorsal fin
	c.canvas.DrawPolygon([]draw.Point{
		{X: x + 0.55*s, Y: y + 0.33*s},
		{X: x + 0.68*s, Y: y + 0.15*s},
		{X: x + 0.80*s, Y: y + 0.33*s},
	}, look.fin, true)

	// Eye
	c.canvas.SetFloat(x+0.85*s, y+0.45*s, draw.InkWhite)

	if look.whiskers {
		mouth := draw.Point{X: x + 0.94*s, Y: y + 0.52*s}
		c.canvas.DrawLine(mouth, draw.Point{X: x + 1.05*s, Y: y + 0.35*s}, look.fin)
		c.canvas.DrawLine(mouth, draw.Point{X: x + 1.05*s, Y: y + 0.70*s}, look.fin)
	}
}

// drawNet draws the catcher as a rim around a mesh.
func (c *Client) drawNet(n object.Catcher) {
	const cells = 4
	for i := 1; i < cells; i++ {
		fx := n.X + n.Width*float64(i)/cells
		fy := n.Y + n.Height*float64(i)/cells
		c.canvas.DrawLine(draw.Point{X: fx, Y: n.Y}, draw.Point{X: fx, Y: n.Y + n.Height}, draw.InkGray)
		c.canvas.DrawLine(draw.Point{X: n.X, Y: fy}, draw.Point{X: n.X + n.Width, Y: fy}, draw.InkGray)
	}
	c.canvas.DrawRect(n.X, n.Y, n.Width, n.Height, draw.InkWhite)
}

// writeText writes styled text at a 1-based canvas position and marks the
// cells dirty so the canvas erases them next frame. Text that does not fit
// on screen is dropped.
func (c *Client) writeText(col, row int, text string, style lipgloss.Style) {
	width := lipgloss.Width(text)
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	if col < 1 || col+width-1 > c.canvas.TerminalWidth() {
		return
	}
	c.chunkWriter.WriteAt(col, row, style.Render(text))
	c.canvas.MarkTextDirty(col, row, width)
}

// writeCentered writes text centred on column centerX.
func (c *Client) writeCentered(centerX, row int, text string, style lipgloss.Style) {
	c.writeText(centerX-lipgloss.Width(text)/2, row, text, style)
}

// drawUI draws the game UI overlay.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		c.drawParticles()
		c.drawHUD(termWidth, termHeight)
		switch {
		case c.session.Ended():
			c.drawGameOverScreen(centerX, centerY)
		case c.session.Paused():
			c.drawPausedScreen(centerX, centerY)
		}
	case GameStateHelp:
		c.drawHUD(termWidth, termHeight)
		c.drawHelpScreen(centerX, centerY)
	}
}

// drawParticles draws the floating "+N" texts left by catches.
func (c *Client) drawParticles() {
	c.session.Particles(func(p object.Particle) {
		col, row := c.canvas.LogicalToTerminal(p.X, p.Y)
		c.writeCentered(col, row, p.Text(), c.styles.tier(p.Tier()))
	})
}

// drawHUD draws hearts, score, the fisher's mood and the fall speed.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawHUD(termWidth, termHeight int) {
	lives := c.session.Lives()
	var hearts strings.Builder
	for i := 0; i < c.session.MaxLives(); i++ {
		if i < lives {
			hearts.WriteString(c.styles.heart.Render("♥"))
		} else {
			hearts.WriteString(c.styles.lostHeart.Render("♡"))
		}
		hearts.WriteByte(' ')
	}
	heartsWidth := 2 * c.session.MaxLives()
	if heartsWidth <= termWidth-1 {
		c.chunkWriter.WriteAt(2, 1, hearts.String())
		c.canvas.MarkTextDirty(2, 1, heartsWidth)
	}

	c.writeText(heartsWidth+3, 1, fmt.Sprintf("Score: %-6d", c.session.Score()), c.styles.score)

	face, label := moodFor(c.session.Score())
	moodText := fmt.Sprintf("%8s %-8s", face, label)
	c.writeText(termWidth-lipgloss.Width(moodText), 1, moodText, c.styles.label)

	c.writeText(2, termHeight, fmt.Sprintf("Speed: %-6.1f", c.session.Speed()), c.styles.label)

	online := fmt.Sprintf("Online: %-4d", c.server.Clients())
	c.writeText(termWidth-lipgloss.Width(online), termHeight, online, c.styles.label)
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		` ___ ___ ___ _  _ _  _ ___ _____ `,
		`| __|_ _/ __| || | \| | __|_   _|`,
		`| _| | |\__ \ __ | .` + "`" + ` | _|  | |  `,
		`|_| |___|___/_||_|_|\_|___| |_|  `,
	}

	titleStartY := centerY - 8
	for i, line := range titleArt {
		c.writeCentered(centerX, titleStartY+i, line, c.styles.title)
	}

	subtitle := "~ Catch the falling fish ~"
	c.writeCentered(centerX, titleStartY+len(titleArt)+1, subtitle, c.styles.label)

	controlsY := titleStartY + len(titleArt) + 3
	controlLines := c.controlLines()
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+i, line, c.styles.plain)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Start  <<"
		c.writeCentered(centerX, controlsY+len(controlLines)+1, prompt, c.styles.warn)
	}
}

// controlLines lists the key bindings and fish values.
func (c *Client) controlLines() []string {
	return []string{
		"Mouse / Arrows / WASD  . .  Move net",
		"P / Esc  . . . . . . . . .     Pause",
		"R  . . . . . . . . . . . .   Restart",
		"H / ?  . . . . . . . . . .      Help",
		"Q  . . . . . . . . . . . .      Quit",
		"",
		fmt.Sprintf("%s %d   %s %d   %s %d   %s %d",
			object.Carp, object.Carp.Value(),
			object.Grasscarp, object.Grasscarp.Value(),
			object.Catfish, object.Catfish.Value(),
			object.Beta, object.Beta.Value()),
	}
}

// drawHelpScreen draws the help overlay.
func (c *Client) drawHelpScreen(centerX, centerY int) {
	controlLines := c.controlLines()
	startY := centerY - (len(controlLines)+4)/2

	c.writeCentered(centerX, startY, "HOW TO PLAY", c.styles.title)
	c.writeCentered(centerX, startY+1, "Catch fish with the net before they slip past the bottom.", c.styles.plain)
	for i, line := range controlLines {
		c.writeCentered(centerX, startY+3+i, line, c.styles.plain)
	}
	c.writeCentered(centerX, startY+4+len(controlLines), "Press H to return to the game", c.styles.warn)
}

// drawPausedScreen draws the pause overlay.
func (c *Client) drawPausedScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-1, "PAUSED", c.styles.title)
	c.writeCentered(centerX, centerY+1, "Press P or Esc to resume", c.styles.label)
}

// drawGameOverScreen draws the game over overlay.
func (c *Client) drawGameOverScreen(centerX, centerY int) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}

	titleStartY := centerY - 5
	for i, line := range titleArt {
		c.writeCentered(centerX, titleStartY+i, line, c.styles.title)
	}

	c.writeCentered(centerX, titleStartY+len(titleArt)+1, "The fish got away!", c.styles.plain)

	scoreText := fmt.Sprintf("Final score: %d", c.session.Score())
	c.writeCentered(centerX, titleStartY+len(titleArt)+2, scoreText, c.styles.score)

	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press R to Play Again  <<"
		c.writeCentered(centerX, titleStartY+len(titleArt)+4, prompt, c.styles.warn)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING", c.styles.warn)

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerX, centerY, msg, c.styles.plain)

	c.writeCentered(centerX, centerY+2, "Press any key to continue", c.styles.label)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN", c.styles.warn)
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.", c.styles.plain)
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.", c.styles.plain)

	remaining := int(c.state.shutdownTimer) + 1
	countdown := fmt.Sprintf("Disconnecting in %-2d seconds...", remaining)
	c.writeCentered(centerX, centerY+2, countdown, c.styles.label)

	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now", c.styles.plain)
}
