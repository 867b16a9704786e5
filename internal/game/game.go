// Package game implements the falling-blocks dodge game: the player slides
// along the bottom of the board while blocks rain down from the top.
package game

import (
	"fmt"

	"github.com/vimkim/dodge/internal/config"
	"github.com/vimkim/dodge/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	BlockChar  = '#'
)

// Game implements the dodge game logic.
// The playfield is the inner area of the screen, inside a one-cell border.
type Game struct {
	playerX  int         // Player column, clamped to [0, width-1]
	playerY  int         // Player row, fixed near the bottom after Reset
	field    *blockField // Falling blocks
	score    int         // Ticks survived
	gameOver bool
	paused   bool
	width    int // Playfield width (inner area)
	height   int // Playfield height (inner area)
	runtime  core.RuntimeConfig
	cfg      config.Config
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	// Playfield is the screen minus the border, with floors for tiny terminals.
	inner := core.NewRect(0, 0, runtime.ScreenW, runtime.ScreenH).Inner()
	g.width = core.Max(inner.W, cfg.Board.MinWidth)
	g.height = core.Max(inner.H, cfg.Board.MinHeight)

	g.playerX = g.width / 2
	g.playerY = core.Max(g.height-2, 0)
	g.score = 0
	g.gameOver = false
	g.paused = false

	if g.field == nil {
		g.field = newBlockField(runtime.Seed, g.width, g.height, cfg.Spawn.Probability)
	} else {
		g.field.width = g.width
		g.field.height = g.height
		g.field.prob = cfg.Spawn.Probability
		g.field.reset(runtime.Seed)
	}
}

// Step advances the game by one tick: spawn, advance, cull, score, then the
// collision check. Once the game is over no further ticks take effect.
func (g *Game) Step() core.StepResult {
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.field.step()
	g.score++

	if g.CheckCollision() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// Apply handles an input action immediately. Movement is clamped to the
// playfield with no wraparound and ignored once the game is over or paused.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		if !g.gameOver && !g.paused {
			g.playerX = core.Clamp(g.playerX-1, 0, g.width-1)
		}
	case core.ActionRight:
		if !g.gameOver && !g.paused {
			g.playerX = core.Clamp(g.playerX+1, 0, g.width-1)
		}
	case core.ActionPause:
		if !g.gameOver {
			g.paused = !g.paused
		}
	}
}

// CheckCollision reports whether any live block occupies the player's cell.
// Pure query, no side effects.
func (g *Game) CheckCollision() bool {
	return g.field.collides(g.playerX, g.playerY)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Bordered frame with the score in the title
	frame := dst.Bounds()
	dst.DrawBox(frame)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	// Playfield contents are offset by the border
	origin := frame.Inner()

	for _, b := range g.field.Blocks() {
		dst.Set(origin.X+b.X, origin.Y+b.Y, BlockChar)
	}

	dst.SetCell(origin.X+g.playerX, origin.Y+g.playerY, PlayerChar, core.ColorYellow)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart, Q quit", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// PlayerX returns the player's current column.
func (g *Game) PlayerX() int {
	return g.playerX
}

// Width returns the playfield width.
func (g *Game) Width() int {
	return g.width
}

// Height returns the playfield height.
func (g *Game) Height() int {
	return g.height
}

var _ core.Game = (*Game)(nil)
