package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/termsnake/audio"
	"github.com/lixenwraith/termsnake/component"
	"github.com/lixenwraith/termsnake/constant"
	"github.com/lixenwraith/termsnake/core"
	"github.com/lixenwraith/termsnake/input"
	"github.com/lixenwraith/termsnake/render"
	"github.com/lixenwraith/termsnake/status"
	"github.com/lixenwraith/termsnake/system"
)

// Sentinel errors
var (
	ErrBoardTooSmall = errors.New("board too small")
	ErrNilRenderer   = errors.New("renderer is nil")
	ErrNilInput      = errors.New("input source is nil")
)

// Config holds the per-session board settings
type Config struct {
	Width  int
	Height int
	Seed   uint64 // 0 derives a seed from the wall clock
}

// DefaultConfig returns the standard 20x20 board with a clock-derived seed
func DefaultConfig() Config {
	return Config{
		Width:  constant.DefaultBoardWidth,
		Height: constant.DefaultBoardHeight,
	}
}

// Game owns one session: the snake, the current food and the tick loop
// Not safe for concurrent use; Run and Tick must be called from one goroutine
type Game struct {
	width  int
	height int
	seed   uint64

	snake *component.Snake
	food  *core.Point
	score int
	speed int
	state GameState

	reason    EndReason
	ticks     int
	sessionID string

	spawner  *system.FoodSpawner
	renderer render.Renderer
	input    input.Source
	clock    TimeProvider
	sound    audio.Player
	metrics  *status.Registry

	// Cached metric pointers
	tickCount     *atomic.Int64
	turnsAccepted *atomic.Int64
	turnsRejected *atomic.Int64
	foodEaten     *atomic.Int64
	speedUps      *atomic.Int64
}

// NewGame validates cfg and builds a session with a centered length-3 snake facing a random heading
func NewGame(cfg Config, renderer render.Renderer, source input.Source) (*Game, error) {
	if cfg.Width < constant.MinBoardSize || cfg.Height < constant.MinBoardSize {
		return nil, fmt.Errorf("%w: %dx%d, minimum %dx%d",
			ErrBoardTooSmall, cfg.Width, cfg.Height, constant.MinBoardSize, constant.MinBoardSize)
	}
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if source == nil {
		return nil, ErrNilInput
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	spawner := system.NewFoodSpawner(seed)

	start := core.Point{X: cfg.Width / 2, Y: cfg.Height / 2}
	heading := spawner.RandomDirection()

	g := &Game{
		width:     cfg.Width,
		height:    cfg.Height,
		seed:      seed,
		snake:     component.NewSnake(start, constant.InitialSnakeLength, constant.InitialSnakeSpeed, heading),
		speed:     constant.InitialSnakeSpeed,
		state:     StateRunning,
		sessionID: uuid.New().String(),
		spawner:   spawner,
		renderer:  renderer,
		input:     source,
		clock:     NewMonotonicTimeProvider(),
	}
	g.SetMetrics(status.NewRegistry())
	return g, nil
}

// SetTimeProvider replaces the clock used for tick deadlines
func (g *Game) SetTimeProvider(tp TimeProvider) {
	if tp != nil {
		g.clock = tp
	}
}

// SetSoundPlayer attaches an optional sound cue player, nil disables cues
func (g *Game) SetSoundPlayer(p audio.Player) {
	g.sound = p
}

// SetMetrics replaces the session metrics registry
func (g *Game) SetMetrics(reg *status.Registry) {
	if reg == nil {
		return
	}
	g.metrics = reg
	g.tickCount = reg.Ints.Get(status.KeyTicks)
	g.turnsAccepted = reg.Ints.Get(status.KeyTurnsAccepted)
	g.turnsRejected = reg.Ints.Get(status.KeyTurnsRejected)
	g.foodEaten = reg.Ints.Get(status.KeyFoodEaten)
	g.speedUps = reg.Ints.Get(status.KeySpeedUps)
	reg.Strings.Get(status.KeySessionID).Store(g.sessionID)
}

// Score returns the number of food items eaten
func (g *Game) Score() int { return g.score }

// Speed returns the current speed level
func (g *Game) Speed() int { return g.speed }

// State returns the session state
func (g *Game) State() GameState { return g.state }

// Reason returns why the session ended, ReasonNone while running
func (g *Game) Reason() EndReason { return g.reason }

// Ticks returns the number of ticks played
func (g *Game) Ticks() int { return g.ticks }

// Seed returns the effective RNG seed
func (g *Game) Seed() uint64 { return g.seed }

// SessionID returns the session uuid
func (g *Game) SessionID() string { return g.sessionID }

// Snake returns the player snake
func (g *Game) Snake() *component.Snake { return g.snake }

// Metrics returns the session metrics registry
func (g *Game) Metrics() *status.Registry { return g.metrics }

// Food returns a copy of the current food cell, nil when absent
func (g *Game) Food() *core.Point {
	if g.food == nil {
		return nil
	}
	f := *g.food
	return &f
}

// Result snapshots the session outcome
func (g *Game) Result() Result {
	return Result{
		SessionID: g.sessionID,
		Score:     g.score,
		Speed:     g.speed,
		Length:    g.snake.Len(),
		Ticks:     g.ticks,
		Reason:    g.reason,
	}
}

// Run initializes the renderer, plays ticks until game over and restores the renderer
// Restore runs on every exit path including panics unwinding through Run
func (g *Game) Run(ctx context.Context) (Result, error) {
	if err := g.renderer.Init(); err != nil {
		return g.Result(), fmt.Errorf("renderer init: %w", err)
	}
	defer g.renderer.Restore()

	log.Printf("Session %s started: board %dx%d, seed %d, heading %s",
		g.sessionID, g.width, g.height, g.seed, g.snake.Direction())

	g.placeFood()
	if err := g.render(); err != nil {
		g.end(ReasonError)
		return g.Result(), fmt.Errorf("render: %w", err)
	}

	for g.state == StateRunning {
		if _, err := g.step(ctx); err != nil {
			return g.Result(), err
		}
	}
	return g.Result(), nil
}

// Tick plays one tick and reports whether the session is still running
// A render failure ends the session with ReasonError and is returned
func (g *Game) Tick(ctx context.Context) (bool, error) {
	return g.step(ctx)
}

func (g *Game) step(ctx context.Context) (bool, error) {
	if g.state != StateRunning {
		return false, nil
	}

	if g.food == nil {
		g.placeFood()
	}

	outcome := g.collectInput(ctx)
	if outcome == inputCancelled {
		g.end(ReasonQuit)
		return false, nil
	}

	g.ticks++
	g.tickCount.Add(1)

	if !g.advance() {
		return false, nil
	}

	if err := g.render(); err != nil {
		g.end(ReasonError)
		log.Printf("Render failed: %v", err)
		return false, fmt.Errorf("render: %w", err)
	}

	// Quit still plays out the tick it arrived in
	if outcome == inputQuit {
		g.end(ReasonQuit)
		return false, nil
	}
	return true, nil
}

// inputOutcome is how a tick's input collection finished
type inputOutcome uint8

const (
	inputElapsed   inputOutcome = iota // Tick deadline reached
	inputQuit                          // Player asked to quit
	inputCancelled                     // Context cancelled
)

// collectInput polls until the tick deadline, applying turns against the tick-start heading
// A quit command stops polling early
func (g *Game) collectInput(ctx context.Context) inputOutcome {
	heading := g.snake.Direction()
	deadline := g.clock.Now().Add(system.Interval(g.speed))

	for {
		remaining := deadline.Sub(g.clock.Now())
		if remaining <= 0 {
			return inputElapsed
		}

		cmd, ok := g.input.Poll(ctx, remaining)
		if ctx.Err() != nil {
			return inputCancelled
		}
		if !ok {
			continue
		}

		switch cmd.Kind {
		case core.CommandQuit:
			return inputQuit
		case core.CommandTurn:
			if heading.Perpendicular(cmd.Direction) {
				g.snake.SetDirection(cmd.Direction)
				g.turnsAccepted.Add(1)
			} else {
				g.turnsRejected.Add(1)
			}
		}
	}
}

// advance moves the snake one cell, returns false if the move ended the session
func (g *Game) advance() bool {
	if g.snake.HitWall(g.width, g.height) {
		g.end(ReasonWall)
		return false
	}
	if g.snake.BitSelf() {
		g.end(ReasonSelf)
		return false
	}

	g.snake.Slither()

	if g.food == nil || g.snake.Head() != *g.food {
		return true
	}

	g.snake.Grow()
	g.score++
	g.food = nil
	g.foodEaten.Add(1)
	g.play(audio.SoundEat)

	if g.snake.Len() >= g.width*g.height {
		g.end(ReasonBoardFull)
		return false
	}
	g.placeFood()

	if system.ShouldSpeedUp(g.score, g.width, g.height) {
		g.speed++
		g.snake.SetSpeed(g.speed)
		g.speedUps.Add(1)
		g.play(audio.SoundSpeedUp)
		log.Printf("Speed up: level %d at score %d, interval %v", g.speed, g.score, system.Interval(g.speed))
	}
	return true
}

func (g *Game) placeFood() {
	p := g.spawner.Place(g.snake, g.width, g.height)
	g.food = &p
}

func (g *Game) render() error {
	return g.renderer.Render(render.Frame{
		Food:  g.Food(),
		Body:  g.snake.Body(),
		Score: g.score,
		Speed: g.speed,
	})
}

func (g *Game) end(reason EndReason) {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.reason = reason
	g.metrics.Strings.Get(status.KeyEndReason).Store(reason.String())

	if reason.Collision() {
		g.play(audio.SoundCrash)
	}
	log.Printf("Session %s over: %s, score %d, speed %d [%s]",
		g.sessionID, reason, g.score, g.speed, g.metrics)
}

func (g *Game) play(sound audio.SoundType) {
	if g.sound != nil {
		g.sound.Play(sound)
	}
}
