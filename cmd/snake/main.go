package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/termsnake/audio"
	"github.com/lixenwraith/termsnake/constant"
	"github.com/lixenwraith/termsnake/core"
	"github.com/lixenwraith/termsnake/engine"
	"github.com/lixenwraith/termsnake/input"
	"github.com/lixenwraith/termsnake/render"
)

var (
	widthFlag  = flag.Int("width", constant.DefaultBoardWidth, "Board width in cells")
	heightFlag = flag.Int("height", constant.DefaultBoardHeight, "Board height in cells")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed for food and heading, 0 picks one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/snake.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound cues")
)

func main() {
	// Panic recovery: restore the terminal before reporting
	defer func() { core.HandleCrash(recover()) }()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	res, err := run(engine.Config{Width: *widthFlag, Height: *heightFlag, Seed: *seedFlag}, *muteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}

	fmt.Println(summary(res))
}

// run plays one session; the terminal is restored before it returns
func run(cfg engine.Config, mute bool) (engine.Result, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return engine.Result{}, errors.New("stdin and stdout must be a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return engine.Result{}, fmt.Errorf("create screen: %w", err)
	}

	renderer := render.NewTerminalRenderer(screen, cfg.Width, cfg.Height)
	source := input.NewTerminalSource(screen, nil)

	game, err := engine.NewGame(cfg, renderer, source)
	if err != nil {
		return engine.Result{}, err
	}

	audioCfg := audio.LoadAudioConfig()
	if mute {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
		game.SetSoundPlayer(sound)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return game.Run(ctx)
}

func summary(res engine.Result) string {
	return fmt.Sprintf("Game Over! Your score is %d", res.Score)
}
