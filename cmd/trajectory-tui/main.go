// Command trajectory-tui plays the artillery variants in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	cfg "github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/core"
	"github.com/automoto/trajectory/shared/arena"
	"github.com/gdamore/tcell/v2"
)

func main() {
	variantName := flag.String("variant", "slingshot", "game variant (golf or slingshot)")
	seed := flag.Int64("seed", 0, "random seed, 0 for a time-based seed")
	tickRate := flag.Int("tick", cfg.C.TPS, "simulation ticks per second")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "append logs to this file instead of discarding them")
	flag.Parse()

	// The terminal owns stdout and stderr while the game runs.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	variant, err := cfg.ParseVariant(*variantName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -variant: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg.Variant(variant), *seed, *tickRate, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(variant cfg.VariantConfig, seed int64, tickRate int, mute bool) error {
	layout, err := arena.Builtin(variant.ID.String())
	if err != nil {
		log.Printf("Warning: using default spawns for %s: %v", variant.ID, err)
	}
	round, err := core.NewRound(variant, core.Options{Seed: seed, Layout: layout})
	if err != nil {
		return fmt.Errorf("start %s round: %w", variant.ID, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	snd := newSounds(mute)
	defer snd.close()

	v := newView(screen, round.Bounds())
	loop := core.NewGameLoop(round, tickRate)
	escalations := 0
	loop.OnTick = func(r *core.Round, rep core.TickReport) {
		switch {
		case rep.Reset != nil:
			snd.play(cfg.SoundHit)
			v.status = fmt.Sprintf("hit! shooter %d plays next", rep.Reset.Next)
		case rep.Fired > 0:
			snd.play(cfg.SoundFire)
			v.status = ""
		case rep.FireErr != nil && !errors.Is(rep.FireErr, core.ErrVolleyInFlight):
			v.status = rep.FireErr.Error()
		}
		if n := r.Escalations(); n > escalations {
			snd.play(cfg.SoundEscalate)
		}
		escalations = r.Escalations()
		v.draw(r)
	}
	go loop.Run()
	defer loop.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	pressed := false
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventMouse:
			down := ev.Buttons()&tcell.Button1 != 0
			if down && !pressed {
				if target, ok := v.target(ev.Position()); ok {
					loop.Fire(core.FireCommand{Shooter: -1, Target: target})
				}
			}
			pressed = down
		case *tcell.EventResize:
			v.resize(round.Bounds())
			screen.Sync()
		}
	}
	return nil
}
