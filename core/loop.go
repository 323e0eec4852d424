package core

import (
	"log"
	"sync"
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

// FireCommand asks the loop to fire on the next tick. A negative Shooter
// fires for whoever's turn it is.
type FireCommand struct {
	Shooter int
	Target  dmath.Vec2
}

// TickReport is what the loop hands to its observer after every tick.
type TickReport struct {
	Fired   int // projectiles launched this tick
	FireErr error
	Changes []StateChange
	Reset   *ResetEvent
	Paused  bool
}

// GameLoop drives a Round at a fixed rate for front-ends without their own
// frame loop. The round is only touched from the loop goroutine.
type GameLoop struct {
	round      *Round
	tickRate   int
	resetPause time.Duration
	running    bool
	stopChan   chan struct{}
	stopOnce   sync.Once
	commands   chan FireCommand

	pausedUntil time.Time

	// OnTick runs on the loop goroutine after every tick.
	OnTick func(r *Round, report TickReport)
}

func NewGameLoop(round *Round, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		round:      round,
		tickRate:   tickRate,
		resetPause: time.Duration(round.Config().ResetPause * float64(time.Second)),
		stopChan:   make(chan struct{}),
		commands:   make(chan FireCommand, 1),
	}
}

// Fire queues a command without blocking. It returns false when a command
// is already waiting.
func (g *GameLoop) Fire(cmd FireCommand) bool {
	select {
	case g.commands <- cmd:
		return true
	default:
		return false
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case now := <-ticker.C:
			g.tick(now)
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick(now time.Time) {
	var report TickReport

	if now.Before(g.pausedUntil) {
		// Drop input while the reset transition plays.
		select {
		case <-g.commands:
		default:
		}
		report.Paused = true
		g.notify(report)
		return
	}

	select {
	case cmd := <-g.commands:
		shooter := cmd.Shooter
		if shooter < 0 {
			shooter = g.round.Turn()
		}
		fired, err := g.round.Fire(shooter, cmd.Target)
		report.Fired = len(fired)
		report.FireErr = err
	default:
	}

	report.Changes = g.round.Tick(0)
	if ev, ok := g.round.ConsumeReset(); ok {
		report.Reset = &ev
		g.pausedUntil = now.Add(g.resetPause)
	}
	g.notify(report)
}

func (g *GameLoop) notify(report TickReport) {
	if g.OnTick != nil {
		g.OnTick(g.round, report)
	}
}
