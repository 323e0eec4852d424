package systems

import (
	"errors"
	"log"

	"github.com/automoto/trajectory/components"
	cfg "github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/core"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewUpdateRound returns the system that feeds input into round and
// advances it one step per frame. onBack is called when the player leaves
// the game.
func NewUpdateRound(round *core.Round, onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		session := GetOrCreateSession(e, round)

		if GetAction(input, cfg.ActionBack).JustPressed {
			onBack()
			return
		}
		if GetAction(input, cfg.ActionToggleRange).JustPressed {
			session.ShowRange = !session.ShowRange
			SavePreferences(&SavedPreferences{
				LastVariant: int(session.Variant),
				ShowRange:   session.ShowRange,
			})
		}

		if !IsTransitioning(e) {
			if GetAction(input, cfg.ActionRestart).JustPressed && len(round.Projectiles()) == 0 {
				if err := round.Reset(); err != nil {
					log.Printf("Round %s: restart failed: %v", round.ID(), err)
				}
			}
			if GetAction(input, cfg.ActionFire).JustPressed {
				fire(round, session, input)
			}
		}

		round.Tick(0)
		if ev, ok := round.ConsumeReset(); ok {
			StartTransition(e, round.Config().ResetPause)
			session.LastError = ""
			log.Printf("Round %s: shooter %d plays next", ev.RoundID, ev.Next)
		}
		syncSession(session, round)
	}
}

func fire(round *core.Round, session *components.SessionData, input *components.InputData) {
	target := dmath.Vec2{X: float64(input.CursorX), Y: float64(input.CursorY)}
	_, err := round.Fire(round.Turn(), target)
	var aimErr *core.InvalidAimError
	switch {
	case err == nil:
		session.LastError = ""
	case errors.Is(err, core.ErrVolleyInFlight):
		// Clicking during a volley is expected; stay quiet.
	case errors.As(err, &aimErr):
		session.LastError = aimErr.Reason
	default:
		session.LastError = err.Error()
	}
}

// GetOrCreateSession returns the singleton Session component, creating if
// needed.
func GetOrCreateSession(e *ecs.ECS, round *core.Round) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
		s := components.Session.Get(entry)
		s.Variant = round.Config().ID
		if saved := LoadPreferences(); saved != nil {
			s.ShowRange = saved.ShowRange
		}
		syncSession(s, round)
	}
	return components.Session.Get(entry)
}

func syncSession(s *components.SessionData, round *core.Round) {
	s.RoundID = round.ID()
	s.Turn = round.Turn()
	s.VInitMax = round.VInitMax()
	s.Shots = round.Shots()
	s.Escalations = round.Escalations()
}
