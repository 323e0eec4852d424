package core

import (
	"log"
	"sort"

	"github.com/automoto/trajectory/components"
)

type hitRecord struct {
	shooter int
	owner   int
}

// beneficiary is who scores when shooter is hit by a projectile of owner.
func (r *Round) beneficiary(h hitRecord) int {
	if h.owner != h.shooter {
		return h.owner
	}
	return (h.shooter + 1) % len(r.shooters)
}

// resolveHits scores every distinct shooter hit this tick once, hands the
// turn to the beneficiary of the lowest-index hit shooter and resets the
// round.
func (r *Round) resolveHits(hits []hitRecord) {
	seen := make(map[int]hitRecord, len(hits))
	for _, h := range hits {
		if _, ok := seen[h.shooter]; !ok {
			seen[h.shooter] = h
		}
	}
	hitShooters := make([]int, 0, len(seen))
	for s := range seen {
		hitShooters = append(hitShooters, s)
	}
	sort.Ints(hitShooters)

	for _, s := range hitShooters {
		b := r.beneficiary(seen[s])
		components.Shooter.Get(r.shooters[b]).Score++
	}
	r.turn = r.beneficiary(seen[hitShooters[0]])

	prev := r.id
	if err := r.Reset(); err != nil {
		log.Printf("Round %s: reset failed: %v", prev, err)
	}
	r.reset = &ResetEvent{
		PreviousID: prev,
		RoundID:    r.id,
		Hit:        hitShooters,
		Scores:     r.Scores(),
		Next:       r.turn,
	}
	log.Printf("Round %s: shooters %v hit, scores %v, new round %s", prev, hitShooters, r.reset.Scores, r.id)
}

// escalate deactivates the next movable source once enough volleys have
// cleared without a hit, and fades the archive.
func (r *Round) escalate() {
	k := r.cfg.Escalation.ShotsPerStep
	if k <= 0 || len(r.active) > 0 || r.shots < (r.escalations+1)*k {
		return
	}
	r.escalations++

	if f := r.cfg.Escalation.FadeFactor; f > 0 {
		r.fadeArchive(f)
	}

	target := r.nextEscalationSource()
	if target < 0 {
		log.Printf("Round %s: escalation %d after %d shots, no movable source left", r.id, r.escalations, r.shots)
		return
	}
	e := r.sources[target]
	components.GravitySource.Get(e).Weight = 0
	components.Body.Get(e).Color = r.cfg.InertColor
	r.rebuildGravity()

	log.Printf("Round %s: escalation %d after %d shots, source %d inert", r.id, r.escalations, r.shots, target)
}

// nextEscalationSource returns the index of the first active movable source
// in escalation order, or -1.
func (r *Round) nextEscalationSource() int {
	for i, e := range r.sources {
		src := components.GravitySource.Get(e)
		if !src.Fixed && src.Active() {
			return i
		}
	}
	return -1
}
