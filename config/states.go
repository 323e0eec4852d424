package config

// ProjectileState tracks a projectile from launch to the archive.
type ProjectileState int

const (
	StateFlying ProjectileState = iota
	StateHit
	StateCrashed
	StateOutOfBounds
	StateExhausted
	StateStalled
	StateArchived
)

var projectileStateNames = map[ProjectileState]string{
	StateFlying:      "flying",
	StateHit:         "hit",
	StateCrashed:     "crashed",
	StateOutOfBounds: "out-of-bounds",
	StateExhausted:   "exhausted",
	StateStalled:     "stalled",
	StateArchived:    "archived",
}

func (s ProjectileState) String() string {
	if name, ok := projectileStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the state ends a projectile's flight.
func (s ProjectileState) Terminal() bool {
	return s != StateFlying
}
