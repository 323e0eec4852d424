package config

// ActionID represents a logical front-end action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFire
	ActionToggleRange
	ActionRestart
	ActionBack
	ActionCount // Must be last - used for array sizing
)
