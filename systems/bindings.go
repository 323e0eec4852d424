package systems

import (
	cfg "github.com/automoto/trajectory/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// Bindings maps every action to its inputs. It lives here rather than in
// config so config stays free of ebiten.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionFire: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	},
	cfg.ActionToggleRange: {
		Keys: []ebiten.Key{ebiten.KeyR},
	},
	cfg.ActionRestart: {
		Keys: []ebiten.Key{ebiten.KeyN},
	},
	cfg.ActionBack: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}
