package components

import (
	cfg "github.com/automoto/trajectory/config"
	"github.com/yohamta/donburi"
)

// ActionState is the derived state of one action for the current frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds the raw action buffers and the cursor position.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	CursorX  int
	CursorY  int
}

var Input = donburi.NewComponentType[InputData]()
