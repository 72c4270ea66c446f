package components

import (
	cfg "github.com/automoto/jumpdash/config"
	"github.com/yohamta/donburi"
)

// InputData is the singleton polled-input component with one frame of
// history, so systems can derive edges without polling the backend again.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// ActionState is the derived state for a single action on one frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

var Input = donburi.NewComponentType[InputData]()
