package components

import (
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions,
// the active pointers and the movement input resolved from them.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Pointers []math.Vec2 // active pointers in scan order
	Motion   motion.Input
}

var Input = donburi.NewComponentType[InputData]()
