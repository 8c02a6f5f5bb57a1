package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Background = donburi.NewTag().SetName("Background")
	Joystick   = donburi.NewTag().SetName("Joystick")
)

// Resolv tags for the joystick regions are the direction names
// ("up", "down", "left", "right"); the space holds nothing else.
