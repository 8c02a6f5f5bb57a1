package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order
const (
	LayerBackground ecs.LayerID = iota
	LayerCharacter
	LayerOverlay
)

// Default is the layer used when spawning entities
const Default = LayerBackground
