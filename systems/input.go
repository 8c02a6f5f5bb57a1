package systems

import (
	"slices"

	"github.com/automoto/scrollwalk/components"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls keys and pointers and resolves this tick's movement input.
// Must run BEFORE UpdateMovement in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.Pointers = appendPointers(input.Pointers[:0], cfg.Input.MaxPointers)

	input.Motion = motion.Input{}
	for dir, action := range cfg.MoveActions {
		input.Motion.Keys[dir] = input.Current[action]
	}
	if entry, ok := components.Joystick.First(ecs.World); ok {
		joystick := components.Joystick.Get(entry)
		input.Motion.Touch = motion.ResolveTouch(joystick.Regions, input.Pointers)
	}
}

// appendPointers appends up to limit active pointer positions in scan order:
// the held left mouse button first, then touches by ascending ID.
func appendPointers(dst []math.Vec2, limit int) []math.Vec2 {
	if limit <= 0 {
		return dst
	}
	if cfg.Input.MouseAsPointer && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, math.NewVec2(float64(x), float64(y)))
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	slices.Sort(touchIDs)
	for _, id := range touchIDs {
		if len(dst) >= limit {
			break
		}
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, math.NewVec2(float64(x), float64(y)))
	}
	return dst
}

// UpdateSettings handles the debug toggle and quit request.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.QuitRequested = true
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Overlay})
	}
	return components.Settings.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
