package systems

import (
	"log"

	"github.com/automoto/scrollwalk/components"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// ConfigReloader returns a system that re-applies the config file whenever the
// watcher reports a change. It never blocks the frame.
func ConfigReloader(w *cfg.Watcher) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			f, err := cfg.ReadFile(path)
			if err != nil {
				log.Printf("Warning: Could not reload config: %v", err)
				return
			}
			cfg.ApplyTunables(f)
			ApplyTunables(ecs)
			log.Printf("Reloaded %s", path)
		case err, ok := <-w.Errors:
			if ok {
				log.Printf("Warning: Config watcher error: %v", err)
			}
		default:
		}
	}
}

// ApplyTunables pushes the current config into components that cache it.
func ApplyTunables(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	anim := components.Animation.Get(playerEntry)
	anim.Set.SetInterval(cfg.Movement.FrameInterval)
}
