package scenes

import (
	"log"
	"sync"

	"github.com/automoto/scrollwalk/assets"
	"github.com/automoto/scrollwalk/components"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/systems"
	"github.com/automoto/scrollwalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WalkScene is the movement demo: a centred character over a scrolling background.
type WalkScene struct {
	ecs      *ecs.ECS
	textures *assets.Textures
	watcher  *cfg.Watcher
	once     sync.Once
	closed   sync.Once
}

// NewWalkScene takes ownership of textures and, if non-nil, the config watcher.
func NewWalkScene(textures *assets.Textures, watcher *cfg.Watcher) *WalkScene {
	return &WalkScene{textures: textures, watcher: watcher}
}

func (ws *WalkScene) Update() error {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreateSettings(ws.ecs).QuitRequested {
		return ebiten.Termination
	}
	return nil
}

func (ws *WalkScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.ClearColor)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Close releases the textures and stops the watcher. Safe to call more than once.
func (ws *WalkScene) Close() {
	ws.closed.Do(func() {
		if ws.textures != nil {
			ws.textures.Dispose()
		}
		if ws.watcher != nil {
			if err := ws.watcher.Close(); err != nil {
				log.Printf("Warning: Could not close config watcher: %v", err)
			}
		}
	})
}

func (ws *WalkScene) configure() {
	ws.textures.Mirror = assets.MirrorTile(ws.textures.Background)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateJoystick)
	if ws.watcher != nil {
		ecs.AddSystem(systems.ConfigReloader(ws.watcher))
	}

	ecs.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	ecs.AddRenderer(cfg.LayerCharacter, systems.DrawCharacter)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawJoystick)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)

	ws.ecs = ecs

	spaceEntry := factory.CreateSpace(ws.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateJoystick(ws.ecs, components.Space.Get(spaceEntry), cfg.C.Width, cfg.C.Height)
	factory.CreateCamera(ws.ecs)
	factory.CreateBackground(ws.ecs, ws.textures.Mirror)
	factory.CreatePlayer(ws.ecs, ws.textures.SpriteSheet)
}
