package main

import (
	"errors"
	"flag"
	"log"

	"github.com/automoto/scrollwalk/assets"
	"github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/fonts"
	"github.com/automoto/scrollwalk/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// Shutdown releases everything the scene holds.
func (g *Game) Shutdown() {
	g.scene.Close()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	watch := flag.Bool("watch", false, "reload tunables when the config file changes")
	debug := flag.Bool("debug", false, "start with the debug overlay visible")
	sprite := flag.String("sprite", "", "character sprite sheet (default Sprite.png)")
	background := flag.String("background", "", "background image (default fondo.jpg)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		config.Debug.Overlay = true
	}
	if *sprite != "" {
		config.Assets.SpriteSheet = *sprite
	}
	if *background != "" {
		config.Assets.Background = *background
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts, debug text disabled: %v", err)
	}

	textures, err := assets.LoadTextures(config.Assets)
	if err != nil {
		log.Fatalf("Failed to load textures: %v", err)
	}

	var watcher *config.Watcher
	if *watch {
		if *configPath == "" {
			log.Printf("Warning: -watch needs -config, hot reload disabled")
		} else if watcher, err = config.NewWatcher(*configPath); err != nil {
			log.Printf("Warning: Could not watch config: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	game := NewGame(scenes.NewWalkScene(textures, watcher))
	err = ebiten.RunGame(game)
	game.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
