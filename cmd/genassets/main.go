package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/placeholders"
)

func main() {
	width := flag.Int("bg-width", 1024, "background width")
	height := flag.Int("bg-height", 768, "background height")
	configPath := flag.String("config", "", "YAML file overriding asset paths and sheet layout")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := placeholders.GenerateAndSave(config.Assets, config.Sheet, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s and %s\n", config.Assets.SpriteSheet, config.Assets.Background)
}
