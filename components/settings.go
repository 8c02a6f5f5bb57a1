package components

import "github.com/yohamta/donburi"

// SettingsData stores runtime toggles (singleton component)
type SettingsData struct {
	Debug         bool
	QuitRequested bool
}

var Settings = donburi.NewComponentType[SettingsData]()
