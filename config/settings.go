package config

// MenuEntry is one playable option on the main menu.
type MenuEntry struct {
	Variant VariantID
	Label   string
	Hint    string
}

// SettingsMenuConfig contains main menu and preference configuration
type SettingsMenuConfig struct {
	Entries        []MenuEntry
	DefaultVariant VariantID
	AppName        string // gdata application name
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Entries: []MenuEntry{
			{Variant: VariantGolf, Label: "Golf", Hint: "Roll across generated terrain"},
			{Variant: VariantSlingshot, Label: "Slingshot", Hint: "Bend shots around planets"},
		},
		DefaultVariant: VariantGolf,
		AppName:        "trajectory",
	}
}
