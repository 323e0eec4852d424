package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/trajectory/config"
	"github.com/quasilyte/gdata"
)

// SavedPreferences represents the front-end preferences stored on disk.
// Round state is never persisted.
type SavedPreferences struct {
	LastVariant int  `json:"lastVariant"`
	ShowRange   bool `json:"showRange"`
}

const preferencesKey = "preferences"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.SettingsMenu.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadPreferences loads preferences from disk. It returns nil when nothing
// was saved yet or storage is unavailable.
func LoadPreferences() *SavedPreferences {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(preferencesKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil
	}
	return &prefs
}

// SavePreferences saves preferences to disk
func SavePreferences(p *SavedPreferences) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return
	}
	if err := gdataManager.SaveItem(preferencesKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
	}
}

// PreferredVariant returns the last played variant, or the menu default.
func PreferredVariant() cfg.VariantID {
	if p := LoadPreferences(); p != nil {
		v := cfg.VariantID(p.LastVariant)
		if v == cfg.VariantGolf || v == cfg.VariantSlingshot {
			return v
		}
	}
	return cfg.SettingsMenu.DefaultVariant
}

// RememberVariant records v as the last played variant, keeping the other
// preferences.
func RememberVariant(v cfg.VariantID) {
	prefs := LoadPreferences()
	if prefs == nil {
		prefs = &SavedPreferences{}
	}
	prefs.LastVariant = int(v)
	SavePreferences(prefs)
}
