// Package config holds tuning values for both game variants and the
// front-ends. It must stay free of ebiten imports so the engine and the
// terminal front-end build headless.
package config

import (
	"fmt"
	"image/color"
	"strings"
)

// VariantID selects which force field drives a round.
type VariantID int

const (
	VariantGolf VariantID = iota
	VariantSlingshot
)

func (v VariantID) String() string {
	switch v {
	case VariantGolf:
		return "golf"
	case VariantSlingshot:
		return "slingshot"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant maps a flag value back to a VariantID.
func ParseVariant(s string) (VariantID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "golf", "terrain":
		return VariantGolf, nil
	case "slingshot", "gravity":
		return VariantSlingshot, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// FanConfig shapes the 3x3 spread of projectiles spawned per shot.
type FanConfig struct {
	Spread      float64 // offset h added to each aim component
	Divisor     float64 // aim length per unit of launch speed
	SpawnOffset float64 // gap between the shooter rim and the spawn point
}

// StallWindow terminates a projectile that moved less than MinDistance
// between the point Points entries back and the newest point.
type StallWindow struct {
	Points      int
	MinDistance float64
}

type TerminationConfig struct {
	MaxSteps       int
	MinSpeed       float64 // stored speed below which a projectile stalls; 0 disables
	StallWindows   []StallWindow
	MaxTrailPoints int
}

// TerrainConfig tunes the golf variant.
type TerrainConfig struct {
	Scale           float64   // noise frequency of the coarse grid
	Zoom            int       // upsampling factor to screen resolution
	G               float64   // gradient strength
	Friction        float64   // per-tick factor on the displacement
	BoostFactor     float64   // stored velocity multiplier when slow
	BoostThresholds []float64 // one boost per threshold the displacement is at or below
	VInitGrowth     float64   // vInitMax multiplier per shot
	FadePerShot     float64   // archive fade multiplier per shot
}

// GravityConfig tunes the slingshot variant.
type GravityConfig struct {
	G          float64
	Coeff      float64 // distance exponent is Coeff+1
	AMax       float64 // cap on the summed acceleration
	VMin       float64 // floor on the per-tick displacement
	NumSources int     // including the fixed central source

	FixedRadius float64
	FixedJitter int // max offset of the fixed source from the centre
	MinRadius   int
	MaxRadius   int
	EdgeMargin  float64 // sources keep EdgeMargin*radius from the edges

	ShooterClearance  float64 // extra gap between a source and a shooter
	SourceClearance   float64 // extra gap between two sources
	MaxPlacementTries int
}

type EscalationConfig struct {
	ShotsPerStep int     // volleys without a hit before a source goes inert
	FadeFactor   float64 // archive fade multiplier per escalation
}

// VariantConfig is everything a round needs. Rounds copy it, so callers may
// tweak a copy without touching the defaults.
type VariantConfig struct {
	ID     VariantID
	Title  string
	Width  int
	Height int
	Dt     float64

	VInitMax      float64
	ShooterRadius float64
	ShooterSpawns [][2]float64 // fractions of Width and Height
	SingleVolley  bool         // refuse to fire while a volley is in flight
	ResetPause    float64      // seconds the front-end waits after a hit

	Fan         FanConfig
	Termination TerminationConfig
	Terrain     TerrainConfig
	Gravity     GravityConfig
	Escalation  EscalationConfig

	ShooterColors []color.RGBA
	TrailColor    color.RGBA
	InertColor    color.RGBA
	Background    color.RGBA
	GridColor     color.RGBA
	GridSpacing   int // 0 disables the background grid
}

// Config holds general front-end configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// UIConfig contains HUD and overlay configuration
type UIConfig struct {
	ScoreX, ScoreY       float64
	TurnMarkerRatio      float64 // marker radius as a fraction of the shooter radius
	CrossSize            float32
	ArchiveVisibleNorm   float64 // archives at or below this colour norm are hidden
	ProjectileDotRadius  float32
	TransitionOverlayMax float64 // peak overlay alpha during a reset transition
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool
	Seed     int64 // 0 picks a time-based seed
	Variant  VariantID
}

// Global configuration instances
var C *Config
var Golf VariantConfig
var Slingshot VariantConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey     = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	DarkGrey = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	DarkBlue = color.RGBA{R: 30, G: 30, B: 125, A: 255}
	Red      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Variant returns a copy of the default configuration for id.
func Variant(id VariantID) VariantConfig {
	var v VariantConfig
	if id == VariantSlingshot {
		v = Slingshot
	} else {
		v = Golf
	}
	v.ShooterSpawns = append([][2]float64(nil), v.ShooterSpawns...)
	v.ShooterColors = append([]color.RGBA(nil), v.ShooterColors...)
	v.Termination.StallWindows = append([]StallWindow(nil), v.Termination.StallWindows...)
	v.Terrain.BoostThresholds = append([]float64(nil), v.Terrain.BoostThresholds...)
	return v
}

func init() {
	C = &Config{
		Width:  1500,
		Height: 780,
		TPS:    60,
	}

	termination := TerminationConfig{
		MaxSteps: 1000,
		StallWindows: []StallWindow{
			{Points: 100, MinDistance: 10},
			{Points: 200, MinDistance: 25},
		},
		MaxTrailPoints: 1200,
	}

	Golf = VariantConfig{
		ID:            VariantGolf,
		Title:         "Golf",
		Width:         1500,
		Height:        750,
		Dt:            0.75,
		VInitMax:      3,
		ShooterRadius: 15,
		ShooterSpawns: [][2]float64{{1.0 / 5, 1.0 / 3}, {4.0 / 5, 2.0 / 3}},
		SingleVolley:  true,
		ResetPause:    3,

		Fan: FanConfig{
			// The spread is applied once, so it is twice the per-axis step.
			Spread:      1.0,
			Divisor:     25,
			SpawnOffset: 20,
		},
		Termination: termination,
		Terrain: TerrainConfig{
			Scale:           5,
			Zoom:            75,
			G:               5000,
			Friction:        0.95,
			BoostFactor:     1.01,
			BoostThresholds: []float64{1, 2},
			VInitGrowth:     1.05,
			FadePerShot:     0.95,
		},
		Escalation: EscalationConfig{},

		ShooterColors: []color.RGBA{Red, Green},
		TrailColor:    White,
		InertColor:    DarkGrey,
		Background:    Black,
	}
	Golf.Termination.MinSpeed = 0.1

	Slingshot = VariantConfig{
		ID:            VariantSlingshot,
		Title:         "Slingshot",
		Width:         1500,
		Height:        780,
		Dt:            0.5,
		VInitMax:      15,
		ShooterRadius: 20,
		ShooterSpawns: [][2]float64{{1.0 / 5, 1.0 / 3}, {4.0 / 5, 2.0 / 3}},
		SingleVolley:  true,
		ResetPause:    3,

		Fan: FanConfig{
			Spread:      0.5,
			Divisor:     250.0 / 15,
			SpawnOffset: 10,
		},
		Termination: termination,
		Gravity: GravityConfig{
			G:          250,
			Coeff:      2,
			AMax:       30,
			VMin:       2,
			NumSources: 10,

			FixedRadius: 30,
			FixedJitter: 30,
			MinRadius:   20,
			MaxRadius:   40,
			EdgeMargin:  1.5,

			ShooterClearance:  40,
			SourceClearance:   10,
			MaxPlacementTries: 10000,
		},
		Escalation: EscalationConfig{
			ShotsPerStep: 6,
			FadeFactor:   0.5,
		},

		ShooterColors: []color.RGBA{Red, Green},
		TrailColor:    Yellow,
		InertColor:    DarkGrey,
		Background:    Black,
		GridColor:     DarkBlue,
		GridSpacing:   20,
	}

	UI = UIConfig{
		ScoreX:               10,
		ScoreY:               10,
		TurnMarkerRatio:      2.0 / 3,
		CrossSize:            5,
		ArchiveVisibleNorm:   100,
		ProjectileDotRadius:  3,
		TransitionOverlayMax: 0.8,
	}
}
