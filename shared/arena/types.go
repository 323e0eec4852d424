// Package arena loads shooter and source placements from Tiled TMX maps.
// It has no dependencies on ebitengine, donburi, or resolv.
package arena

// Layout is the fixed geometry of an arena.
type Layout struct {
	Name        string
	Width       int
	Height      int
	Spawns      []SpawnPoint
	FixedSource *Point
}

// SpawnPoint is where shooter Index stands.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

type Point struct {
	X, Y float64
}
