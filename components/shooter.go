package components

import "github.com/yohamta/donburi"

type ShooterData struct {
	Index int
	Score int
}

var Shooter = donburi.NewComponentType[ShooterData]()
