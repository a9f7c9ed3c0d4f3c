package components

import (
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/yohamta/donburi"
)

type HazardData struct {
	*physics.Hazard
}

var Hazard = donburi.NewComponentType[HazardData]()
