package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase space. Ladders, the goal, platforms and
// every live actor keep an object in it.
var Space = donburi.NewComponentType[resolv.Space]()
