package components

import (
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding the round. Snapshot is rebuilt once
// per tick after all gameplay systems ran; renderers only read it.
type SessionData struct {
	*rules.Session
	Snapshot rules.Snapshot
}

var Session = donburi.NewComponentType[SessionData]()
