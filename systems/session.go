package systems

import (
	"slices"

	"github.com/automoto/ladderclimb/components"
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/automoto/ladderclimb/systems/factory"
	"github.com/automoto/ladderclimb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the round stored in the world. It panics if the scene
// did not create one.
func GetSession(e *ecs.ECS) *rules.Session {
	return getSessionData(e).Session
}

func getSessionData(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		panic("systems: no session in world")
	}
	return components.Session.Get(entry)
}

// GetSnapshot returns the render snapshot taken at the end of the last tick.
func GetSnapshot(e *ecs.ECS) *rules.Snapshot {
	return &getSessionData(e).Snapshot
}

func getSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// WithGameplayChecks wraps a system to skip execution unless a round is being
// played and not paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetSession(e).Running() {
			return
		}
		system(e)
	}
}

// ApplyTuning pushes the current config values into a running session.
func ApplyTuning(e *ecs.ECS) {
	sess := GetSession(e)
	sess.Tuning = cfg.RulesTuning()
	sess.Stage.Tuning = cfg.PhysicsTuning()
	sess.Spawner.Interval = sess.Tuning.SpawnInterval
	sess.Spawner.FireballEvery = sess.Tuning.FireballEvery
}

// worldArena stores the round's live actors as entities so that rendering,
// debug drawing and the broad phase see them.
type worldArena struct {
	ecs *ecs.ECS
}

// Arena returns the rules.Arena view of the world.
func Arena(e *ecs.ECS) rules.Arena {
	return worldArena{ecs: e}
}

func (a worldArena) Player() *physics.Player {
	entry, ok := tags.Player.First(a.ecs.World)
	if !ok {
		return nil
	}
	return components.Player.Get(entry).Player
}

func (a worldArena) Hazards() []*physics.Hazard {
	var list []*physics.Hazard
	tags.Hazard.Each(a.ecs.World, func(entry *donburi.Entry) {
		list = append(list, components.Hazard.Get(entry).Hazard)
	})
	slices.SortFunc(list, func(x, y *physics.Hazard) int { return x.Serial - y.Serial })
	return list
}

func (a worldArena) AddHazard(h *physics.Hazard) {
	factory.CreateHazard(a.ecs, getSpace(a.ecs), h)
}

func (a worldArena) RemoveHazard(h *physics.Hazard) {
	a.removeHazards(func(x *physics.Hazard) bool { return x == h })
}

func (a worldArena) ClearHazards() {
	a.removeHazards(func(*physics.Hazard) bool { return true })
}

func (a worldArena) removeHazards(match func(*physics.Hazard) bool) {
	var doomed []*donburi.Entry
	tags.Hazard.Each(a.ecs.World, func(entry *donburi.Entry) {
		if match(components.Hazard.Get(entry).Hazard) {
			doomed = append(doomed, entry)
		}
	})
	for _, entry := range doomed {
		removeEntry(a.ecs, entry)
	}
}

// removeEntry drops an entity and its broad-phase object.
func removeEntry(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		if space := getSpace(e); space != nil {
			space.Remove(components.Object.Get(entry).Object)
		}
	}
	e.World.Remove(entry.Entity())
}

// SpaceOf returns the resolv space stored on a space entity.
func SpaceOf(entry *donburi.Entry) *resolv.Space {
	return components.Space.Get(entry)
}
