package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/automoto/ladderclimb/shared/leveldata"
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/automoto/ladderclimb/systems/factory"
	"github.com/automoto/ladderclimb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T, level *leveldata.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, int(level.Width), int(level.Height), 16, 16)
	sess := rules.NewSession([]*leveldata.Level{level}, physics.DefaultTuning(), rules.DefaultTuning(), rand.New(rand.NewSource(1)), nil)
	factory.CreateSession(e, sess)
	factory.CreatePlayer(e, getSpace(e), sess.NewArena().Player())
	return e
}

func TestSpaceLadderIndexMatchesScan(t *testing.T) {
	level := leveldata.DefaultLevel()
	e := newTestWorld(t, level)
	space := getSpace(e)
	factory.CreateLevelStatics(e, space, level)

	index := NewSpaceLadderIndex(space)
	defer index.Close()
	scan := physics.ScanLadders(level.Ladders)

	sizes := []gamemath.Rect{
		{W: 4, H: 4},
		{W: 16, H: 24},
		{W: 40, H: 10},
	}
	for _, size := range sizes {
		for y := 0.0; y+size.H < level.Height; y += 7 {
			for x := 0.0; x+size.W < level.Width; x += 5 {
				box := gamemath.Rect{X: x, Y: y, W: size.W, H: size.H}
				want := scan.Overlapping(box)
				got := index.Overlapping(box)
				if len(got) != len(want) {
					t.Fatalf("box %+v: got %v, want %v", box, got, want)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("box %+v: got %v, want %v", box, got, want)
					}
				}
			}
		}
	}
}

func TestWorldArenaHazards(t *testing.T) {
	level := leveldata.DefaultLevel()
	e := newTestWorld(t, level)
	arena := Arena(e)
	tuning := physics.DefaultTuning()

	if arena.Player() == nil {
		t.Fatal("player missing from world")
	}

	var made []*physics.Hazard
	for _, serial := range []int{3, 1, 2} {
		h := physics.NewHazard(physics.KindBarrel, serial, level.HazardSpawn, tuning)
		made = append(made, h)
		arena.AddHazard(h)
	}

	tests := []struct {
		name   string
		act    func()
		serial []int
	}{
		{name: "ordered by serial", act: func() {}, serial: []int{1, 2, 3}},
		{name: "remove one", act: func() { arena.RemoveHazard(made[2]) }, serial: []int{1, 3}},
		{name: "clear", act: arena.ClearHazards, serial: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.act()
			got := arena.Hazards()
			if len(got) != len(tt.serial) {
				t.Fatalf("got %d hazards, want %d", len(got), len(tt.serial))
			}
			for i, s := range tt.serial {
				if got[i].Serial != s {
					t.Errorf("hazard %d serial = %d, want %d", i, got[i].Serial, s)
				}
			}
			objects := 0
			for _, obj := range getSpace(e).Objects() {
				if obj.HasTags(tags.ResolvHazard) {
					objects++
				}
			}
			if objects != len(tt.serial) {
				t.Errorf("space holds %d hazard objects, want %d", objects, len(tt.serial))
			}
		})
	}
}

func TestGameplayChecksSkipWhenNotRunning(t *testing.T) {
	e := newTestWorld(t, leveldata.DefaultLevel())
	calls := 0
	sys := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	sys(e)
	if calls != 0 {
		t.Fatalf("system ran in the start state")
	}

	sess := GetSession(e)
	sess.StartRound(Arena(e))
	sys(e)
	sess.TogglePause()
	sys(e)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
