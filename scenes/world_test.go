package scenes

import (
	"testing"
	"time"

	"github.com/automoto/ladderclimb/shared/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStepFrameNeverCatchesUp(t *testing.T) {
	tick := time.Second / 60

	tests := []struct {
		name      string
		gaps      []time.Duration
		wantSteps int
	}{
		{"steady 60Hz", []time.Duration{0, tick, tick, tick}, 4},
		{"fast display waits", []time.Duration{0, tick / 3, tick / 3, tick / 3}, 2},
		{"long stall steps once", []time.Duration{0, 10 * tick, tick / 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(1000, 0)}
			steps := 0
			ps := &PlatformerScene{
				ecs:      ecs.NewECS(donburi.NewWorld()),
				throttle: timing.NewThrottle(60, clock.now),
			}
			ps.ecs.AddSystem(func(*ecs.ECS) { steps++ })

			for i, gap := range tt.gaps {
				clock.advance(gap)
				before := steps
				stepped := ps.stepFrame()
				if steps-before > 1 {
					t.Fatalf("frame %d ran %d steps", i, steps-before)
				}
				if stepped != (steps > before) {
					t.Fatalf("frame %d: stepFrame() = %v but %d steps ran", i, stepped, steps-before)
				}
			}
			if steps != tt.wantSteps {
				t.Errorf("steps = %d, want %d", steps, tt.wantSteps)
			}
		})
	}
}
