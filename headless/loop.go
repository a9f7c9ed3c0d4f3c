// Package headless runs rounds without a window: a fixed-rate loop, scripted
// or random intents, and a log of what happened.
package headless

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/automoto/ladderclimb/shared/timing"
)

// Stats summarizes a run.
type Stats struct {
	Frames          int
	Steps           int
	LevelsCompleted int
	GameOvers       int
	BestScore       int
}

// GameLoop drives a session at a fixed frame rate with no window. Finished
// rounds restart on their own: a completed level moves on, a game over
// starts again.
type GameLoop struct {
	session  *rules.Session
	arena    *rules.Pool
	intents  IntentSource
	throttle *timing.Throttle
	frameHz  int
	logEvery int
	stats    Stats
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop runs frames at frameHz and steps at most tps times per second.
// A frameHz of zero runs frames back to back and steps on every one.
func NewGameLoop(sess *rules.Session, intents IntentSource, frameHz, tps int) *GameLoop {
	g := &GameLoop{
		session:  sess,
		arena:    sess.NewArena(),
		intents:  intents,
		frameHz:  frameHz,
		logEvery: 600,
		stopChan: make(chan struct{}),
	}
	if frameHz > 0 {
		g.throttle = timing.NewThrottle(tps, nil)
	}
	return g
}

// SetLogEvery changes how often, in frames, a status line is logged. Zero
// disables the periodic line.
func (g *GameLoop) SetLogEvery(frames int) { g.logEvery = frames }

// Run plays frames until maxFrames have passed (zero for no limit) or Stop
// is called.
func (g *GameLoop) Run(maxFrames int) Stats {
	g.session.StartRound(g.arena)

	var tick <-chan time.Time
	if g.frameHz > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.frameHz))
		defer ticker.Stop()
		tick = ticker.C
		log.Printf("Game loop started at %d frames/second", g.frameHz)
	} else {
		log.Println("Game loop started unthrottled")
	}

	for maxFrames <= 0 || g.stats.Frames < maxFrames {
		if tick != nil {
			select {
			case <-g.stopChan:
				return g.finish()
			case <-tick:
			}
		} else {
			select {
			case <-g.stopChan:
				return g.finish()
			default:
			}
		}
		g.frame()
	}
	return g.finish()
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) finish() Stats {
	log.Printf("Game loop stopped after %d frames, %d steps", g.stats.Frames, g.stats.Steps)
	return g.stats
}

func (g *GameLoop) frame() {
	g.stats.Frames++
	if g.throttle == nil || g.throttle.Ready() {
		g.step()
	}
	if g.logEvery > 0 && g.stats.Frames%g.logEvery == 0 {
		s := g.session
		log.Printf("frame %d: level %s state %s score %d lives %d hazards %d",
			g.stats.Frames, s.Level().Name, s.State, s.Score, s.Lives, len(g.arena.Hazards()))
	}
}

func (g *GameLoop) step() {
	s := g.session
	snap := s.Snapshot(g.arena)
	s.Step(g.arena, g.intents.Intent(&snap))
	g.stats.Steps++

	for _, snd := range s.DrainEvents().Sounds {
		if snd == rules.SoundHit || snd == rules.SoundDeath {
			log.Printf("tick %d: %s (lives %d)", s.Tick, snd, s.Lives)
		}
	}
	if s.Score > g.stats.BestScore {
		g.stats.BestScore = s.Score
	}

	switch s.State {
	case rules.StateLevelComplete:
		g.stats.LevelsCompleted++
		log.Printf("Level %s complete, score %d", s.Level().Name, s.Score)
		s.NextLevel(g.arena)
	case rules.StateGameOver:
		g.stats.GameOvers++
		log.Printf("Game over on %s, score %d", s.Level().Name, s.Score)
		s.RestartLevel(g.arena)
	}
}
