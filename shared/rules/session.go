package rules

import (
	"math/rand"

	"github.com/automoto/ladderclimb/shared/leveldata"
	"github.com/automoto/ladderclimb/shared/physics"
)

// Session bundles all mutable round state. Every subsystem call receives it
// explicitly; nothing here is global.
type Session struct {
	Tuning Tuning
	Stage  *physics.Stage

	Levels     []*leveldata.Level
	LevelIndex int

	State        RoundState
	Tick         int
	Score        int
	Lives        int
	GoalDefeated bool
	Paused       bool

	HighScore int
	// bestAtStart is the high score when the round began; beating it (when
	// positive) triggers a single celebration.
	bestAtStart    int
	celebrated     bool
	highScoreDirty bool

	Spawner Spawner
	events  Events
	store   ScoreStore
}

// NewSession prepares a session in the start state on the first level. The
// stored high score is read once here.
func NewSession(levels []*leveldata.Level, pt physics.Tuning, rt Tuning, rng *rand.Rand, store ScoreStore) *Session {
	if len(levels) == 0 {
		levels = []*leveldata.Level{leveldata.DefaultLevel()}
	}
	if store == nil {
		store = nopStore{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &Session{
		Tuning:  rt,
		Stage:   physics.NewStage(levels[0], pt, rng.Float64),
		Levels:  levels,
		State:   StateStart,
		Lives:   rt.Lives,
		Spawner: NewSpawner(rt),
		store:   store,
	}
	s.HighScore = store.ReadHighScore()
	s.bestAtStart = s.HighScore
	return s
}

func (s *Session) Level() *leveldata.Level { return s.Stage.Level }

// NewArena creates a Pool holding a player at the current level's spawn.
func (s *Session) NewArena() *Pool {
	return NewPool(physics.NewPlayer(s.Level().PlayerSpawn, s.Stage.Tuning.Player))
}

// StartRound begins a fresh round on the current level.
func (s *Session) StartRound(a Arena) {
	s.Score = 0
	s.Lives = s.Tuning.Lives
	s.bestAtStart = s.HighScore
	s.celebrated = false
	s.resetLevel(a)
}

// RestartLevel is StartRound after saving any pending high score.
func (s *Session) RestartLevel(a Arena) {
	s.flushHighScore()
	s.StartRound(a)
}

// NextLevel advances to the following level, wrapping at the end. Score and
// lives carry over.
func (s *Session) NextLevel(a Arena) {
	s.LevelIndex = (s.LevelIndex + 1) % len(s.Levels)
	s.Stage.Level = s.Levels[s.LevelIndex]
	s.Stage.Ladders = physics.ScanLadders(s.Stage.Level.Ladders)
	s.resetLevel(a)
}

func (s *Session) resetLevel(a Arena) {
	s.Tick = 0
	s.GoalDefeated = false
	s.Paused = false
	s.Spawner.Reset()
	a.ClearHazards()
	a.Player().Reset(s.Level().PlayerSpawn, s.Stage.Tuning.Player)
	s.State = StatePlaying
}

// OnLifeLost takes a life. The round ends when none are left, otherwise the
// player respawns invincible.
func (s *Session) OnLifeLost(a Arena) {
	if s.State != StatePlaying {
		return
	}
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.State = StateGameOver
		s.emitSound(SoundGameOver)
		s.flushHighScore()
		return
	}
	s.emitSound(SoundDeath)
	a.Player().Reset(s.Level().PlayerSpawn, s.Stage.Tuning.Player)
}

// OnGoalReached completes the level. Repeated calls have no effect.
func (s *Session) OnGoalReached() {
	if s.GoalDefeated || s.State != StatePlaying {
		return
	}
	s.GoalDefeated = true
	s.State = StateLevelComplete
	s.emitSound(SoundLevelComplete)
	s.flushHighScore()
}

// TogglePause flips the pause flag while a round is being played.
func (s *Session) TogglePause() {
	if s.State == StatePlaying {
		s.Paused = !s.Paused
	}
}

// Running reports whether the simulation should advance this tick.
func (s *Session) Running() bool {
	return s.State == StatePlaying && !s.Paused
}

// Step runs one whole tick: player, hazards, collisions, spawner, clock.
func (s *Session) Step(a Arena, in physics.Intent) {
	if !s.Running() {
		return
	}
	s.StepPlayer(a, in)
	if s.State != StatePlaying {
		return
	}
	s.StepHazards(a)
	s.Resolve(a)
	if s.State != StatePlaying {
		return
	}
	s.StepSpawner(a)
	s.EndTick()
}

func (s *Session) StepPlayer(a Arena, in physics.Intent) {
	ev := a.Player().Update(in, s.Stage)
	if ev.Jumped {
		s.emitSound(SoundJump)
	}
	if ev.FellOut {
		s.OnLifeLost(a)
	}
}

func (s *Session) StepHazards(a Arena) {
	var gone []*physics.Hazard
	for _, h := range a.Hazards() {
		if h.Update(s.Stage) != physics.FateAlive {
			gone = append(gone, h)
		}
	}
	for _, h := range gone {
		a.RemoveHazard(h)
	}
}

func (s *Session) StepSpawner(a Arena) {
	kind, serial, ok := s.Spawner.Tick(s.GoalDefeated)
	if !ok {
		return
	}
	a.AddHazard(physics.NewHazard(kind, serial, s.Level().HazardSpawn, s.Stage.Tuning))
}

// EndTick advances the tick counter, pays the passive bonus and saves a high
// score improved during the tick, so the store sees at most one write per
// tick.
func (s *Session) EndTick() {
	s.Tick++
	if s.Tuning.PassiveInterval > 0 && s.Tick%s.Tuning.PassiveInterval == 0 {
		s.addScore(s.Tuning.PassiveBonus)
	}
	s.flushHighScore()
}

// DrainEvents hands over everything emitted since the last drain.
func (s *Session) DrainEvents() Events {
	ev := s.events
	s.events = Events{}
	return ev
}

func (s *Session) addScore(n int) {
	s.Score += n
	if s.Score <= s.HighScore {
		return
	}
	s.HighScore = s.Score
	s.highScoreDirty = true
	if !s.celebrated && s.bestAtStart > 0 {
		s.celebrated = true
		s.emitEffect(Effect{Kind: EffectCelebration})
	}
}

func (s *Session) flushHighScore() {
	if !s.highScoreDirty {
		return
	}
	s.store.WriteHighScore(s.HighScore)
	s.highScoreDirty = false
}

func (s *Session) emitSound(snd Sound) {
	s.events.Sounds = append(s.events.Sounds, snd)
}

func (s *Session) emitEffect(e Effect) {
	s.events.Effects = append(s.events.Effects, e)
}
