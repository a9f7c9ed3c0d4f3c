package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/automoto/ladderclimb/shared/timing"
	"github.com/automoto/ladderclimb/systems"
	"github.com/automoto/ladderclimb/systems/factory"
	"github.com/automoto/ladderclimb/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

type PlatformerScene struct {
	ecs      *ecs.ECS
	session  *rules.Session
	overlay  *ui.RoundOverlay
	watcher  *cfg.Watcher
	throttle *timing.Throttle
	once     sync.Once

	saveSettings func(volume float64, muted bool)
}

// NewPlatformerScene creates the scene around a prepared session. saveSettings
// may be nil.
func NewPlatformerScene(sess *rules.Session, saveSettings func(volume float64, muted bool)) *PlatformerScene {
	return &PlatformerScene{
		session:      sess,
		saveSettings: saveSettings,
		throttle:     timing.NewThrottle(cfg.C.TPS, nil),
	}
}

// Update runs once per displayed frame. The world steps at most once per
// frame and no faster than the configured TPS.
func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.applyReloads()
	ps.stepFrame()

	if snap := systems.GetSnapshot(ps.ecs); ui.Shown(snap) {
		ps.overlay.Gamepad = systems.UsingGamepad(ps.ecs)
		ps.overlay.Update(snap)
	}
}

// stepFrame advances the world by one tick when the throttle allows it.
func (ps *PlatformerScene) stepFrame() bool {
	if !ps.throttle.Ready() {
		return false
	}
	ps.ecs.Update()
	return true
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdateMute(ps.saveSettings))
	ecs.AddSystem(systems.UpdateRound)
	ecs.AddSystem(systems.UpdateLevel)

	// One simulation tick, in the order the rules require
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))

	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateEvents)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateSnapshot)

	// Add renderers
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawActors)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawEffects)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerOverlay, ps.drawOverlay)

	ps.ecs = ecs

	// The space must cover the largest level.
	width, height := cfg.C.Width, cfg.C.Height
	for _, l := range ps.session.Levels {
		width = max(width, int(l.Width))
		height = max(height, int(l.Height))
	}
	spaceEntry := factory.CreateSpace(ps.ecs, width, height, spaceCellSize, spaceCellSize)
	space := systems.SpaceOf(spaceEntry)

	factory.CreateSession(ps.ecs, ps.session)
	factory.CreatePlayer(ps.ecs, space, ps.session.NewArena().Player())

	overlay, err := ui.NewRoundOverlay(ps.overlayPrimary, func() { systems.RestartLevel(ps.ecs) })
	if err != nil {
		log.Fatalf("Failed to build overlay: %v", err)
	}
	ps.overlay = overlay

	if cfg.Debug.HotReload && cfg.Debug.OverridesPath != "" {
		w, err := cfg.NewWatcher(cfg.Debug.OverridesPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", cfg.Debug.OverridesPath, err)
		} else {
			ps.watcher = w
		}
	}

	// Build the level and the first snapshot before anything is drawn.
	systems.UpdateLevel(ps.ecs)
	if cfg.Debug.SkipStart {
		systems.StartRound(ps.ecs)
	}
	systems.UpdateSnapshot(ps.ecs)
}

func (ps *PlatformerScene) overlayPrimary(state rules.RoundState) {
	switch state {
	case rules.StateStart:
		systems.StartRound(ps.ecs)
	case rules.StatePlaying:
		systems.TogglePause(ps.ecs)
	case rules.StateLevelComplete:
		systems.NextLevel(ps.ecs)
	case rules.StateGameOver:
		systems.RestartLevel(ps.ecs)
	}
}

func (ps *PlatformerScene) drawOverlay(_ *ecs.ECS, screen *ebiten.Image) {
	if ui.Shown(systems.GetSnapshot(ps.ecs)) {
		ps.overlay.Draw(screen)
	}
}

// applyReloads re-reads the overrides file between ticks when it changed.
func (ps *PlatformerScene) applyReloads() {
	if ps.watcher == nil {
		return
	}
	for {
		select {
		case path := <-ps.watcher.Events:
			if err := cfg.LoadOverrides(path); err != nil {
				log.Printf("Warning: Could not reload tuning: %v", err)
				continue
			}
			systems.ApplyTuning(ps.ecs)
			log.Printf("Tuning reloaded from %s", path)
		case err := <-ps.watcher.Errors:
			log.Printf("Warning: Tuning watcher: %v", err)
		default:
			return
		}
	}
}
