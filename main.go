package main

import (
	"flag"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/ladderclimb/assets"
	"github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/fonts"
	"github.com/automoto/ladderclimb/persistence"
	"github.com/automoto/ladderclimb/scenes"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/automoto/ladderclimb/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(sess *rules.Session, store *persistence.Store) *Game {
	saveSettings := func(volume float64, muted bool) {
		store.SaveSettings(persistence.SavedSettings{SFXVolume: volume, Muted: muted})
	}
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(sess, saveSettings),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelsDir := flag.String("levels", "", "directory of .tmx levels (default: embedded levels)")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "hazard RNG seed (0 = time based)")
	flag.StringVar(&config.Debug.OverridesPath, "overrides", "", "YAML tuning overrides file")
	flag.BoolVar(&config.Debug.HotReload, "hot-reload", false, "re-apply the overrides file when it changes")
	flag.BoolVar(&config.Debug.SkipStart, "skip-start", false, "start playing immediately")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", false, "outline collision objects")
	flag.Parse()

	if config.Debug.OverridesPath != "" {
		if err := config.LoadOverrides(config.Debug.OverridesPath); err != nil {
			log.Printf("Warning: Could not apply overrides: %v", err)
		}
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.OverlayFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	store := persistence.Open("ladderclimb")
	if saved := store.LoadSettings(); saved != nil {
		systems.ApplyAudioSettings(saved.SFXVolume, saved.Muted)
	}

	seed := config.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sess := rules.NewSession(
		assets.LoadLevels(*levelsDir),
		config.PhysicsTuning(),
		config.RulesTuning(),
		rand.New(rand.NewSource(seed)),
		store,
	)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	// One Update per frame; the scene throttles the simulation to config.C.TPS.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(NewGame(sess, store)); err != nil {
		log.Fatal(err)
	}
}
