package config

import (
	"image/color"

	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/automoto/ladderclimb/shared/rules"
)

// PhysicsConfig contains world-wide physics values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	// Depth below a platform's lower face that still counts as contact.
	// Keep it >= MaxFallSpeed or fast entities tunnel through.
	RestTolerance float64 `yaml:"rest_tolerance"`
	// How close a hazard's bottom must be to a ladder top to consider it
	LadderTopTolerance float64 `yaml:"ladder_top_tolerance"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed         float64 `yaml:"speed"`
	JumpPower     float64 `yaml:"jump_power"`
	MaxJumpHeight float64 `yaml:"max_jump_height"`

	// Ladders
	LadderSpeed     float64 `yaml:"ladder_speed"`
	LadderGrabReach float64 `yaml:"ladder_grab_reach"`
	LadderFootSnap  float64 `yaml:"ladder_foot_snap"`

	// Lives
	StartingLives       int `yaml:"starting_lives"`
	RespawnInvulnFrames int `yaml:"respawn_invuln_frames"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// BarrelConfig contains rolling hazard values
type BarrelConfig struct {
	Radius           float64 `yaml:"radius"`
	Speed            float64 `yaml:"speed"`
	LadderDropChance float64 `yaml:"ladder_drop_chance"` // per tick over a ladder top
}

// FireballConfig contains bouncing hazard values
type FireballConfig struct {
	Radius              float64 `yaml:"radius"`
	Speed               float64 `yaml:"speed"`
	Spin                float64 `yaml:"spin"`
	BounceInterval      int     `yaml:"bounce_interval"` // resting frames between hops
	BounceImpulse       float64 `yaml:"bounce_impulse"`
	LadderDescentChance float64 `yaml:"ladder_descent_chance"` // once per ladder
	LadderDescentSpeed  float64 `yaml:"ladder_descent_speed"`
}

// ScoringConfig contains point values
type ScoringConfig struct {
	BarrelJump        int     `yaml:"barrel_jump"`
	FireballJump      int     `yaml:"fireball_jump"`
	JumpOverTolerance float64 `yaml:"jump_over_tolerance"`
	PassiveBonus      int     `yaml:"passive_bonus"`
	PassiveInterval   int     `yaml:"passive_interval"` // frames
}

// SpawnerConfig contains hazard emission values
type SpawnerConfig struct {
	Interval      int `yaml:"interval"` // frames
	FireballEvery int `yaml:"fireball_every"`
}

// UIConfig contains HUD and placeholder rendering values
type UIConfig struct {
	HUDFontSize     float64
	OverlayFontSize float64
	HUDMargin       float64

	BackgroundColor color.RGBA
	PlatformColor   color.RGBA
	LadderColor     color.RGBA
	GoalColor       color.RGBA
	GoalDoneColor   color.RGBA
	PlayerColor     color.RGBA
	BarrelColor     color.RGBA
	FireballColor   color.RGBA
	HUDTextColor    color.RGBA
}

// OverlayConfig contains the round overlay texts
type OverlayConfig struct {
	PanelColor       color.RGBA
	StartTitle       string
	StartHint        string
	StartHintGamepad string
	CompleteTitle    string
	GameOverTitle    string
	PausedTitle      string
	ContinueLabel    string
	ResumeLabel      string
	RestartLabel     string
	StartLabel       string
}

// EffectsConfig contains cosmetic effect values
type EffectsConfig struct {
	ExplosionDuration float32 // seconds
	ExplosionRadius   float32
	ConfettiDuration  float32
	ConfettiPieces    int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipStart     bool   // Begin playing without the start overlay
	OverridesPath string // YAML tuning overrides, empty to disable
	HotReload     bool   // Watch OverridesPath and re-apply on change
	Seed          int64  // 0 picks a time-based seed
	ShowHitboxes  bool   // Outline broad-phase objects
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Barrel BarrelConfig
var Fireball FireballConfig
var Physics PhysicsConfig
var Scoring ScoringConfig
var Spawner SpawnerConfig
var UI UIConfig
var Overlay OverlayConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Brown        = color.RGBA{R: 150, G: 90, B: 40, A: 255}
	Steel        = color.RGBA{R: 170, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Night        = color.RGBA{R: 12, G: 12, B: 28, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Title:  "Ladder Climb",
	}

	Physics = PhysicsConfig{
		Gravity:            0.4,
		MaxFallSpeed:       10.0,
		RestTolerance:      10.0,
		LadderTopTolerance: 6.0,
	}

	Player = PlayerConfig{
		Speed:         3.0,
		JumpPower:     8.0,
		MaxJumpHeight: 48.0, // stops jumping straight onto the next platform

		LadderSpeed:     2.0,
		LadderGrabReach: 2.0,
		LadderFootSnap:  4.0,

		StartingLives:       3,
		RespawnInvulnFrames: 120,

		CollisionWidth:  24,
		CollisionHeight: 32,
	}

	Barrel = BarrelConfig{
		Radius:           12,
		Speed:            2.0,
		LadderDropChance: 0.02,
	}

	Fireball = FireballConfig{
		Radius:              10,
		Speed:               1.5,
		Spin:                0.2,
		BounceInterval:      90,
		BounceImpulse:       4.0,
		LadderDescentChance: 0.5,
		LadderDescentSpeed:  1.5,
	}

	Scoring = ScoringConfig{
		BarrelJump:        100,
		FireballJump:      200,
		JumpOverTolerance: 6.0,
		PassiveBonus:      10,
		PassiveInterval:   60,
	}

	Spawner = SpawnerConfig{
		Interval:      150,
		FireballEvery: 4, // three barrels, then a fireball
	}

	UI = UIConfig{
		HUDFontSize:     18,
		OverlayFontSize: 28,
		HUDMargin:       10,

		BackgroundColor: Night,
		PlatformColor:   Steel,
		LadderColor:     LightBlue,
		GoalColor:       Yellow,
		GoalDoneColor:   LightGreen,
		PlayerColor:     White,
		BarrelColor:     Brown,
		FireballColor:   Orange,
		HUDTextColor:    White,
	}

	Overlay = OverlayConfig{
		PanelColor:       BlackOverlay,
		StartTitle:       "LADDER CLIMB",
		StartHint:        "Reach the flag. Jump the barrels. Press Enter.",
		StartHintGamepad: "Reach the flag. Jump the barrels. Press A.",
		CompleteTitle:    "LEVEL COMPLETE",
		GameOverTitle:    "GAME OVER",
		PausedTitle:      "PAUSED",
		ContinueLabel:    "Next level",
		ResumeLabel:      "Resume",
		RestartLabel:     "Restart",
		StartLabel:       "Start",
	}

	Effects = EffectsConfig{
		ExplosionDuration: 0.4,
		ExplosionRadius:   28,
		ConfettiDuration:  1.5,
		ConfettiPieces:    40,
	}
}

// PhysicsTuning converts the current configuration for the simulation.
func PhysicsTuning() physics.Tuning {
	return physics.Tuning{
		Gravity:            Physics.Gravity,
		MaxFallSpeed:       Physics.MaxFallSpeed,
		RestTolerance:      Physics.RestTolerance,
		LadderTopTolerance: Physics.LadderTopTolerance,
		Player: physics.PlayerTuning{
			Width:           Player.CollisionWidth,
			Height:          Player.CollisionHeight,
			Speed:           Player.Speed,
			JumpPower:       Player.JumpPower,
			MaxJumpHeight:   Player.MaxJumpHeight,
			LadderSpeed:     Player.LadderSpeed,
			LadderGrabReach: Player.LadderGrabReach,
			LadderFootSnap:  Player.LadderFootSnap,
			InvincibleTicks: Player.RespawnInvulnFrames,
		},
		Barrel: physics.BarrelTuning{
			Radius:           Barrel.Radius,
			Speed:            Barrel.Speed,
			LadderDropChance: Barrel.LadderDropChance,
		},
		Fireball: physics.FireballTuning{
			Radius:              Fireball.Radius,
			Speed:               Fireball.Speed,
			Spin:                Fireball.Spin,
			BounceInterval:      Fireball.BounceInterval,
			BounceImpulse:       Fireball.BounceImpulse,
			LadderDescentChance: Fireball.LadderDescentChance,
			LadderDescentSpeed:  Fireball.LadderDescentSpeed,
		},
	}
}

// RulesTuning converts the current configuration for the round rules.
func RulesTuning() rules.Tuning {
	return rules.Tuning{
		Lives:             Player.StartingLives,
		BarrelScore:       Scoring.BarrelJump,
		FireballScore:     Scoring.FireballJump,
		JumpOverTolerance: Scoring.JumpOverTolerance,
		PassiveBonus:      Scoring.PassiveBonus,
		PassiveInterval:   Scoring.PassiveInterval,
		SpawnInterval:     Spawner.Interval,
		FireballEvery:     Spawner.FireballEvery,
	}
}
