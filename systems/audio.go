package systems

import (
	"log"
	"sync"

	"github.com/automoto/ladderclimb/assets"
	"github.com/automoto/ladderclimb/assets/sound"
	"github.com/automoto/ladderclimb/components"
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *sound.Loader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = sound.NewLoader(globalAudioContext, assets.AudioFS())
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
// Sounds that fail to load are reported once and stay silent.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.Preload(path); err != nil {
			log.Printf("Warning: Could not load sound: %v", err)
		}
	}
}

// UpdateAudio plays the sounds queued since the last frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := getOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect. Playback happens in UpdateAudio.
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	if soundID == cfg.SoundNone {
		return
	}
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// SetSFXVolume sets the effect volume (0.0 - 1.0).
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	getOrCreateAudio(e).SFXVolume = volume
}

// SetMuted silences or restores all sound effects.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	getOrCreateAudio(e).Muted = muted
}

// NewUpdateMute returns a system that toggles mute on the mute action and
// hands the new settings to save.
func NewUpdateMute(save func(volume float64, muted bool)) ecs.System {
	return func(e *ecs.ECS) {
		if !GetAction(getOrCreateInput(e), cfg.ActionMute).JustPressed {
			return
		}
		audioData := getOrCreateAudio(e)
		SetMuted(e, !audioData.Muted)
		if save != nil {
			save(audioData.SFXVolume, audioData.Muted)
		}
	}
}

// ApplyAudioSettings sets the globals before any scene exists.
func ApplyAudioSettings(volume float64, muted bool) {
	globalSFXVolume = volume
	globalMuted = muted
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume: globalSFXVolume,
			Muted:     globalMuted,
		})
	}
	return components.Audio.Get(entry)
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.Player(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}
