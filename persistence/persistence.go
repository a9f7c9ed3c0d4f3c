// Package persistence keeps the high score and audio settings between runs.
// Failures never reach the game: reads fall back to defaults and writes are
// logged and dropped.
package persistence

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	keyHighScore = "highscore"
	keySettings  = "settings"
)

// items is the part of *gdata.Manager the store needs.
type items interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store persists small records under an application name.
type Store struct {
	m items
}

type savedHighScore struct {
	HighScore int `json:"highScore"`
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

// Open initializes the gdata manager. When that fails the returned store
// still works but remembers nothing.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return &Store{}
	}
	return &Store{m: m}
}

// ReadHighScore returns the stored high score, or 0 if there is none.
func (s *Store) ReadHighScore() int {
	var saved savedHighScore
	if !s.load(keyHighScore, &saved) {
		return 0
	}
	return saved.HighScore
}

// WriteHighScore saves the high score.
func (s *Store) WriteHighScore(score int) {
	s.save(keyHighScore, savedHighScore{HighScore: score})
}

// LoadSettings returns the saved settings, or nil if none are stored.
func (s *Store) LoadSettings() *SavedSettings {
	var settings SavedSettings
	if !s.load(keySettings, &settings) {
		return nil
	}
	return &settings
}

// SaveSettings saves settings to disk
func (s *Store) SaveSettings(settings SavedSettings) {
	s.save(keySettings, settings)
}

func (s *Store) load(key string, v any) bool {
	if s.m == nil {
		return false
	}
	data, err := s.m.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func (s *Store) save(key string, v any) {
	if s.m == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return
	}
	if err := s.m.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
	}
}
