package persistence

import (
	"errors"
	"testing"
)

type memItems struct {
	data    map[string][]byte
	loadErr error
	saveErr error
}

func newMemItems() *memItems {
	return &memItems{data: map[string][]byte{}}
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = data
	return nil
}

func TestHighScoreRoundTrip(t *testing.T) {
	s := &Store{m: newMemItems()}
	if got := s.ReadHighScore(); got != 0 {
		t.Fatalf("empty store high score = %d", got)
	}
	s.WriteHighScore(1200)
	if got := s.ReadHighScore(); got != 1200 {
		t.Errorf("high score = %d, want 1200", got)
	}
}

func TestFailuresAreSwallowed(t *testing.T) {
	tests := []struct {
		name  string
		items items
	}{
		{"no manager", nil},
		{"load error", &memItems{data: map[string][]byte{}, loadErr: errors.New("disk gone")}},
		{"corrupt data", &memItems{data: map[string][]byte{keyHighScore: []byte("{not json")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Store{m: tt.items}
			if got := s.ReadHighScore(); got != 0 {
				t.Errorf("ReadHighScore() = %d, want 0", got)
			}
			if got := s.LoadSettings(); got != nil {
				t.Errorf("LoadSettings() = %+v, want nil", got)
			}
		})
	}
}

func TestWriteErrorKeepsPreviousValue(t *testing.T) {
	m := newMemItems()
	s := &Store{m: m}
	s.WriteHighScore(300)

	m.saveErr = errors.New("read-only")
	s.WriteHighScore(900)

	m.saveErr = nil
	if got := s.ReadHighScore(); got != 300 {
		t.Errorf("high score = %d, want 300", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := &Store{m: newMemItems()}
	s.SaveSettings(SavedSettings{SFXVolume: 0.5, Muted: true})
	got := s.LoadSettings()
	if got == nil || got.SFXVolume != 0.5 || !got.Muted {
		t.Errorf("LoadSettings() = %+v", got)
	}
}
