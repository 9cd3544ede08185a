package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openStore points gdata at a temporary home directory.
func openStore(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	store, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("gdata.Open() error = %v", err)
	}
	return store
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.MusicVolume != 0.5 || s.SoundVolume != 0.8 {
		t.Errorf("Default() volumes = %v/%v, expected 0.5/0.8", s.MusicVolume, s.SoundVolume)
	}
	if !s.MusicEnabled || !s.SoundEnabled {
		t.Error("Default() should enable sound and music")
	}
	if s.Difficulty != "" || s.LastGame != "" {
		t.Errorf("Default() = %+v, expected no preset or last game", s)
	}
}

func TestManagerWithoutStore(t *testing.T) {
	m := NewManager(nil, nil)

	if m.Persistent() {
		t.Error("Persistent() = true without a store")
	}
	m.Update(func(s *Settings) { s.SoundVolume = 0.1 })
	if err := m.Save(); err != nil {
		t.Errorf("Save() without store = %v, expected nil", err)
	}
	if err := m.Load(); err != nil {
		t.Errorf("Load() without store = %v, expected nil", err)
	}
	if m.Get() != Default() {
		t.Errorf("Load() without store = %+v, expected defaults", m.Get())
	}
}

func TestManagerSaveLoad(t *testing.T) {
	store := openStore(t, "fruitgravity_test_save")

	m := NewManager(store, nil)
	if m.Get() != Default() {
		t.Fatalf("fresh store = %+v, expected defaults", m.Get())
	}

	m.Update(func(s *Settings) {
		s.MusicVolume = 0.25
		s.SoundEnabled = false
		s.Difficulty = "hard"
		s.LastGame = "fruit_classic"
		s.Fullscreen = true
	})
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded := NewManager(store, nil)
	got := reloaded.Get()
	expected := Settings{
		MusicVolume:  0.25,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: false,
		Difficulty:   "hard",
		LastGame:     "fruit_classic",
		Fullscreen:   true,
	}
	if got != expected {
		t.Errorf("reloaded = %+v, expected %+v", got, expected)
	}
}

func TestManagerLoadInvalidYAML(t *testing.T) {
	store := openStore(t, "fruitgravity_test_invalid")
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("music_volume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() error = %v", err)
	}

	m := NewManager(store, nil)
	if err := m.Load(); err == nil {
		t.Error("Load() of invalid YAML should fail")
	}
	if m.Get() != Default() {
		t.Errorf("settings after failed load = %+v, expected defaults", m.Get())
	}
}

func TestUpdateNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(*Settings)
		expected func(Settings) bool
	}{
		{"volume above 1", func(s *Settings) { s.MusicVolume = 3 }, func(s Settings) bool { return s.MusicVolume == 1 }},
		{"volume below 0", func(s *Settings) { s.SoundVolume = -1 }, func(s Settings) bool { return s.SoundVolume == 0 }},
		{"known preset", func(s *Settings) { s.Difficulty = "easy" }, func(s Settings) bool { return s.Difficulty == "easy" }},
		{"unknown preset", func(s *Settings) { s.Difficulty = "nightmare" }, func(s Settings) bool { return s.Difficulty == "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(nil, nil)
			if got := m.Update(tt.apply); !tt.expected(got) {
				t.Errorf("Update() = %+v", got)
			}
		})
	}
}

func TestAudioConfig(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		sfx       float64
		musicGain float64
	}{
		{"defaults", Default(), 0.8, 0.5},
		{"sound off", Settings{SoundVolume: 0.8, MusicVolume: 0.5, MusicEnabled: true}, 0, 0.5},
		{"music off", Settings{SoundVolume: 0.8, MusicVolume: 0.5, SoundEnabled: true}, 0.8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.settings.Audio()
			if cfg.SFXVolume != tt.sfx || cfg.MusicVolume != tt.musicGain {
				t.Errorf("Audio() = %+v, expected sfx %v music %v", cfg, tt.sfx, tt.musicGain)
			}
			if cfg.SampleRate <= 0 {
				t.Errorf("Audio().SampleRate = %d, expected a default rate", cfg.SampleRate)
			}
		})
	}
}
