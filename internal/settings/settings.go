// Package settings persists per-user preferences: audio levels, the
// difficulty preset and the last game played.
package settings

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fruit-gravity/internal/audio"
	"github.com/vovakirdan/fruit-gravity/internal/config"
)

// AppName is the gdata application directory.
const AppName = "fruitgravity"

const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// Settings holds the user's preferences.
type Settings struct {
	MusicVolume  float64 `yaml:"music_volume"`
	SoundVolume  float64 `yaml:"sound_volume"`
	MusicEnabled bool    `yaml:"music_enabled"`
	SoundEnabled bool    `yaml:"sound_enabled"`

	// Difficulty is a preset name; empty means the config file decides.
	Difficulty string `yaml:"difficulty"`
	LastGame   string `yaml:"last_game"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Default returns the preferences of a fresh install.
func Default() Settings {
	return Settings{
		MusicVolume:  0.5,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// normalize clamps volumes and drops unknown presets.
func (s *Settings) normalize() {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SoundVolume = clampVolume(s.SoundVolume)
	if s.Difficulty != "" && config.ParsePreset(s.Difficulty) == "" {
		s.Difficulty = ""
	}
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Audio converts the preferences to mixer levels.
func (s Settings) Audio() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.SFXVolume = s.SoundVolume
	cfg.MusicVolume = s.MusicVolume
	if !s.SoundEnabled {
		cfg.SFXVolume = 0
	}
	if !s.MusicEnabled {
		cfg.MusicVolume = 0
	}
	return cfg
}

// Manager loads and saves Settings. A Manager without a gdata store keeps
// preferences in memory only.
type Manager struct {
	mu       sync.Mutex
	store    *gdata.Manager
	logger   *log.Logger
	settings Settings
}

// Open creates a Manager backed by the per-user data directory.
// If the directory is unavailable the Manager still works in memory and the
// error is returned alongside it.
func Open(logger *log.Logger) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		m := NewManager(nil, logger)
		return m, fmt.Errorf("settings: cannot open data directory: %w", err)
	}
	return NewManager(store, logger), nil
}

// NewManager creates a Manager and loads saved preferences.
// store may be nil.
func NewManager(store *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		store:    store,
		logger:   logger,
		settings: Default(),
	}
	if err := m.Load(); err != nil {
		m.logger.Warn("using default settings", "error", err)
	}
	return m
}

// Load reads saved preferences. Missing data yields the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: cannot parse: %w", err)
	}
	loaded.normalize()
	m.settings = loaded
	m.logger.Debug("settings loaded")
	return nil
}

// Save writes the current preferences. Without a store it does nothing.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	m.logger.Debug("settings saved")
	return nil
}

// Get returns a copy of the current preferences.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// Update changes preferences in memory; call Save to persist them.
func (m *Manager) Update(fn func(*Settings)) Settings {
	m.mu.Lock()
	defer m.mu.Unlock()

	fn(&m.settings)
	m.settings.normalize()
	return m.settings
}

// Persistent reports whether preferences survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}
