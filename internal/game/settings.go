package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/geom"
)

// Preferences are the viewer's toggles that survive restarts. Generated
// fields are never stored.
type Preferences struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	Volume       float64 `yaml:"volume"`
	ShowHUD      bool    `yaml:"showHUD"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultPreferences derives first-run preferences from the config.
func DefaultPreferences(cfg *config.Config) Preferences {
	return Preferences{
		SoundEnabled: cfg.Sound.Enabled,
		Volume:       cfg.Sound.Volume,
		ShowHUD:      true,
	}
}

const (
	settingsAppName  = "rosette_field"
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// OpenSettingsStore opens the per-user gdata store.
func OpenSettingsStore() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: settingsAppName})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return m, nil
}

// SettingsManager loads and saves Preferences. With a nil store it keeps
// preferences in memory only.
type SettingsManager struct {
	store    *gdata.Manager
	defaults Preferences
	prefs    Preferences
}

// NewSettingsManager loads saved preferences, falling back to defaults
// when nothing is stored or the stored data is unreadable.
func NewSettingsManager(store *gdata.Manager, defaults Preferences) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		defaults: defaults,
		prefs:    defaults,
	}
	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load replaces the in-memory preferences with the stored ones.
func (sm *SettingsManager) Load() error {
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		sm.prefs = sm.defaults
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.prefs = sm.defaults
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := sm.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.prefs = sm.defaults
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	loaded.Volume = geom.Clamp01(loaded.Volume)
	sm.prefs = loaded
	return nil
}

// Save writes the current preferences. Without a store it does nothing.
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(&sm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Preferences returns a copy of the current preferences.
func (sm *SettingsManager) Preferences() Preferences {
	return sm.prefs
}

func (sm *SettingsManager) ToggleSound() bool {
	sm.prefs.SoundEnabled = !sm.prefs.SoundEnabled
	return sm.prefs.SoundEnabled
}

func (sm *SettingsManager) ToggleHUD() bool {
	sm.prefs.ShowHUD = !sm.prefs.ShowHUD
	return sm.prefs.ShowHUD
}

func (sm *SettingsManager) SetFullscreen(on bool) {
	sm.prefs.Fullscreen = on
}

// SetVolume clamps v to [0, 1].
func (sm *SettingsManager) SetVolume(v float64) {
	sm.prefs.Volume = geom.Clamp01(v)
}
