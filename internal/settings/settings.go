// Package settings loads user preferences from the ganttify config file.
//
// Settings come from three layers, lowest priority first: built-in defaults,
// the config file in the user settings directory, and GANTTIFY_* environment
// variables. Command-line flags override all of them at the call site.
package settings

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

// Settings is the full ganttify configuration.
type Settings struct {
	Render RenderSettings `mapstructure:"render"`
	Watch  WatchSettings  `mapstructure:"watch"`
	Log    LogSettings    `mapstructure:"log"`
	Trace  TraceSettings  `mapstructure:"trace"`
}

// RenderSettings controls the default render output.
type RenderSettings struct {
	// Format is the default render format when no flag or output
	// extension selects one.
	Format string `mapstructure:"format"`
	// Width overrides the detected terminal width (0 = auto).
	Width int `mapstructure:"width"`
	// NoColor disables styled output.
	NoColor bool `mapstructure:"no_color"`
}

// WatchSettings controls watch mode.
type WatchSettings struct {
	// UI selects the watch front-end: "tui" or "plain".
	UI string `mapstructure:"ui"`
	// DebounceMs is the quiet window after a file event before reloading.
	DebounceMs int `mapstructure:"debounce_ms"`
}

// Debounce returns the debounce window as a time.Duration.
func (w WatchSettings) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// LogSettings controls log output.
type LogSettings struct {
	// JSON switches the logger to line-delimited JSON.
	JSON bool `mapstructure:"json"`
}

// TraceSettings controls span emission.
type TraceSettings struct {
	// Enabled turns on the OpenTelemetry tracer; off means noop spans.
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Render: RenderSettings{
			Format:  "table",
			Width:   0,
			NoColor: false,
		},
		Watch: WatchSettings{
			UI:         "tui",
			DebounceMs: 250,
		},
		Log: LogSettings{
			JSON: false,
		},
		Trace: TraceSettings{
			Enabled: false,
		},
	}
}

// ValidUIs returns the accepted watch.ui values.
func ValidUIs() []string {
	return []string{"tui", "plain"}
}

// Load reads settings from dir, layering the config file and GANTTIFY_*
// environment variables over the defaults. A missing config file is not an
// error; a malformed one is.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(domain.SettingsFileName, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("GANTTIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if !slices.Contains(ValidUIs(), s.Watch.UI) {
		err := zerr.With(domain.ErrSettingsLoadFailed, "key", "watch.ui")
		return zerr.With(err, "value", s.Watch.UI)
	}
	if s.Watch.DebounceMs < 0 {
		err := zerr.With(domain.ErrSettingsLoadFailed, "key", "watch.debounce_ms")
		return zerr.With(err, "value", s.Watch.DebounceMs)
	}
	return nil
}

// setDefaults registers every key with viper so environment overrides are
// visible to Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("render.format", d.Render.Format)
	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.no_color", d.Render.NoColor)

	v.SetDefault("watch.ui", d.Watch.UI)
	v.SetDefault("watch.debounce_ms", d.Watch.DebounceMs)

	v.SetDefault("log.json", d.Log.JSON)

	v.SetDefault("trace.enabled", d.Trace.Enabled)
}
