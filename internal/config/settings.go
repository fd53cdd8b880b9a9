package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings holds the user-tunable behaviour of the shell.
type Settings struct {
	Language    string           `koanf:"language"`
	HorizonDays int              `koanf:"horizon_days"`
	Color       string           `koanf:"color"`
	Log         LogSettings      `koanf:"log"`
	Calendar    CalendarSettings `koanf:"calendar"`
}

// LogSettings holds structured logging settings.
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CalendarSettings controls the iCalendar export.
type CalendarSettings struct {
	// Reminder is an ISO8601 duration trigger such as "-P1D". Empty disables alarms.
	Reminder string `koanf:"reminder"`
}

// DefaultSettings returns the built-in settings layer.
func DefaultSettings() Settings {
	return Settings{
		Language:    DefaultLanguage,
		HorizonDays: DefaultHorizonDays,
		Color:       DefaultColor,
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// LoadSettings reads settings using a 3-layer hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. YAML file at path (skipped when path is empty or the file does not exist)
//  3. Environment variables with the ADDRESSBOOK_ prefix
//
// Environment keys map onto settings keys by matching known keys first:
//
//	ADDRESSBOOK_HORIZON_DAYS       -> horizon_days
//	ADDRESSBOOK_LOG_LEVEL          -> log.level
//	ADDRESSBOOK_CALENDAR_REMINDER  -> calendar.reminder
func LoadSettings(path string) (Settings, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Settings{}, fmt.Errorf("%s %s: %w", ErrSettingsFile, path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("%s %s: %w", ErrSettingsFile, path, err)
		}
	}

	envLookup := buildEnvLookup(settingKeys)
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsEnv, err)
	}

	// Unmarshalling onto the defaults keeps every key no layer provided.
	s := DefaultSettings()
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsShape, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// settingKeys lists every dotted key Settings understands.
var settingKeys = []string{
	"language",
	"horizon_days",
	"color",
	"log.level",
	"log.format",
	"calendar.reminder",
}

// buildEnvLookup maps env-style keys ("log_level") to dotted keys ("log.level"),
// so that underscores inside a key name are not mistaken for nesting.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}

// Validate checks all settings and returns aggregated errors.
func (s *Settings) Validate() error {
	var errs []error

	if !slices.Contains(SupportedLanguages, s.Language) {
		errs = append(errs, fmt.Errorf("language must be one of %v, got %q", SupportedLanguages, s.Language))
	}
	if s.HorizonDays < 1 {
		errs = append(errs, fmt.Errorf("horizon_days must be >= 1, got %d", s.HorizonDays))
	}
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color must be one of: auto, always, never; got %q", s.Color))
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", s.Log.Level))
	}
	switch s.Log.Format {
	case LogFormatJSON, LogFormatText:
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", s.Log.Format))
	}
	if r := s.Calendar.Reminder; r != "" &&
		!strings.HasPrefix(r, ISOPeriodPrefix) && !strings.HasPrefix(r, ISONegativePrefix) {
		errs = append(errs, fmt.Errorf("calendar.reminder must be an ISO8601 duration, got %q", r))
	}

	return errors.Join(errs...)
}
