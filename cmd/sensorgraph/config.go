package main

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve on hosts without a zoneinfo database

	"github.com/spf13/viper"

	"github.com/rowan-sl/hayselnut/src/logging"
	"github.com/rowan-sl/hayselnut/src/readings"
	"github.com/rowan-sl/hayselnut/src/units"
)

// Config is the resolved run configuration.
type Config struct {
	File            string
	Location        *time.Location
	TickZone        *time.Location
	TemperatureUnit string
	Width           int
	Height          int
	Title           string
	LogLevel        string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("file", readings.DefaultFile)
	v.SetDefault("location", "Local")
	v.SetDefault("tick-zone", "EST")
	v.SetDefault("temperature-unit", "F")
	v.SetDefault("width", 1100)
	v.SetDefault("height", 600)
	v.SetDefault("title", "")
	v.SetDefault("log-level", "info")
}

// configFromViper reads and validates every key.
func configFromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		File:            v.GetString("file"),
		TemperatureUnit: strings.ToUpper(strings.TrimSpace(v.GetString("temperature-unit"))),
		Width:           v.GetInt("width"),
		Height:          v.GetInt("height"),
		Title:           v.GetString("title"),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("log-level"))),
	}
	if cfg.File == "" {
		cfg.File = readings.DefaultFile
	}
	var err error
	if cfg.Location, err = resolveLocation(v.GetString("location")); err != nil {
		return Config{}, fmt.Errorf("location: %w", err)
	}
	if cfg.TickZone, err = resolveLocation(v.GetString("tick-zone")); err != nil {
		return Config{}, fmt.Errorf("tick-zone: %w", err)
	}
	if !units.ValidTemperatureUnit(cfg.TemperatureUnit) {
		return Config{}, fmt.Errorf("temperature-unit %q: %w", cfg.TemperatureUnit, units.ErrUnknownUnit)
	}
	if _, err = logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// resolveLocation maps "" and "local" to the host zone and anything else through the
// IANA database.
func resolveLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// sameZone reports whether a and b give the same wall clock at t.
func sameZone(a, b *time.Location, t time.Time) bool {
	_, oa := t.In(a).Zone()
	_, ob := t.In(b).Zone()
	return oa == ob
}
