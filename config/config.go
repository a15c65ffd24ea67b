// Package config loads runtime settings from the process environment.
package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	// Embedded zone database, so LOCAL_TZ resolves on images without a
	// system tzdata package.
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings. Everything comes from the
// environment, loaded once at startup; a missing bot token is fatal.
type Config struct {
	BotToken        string `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	RawOrganizerIDs string `env:"ORGANIZER_IDS"`
	LocalTZ         string `env:"LOCAL_TZ" envDefault:"Asia/Tashkent"`
	ExcelPath       string `env:"EXCEL_PATH" envDefault:"data/registrations.xlsx"`

	OrganizerIDs []int64        `env:"-"`
	Location     *time.Location `env:"-"`
}

// Load parses the environment into a Config, resolves the time zone, and
// parses the organizer allow-list.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	loc, err := time.LoadLocation(cfg.LocalTZ)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.LocalTZ, err)
	}
	cfg.Location = loc
	cfg.OrganizerIDs = ParseOrganizerIDs(cfg.RawOrganizerIDs)
	return cfg, nil
}

// DBPath returns the SQLite file path, kept next to the Excel snapshot.
func (c *Config) DBPath() string {
	return filepath.Join(filepath.Dir(c.ExcelPath), "finlit.db")
}

// ParseOrganizerIDs parses a comma-separated list of Telegram user IDs.
// Blank and malformed entries are skipped.
func ParseOrganizerIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
