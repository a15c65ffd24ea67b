package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrganizerIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{"empty", "", nil},
		{"single", "111111111", []int64{111111111}},
		{"multiple", "111,222,333", []int64{111, 222, 333}},
		{"spaces and blanks", " 111 , ,222, ", []int64{111, 222}},
		{"malformed entries skipped", "111,abc,222", []int64{111, 222}},
		{"all malformed", "abc,def", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrganizerIDs(tt.raw))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	t.Setenv("ORGANIZER_IDS", "")
	t.Setenv("LOCAL_TZ", "")
	t.Setenv("EXCEL_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123456:test-token", cfg.BotToken)
	assert.Equal(t, "Asia/Tashkent", cfg.LocalTZ)
	assert.Equal(t, "Asia/Tashkent", cfg.Location.String())
	assert.Equal(t, "data/registrations.xlsx", cfg.ExcelPath)
	assert.Empty(t, cfg.OrganizerIDs)
	assert.Equal(t, filepath.Join("data", "finlit.db"), cfg.DBPath())
}

func TestLoadMissingTokenFails(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadTimeZoneFails(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	t.Setenv("LOCAL_TZ", "Not/AZone")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadParsesOrganizersAndPaths(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	t.Setenv("ORGANIZER_IDS", "111111111,222222222")
	t.Setenv("LOCAL_TZ", "UTC")
	t.Setenv("EXCEL_PATH", "/tmp/finlit/registrations.xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []int64{111111111, 222222222}, cfg.OrganizerIDs)
	assert.Equal(t, "/tmp/finlit/finlit.db", cfg.DBPath())
}
