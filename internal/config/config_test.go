package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data/roster.yaml", cfg.Roster)
	assert.Empty(t, cfg.ChatDB)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.True(t, cfg.NotifyGM, "NotifyGM defaults to true")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PARTYSHEET_ADDR", "127.0.0.1:9000")
	t.Setenv("PARTYSHEET_CHAT_DB", "/tmp/chat.db")
	t.Setenv("PARTYSHEET_LOCALE", "sv-SE")
	t.Setenv("PARTYSHEET_NOTIFY_GM", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/tmp/chat.db", cfg.ChatDB)
	assert.Equal(t, "sv-SE", cfg.Locale)
	assert.False(t, cfg.NotifyGM)
}

func TestLoad_BadBool(t *testing.T) {
	t.Setenv("PARTYSHEET_NOTIFY_GM", "sometimes")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
