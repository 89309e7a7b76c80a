package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, int64(300), cfg.OpenAI.MaxTokens)
	assert.Equal(t, "low", cfg.OpenAI.ImageDetail)
	assert.Equal(t, "restricted", cfg.Prompt.Profile)
	assert.Equal(t, "What do you see in this image?", cfg.Prompt.DefaultQuestion)
	assert.Equal(t, "21m00Tcm4TlvDq8ikWAM", cfg.ElevenLabs.VoiceID)
	assert.Equal(t, 0.5, cfg.ElevenLabs.Stability)
	assert.Equal(t, 10*time.Minute, cfg.RedisConfig.TTL)
	assert.False(t, cfg.CacheEnable)
	assert.False(t, cfg.Document.RenderPDF)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MAX_TOKENS", "120")
	t.Setenv("VISION_PROMPT_PROFILE", "basic")
	t.Setenv("CACHE_ENABLE", "true")
	t.Setenv("SERVER_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, int64(120), cfg.OpenAI.MaxTokens)
	assert.Equal(t, "basic", cfg.Prompt.Profile)
	assert.True(t, cfg.CacheEnable)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("OPENAI_MAX_TOKENS", "many")

	_, err := Load()
	assert.Error(t, err)
}
