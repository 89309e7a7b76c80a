package service

import (
	"testing"

	"github.com/kdduha/vision-relay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrompt(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.PromptConfig
		wantProfile string
		wantSystem  string
	}{
		{"restricted", config.PromptConfig{Profile: ProfileRestricted}, ProfileRestricted, systemPromptRestricted},
		{"empty profile", config.PromptConfig{}, ProfileRestricted, systemPromptRestricted},
		{"basic", config.PromptConfig{Profile: ProfileBasic}, ProfileBasic, systemPromptBasic},
		{"override", config.PromptConfig{Profile: ProfileBasic, SystemPrompt: "Be brief."}, "custom", "Be brief."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ResolvePrompt(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProfile, p.Profile)
			assert.Equal(t, tt.wantSystem, p.System)
			assert.Equal(t, "What do you see in this image?", p.DefaultQuestion)
		})
	}
}

func TestResolvePrompt_UnknownProfile(t *testing.T) {
	_, err := ResolvePrompt(config.PromptConfig{Profile: "chatty"})
	assert.Error(t, err)
}

func TestRestrictedPromptCarriesRefusal(t *testing.T) {
	assert.Contains(t, systemPromptRestricted, systemPromptBasic)
	assert.Contains(t, systemPromptRestricted, RefusalSentence)
	assert.NotContains(t, systemPromptBasic, RefusalSentence)
}

func TestPromptQuestion(t *testing.T) {
	p := Prompt{DefaultQuestion: "What do you see in this image?"}
	assert.Equal(t, "What do you see in this image?", p.question(""))
	assert.Equal(t, "Read the sign", p.question("Read the sign"))
}
