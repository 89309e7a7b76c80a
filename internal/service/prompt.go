package service

import (
	"fmt"

	"github.com/kdduha/vision-relay/internal/config"
)

// Prompt holds the fixed instruction pair sent with every analysis.
type Prompt struct {
	Profile         string
	System          string
	DefaultQuestion string
}

// ResolvePrompt picks the system instruction. The two known profiles disagree
// on the refusal policy, so the choice is left to configuration.
func ResolvePrompt(cfg config.PromptConfig) (Prompt, error) {
	p := Prompt{
		Profile:         cfg.Profile,
		DefaultQuestion: cfg.DefaultQuestion,
	}

	switch {
	case cfg.SystemPrompt != "":
		p.Profile = "custom"
		p.System = cfg.SystemPrompt
	case cfg.Profile == ProfileBasic:
		p.System = systemPromptBasic
	case cfg.Profile == ProfileRestricted || cfg.Profile == "":
		p.Profile = ProfileRestricted
		p.System = systemPromptRestricted
	default:
		return Prompt{}, fmt.Errorf("unknown prompt profile {%s}", cfg.Profile)
	}

	if p.DefaultQuestion == "" {
		p.DefaultQuestion = "What do you see in this image?"
	}
	return p, nil
}

func (p Prompt) question(text string) string {
	if text == "" {
		return p.DefaultQuestion
	}
	return text
}
