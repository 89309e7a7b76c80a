package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// PlaceholderAPIKey is used when OPENAI_API_KEY is not set.
const PlaceholderAPIKey = "YOUR_OPENAI_API_KEY"

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	OpenAI      OpenAIConfig
	Prompt      PromptConfig
	ElevenLabs  ElevenLabsConfig
	Document    DocumentConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type ServerConfig struct {
	Port string `env:"SERVER_PORT" envDefault:"8080"`
	// Timeout of zero leaves request contexts uncancelled.
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"0s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type OpenAIConfig struct {
	APIKey             string `env:"OPENAI_API_KEY" envDefault:"YOUR_OPENAI_API_KEY"`
	BaseURL            string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model              string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	MaxTokens          int64  `env:"OPENAI_MAX_TOKENS" envDefault:"300"`
	ImageDetail        string `env:"OPENAI_IMAGE_DETAIL" envDefault:"low"`
	TranscribeModel    string `env:"OPENAI_TRANSCRIBE_MODEL" envDefault:"whisper-1"`
	TranscribeLanguage string `env:"OPENAI_TRANSCRIBE_LANGUAGE" envDefault:"en"`
}

// PromptConfig selects the system instruction sent with every image.
// SystemPrompt, when set, overrides Profile.
type PromptConfig struct {
	Profile         string `env:"VISION_PROMPT_PROFILE" envDefault:"restricted"`
	SystemPrompt    string `env:"VISION_SYSTEM_PROMPT"`
	DefaultQuestion string `env:"VISION_DEFAULT_QUESTION" envDefault:"What do you see in this image?"`
}

type ElevenLabsConfig struct {
	APIKey          string        `env:"ELEVEN_LABS_API_KEY"`
	BaseURL         string        `env:"ELEVEN_LABS_BASE_URL" envDefault:"https://api.elevenlabs.io/v1"`
	VoiceID         string        `env:"ELEVEN_LABS_VOICE_ID" envDefault:"21m00Tcm4TlvDq8ikWAM"`
	ModelID         string        `env:"ELEVEN_LABS_MODEL_ID"`
	Stability       float64       `env:"ELEVEN_LABS_STABILITY" envDefault:"0.5"`
	SimilarityBoost float64       `env:"ELEVEN_LABS_SIMILARITY_BOOST" envDefault:"0.5"`
	Timeout         time.Duration `env:"ELEVEN_LABS_TIMEOUT" envDefault:"0s"`
}

type DocumentConfig struct {
	RenderPDF bool    `env:"VISION_RENDER_PDF"`
	DPI       float64 `env:"VISION_RENDER_DPI" envDefault:"110"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
