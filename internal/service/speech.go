package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/bytedance/sonic"
	"github.com/kdduha/vision-relay/internal/config"
	"github.com/kdduha/vision-relay/internal/metrics"
)

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id,omitempty"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// SpeechService relays text to the ElevenLabs text-to-speech API.
type SpeechService struct {
	logger     log.Interface
	httpClient *http.Client
	cfg        config.ElevenLabsConfig
}

func NewSpeechService(logger log.Interface, httpClient *http.Client, cfg config.ElevenLabsConfig) *SpeechService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &SpeechService{
		logger:     logger,
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// Synthesize forwards text unchanged and returns the audio bytes as produced.
func (s *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := sonic.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: s.cfg.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       s.cfg.Stability,
			SimilarityBoost: s.cfg.SimilarityBoost,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal req: %w", err)
	}

	endpoint := strings.TrimSuffix(s.cfg.BaseURL, "/") + "/text-to-speech/" + url.PathEscape(s.cfg.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.cfg.APIKey)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequest(ProviderElevenLabs, "speech", metrics.StatusError, time.Since(start))
		s.logger.WithError(err).Error("speech request failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequest(ProviderElevenLabs, "speech", metrics.StatusError, time.Since(start))
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		s.logger.WithFields(log.Fields{
			"status": resp.StatusCode,
			"body":   string(detail),
		}).Error("speech provider rejected request")
		return nil, fmt.Errorf("ElevenLabs API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequest(ProviderElevenLabs, "speech", metrics.StatusError, time.Since(start))
		return nil, fmt.Errorf("read audio: %w", err)
	}
	metrics.UpstreamRequest(ProviderElevenLabs, "speech", metrics.StatusOK, time.Since(start))

	s.logger.WithField("bytes", len(audio)).Debug("speech synthesized")
	return audio, nil
}
