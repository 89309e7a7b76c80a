package service

import (
	"context"
	"io"
	"time"

	"github.com/apex/log"
	"github.com/kdduha/vision-relay/internal/config"
	"github.com/kdduha/vision-relay/internal/metrics"
	"github.com/openai/openai-go/v3"
)

type TranscribeService struct {
	logger       log.Interface
	openaiClient openai.Client
	modelName    string
	language     string
}

func NewTranscribeService(logger log.Interface, openaiClient openai.Client, cfg config.OpenAIConfig) *TranscribeService {
	return &TranscribeService{
		logger:       logger,
		openaiClient: openaiClient,
		modelName:    cfg.TranscribeModel,
		language:     cfg.TranscribeLanguage,
	}
}

func (t *TranscribeService) Transcribe(ctx context.Context, audio io.Reader, filename, contentType string) (string, error) {
	params := openai.AudioTranscriptionNewParams{
		File:  openai.File(audio, filename, contentType),
		Model: openai.AudioModel(t.modelName),
	}
	if t.language != "" {
		params.Language = openai.String(t.language)
	}

	start := time.Now()
	resp, err := t.openaiClient.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		metrics.UpstreamRequest(ProviderOpenAI, "transcribe", metrics.StatusError, time.Since(start))
		t.logger.WithError(err).WithField("file", filename).Error("transcription failed")
		return "", err
	}
	metrics.UpstreamRequest(ProviderOpenAI, "transcribe", metrics.StatusOK, time.Since(start))

	return resp.Text, nil
}
