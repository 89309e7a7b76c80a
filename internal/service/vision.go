package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/kdduha/vision-relay/internal/config"
	"github.com/kdduha/vision-relay/internal/metrics"
	"github.com/openai/openai-go/v3"
)

var ErrNoChoices = errors.New("no choices returned by model")

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// Renderer turns a document payload into a single JPEG frame.
type Renderer interface {
	FirstPageJPEG(data []byte) ([]byte, error)
}

type VisionService struct {
	logger       log.Interface
	openaiClient openai.Client
	modelName    string
	maxTokens    int64
	imageDetail  string
	prompt       Prompt
	cache        Cache
	renderer     Renderer
}

func NewVisionService(logger log.Interface, openaiClient openai.Client, cfg config.OpenAIConfig, prompt Prompt) *VisionService {
	return &VisionService{
		logger:       logger,
		openaiClient: openaiClient,
		modelName:    cfg.Model,
		maxTokens:    cfg.MaxTokens,
		imageDetail:  cfg.ImageDetail,
		prompt:       prompt,
	}
}

func (v *VisionService) SetCacheClient(cache Cache) {
	v.cache = cache
}

func (v *VisionService) SetRenderer(renderer Renderer) {
	v.renderer = renderer
}

// Analyze sends the image with the caller's question and returns the model's
// first reply verbatim. Upstream errors are returned unwrapped.
func (v *VisionService) Analyze(ctx context.Context, image, text string) (string, error) {
	var key string
	if v.cache != nil {
		key = v.cacheKey(image, text)
		cached, found, err := v.cache.Get(ctx, key)
		if err != nil {
			v.logger.WithError(err).Warn("cache get error")
		}
		if found {
			metrics.CacheLookup("hit")
			v.logger.Debug("served from cache")
			return cached, nil
		}
		metrics.CacheLookup("miss")
	}

	params, err := v.buildOpenAIReq(image, text)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := v.openaiClient.Chat.Completions.New(ctx, *params)
	if err != nil {
		metrics.UpstreamRequest(ProviderOpenAI, "chat", metrics.StatusError, time.Since(start))
		v.logger.WithError(err).WithField("model", v.modelName).Error("vision request failed")
		return "", err
	}
	metrics.UpstreamRequest(ProviderOpenAI, "chat", metrics.StatusOK, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	answer := resp.Choices[0].Message.Content

	if v.cache != nil {
		if err := v.cache.Set(ctx, key, answer); err != nil {
			v.logger.WithError(err).Warn("failed to set cache")
		}
	}
	return answer, nil
}

func (v *VisionService) cacheKey(image, text string) string {
	data := []string{
		v.modelName,
		v.prompt.System,
		v.prompt.question(text),
		image,
	}

	hash := sha256.Sum256([]byte(strings.Join(data, "|")))
	return cachePrefix + hex.EncodeToString(hash[:])
}
