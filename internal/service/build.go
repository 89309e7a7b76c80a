package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

func imageDataURL(image string) string {
	return fmt.Sprintf("data:%s;base64,%s", imageMIME, image)
}

func (v *VisionService) buildOpenAIReq(image, text string) (*openai.ChatCompletionNewParams, error) {
	if v.renderer != nil && strings.HasPrefix(image, pdfBase64Tag) {
		rendered, err := v.renderDocument(image)
		if err != nil {
			return nil, err
		}
		image = rendered
	}

	params := &openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(v.modelName),
		Messages: v.buildImageMessages(image, text),
	}
	if v.maxTokens > 0 {
		params.MaxTokens = openai.Int(v.maxTokens)
	}
	return params, nil
}

func (v *VisionService) buildImageMessages(image, text string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(v.prompt.System),
		openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(v.prompt.question(text)),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL:    imageDataURL(image),
				Detail: v.imageDetail,
			}),
		}),
	}
}

func (v *VisionService) renderDocument(image string) (string, error) {
	v.logger.Debug("start rendering document payload")
	defer v.logger.Debug("finish rendering document payload")

	raw, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	frame, err := v.renderer.FirstPageJPEG(raw)
	if err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return base64.StdEncoding.EncodeToString(frame), nil
}
