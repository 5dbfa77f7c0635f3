package llm

import (
	"context"
)

// ImagePart is one screenshot handed to the model: opaque bytes plus the
// declared mime type.
type ImagePart struct {
	Data     []byte
	MIMEType string
}

// Provider is the interface for all multimodal LLM providers.
type Provider interface {
	GenerateVision(ctx context.Context, prompt string, systemPrompt string, images []ImagePart, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

type OpenAIProvider struct{}

func (p *OpenAIProvider) GenerateVision(ctx context.Context, prompt string, systemPrompt string, images []ImagePart, options map[string]interface{}) (string, error) {
	// OpenAI specific API call logic
	return "Not implemented: OpenAI Response", nil
}

func (p *OpenAIProvider) AdaptInstructions(raw string) string {
	return "OpenAI Style: " + raw // Template for GPT-specific prompting
}

type KimiProvider struct{}

func (p *KimiProvider) GenerateVision(ctx context.Context, prompt string, systemPrompt string, images []ImagePart, options map[string]interface{}) (string, error) {
	return "Not implemented: Kimi Response", nil
}

func (p *KimiProvider) AdaptInstructions(raw string) string {
	return "Kimi Style: " + raw // Kimi is optimized for long-context document reading
}

type DoubaoProvider struct{}

func (p *DoubaoProvider) GenerateVision(ctx context.Context, prompt string, systemPrompt string, images []ImagePart, options map[string]interface{}) (string, error) {
	return "Not implemented: Doubao Response", nil
}

func (p *DoubaoProvider) AdaptInstructions(raw string) string {
	return "Doubao Style: " + raw // Doubao (ByteDance) has strong OCR performance on localized screenshots
}
