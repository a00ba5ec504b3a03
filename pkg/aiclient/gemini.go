package aiclient

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient implements TextGenerator and ImageGenerator on top of the
// Gemini API.
type GeminiClient struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

func NewGeminiClient(ctx context.Context, apiKey, textModel, imageModel string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("GOOGLE_GEMINI_API_KEY não configurada")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	return &GeminiClient{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, req *TextRequest) (*TextResult, error) {
	var parts []*genai.Part

	// The file goes first so the instruction text can refer to "o arquivo
	// anexo", mirroring the prompt wording.
	if req.File != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: req.File.MimeType,
				Data:     req.File.Data,
			},
		})
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.WebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	res, err := c.client.Models.GenerateContent(ctx, c.textModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	text := res.Text()
	if text == "" {
		return nil, errors.New("resposta vazia do modelo")
	}

	result := &TextResult{Text: text}
	if len(res.Candidates) > 0 && res.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range res.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				continue
			}
			result.Citations = append(result.Citations, Citation{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}
	return result, nil
}

// GenerateImage asks the image model for a single illustration. A reply
// without any inline image part is treated as "no image", not an error.
func (c *GeminiClient) GenerateImage(ctx context.Context, req *ImageRequest) (*ImageResult, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.AspectRatio != "" {
		cfg.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}

	res, err := c.client.Models.GenerateContent(
		ctx,
		c.imageModel,
		genai.Text(req.Prompt),
		cfg,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar imagem: %w", err)
	}

	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &ImageResult{
					MimeType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}
	return nil, nil
}
