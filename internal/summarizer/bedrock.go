// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// converser is the subset of the Bedrock runtime client used here.
type converser interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// BedrockProvider calls the Bedrock Converse API.
type BedrockProvider struct {
	client      converser
	modelID     string
	maxTokens   int32
	temperature float32
}

// NewBedrockProvider loads the default AWS credential chain for cfg.Region.
func NewBedrockProvider(ctx context.Context, cfg config.Summarizer) (*BedrockProvider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	return newBedrockProvider(bedrockruntime.NewFromConfig(awsCfg), cfg), nil
}

func newBedrockProvider(client converser, cfg config.Summarizer) *BedrockProvider {
	return &BedrockProvider{
		client:      client,
		modelID:     cfg.ModelID,
		maxTokens:   int32(cfg.MaxTokens),
		temperature: float32(cfg.Temperature),
	}
}

func (p *BedrockProvider) Name() string {
	return models.SourceBedrock
}

func (p *BedrockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := p.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(p.modelID),
		Messages: []types.Message{
			{
				Role:    types.ConversationRoleUser,
				Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: prompt}},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(p.maxTokens),
			Temperature: aws.Float32(p.temperature),
		},
	})
	if err != nil {
		return "", fmt.Errorf("bedrock converse: %w", err)
	}

	message, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", ErrEmptyCompletion
	}

	var text strings.Builder
	for _, block := range message.Value.Content {
		if tb, ok := block.(*types.ContentBlockMemberText); ok {
			text.WriteString(tb.Value)
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyCompletion
	}

	return text.String(), nil
}
