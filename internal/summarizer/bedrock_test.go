// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: converser
// ─────────────────────────────────────────────

type fakeConverser struct {
	converseFn func(ctx context.Context, in *bedrockruntime.ConverseInput) (*bedrockruntime.ConverseOutput, error)
}

func (f *fakeConverser) Converse(ctx context.Context, in *bedrockruntime.ConverseInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	return f.converseFn(ctx, in)
}

func textOutput(parts ...string) *bedrockruntime.ConverseOutput {
	content := make([]types.ContentBlock, 0, len(parts))
	for _, p := range parts {
		content = append(content, &types.ContentBlockMemberText{Value: p})
	}
	return &bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{
			Value: types.Message{Role: types.ConversationRoleAssistant, Content: content},
		},
	}
}

var bedrockCfg = config.Summarizer{ModelID: "anthropic.claude-3-haiku", MaxTokens: 400, Temperature: 0.2}

func TestBedrockProvider_Complete(t *testing.T) {
	var got *bedrockruntime.ConverseInput
	client := &fakeConverser{
		converseFn: func(_ context.Context, in *bedrockruntime.ConverseInput) (*bedrockruntime.ConverseOutput, error) {
			got = in
			return textOutput(`{"overallSummary":`, `"a"}`), nil
		},
	}

	text, err := newBedrockProvider(client, bedrockCfg).Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"overallSummary":"a"}`, text)

	require.NotNil(t, got)
	assert.Equal(t, "anthropic.claude-3-haiku", aws.ToString(got.ModelId))
	assert.Equal(t, int32(400), aws.ToInt32(got.InferenceConfig.MaxTokens))
	assert.InDelta(t, 0.2, aws.ToFloat32(got.InferenceConfig.Temperature), 1e-6)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, types.ConversationRoleUser, got.Messages[0].Role)
	require.Len(t, got.Messages[0].Content, 1)
	assert.Equal(t, "prompt", got.Messages[0].Content[0].(*types.ContentBlockMemberText).Value)
}

func TestBedrockProvider_Complete_Error(t *testing.T) {
	client := &fakeConverser{
		converseFn: func(context.Context, *bedrockruntime.ConverseInput) (*bedrockruntime.ConverseOutput, error) {
			return nil, errors.New("AccessDeniedException")
		},
	}

	_, err := newBedrockProvider(client, bedrockCfg).Complete(context.Background(), "prompt")

	assert.ErrorContains(t, err, "AccessDeniedException")
}

func TestBedrockProvider_Complete_NoText(t *testing.T) {
	client := &fakeConverser{
		converseFn: func(context.Context, *bedrockruntime.ConverseInput) (*bedrockruntime.ConverseOutput, error) {
			return textOutput(), nil
		},
	}

	_, err := newBedrockProvider(client, bedrockCfg).Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestBedrockProvider_Name(t *testing.T) {
	assert.Equal(t, "bedrock", newBedrockProvider(&fakeConverser{}, bedrockCfg).Name())
}
