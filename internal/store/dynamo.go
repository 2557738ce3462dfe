// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoAPI is the subset of the DynamoDB client used by the repositories.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Attribute names shared by both tables.
const (
	attrClaimID = "claim_id"
	attrNoteID  = "note_id"
)

// claimItem is the DynamoDB representation of [models.Claim].
type claimItem struct {
	ClaimID      string       `dynamodbav:"claim_id"`
	Status       string       `dynamodbav:"status"`
	PolicyNumber string       `dynamodbav:"policyNumber"`
	Customer     string       `dynamodbav:"customer"`
	UpdatedAt    string       `dynamodbav:"updatedAt"`
	Summary      *summaryItem `dynamodbav:"summary,omitempty"`
}

type summaryItem struct {
	OverallSummary         string `dynamodbav:"overallSummary"`
	CustomerFacingSummary  string `dynamodbav:"customerFacingSummary"`
	AdjusterFocusedSummary string `dynamodbav:"adjusterFocusedSummary"`
	RecommendedNextStep    string `dynamodbav:"recommendedNextStep"`
}

// noteItem is the DynamoDB representation of [models.Note].
type noteItem struct {
	ClaimID string `dynamodbav:"claim_id"`
	NoteID  string `dynamodbav:"note_id"`
	Content string `dynamodbav:"content"`
}

func newClaimItem(claim models.Claim) claimItem {
	item := claimItem{
		ClaimID:      claim.ID,
		Status:       claim.Status,
		PolicyNumber: claim.PolicyNumber,
		Customer:     claim.Customer,
		UpdatedAt:    claim.UpdatedAt,
	}
	if claim.Summary != nil {
		summary := newSummaryItem(*claim.Summary)
		item.Summary = &summary
	}
	return item
}

func (i claimItem) toModel() models.Claim {
	claim := models.Claim{
		ID:           i.ClaimID,
		Status:       i.Status,
		PolicyNumber: i.PolicyNumber,
		Customer:     i.Customer,
		UpdatedAt:    i.UpdatedAt,
	}
	if i.Summary != nil {
		claim.Summary = &models.Summary{
			OverallSummary:         i.Summary.OverallSummary,
			CustomerFacingSummary:  i.Summary.CustomerFacingSummary,
			AdjusterFocusedSummary: i.Summary.AdjusterFocusedSummary,
			RecommendedNextStep:    i.Summary.RecommendedNextStep,
		}
	}
	return claim
}

func newSummaryItem(summary models.Summary) summaryItem {
	return summaryItem{
		OverallSummary:         summary.OverallSummary,
		CustomerFacingSummary:  summary.CustomerFacingSummary,
		AdjusterFocusedSummary: summary.AdjusterFocusedSummary,
		RecommendedNextStep:    summary.RecommendedNextStep,
	}
}

func (i noteItem) toModel() models.Note {
	return models.Note{ClaimID: i.ClaimID, NoteID: i.NoteID, Content: i.Content}
}

// NewDynamoClient builds a DynamoDB client from the default AWS credential
// chain. Endpoint, when set, replaces the regional endpoint.
func NewDynamoClient(ctx context.Context, cfg config.Dynamo) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func claimKey(claimID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrClaimID: &types.AttributeValueMemberS{Value: claimID},
	}
}

func noteKey(claimID, noteID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrClaimID: &types.AttributeValueMemberS{Value: claimID},
		attrNoteID:  &types.AttributeValueMemberS{Value: noteID},
	}
}
