// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoClaimRepository stores one item per claim, keyed by claim_id.
type dynamoClaimRepository struct {
	client dynamoAPI
	table  string
	logger *logger.Logger
}

// NewDynamoClaimRepository returns a [ClaimRepository] backed by table.
func NewDynamoClaimRepository(client dynamoAPI, table string, log *logger.Logger) ClaimRepository {
	log.Debug().Str("table", table).Msg("creating dynamodb claim repository")
	return &dynamoClaimRepository{
		client: client,
		table:  table,
		logger: log,
	}
}

// CreateClaim puts the claim only if no item with the same claim_id exists.
func (r *dynamoClaimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(newClaimItem(claim))
	if err != nil {
		return models.Claim{}, fmt.Errorf("%w: marshalling claim: %w", ErrDynamoRequest, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(claim_id)"),
	})
	if isConditionalCheckFailed(err) {
		return models.Claim{}, fmt.Errorf("%w: %s", ErrClaimAlreadyExists, claim.ID)
	}
	if err != nil {
		log.Err(err).Str("func", "*dynamoClaimRepository.CreateClaim").Str("claim_id", claim.ID).Msg("error putting claim")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrDynamoRequest, err)
	}

	return claim, nil
}

func (r *dynamoClaimRepository) GetClaim(ctx context.Context, id string) (models.Claim, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       claimKey(id),
	})
	if err != nil {
		return models.Claim{}, fmt.Errorf("%w: %w", ErrDynamoRequest, err)
	}
	if len(out.Item) == 0 {
		return models.Claim{}, fmt.Errorf("%w: %s", ErrClaimNotFound, id)
	}

	var item claimItem
	if err = attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return models.Claim{}, fmt.Errorf("%w: unmarshalling claim: %w", ErrDynamoRequest, err)
	}

	return item.toModel(), nil
}

// UpdateClaimSummary sets the summary map and updatedAt of an existing item.
func (r *dynamoClaimRepository) UpdateClaimSummary(ctx context.Context, id string, summary models.Summary, updatedAt string) (models.Claim, error) {
	summaryValue, err := attributevalue.Marshal(newSummaryItem(summary))
	if err != nil {
		return models.Claim{}, fmt.Errorf("%w: marshalling summary: %w", ErrDynamoRequest, err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 claimKey(id),
		UpdateExpression:    aws.String("SET #summary = :summary, #updatedAt = :updatedAt"),
		ConditionExpression: aws.String("attribute_exists(claim_id)"),
		ExpressionAttributeNames: map[string]string{
			"#summary":   "summary",
			"#updatedAt": "updatedAt",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":summary":   summaryValue,
			":updatedAt": &types.AttributeValueMemberS{Value: updatedAt},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		return models.Claim{}, fmt.Errorf("%w: %s", ErrClaimNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dynamoClaimRepository.UpdateClaimSummary").
			Str("claim_id", id).Msg("error updating claim summary")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrDynamoRequest, err)
	}

	var item claimItem
	if err = attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return models.Claim{}, fmt.Errorf("%w: unmarshalling claim: %w", ErrDynamoRequest, err)
	}

	return item.toModel(), nil
}
