// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoNoteRepository stores one item per note with claim_id as the
// partition key and note_id as the sort key.
type dynamoNoteRepository struct {
	client dynamoAPI
	table  string
	logger *logger.Logger
}

// NewDynamoNoteRepository returns a [NoteRepository] backed by table.
func NewDynamoNoteRepository(client dynamoAPI, table string, log *logger.Logger) NoteRepository {
	log.Debug().Str("table", table).Msg("creating dynamodb note repository")
	return &dynamoNoteRepository{
		client: client,
		table:  table,
		logger: log,
	}
}

// ListNotes queries every page of the claim partition and sorts the result
// by note id.
func (r *dynamoNoteRepository) ListNotes(ctx context.Context, claimID string) ([]models.Note, error) {
	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("claim_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: claimID},
		},
	})

	notes := make([]models.Note, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDynamoRequest, err)
		}

		var items []noteItem
		if err = attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("%w: unmarshalling notes: %w", ErrDynamoRequest, err)
		}
		for _, item := range items {
			notes = append(notes, item.toModel())
		}
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].NoteID < notes[j].NoteID
	})

	return notes, nil
}

func (r *dynamoNoteRepository) GetNote(ctx context.Context, claimID, noteID string) (models.Note, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       noteKey(claimID, noteID),
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrDynamoRequest, err)
	}
	if len(out.Item) == 0 {
		return models.Note{}, noteNotFound(claimID, noteID)
	}

	var item noteItem
	if err = attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return models.Note{}, fmt.Errorf("%w: unmarshalling note: %w", ErrDynamoRequest, err)
	}

	return item.toModel(), nil
}

// AddNote computes the next id from the current partition and puts the note
// only if that id is still free. A concurrent add that won the id yields
// [ErrNoteAlreadyExists].
func (r *dynamoNoteRepository) AddNote(ctx context.Context, claimID, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := r.ListNotes(ctx, claimID)
	if err != nil {
		log.Err(err).Str("func", "*dynamoNoteRepository.AddNote").Str("claim_id", claimID).Msg("error listing notes")
		return models.Note{}, err
	}

	note := models.Note{
		ClaimID: claimID,
		NoteID:  models.NextNoteID(notes),
		Content: content,
	}
	if err = r.putNote(ctx, note, "attribute_not_exists(note_id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return models.Note{}, fmt.Errorf("%w: %s for claim %s", ErrNoteAlreadyExists, note.NoteID, claimID)
		}
		log.Err(err).Str("func", "*dynamoNoteRepository.AddNote").Str("claim_id", claimID).Msg("error putting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrDynamoRequest, err)
	}

	return note, nil
}

func (r *dynamoNoteRepository) UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error) {
	note := models.Note{ClaimID: claimID, NoteID: noteID, Content: content}
	if err := r.putNote(ctx, note, "attribute_exists(note_id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return models.Note{}, noteNotFound(claimID, noteID)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*dynamoNoteRepository.UpdateNote").
			Str("claim_id", claimID).Str("note_id", noteID).Msg("error putting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrDynamoRequest, err)
	}

	return note, nil
}

func (r *dynamoNoteRepository) DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error) {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.table),
		Key:                 noteKey(claimID, noteID),
		ConditionExpression: aws.String("attribute_exists(note_id)"),
	})
	if isConditionalCheckFailed(err) {
		return models.NoteDeletion{}, noteNotFound(claimID, noteID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dynamoNoteRepository.DeleteNote").
			Str("claim_id", claimID).Str("note_id", noteID).Msg("error deleting note")
		return models.NoteDeletion{}, fmt.Errorf("%w: %w", ErrDynamoRequest, err)
	}

	return models.NoteDeletion{Deleted: true, ClaimID: claimID, NoteID: noteID}, nil
}

func (r *dynamoNoteRepository) putNote(ctx context.Context, note models.Note, condition string) error {
	item, err := attributevalue.MarshalMap(noteItem{ClaimID: note.ClaimID, NoteID: note.NoteID, Content: note.Content})
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String(condition),
	})
	return err
}
