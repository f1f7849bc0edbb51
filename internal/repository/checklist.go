package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/traveldesk/travelbot/internal/model"
)

type ChecklistRepository interface {
	// Find returns the chat's checklist, or nil when none exists.
	// Legacy bare-string items are normalized in the returned value and
	// written back so the stored form converges.
	Find(ctx context.Context, chatID int64) (*model.Checklist, error)
	// Create inserts a fresh checklist for the chat.
	Create(ctx context.Context, checklist *model.Checklist) error
	// Replace swaps the chat's items wholesale, creating the document
	// when missing.
	Replace(ctx context.Context, chatID int64, items []model.ChecklistItem) error
	// AddItem appends the item unless one with the same name exists.
	AddItem(ctx context.Context, chatID int64, item model.ChecklistItem) error
	// RemoveItem deletes the item by exact name; absent names are a no-op.
	RemoveItem(ctx context.Context, chatID int64, name string) error
	// SetStatus updates the named item's status; absent names are a no-op.
	SetStatus(ctx context.Context, chatID int64, name string, status model.ItemStatus) error
}

type checklistRepo struct {
	col *mongo.Collection
}

func NewChecklistRepository(db *mongo.Database) ChecklistRepository {
	return &checklistRepo{col: db.Collection("checklists")}
}

func (r *checklistRepo) Find(ctx context.Context, chatID int64) (*model.Checklist, error) {
	filter := bson.M{"chat_id": chatID}

	var raw struct {
		ChatID int64           `bson:"chat_id"`
		Items  []bson.RawValue `bson:"items"`
	}
	err := r.col.FindOne(ctx, filter).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var checklist model.Checklist
	if err := r.col.FindOne(ctx, filter).Decode(&checklist); err != nil {
		return nil, err
	}

	if needsNormalization(raw.Items) {
		if err := r.Replace(ctx, chatID, checklist.Items); err != nil {
			return nil, err
		}
	}
	return &checklist, nil
}

// needsNormalization reports whether any stored item uses the legacy
// bare-string shape or a non-canonical status value.
func needsNormalization(items []bson.RawValue) bool {
	for _, v := range items {
		if v.Type == bson.TypeString {
			return true
		}
		if v.Type != bson.TypeEmbeddedDocument {
			continue
		}
		status, err := v.Document().LookupErr("status")
		if err != nil {
			return true
		}
		s, ok := status.StringValueOK()
		if !ok {
			return true
		}
		if s != string(model.ItemStatusDone) && s != string(model.ItemStatusPending) {
			return true
		}
	}
	return false
}

func (r *checklistRepo) Create(ctx context.Context, checklist *model.Checklist) error {
	_, err := r.col.InsertOne(ctx, checklist)
	return err
}

func (r *checklistRepo) Replace(ctx context.Context, chatID int64, items []model.ChecklistItem) error {
	if items == nil {
		items = []model.ChecklistItem{}
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"chat_id": chatID}, model.Checklist{ChatID: chatID, Items: items}, opts)
	return err
}

func (r *checklistRepo) AddItem(ctx context.Context, chatID int64, item model.ChecklistItem) error {
	// The name guard in the filter makes a duplicate add match nothing.
	_, err := r.col.UpdateOne(ctx, bson.M{
		"chat_id":    chatID,
		"items.name": bson.M{"$ne": item.Name},
	}, bson.M{
		"$push": bson.M{"items": item},
	})
	return err
}

func (r *checklistRepo) RemoveItem(ctx context.Context, chatID int64, name string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"chat_id": chatID}, bson.M{
		"$pull": bson.M{"items": bson.M{"name": name}},
	})
	return err
}

func (r *checklistRepo) SetStatus(ctx context.Context, chatID int64, name string, status model.ItemStatus) error {
	_, err := r.col.UpdateOne(ctx, bson.M{
		"chat_id":    chatID,
		"items.name": name,
	}, bson.M{
		"$set": bson.M{"items.$.status": status},
	})
	return err
}
