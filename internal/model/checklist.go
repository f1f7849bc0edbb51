package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type ChecklistItem struct {
	Name   string     `bson:"name" json:"name"`
	Status ItemStatus `bson:"status" json:"status"`
}

// UnmarshalBSONValue accepts both the structured {name, status} shape and
// the legacy bare-string shape, normalizing the latter to a pending item.
func (i *ChecklistItem) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bson.TypeString {
		var name string
		if err := bson.UnmarshalValue(t, data, &name); err != nil {
			return err
		}
		i.Name = name
		i.Status = ItemStatusPending
		return nil
	}

	var raw struct {
		Name   string `bson:"name"`
		Status string `bson:"status"`
	}
	if err := bson.UnmarshalValue(t, data, &raw); err != nil {
		return err
	}
	i.Name = raw.Name
	i.Status = normalizeStatus(raw.Status)
	return nil
}

// Early documents stored the status as a rendered emoji.
func normalizeStatus(s string) ItemStatus {
	switch s {
	case string(ItemStatusDone), "✅":
		return ItemStatusDone
	default:
		return ItemStatusPending
	}
}

type Checklist struct {
	ChatID int64           `bson:"chat_id" json:"chatId"`
	Items  []ChecklistItem `bson:"items" json:"items"`
}

// Has reports whether an item with the exact name exists.
func (c *Checklist) Has(name string) bool {
	for _, item := range c.Items {
		if item.Name == name {
			return true
		}
	}
	return false
}
