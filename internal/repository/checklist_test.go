package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// rawItems round-trips an items array through BSON so the values carry
// the same types a stored document would.
func rawItems(t *testing.T, items bson.A) []bson.RawValue {
	t.Helper()
	data, err := bson.Marshal(bson.D{{Key: "items", Value: items}})
	require.NoError(t, err)
	values, err := bson.Raw(data).Lookup("items").Array().Values()
	require.NoError(t, err)
	return values
}

func TestNeedsNormalization(t *testing.T) {
	t.Run("legacy bare-string item triggers a write-back", func(t *testing.T) {
		assert.True(t, needsNormalization(rawItems(t, bson.A{"Documents"})))
	})

	t.Run("bare string mixed with canonical items triggers a write-back", func(t *testing.T) {
		assert.True(t, needsNormalization(rawItems(t, bson.A{
			bson.D{{Key: "name", Value: "Documents"}, {Key: "status", Value: "done"}},
			"Tickets",
		})))
	})

	t.Run("item without a status field triggers a write-back", func(t *testing.T) {
		assert.True(t, needsNormalization(rawItems(t, bson.A{
			bson.D{{Key: "name", Value: "Documents"}},
		})))
	})

	t.Run("emoji status triggers a write-back", func(t *testing.T) {
		assert.True(t, needsNormalization(rawItems(t, bson.A{
			bson.D{{Key: "name", Value: "Documents"}, {Key: "status", Value: "✅"}},
		})))
	})

	t.Run("non-string status triggers a write-back", func(t *testing.T) {
		assert.True(t, needsNormalization(rawItems(t, bson.A{
			bson.D{{Key: "name", Value: "Documents"}, {Key: "status", Value: int32(1)}},
		})))
	})

	t.Run("canonical items leave the document alone", func(t *testing.T) {
		assert.False(t, needsNormalization(rawItems(t, bson.A{
			bson.D{{Key: "name", Value: "Documents"}, {Key: "status", Value: "done"}},
			bson.D{{Key: "name", Value: "Tickets"}, {Key: "status", Value: "pending"}},
		})))
	})

	t.Run("empty list leaves the document alone", func(t *testing.T) {
		assert.False(t, needsNormalization(nil))
	})
}
