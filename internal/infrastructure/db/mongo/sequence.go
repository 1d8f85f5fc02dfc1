package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// sequences allocates monotonically increasing integer IDs per collection,
// the classic counters-collection pattern. Public record IDs are small
// integers (tokens and saved-ID lists embed them), so ObjectIDs are not used
// as public keys.
type sequences struct {
	coll *mongo.Collection
}

func newSequences(db *mongo.Database) *sequences {
	return &sequences{coll: db.Collection(countersCollection)}
}

// next returns the next ID for the named sequence, creating it at 1.
func (s *sequences) next(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("sequence %s: %w", name, err)
	}
	return doc.Value, nil
}
