package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techbridge/events-api/internal/core/ports"
)

// sortSpec maps the list sort options to a mongo sort document. Unknown sort
// fields fall back to the collection default so callers cannot probe
// arbitrary fields.
func sortSpec(opts ports.ListOptions, fallback string, allowed map[string]bool) bson.D {
	field := opts.SortBy
	if !allowed[field] {
		field = fallback
	}
	order := 1
	if opts.SortOrder == "desc" {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}

// sumFields aggregates $sum over the named numeric fields in one pass.
func sumFields(ctx context.Context, coll *mongo.Collection, fields ...string) (map[string]int64, error) {
	group := bson.M{"_id": nil}
	for _, f := range fields {
		group[f] = bson.M{"$sum": "$" + f}
	}

	cur, err := coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: group}},
	})
	if err != nil {
		return nil, err
	}

	var rows []bson.M
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	sums := make(map[string]int64, len(fields))
	if len(rows) == 0 {
		return sums, nil
	}
	for _, f := range fields {
		sums[f] = toInt64(rows[0][f])
	}
	return sums, nil
}

// groupCount counts documents grouped by the given field expression
// (e.g. "$type"). Keys are stringified so boolean groups serialize cleanly.
func groupCount(ctx context.Context, coll *mongo.Collection, field string) (map[string]int64, error) {
	cur, err := coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   field,
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID    interface{} `bson:"_id"`
		Count int64       `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[fmt.Sprintf("%v", row.ID)] = row.Count
	}
	return out, nil
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

// regexQuoteMeta escapes the query so user input is matched literally.
func regexQuoteMeta(q string) string {
	return regexp.QuoteMeta(q)
}
