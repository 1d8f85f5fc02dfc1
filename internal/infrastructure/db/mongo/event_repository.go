package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

const eventsCollection = "tech_events"

// EventRepository stores event listings in the tech_events collection.
type EventRepository struct {
	coll *mongo.Collection
	seq  *sequences
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection), seq: newSequences(db)}
}

func (r *EventRepository) Insert(ctx context.Context, event *domain.TechEvent) (*domain.TechEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, eventsCollection)
	if err != nil {
		return nil, err
	}
	event.ID = id

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*domain.TechEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var event domain.TechEvent
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.TechEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find events by ids: %w", err)
	}
	return decodeEvents(ctx, cur)
}

func (r *EventRepository) List(ctx context.Context, opts ports.ListOptions) ([]domain.TechEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().
		SetSkip(opts.Skip).
		SetLimit(opts.Limit).
		SetSort(sortSpec(opts, "start_date", map[string]bool{
			"start_date": true, "created_at": true, "likes": true,
		})))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return decodeEvents(ctx, cur)
}

func (r *EventRepository) Search(ctx context.Context, filter ports.EventFilter) ([]domain.TechEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Query != "" {
		regex := containsRegex(filter.Query)
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"organization": regex},
		}
	}
	if filter.Location != "" {
		query["location"] = containsRegex(filter.Location)
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Virtual != nil {
		query["virtual"] = *filter.Virtual
	}
	if filter.StartDateAfter != nil {
		query["start_date"] = bson.M{"$gte": *filter.StartDateAfter}
	}
	if filter.EndDateBefore != nil {
		query["end_date"] = bson.M{"$lte": *filter.EndDateBefore}
	}
	if len(filter.TechStack) > 0 {
		query["tech_stack"] = bson.M{"$all": filter.TechStack}
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$all": filter.Tags}
	}

	cur, err := r.coll.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return decodeEvents(ctx, cur)
}

// Update rewrites the mutable fields, leaving counters and created_at intact.
func (r *EventRepository) Update(ctx context.Context, event *domain.TechEvent) (*domain.TechEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated domain.TechEvent
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": event.ID},
		bson.M{"$set": bson.M{
			"title":             event.Title,
			"organization":      event.Organization,
			"description":       event.Description,
			"venue":             event.Venue,
			"registration_link": event.RegistrationLink,
			"start_date":        event.StartDate,
			"end_date":          event.EndDate,
			"location":          event.Location,
			"type":              event.Type,
			"price":             event.Price,
			"tech_stack":        event.TechStack,
			"speakers":          event.Speakers,
			"virtual":           event.Virtual,
			"tags":              event.Tags,
			"updated_at":        event.UpdatedAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	return r.increment(ctx, id, "likes")
}

func (r *EventRepository) IncrementAttendees(ctx context.Context, id int64) (int64, error) {
	return r.increment(ctx, id, "attendees")
}

func (r *EventRepository) increment(ctx context.Context, id int64, field string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated domain.TechEvent
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{field: int64(1)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrEventNotFound
		}
		return 0, fmt.Errorf("increment event %s: %w", field, err)
	}
	if field == "attendees" {
		return updated.Attendees, nil
	}
	return updated.Likes, nil
}

func (r *EventRepository) Stats(ctx context.Context, now time.Time) (*ports.EventStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stats := &ports.EventStats{
		Types:             map[string]int64{},
		VirtualVsPhysical: map[string]int64{},
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("event stats: count: %w", err)
	}
	stats.TotalEvents = total

	sums, err := sumFields(ctx, r.coll, "attendees", "likes")
	if err != nil {
		return nil, fmt.Errorf("event stats: sums: %w", err)
	}
	stats.TotalAttendees = sums["attendees"]
	stats.TotalLikes = sums["likes"]

	if stats.Types, err = groupCount(ctx, r.coll, "$type"); err != nil {
		return nil, fmt.Errorf("event stats: types: %w", err)
	}
	if stats.VirtualVsPhysical, err = groupCount(ctx, r.coll, "$virtual"); err != nil {
		return nil, fmt.Errorf("event stats: virtual: %w", err)
	}

	upcoming, err := r.coll.CountDocuments(ctx, bson.M{"start_date": bson.M{"$gte": now}})
	if err != nil {
		return nil, fmt.Errorf("event stats: upcoming: %w", err)
	}
	stats.UpcomingEvents = upcoming

	return stats, nil
}

func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "organization", Value: 1}}},
		{Keys: bson.D{{Key: "start_date", Value: 1}}},
	})
	return err
}

func decodeEvents(ctx context.Context, cur *mongo.Cursor) ([]domain.TechEvent, error) {
	events := []domain.TechEvent{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// containsRegex builds a case-insensitive substring match.
func containsRegex(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexQuoteMeta(q), Options: "i"}
}
