package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

const opportunitiesCollection = "research_opportunities"

// OpportunityRepository stores research opportunity listings.
type OpportunityRepository struct {
	coll *mongo.Collection
	seq  *sequences
}

func NewOpportunityRepository(db *mongo.Database) *OpportunityRepository {
	return &OpportunityRepository{coll: db.Collection(opportunitiesCollection), seq: newSequences(db)}
}

func (r *OpportunityRepository) Insert(ctx context.Context, opp *domain.ResearchOpportunity) (*domain.ResearchOpportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, opportunitiesCollection)
	if err != nil {
		return nil, err
	}
	opp.ID = id

	if _, err := r.coll.InsertOne(ctx, opp); err != nil {
		return nil, fmt.Errorf("insert opportunity: %w", err)
	}
	return opp, nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id int64) (*domain.ResearchOpportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var opp domain.ResearchOpportunity
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&opp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("find opportunity: %w", err)
	}
	return &opp, nil
}

func (r *OpportunityRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.ResearchOpportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find opportunities by ids: %w", err)
	}
	return decodeOpportunities(ctx, cur)
}

func (r *OpportunityRepository) List(ctx context.Context, opts ports.ListOptions) ([]domain.ResearchOpportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().
		SetSkip(opts.Skip).
		SetLimit(opts.Limit).
		SetSort(sortSpec(opts, "deadline", map[string]bool{
			"deadline": true, "created_at": true, "likes": true,
		})))
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	return decodeOpportunities(ctx, cur)
}

func (r *OpportunityRepository) Search(ctx context.Context, filter ports.OpportunityFilter) ([]domain.ResearchOpportunity, error) {
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
	if filter.DeadlineAfter != nil {
		query["deadline"] = bson.M{"$gte": *filter.DeadlineAfter}
	}
	if len(filter.Fields) > 0 {
		query["fields"] = bson.M{"$all": filter.Fields}
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$all": filter.Tags}
	}

	cur, err := r.coll.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "deadline", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("search opportunities: %w", err)
	}
	return decodeOpportunities(ctx, cur)
}

func (r *OpportunityRepository) Update(ctx context.Context, opp *domain.ResearchOpportunity) (*domain.ResearchOpportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated domain.ResearchOpportunity
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": opp.ID},
		bson.M{"$set": bson.M{
			"title":         opp.Title,
			"organization":  opp.Organization,
			"description":   opp.Description,
			"type":          opp.Type,
			"location":      opp.Location,
			"deadline":      opp.Deadline,
			"duration":      opp.Duration,
			"compensation":  opp.Compensation,
			"requirements":  opp.Requirements,
			"fields":        opp.Fields,
			"contact_email": opp.ContactEmail,
			"virtual":       opp.Virtual,
			"tags":          opp.Tags,
			"updated_at":    opp.UpdatedAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("update opportunity: %w", err)
	}
	return &updated, nil
}

func (r *OpportunityRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepository) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	return r.increment(ctx, id, "likes")
}

func (r *OpportunityRepository) IncrementApplications(ctx context.Context, id int64) (int64, error) {
	return r.increment(ctx, id, "applications")
}

func (r *OpportunityRepository) increment(ctx context.Context, id int64, field string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated domain.ResearchOpportunity
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{field: int64(1)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrOpportunityNotFound
		}
		return 0, fmt.Errorf("increment opportunity %s: %w", field, err)
	}
	if field == "applications" {
		return updated.Applications, nil
	}
	return updated.Likes, nil
}

func (r *OpportunityRepository) Stats(ctx context.Context, now time.Time) (*ports.OpportunityStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stats := &ports.OpportunityStats{
		Types:             map[string]int64{},
		VirtualVsPhysical: map[string]int64{},
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("opportunity stats: count: %w", err)
	}
	stats.TotalOpportunities = total

	sums, err := sumFields(ctx, r.coll, "applications", "likes")
	if err != nil {
		return nil, fmt.Errorf("opportunity stats: sums: %w", err)
	}
	stats.TotalApplications = sums["applications"]
	stats.TotalLikes = sums["likes"]

	if stats.Types, err = groupCount(ctx, r.coll, "$type"); err != nil {
		return nil, fmt.Errorf("opportunity stats: types: %w", err)
	}
	if stats.VirtualVsPhysical, err = groupCount(ctx, r.coll, "$virtual"); err != nil {
		return nil, fmt.Errorf("opportunity stats: virtual: %w", err)
	}

	upcoming, err := r.coll.CountDocuments(ctx, bson.M{"deadline": bson.M{"$gte": now}})
	if err != nil {
		return nil, fmt.Errorf("opportunity stats: upcoming: %w", err)
	}
	stats.UpcomingOpportunities = upcoming

	return stats, nil
}

func (r *OpportunityRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "organization", Value: 1}}},
		{Keys: bson.D{{Key: "deadline", Value: 1}}},
	})
	return err
}

func decodeOpportunities(ctx context.Context, cur *mongo.Cursor) ([]domain.ResearchOpportunity, error) {
	opps := []domain.ResearchOpportunity{}
	if err := cur.All(ctx, &opps); err != nil {
		return nil, fmt.Errorf("decode opportunities: %w", err)
	}
	return opps, nil
}
