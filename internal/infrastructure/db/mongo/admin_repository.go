package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techbridge/events-api/internal/core/domain"
)

const adminsCollection = "admins"

// AdminRepository stores operator accounts in the admins collection.
type AdminRepository struct {
	coll *mongo.Collection
	seq  *sequences
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(adminsCollection), seq: newSequences(db)}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var admin domain.Admin
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) Insert(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, adminsCollection)
	if err != nil {
		return nil, err
	}
	admin.ID = id

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return admin, nil
}

func (r *AdminRepository) Any(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return n > 0, nil
}

func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
