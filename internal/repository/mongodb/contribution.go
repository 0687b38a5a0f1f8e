package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

type contributionDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	User   string             `bson:"user"`
	Amount float64            `bson:"amount"`
	Month  string             `bson:"month"`
	Year   string             `bson:"year"`
}

// ContributionRepository implements domain.ContributionRepository on the
// contributions collection.
type ContributionRepository struct {
	coll *mongo.Collection
}

func (r *ContributionRepository) List(ctx context.Context) ([]domain.Contribution, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find contributions: %w", err)
	}
	defer cursor.Close(ctx)

	var contributions []domain.Contribution
	for cursor.Next(ctx) {
		var doc contributionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode contribution: %w", err)
		}
		contributions = append(contributions, domain.Contribution{
			ID:     doc.ID.Hex(),
			User:   doc.User,
			Amount: doc.Amount,
			Month:  doc.Month,
			Year:   doc.Year,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate contributions: %w", err)
	}
	return contributions, nil
}

func (r *ContributionRepository) Create(ctx context.Context, c *domain.Contribution) error {
	res, err := r.coll.InsertOne(ctx, bson.M{
		"user":   c.User,
		"amount": c.Amount,
		"month":  c.Month,
		"year":   c.Year,
	})
	if err != nil {
		return fmt.Errorf("insert contribution: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

func (r *ContributionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete contribution: %w", err)
	}
	return nil
}

func (r *ContributionRepository) RenameUser(ctx context.Context, oldName, newName string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, bson.M{"user": oldName},
		bson.M{"$set": bson.M{"user": newName}})
	if err != nil {
		return 0, fmt.Errorf("rename contribution user: %w", err)
	}
	return res.ModifiedCount, nil
}
