package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

type adminDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// AdminRepository implements domain.AdminRepository on the admins collection.
type AdminRepository struct {
	coll *mongo.Collection
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc adminDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	return toAdmin(doc), nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var doc adminDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return toAdmin(doc), nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	res, err := r.coll.InsertOne(ctx, bson.M{
		"email":         admin.Email,
		"password_hash": admin.PasswordHash,
		"created_at":    admin.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid.Hex()
	}
	return nil
}

func toAdmin(doc adminDoc) *domain.Admin {
	return &domain.Admin{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}
}
