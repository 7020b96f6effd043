package users

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/plankit/pkg/rolegate"
)

const collectionName = "users"

// record mirrors the stored user document. User identifiers are opaque
// strings here, not ObjectIDs; an external identity provider mints them.
type record struct {
	ID   string        `bson:"_id"`
	Role rolegate.Role `bson:"role"`
}

// MongoSource resolves role-gate users from the users collection.
type MongoSource struct {
	col *mongo.Collection
}

// NewMongoSource returns a rolegate.UserSource backed by MongoDB.
func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{col: db.Collection(collectionName)}
}

func (s *MongoSource) FindByID(ctx context.Context, id string) (*rolegate.User, error) {
	var rec record
	err := s.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, rolegate.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rolegate.User{ID: rec.ID, Role: rec.Role}, nil
}
