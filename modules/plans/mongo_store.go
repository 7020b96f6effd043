package plans

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "plans"

type mongoStore struct {
	col *mongo.Collection
}

// NewMongoStore returns a Store backed by the plans collection.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{col: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique (owner_id, code) index. The index is the
// authoritative uniqueness guarantee; the handler's pre-insert existence
// check is only an advisory fast path.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *mongoStore) Insert(ctx context.Context, plan *Plan) error {
	if _, err := s.col.InsertOne(ctx, plan); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrCodeTaken
		}
		return err
	}
	return nil
}

func (s *mongoStore) FindByID(ctx context.Context, id bson.ObjectID, ownerID string) (*Plan, error) {
	var plan Plan
	err := s.col.FindOne(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "owner_id", Value: ownerID},
	}).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *mongoStore) FindPage(ctx context.Context, filter Filter, page, limit int64) ([]Plan, int64, error) {
	if page < 1 {
		page = 1
	}
	query := buildQuery(filter)

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	cur, err := s.col.Find(ctx, query, options.Find().
		SetSkip((page-1)*limit).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, 0, err
	}

	var records []Plan
	if err := cur.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (s *mongoStore) ExistsByCode(ctx context.Context, ownerID, code string) (bool, error) {
	err := s.col.FindOne(ctx,
		bson.D{{Key: "owner_id", Value: ownerID}, {Key: "code", Value: code}},
		options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// buildQuery translates a Filter into a find document. Search input is
// escaped with regexp.QuoteMeta so user text is matched literally, never
// interpreted as pattern syntax.
func buildQuery(filter Filter) bson.D {
	query := bson.D{{Key: "owner_id", Value: filter.OwnerID}}

	if filter.CreatedFrom != nil && filter.CreatedTo != nil {
		query = append(query, bson.E{Key: "created_at", Value: bson.D{
			{Key: "$gte", Value: *filter.CreatedFrom},
			{Key: "$lte", Value: *filter.CreatedTo},
		}})
	}

	if filter.Search != "" {
		pattern := regexp.QuoteMeta(filter.Search)
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "code", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
			bson.D{{Key: "name", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
		}})
	}

	return query
}
