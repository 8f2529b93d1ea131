package repositories

import (
	"context"
	"fmt"
	"log"

	"fiufit-users/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// LocationCollection holds one document per trainer.
	LocationCollection = "user_location"

	locationKey = "location"
	userIDKey   = "user_id"
)

type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type locationDocument struct {
	UserID   int64    `bson:"user_id"`
	Location geoPoint `bson:"location,omitempty"`
}

// MongoLocationRepository is a MongoDB implementation of LocationRepository.
type MongoLocationRepository struct {
	coll *mongo.Collection
}

// NewMongoLocationRepository creates a new instance of MongoLocationRepository.
func NewMongoLocationRepository(coll *mongo.Collection) *MongoLocationRepository {
	return &MongoLocationRepository{
		coll: coll,
	}
}

// EnsureIndexes creates the 2dsphere index $near queries need.
func (r *MongoLocationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: locationKey, Value: "2dsphere"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create geolocation index: %w", err)
	}
	return nil
}

// Upsert replaces the location document of userID, inserting it when missing.
func (r *MongoLocationRepository) Upsert(ctx context.Context, userID uint, point models.Coordinates) error {
	doc := locationDocument{
		UserID:   int64(userID),
		Location: geoPoint{Type: "Point", Coordinates: point.Pair()},
	}
	log.Printf("Updating location of user %d to %v", userID, doc.Location.Coordinates)
	_, err := r.coll.ReplaceOne(ctx, bson.M{userIDKey: doc.UserID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save location of user %d: %w", userID, err)
	}
	return nil
}

// Within runs a $near query bounded by $maxDistance and projects only the user ids.
func (r *MongoLocationRepository) Within(ctx context.Context, point models.Coordinates, radius float64) ([]uint, error) {
	filter := bson.M{
		locationKey: bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": point.Pair(),
				},
				"$maxDistance": radius,
			},
		},
	}
	projection := bson.M{"_id": 0, userIDKey: 1}
	log.Printf("Searching for users within %.0fm of %v", radius, point.Pair())

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	var docs []locationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read location results: %w", err)
	}

	ids := make([]uint, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, uint(doc.UserID))
	}
	return ids, nil
}
