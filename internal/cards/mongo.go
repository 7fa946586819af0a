package cards

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cardforge/cardforge/internal/sheet"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// cardDocument keeps the same JSON payload the Redis tier stores, so a card reads
// back identically from either durable tier.
type cardDocument struct {
	ID        string    `bson:"id"`
	Payload   string    `bson:"payload"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

// MongoRepository is an optional durable tier backed by a MongoDB collection.
// A TTL index on expiresAt removes cards after Retention.
type MongoRepository struct {
	col *mongo.Collection
	now func() time.Time
}

// NewMongoRepository ensures the id and TTL indexes exist and returns the repo.
func NewMongoRepository(ctx context.Context, col *mongo.Collection) (*MongoRepository, error) {
	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	})
	if err != nil {
		return nil, err
	}
	return &MongoRepository{col: col, now: time.Now}, nil
}

// Ping checks the primary is reachable.
func (m *MongoRepository) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, readpref.Primary())
}

func (m *MongoRepository) Put(ctx context.Context, id string, card *sheet.SharedCard) error {
	b, err := json.Marshal(card)
	if err != nil {
		return err
	}
	doc := cardDocument{ID: id, Payload: string(b), ExpiresAt: m.now().UTC().Add(Retention)}
	_, err = m.col.InsertOne(ctx, doc)
	return err
}

func (m *MongoRepository) Get(ctx context.Context, id string) (*sheet.SharedCard, error) {
	var doc cardDocument
	if err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// the TTL monitor runs about once a minute; hide cards it has not reaped yet
	if m.now().UTC().After(doc.ExpiresAt) {
		return nil, ErrNotFound
	}
	var c sheet.SharedCard
	if err := json.Unmarshal([]byte(doc.Payload), &c); err != nil {
		return nil, err
	}
	return &c, nil
}
