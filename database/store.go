package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store wraps the mongo database handle. It is constructed once at startup
// and passed explicitly to whatever needs it; there is no package-level
// connection state.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Connect dials mongo, pings the primary and returns the client. The caller
// owns the client and is responsible for disconnecting it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *Store) Client() *mongo.Client {
	return s.db.Client()
}

func (s *Store) Characters() *mongo.Collection {
	return s.db.Collection("characters")
}

func (s *Store) Rolls() *mongo.Collection {
	return s.db.Collection("rolls")
}

func (s *Store) Threats() *mongo.Collection {
	return s.db.Collection("threats")
}

func (s *Store) Campaigns() *mongo.Collection {
	return s.db.Collection("campaigns")
}

func (s *Store) CampaignCharacters() *mongo.Collection {
	return s.db.Collection("campaign_characters")
}

func (s *Store) CampaignRolls() *mongo.Collection {
	return s.db.Collection("campaign_rolls")
}
