package syncer

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	snapshotCollectionName = "collection_snapshots"
	defaultTimeout         = 10 * time.Second
)

// mongoSink implements Sink on a MongoDB collection of snapshot
// documents, one per (user, collection) pair.
type mongoSink struct {
	collection *mongo.Collection
}

// snapshotDoc is the stored shape of one pushed collection.
type snapshotDoc struct {
	ID        string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// ConnectMongo establishes a connection to MongoDB and verifies it with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}
	return client, nil
}

// DisconnectMongo gracefully disconnects the MongoDB client.
func DisconnectMongo(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// NewMongoSink creates a Sink backed by the given database.
func NewMongoSink(db *mongo.Database) Sink {
	return &mongoSink{collection: db.Collection(snapshotCollectionName)}
}

// Push upserts the snapshot document for the (user, collection) pair.
// Last push wins; there is no versioning and no merge on the remote side.
func (s *mongoSink) Push(ctx context.Context, userID, collection string, data []byte) error {
	filter := bson.M{"_id": snapshotID(userID, collection)}
	update := bson.M{"$set": bson.M{
		"data":      data,
		"updatedAt": time.Now().UTC(),
	}}
	_, err := s.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Pull reads the last pushed snapshot for the (user, collection) pair.
func (s *mongoSink) Pull(ctx context.Context, userID, collection string) ([]byte, error) {
	var doc snapshotDoc
	filter := bson.M{"_id": snapshotID(userID, collection)}
	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return doc.Data, nil
}
